package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/shopsage/backend/internal/domain"
)

const promptTemplate = `You are helping a customer of an online store. The store sells ONLY the products listed below.

PRODUCT CATALOG (JSON):
%s

CUSTOMER REQUEST:
%s

Pick up to 3 products from the catalog that best fit the customer's request.

Return your answer as a JSON array with this exact structure:
[
  {"product_name": "<product_name exactly as in the catalog>", "brand": "<brand exactly as in the catalog>", "reason": "<one sentence explaining why this product fits>"}
]

Copy product_name and brand verbatim from the catalog, do not invent or rephrase them.
IMPORTANT: Your response MUST be a valid JSON array and nothing else. Do not include any explanations or text outside of the JSON.`

// BuildPrompt serializes the full catalog plus the customer's query into one
// instruction string. Pure function of its two inputs.
func BuildPrompt(products []domain.Product, query string) string {
	catalogJSON, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		// domain.Product contains only plain fields, marshaling cannot fail
		catalogJSON = []byte("[]")
	}

	return fmt.Sprintf(promptTemplate, string(catalogJSON), query)
}
