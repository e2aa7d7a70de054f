package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopsage/backend/internal/domain"
)

// codeFenceRegex matches a response wrapped in markdown code fences,
// with or without a language tag.
var codeFenceRegex = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")

// StripCodeFence removes leading/trailing markdown fence markers from the raw
// response. Isolated as a named step: this is a text contract with the remote
// model and the framing may change.
func StripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if m := codeFenceRegex.FindStringSubmatch(trimmed); m != nil {
		return m[1]
	}
	return trimmed
}

// ParseStubs decodes the normalized response text into recommendation stubs.
// Malformed JSON is a hard failure for the whole operation.
func ParseStubs(raw string) ([]domain.RecommendationStub, error) {
	normalized := StripCodeFence(raw)

	var stubs []domain.RecommendationStub
	if err := json.Unmarshal([]byte(normalized), &stubs); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	return stubs, nil
}

// ResolveStubs matches each stub to a catalog record by exact (name, brand)
// equality. Unmatched stubs are dropped silently; response order is preserved.
func ResolveStubs(stubs []domain.RecommendationStub, catalog domain.CatalogRepository) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0, len(stubs))
	for _, stub := range stubs {
		product, ok := catalog.FindByNameAndBrand(stub.ProductName, stub.Brand)
		if !ok {
			continue
		}
		recommendations = append(recommendations, domain.Recommendation{
			Product: *product,
			Reason:  stub.Reason,
		})
	}
	return recommendations
}

// MatchResponse runs the full normalize -> parse -> resolve pipeline on a raw
// AI response.
func MatchResponse(raw string, catalog domain.CatalogRepository) ([]domain.Recommendation, error) {
	stubs, err := ParseStubs(raw)
	if err != nil {
		return nil, err
	}
	return ResolveStubs(stubs, catalog), nil
}
