package usecase

import (
	"strings"
	"testing"

	"github.com/shopsage/backend/internal/domain"
)

func TestBuildPrompt(t *testing.T) {
	products := []domain.Product{
		{Brand: "Aurora", Name: "Aurora Glow Desk Lamp", Price: 39.99, Category: "Home Office", Description: "LED lamp"},
		{Brand: "Drift", Name: "Drift Weighted Blanket 7kg", Price: 79.0, Category: "Bedroom", Description: "Cotton blanket"},
	}

	prompt := BuildPrompt(products, "something to help me sleep")

	t.Run("embeds the query", func(t *testing.T) {
		if !strings.Contains(prompt, "something to help me sleep") {
			t.Error("prompt does not contain the query")
		}
	})

	t.Run("embeds every catalog record", func(t *testing.T) {
		for _, p := range products {
			if !strings.Contains(prompt, p.Name) {
				t.Errorf("prompt does not contain product %q", p.Name)
			}
			if !strings.Contains(prompt, p.Brand) {
				t.Errorf("prompt does not contain brand %q", p.Brand)
			}
		}
	})

	t.Run("requests the stub JSON shape", func(t *testing.T) {
		for _, field := range []string{"product_name", "brand", "reason"} {
			if !strings.Contains(prompt, field) {
				t.Errorf("prompt does not mention field %q", field)
			}
		}
		if !strings.Contains(prompt, "up to 3") {
			t.Error("prompt does not ask for up to 3 recommendations")
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		if prompt != BuildPrompt(products, "something to help me sleep") {
			t.Error("BuildPrompt is not a pure function of its inputs")
		}
	})
}
