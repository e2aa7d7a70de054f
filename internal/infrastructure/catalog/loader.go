package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/shopsage/backend/internal/domain"
)

// Repository holds the product catalog in memory. The catalog is loaded once
// at startup and is read-only for the life of the process, so no locking is
// needed after Load returns.
type Repository struct {
	products []domain.Product
}

// Load reads the catalog document from the given path and builds the
// in-memory repository. Expected schema: a JSON array of
// {brand, product_name, price, category, description}.
func Load(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%w: malformed catalog document: %v", domain.ErrCatalogUnavailable, err)
	}

	if len(products) == 0 {
		return nil, fmt.Errorf("%w: catalog document is empty", domain.ErrCatalogUnavailable)
	}

	log.Printf("[CATALOG] Loaded %d products from %s", len(products), path)

	return &Repository{products: products}, nil
}

// NewRepository builds a repository from an already-loaded product slice.
// Used by tests and by callers that source the catalog elsewhere.
func NewRepository(products []domain.Product) *Repository {
	return &Repository{products: products}
}

// GetAll returns the full catalog. Callers must not mutate the returned slice.
func (r *Repository) GetAll() []domain.Product {
	return r.products
}

// FindByNameAndBrand resolves a record by exact (name, brand) equality.
// First match wins when duplicates exist.
func (r *Repository) FindByNameAndBrand(name, brand string) (*domain.Product, bool) {
	for i := range r.products {
		if r.products[i].Name == name && r.products[i].Brand == brand {
			return &r.products[i], true
		}
	}
	return nil, false
}

// Size returns the number of loaded products (for logging/monitoring)
func (r *Repository) Size() int {
	return len(r.products)
}
