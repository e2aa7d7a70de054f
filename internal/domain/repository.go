package domain

import (
	"context"
	"time"
)

// CatalogRepository provides read-only access to the loaded product catalog.
type CatalogRepository interface {
	GetAll() []Product
	FindByNameAndBrand(name, brand string) (*Product, bool)
}

// AIClient defines the interface for the text-completion service boundary.
type AIClient interface {
	// Ready reports whether the client holds a usable credential. A non-nil
	// error blocks the recommendation operation before any network call.
	Ready() error
	Complete(ctx context.Context, prompt string) (string, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
