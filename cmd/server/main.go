package main

import (
	"fmt"
	"log"
	"os"

	"github.com/shopsage/backend/config"
	httpDelivery "github.com/shopsage/backend/internal/delivery/http"
	"github.com/shopsage/backend/internal/domain"
	"github.com/shopsage/backend/internal/infrastructure/cache"
	"github.com/shopsage/backend/internal/infrastructure/catalog"
	"github.com/shopsage/backend/internal/infrastructure/openai"
	"github.com/shopsage/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShopSage Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Load the product catalog once at startup; it is immutable afterwards
	catalogRepo, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// Result cache (only consulted when cache.ttl > 0)
	var resultCache domain.CacheRepository
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		resultCache = redisCache
		log.Printf("Cache: redis (%s), TTL: %s", cfg.Cache.RedisURL, cfg.Cache.TTL)
	default:
		resultCache = cache.NewMemoryCache()
		log.Printf("Cache: memory, TTL: %s", cfg.Cache.TTL)
	}

	aiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model, cfg.RateLimit.OpenAI)

	// Enable debug mode in development environment
	debug := cfg.Server.Environment == "development"
	if debug {
		aiClient.SetDebug(true)
		log.Printf("OpenAI client debug mode enabled")
	}

	if cfg.OpenAI.APIKey != "" {
		log.Printf("OpenAI API configured: model=%s", cfg.OpenAI.Model)
	} else {
		log.Printf("WARNING: OpenAI API key not configured - recommendation requests will be rejected")
	}

	// Initialize usecase layer
	recommendationService := usecase.NewRecommendationService(
		catalogRepo,
		aiClient,
		resultCache,
		usecase.RecommendationServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: debug,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recommendationService, catalogRepo)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
