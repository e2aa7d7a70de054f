package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/shopsage/backend/internal/domain"
)

// Package-level compiled regex patterns for cache key normalization
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// RecommendationServiceConfig holds configuration for the recommendation service
type RecommendationServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// RecommendationService runs the recommendation pipeline:
// validate -> prompt -> AI call -> match against catalog.
type RecommendationService struct {
	catalog  domain.CatalogRepository
	aiClient domain.AIClient
	cache    domain.CacheRepository
	cacheTTL time.Duration
	debug    bool
}

// NewRecommendationService creates a new recommendation service with dependencies.
// A zero CacheTTL disables result caching.
func NewRecommendationService(
	catalog domain.CatalogRepository,
	aiClient domain.AIClient,
	cache domain.CacheRepository,
	config RecommendationServiceConfig,
) *RecommendationService {
	return &RecommendationService{
		catalog:  catalog,
		aiClient: aiClient,
		cache:    cache,
		cacheTTL: config.CacheTTL,
		debug:    config.EnableDebugLogging,
	}
}

// Recommend runs one recommendation request end to end.
// Both validation failures (empty query, missing credential) are detected
// before any network call.
func (s *RecommendationService) Recommend(
	ctx context.Context,
	request *domain.RecommendRequest,
) (*domain.RecommendResult, error) {
	if request == nil {
		return nil, domain.ErrEmptyQuery
	}

	query := strings.TrimSpace(request.Query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}

	if err := s.aiClient.Ready(); err != nil {
		return nil, err
	}

	cacheKey := s.generateCacheKey(query)
	if s.cacheEnabled() {
		if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
			if s.debug {
				log.Printf("[RECOMMEND] Cache hit for query %q", query)
			}
			return &domain.RecommendResult{Recommendations: cached, Source: "Cache"}, nil
		}
	}

	prompt := BuildPrompt(s.catalog.GetAll(), query)
	if s.debug {
		log.Printf("[RECOMMEND] Built prompt for query %q (%d bytes)", query, len(prompt))
	}

	raw, err := s.aiClient.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	recommendations, err := MatchResponse(raw, s.catalog)
	if err != nil {
		return nil, err
	}

	if s.debug {
		log.Printf("[RECOMMEND] Resolved %d recommendations for query %q", len(recommendations), query)
	}

	if s.cacheEnabled() {
		if err := s.setInCache(ctx, cacheKey, recommendations); err != nil {
			log.Printf("[RECOMMEND] Failed to cache result: %v", err)
		}
	}

	return &domain.RecommendResult{Recommendations: recommendations, Source: "AI"}, nil
}

func (s *RecommendationService) cacheEnabled() bool {
	return s.cache != nil && s.cacheTTL > 0
}

// generateCacheKey creates a normalized cache key from the query.
// Format: "recommend:{normalized_query}"
func (s *RecommendationService) generateCacheKey(query string) string {
	normalized := strings.ToLower(query)
	normalized = nonAlphanumericRegex.ReplaceAllString(normalized, "")
	normalized = multipleSpacesRegex.ReplaceAllString(normalized, " ")
	return fmt.Sprintf("recommend:%s", strings.TrimSpace(normalized))
}

// getFromCache retrieves recommendations from cache. Cached values come back
// as decoded generic JSON, so they are round-tripped into the domain type.
func (s *RecommendationService) getFromCache(ctx context.Context, key string) ([]domain.Recommendation, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return nil, domain.ErrCacheMiss
	}

	var recommendations []domain.Recommendation
	if err := json.Unmarshal(payload, &recommendations); err != nil {
		return nil, domain.ErrCacheMiss
	}
	return recommendations, nil
}

// setInCache stores recommendations in cache
func (s *RecommendationService) setInCache(ctx context.Context, key string, recommendations []domain.Recommendation) error {
	return s.cache.Set(ctx, key, recommendations, s.cacheTTL)
}
