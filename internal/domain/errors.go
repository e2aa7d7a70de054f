package domain

import "errors"

var (
	// ErrEmptyQuery is returned when the request query is empty after trimming
	ErrEmptyQuery = errors.New("query must not be empty")

	// ErrMissingAPIKey is returned when no AI credential is configured
	ErrMissingAPIKey = errors.New("AI API key is not configured")

	// ErrAIServiceFailure is returned when the AI completion request fails
	ErrAIServiceFailure = errors.New("AI service request failed")

	// ErrMalformedResponse is returned when the AI reply cannot be parsed as JSON
	ErrMalformedResponse = errors.New("AI response is not valid JSON")

	// ErrCatalogUnavailable is returned when the catalog document cannot be loaded
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
