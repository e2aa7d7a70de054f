package openai

import (
	"context"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/shopsage/backend/internal/domain"
)

const systemMessage = "You are a shopping assistant that recommends products " +
	"from a fixed store catalog. You only ever suggest products that appear in " +
	"the catalog you are given."

// Client handles communication with the OpenAI chat completions API
type Client struct {
	api         *openai.Client
	apiKey      string
	model       string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new OpenAI client. An empty apiKey is allowed: Ready
// reports the missing credential and the recommendation operation is blocked
// per request, while the rest of the service keeps running.
func NewClient(apiKey, baseURL, model string, requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 5)

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &Client{
		api:         openai.NewClientWithConfig(cfg),
		apiKey:      apiKey,
		model:       model,
		rateLimiter: limiter,
	}
}

// SetDebug enables request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Ready reports whether a credential is configured.
func (c *Client) Ready() error {
	if c.apiKey == "" {
		return domain.ErrMissingAPIKey
	}
	return nil
}

// Complete sends a single chat completion request and returns the raw
// response text. One request per call: no retries, no streaming.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if err := c.Ready(); err != nil {
		return "", err
	}

	// Wait for rate limiter
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	if c.debug {
		log.Printf("[OPENAI] Sending completion request, model=%s, prompt length=%d", c.model, len(prompt))
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemMessage,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.2,
	})
	if err != nil {
		log.Printf("[OPENAI] Completion request failed: %v", err)
		return "", fmt.Errorf("%w: %v", domain.ErrAIServiceFailure, err)
	}

	if len(resp.Choices) == 0 {
		log.Printf("[OPENAI] Completion returned no choices")
		return "", fmt.Errorf("%w: no choices in response", domain.ErrAIServiceFailure)
	}

	content := resp.Choices[0].Message.Content
	if c.debug {
		log.Printf("[OPENAI] Received %d characters", len(content))
	}

	return content, nil
}
