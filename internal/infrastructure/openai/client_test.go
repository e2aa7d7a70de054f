package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsage/backend/internal/domain"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-api-key", "", "gpt-4o-mini", 60)

	assert.NotNil(t, client)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "gpt-4o-mini", client.model)
	assert.NotNil(t, client.rateLimiter)
	assert.False(t, client.debug)
}

func TestSetDebug(t *testing.T) {
	client := NewClient("test-api-key", "", "gpt-4o-mini", 60)

	assert.False(t, client.debug)

	client.SetDebug(true)
	assert.True(t, client.debug)

	client.SetDebug(false)
	assert.False(t, client.debug)
}

func TestReady(t *testing.T) {
	t.Run("with key", func(t *testing.T) {
		client := NewClient("test-api-key", "", "gpt-4o-mini", 60)
		assert.NoError(t, client.Ready())
	})

	t.Run("without key", func(t *testing.T) {
		client := NewClient("", "", "gpt-4o-mini", 60)
		assert.ErrorIs(t, client.Ready(), domain.ErrMissingAPIKey)
	})
}

func chatCompletionBody(content string) map[string]interface{} {
	return map[string]interface{}{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "gpt-4o-mini",
		"choices": []map[string]interface{}{
			{
				"index": 0,
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
	}
}

func TestComplete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req["model"])

		messages := req["messages"].([]interface{})
		require.Len(t, messages, 2)
		user := messages[1].(map[string]interface{})
		assert.Equal(t, "user", user["role"])
		assert.Equal(t, "recommend a lamp", user["content"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletionBody(`[{"product_name":"X","brand":"Y","reason":"Z"}]`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL+"/v1", "gpt-4o-mini", 600)
	ctx := context.Background()

	raw, err := client.Complete(ctx, "recommend a lamp")

	require.NoError(t, err)
	assert.Equal(t, `[{"product_name":"X","brand":"Y","reason":"Z"}]`, raw)
}

func TestComplete_MissingKey(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient("", server.URL+"/v1", "gpt-4o-mini", 600)

	_, err := client.Complete(context.Background(), "prompt")

	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
	assert.False(t, called, "no request must be issued without a credential")
}

func TestComplete_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL+"/v1", "gpt-4o-mini", 600)

	_, err := client.Complete(context.Background(), "prompt")

	assert.ErrorIs(t, err, domain.ErrAIServiceFailure)
}

func TestComplete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"chatcmpl-test","object":"chat.completion","choices":[]}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL+"/v1", "gpt-4o-mini", 600)

	_, err := client.Complete(context.Background(), "prompt")

	assert.ErrorIs(t, err, domain.ErrAIServiceFailure)
}

func TestComplete_SingleRequestPerCall(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL+"/v1", "gpt-4o-mini", 600)

	_, err := client.Complete(context.Background(), "prompt")

	assert.Error(t, err)
	assert.Equal(t, 1, requests, "failures must not be retried")
}
