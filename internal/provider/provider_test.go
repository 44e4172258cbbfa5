// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settings(name, baseURL string) Settings {
	return Settings{
		Provider:    name,
		APIKey:      "test-key",
		Model:       "test-model",
		Temperature: 0.7,
		MaxTokens:   2000,
		BaseURL:     baseURL,
	}
}

func TestNew_SupportedProviders(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			client, err := New(settings(name, ""))
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestNew_Unsupported(t *testing.T) {
	_, err := New(settings("gemini", ""))
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, err.Error(), "openai")
	assert.Contains(t, err.Error(), "anthropic")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"anthropic", "openai"}, Names())
}

func TestOpenAI_Generate(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, "/chat/completions", r.URL.Path)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"[{\"a\":1}]"}}]}`))
	}))
	defer srv.Close()

	client, err := New(settings("openai", srv.URL))
	require.NoError(t, err)

	text, err := client.Generate(context.Background(), "the prompt", "the system prompt")
	require.NoError(t, err)

	assert.Equal(t, `[{"a":1}]`, text)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotBody["model"])
	assert.Equal(t, map[string]any{"type": "json_object"}, gotBody["response_format"])

	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, map[string]any{"role": "system", "content": "the system prompt"}, messages[0])
	assert.Equal(t, map[string]any{"role": "user", "content": "the prompt"}, messages[1])
}

func TestOpenAI_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":""}}]}`))
	}))
	defer srv.Close()

	client, err := New(settings("openai", srv.URL))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "p", "s")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestOpenAI_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	client, err := New(settings("openai", srv.URL))
	require.NoError(t, err)

	text, err := client.Generate(context.Background(), "p", "s")
	require.NoError(t, err)

	assert.Equal(t, "ok", text)
	assert.Equal(t, int32(3), calls.Load())
}

func TestOpenAI_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer srv.Close()

	client, err := New(settings("openai", srv.URL))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "p", "s")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "HTTP 401")
	assert.Equal(t, int32(1), calls.Load())
}

func TestOpenAI_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server detects the client disconnect and
		// cancels the request context; otherwise srv.Close deadlocks.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	client, err := New(settings("openai", srv.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.Generate(ctx, "p", "s")
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrTimeout)
	assert.Contains(t, err.Error(), "test-model")
}

func TestAnthropic_Generate(t *testing.T) {
	var gotKey, gotVersion string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, "/messages", r.URL.Path)

		_, _ = w.Write([]byte(`{"content":[{"text":"[{\"b\":2}]"}]}`))
	}))
	defer srv.Close()

	client, err := New(settings("anthropic", srv.URL))
	require.NoError(t, err)

	text, err := client.Generate(context.Background(), "the prompt", "the system prompt")
	require.NoError(t, err)

	assert.Equal(t, `[{"b":2}]`, text)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, anthropicVersion, gotVersion)
	assert.Equal(t, "the system prompt", gotBody["system"])
	assert.EqualValues(t, 2000, gotBody["max_tokens"])
}

func TestAnthropic_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()

	client, err := New(settings("anthropic", srv.URL))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "p", "s")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestAnthropic_RateLimitExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := New(settings("anthropic", srv.URL))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "p", "s")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "HTTP 429")
	assert.Equal(t, int32(maxAttempts), calls.Load())
}
