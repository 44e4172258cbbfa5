// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

// Package provider implements AI backend clients for text generation.
//
// A Client is selected by name through New. Each backend wraps its HTTP API
// with a generous timeout and bounded retries; callers see a uniform
// Generate method and a small set of distinguishable errors.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

var (
	// ErrUnsupported indicates a provider name with no registered backend.
	ErrUnsupported = errors.New("unsupported provider")

	// ErrTimeout indicates the provider did not answer within the request timeout.
	ErrTimeout = errors.New("request timed out")

	// ErrEmptyResponse indicates the provider answered without usable content,
	// typically because of a content filter.
	ErrEmptyResponse = errors.New("empty response")
)

// DefaultTimeout bounds a single generation request, including retries of
// the underlying HTTP call.
const DefaultTimeout = 120 * time.Second

// maxAttempts is the total number of HTTP attempts per generation request.
const maxAttempts = 3

// Settings configures a provider client.
type Settings struct {
	// Provider is the backend name, e.g. "openai" or "anthropic".
	Provider string
	// APIKey authenticates against the backend.
	APIKey string
	// Model is the backend model identifier.
	Model string
	// Temperature is the sampling temperature, 0.0-1.0.
	Temperature float64
	// MaxTokens caps the response length.
	MaxTokens int
	// BaseURL overrides the backend endpoint. Empty means the real API;
	// tests point it at a local server.
	BaseURL string
}

// Client generates text from a prompt. Implementations are safe for
// concurrent use.
type Client interface {
	// Generate sends the prompt with the given system instructions and
	// returns the raw response text.
	Generate(ctx context.Context, prompt, systemPrompt string) (string, error)
}

var backends = map[string]func(Settings) Client{
	"openai":    newOpenAI,
	"anthropic": newAnthropic,
}

// Names returns the supported provider names, sorted.
func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates a client for the configured provider.
func New(settings Settings) (Client, error) {
	build, ok := backends[settings.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)",
			ErrUnsupported, settings.Provider, strings.Join(Names(), ", "))
	}
	return build(settings), nil
}

// newHTTPClient returns the http.Client shared by all backends.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}

// postJSON sends a JSON POST and returns the response body. Transport
// errors, 429s, and 5xx responses are retried with a short backoff; other
// non-2xx statuses fail immediately with the response body in the error.
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt-1) * 500 * time.Millisecond):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := client.Do(req)
		if err != nil {
			if isTimeout(err) {
				return nil, ErrTimeout
			}
			lastErr = err
			continue
		}

		respBody, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			continue
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return respBody, nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = fmt.Errorf("HTTP %d: %s", resp.StatusCode, truncate(string(respBody), 200))
			continue
		default:
			return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, truncate(string(respBody), 200))
		}
	}
	return nil, lastErr
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
