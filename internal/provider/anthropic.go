// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	anthropicBaseURL = "https://api.anthropic.com/v1"
	anthropicVersion = "2023-06-01"
)

// anthropic calls the Anthropic messages API.
type anthropic struct {
	settings Settings
	baseURL  string
	client   *http.Client
}

func newAnthropic(settings Settings) Client {
	baseURL := settings.BaseURL
	if baseURL == "" {
		baseURL = anthropicBaseURL
	}
	return &anthropic{settings: settings, baseURL: baseURL, client: newHTTPClient()}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (c *anthropic) Generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	req := anthropicRequest{
		Model:       c.settings.Model,
		MaxTokens:   c.settings.MaxTokens,
		Temperature: c.settings.Temperature,
		System:      systemPrompt,
		Messages:    []anthropicMessage{{Role: "user", Content: prompt}},
	}

	headers := map[string]string{
		"x-api-key":         c.settings.APIKey,
		"anthropic-version": anthropicVersion,
	}
	body, err := postJSON(ctx, c.client, c.baseURL+"/messages", headers, req)
	if err != nil {
		if errors.Is(err, ErrTimeout) {
			return "", fmt.Errorf("%w: Anthropic did not respond (%s); try reducing --count or using a faster model",
				ErrTimeout, c.settings.Model)
		}
		return "", fmt.Errorf("Anthropic request failed: %w", err)
	}

	var resp anthropicResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decoding Anthropic response: %w", err)
	}
	if len(resp.Content) == 0 || resp.Content[0].Text == "" {
		return "", fmt.Errorf("%w: Anthropic returned no content", ErrEmptyResponse)
	}
	return resp.Content[0].Text, nil
}
