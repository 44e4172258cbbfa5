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

const openAIBaseURL = "https://api.openai.com/v1"

// openAI calls the OpenAI chat completions API. JSON object mode is always
// requested so responses stay machine-parseable.
type openAI struct {
	settings Settings
	baseURL  string
	client   *http.Client
}

func newOpenAI(settings Settings) Client {
	baseURL := settings.BaseURL
	if baseURL == "" {
		baseURL = openAIBaseURL
	}
	return &openAI{settings: settings, baseURL: baseURL, client: newHTTPClient()}
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model          string          `json:"model"`
	Messages       []openAIMessage `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *openAI) Generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	req := openAIRequest{
		Model:       c.settings.Model,
		Temperature: c.settings.Temperature,
		MaxTokens:   c.settings.MaxTokens,
	}
	req.ResponseFormat.Type = "json_object"
	if systemPrompt != "" {
		req.Messages = append(req.Messages, openAIMessage{Role: "system", Content: systemPrompt})
	}
	req.Messages = append(req.Messages, openAIMessage{Role: "user", Content: prompt})

	headers := map[string]string{"Authorization": "Bearer " + c.settings.APIKey}
	body, err := postJSON(ctx, c.client, c.baseURL+"/chat/completions", headers, req)
	if err != nil {
		if errors.Is(err, ErrTimeout) {
			return "", fmt.Errorf("%w: OpenAI did not respond (%s); try reducing --count or using a faster model like gpt-4o-mini",
				ErrTimeout, c.settings.Model)
		}
		return "", fmt.Errorf("OpenAI request failed: %w", err)
	}

	var resp openAIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decoding OpenAI response: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: OpenAI returned no content (possible content filter)", ErrEmptyResponse)
	}
	return resp.Choices[0].Message.Content, nil
}
