// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

// Package generate orchestrates AI-backed test data generation: it builds a
// prompt for a context schema, calls the configured provider, normalizes
// the raw response into records, and validates them against the schema.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/testcraft-ai/testdata-ai/internal/config"
	"github.com/testcraft-ai/testdata-ai/internal/contexts"
	"github.com/testcraft-ai/testdata-ai/internal/logging"
	"github.com/testcraft-ai/testdata-ai/internal/prompt"
	"github.com/testcraft-ai/testdata-ai/internal/provider"
)

// ErrInvalidCount indicates a requested record count below 1.
var ErrInvalidCount = errors.New("count must be >= 1")

// largeCountThreshold is where single responses start to hit token limits.
const largeCountThreshold = 50

// ValidationError reports generated records that are missing required
// fields. It carries the full issue list so callers can decide whether to
// re-request or accept partial data with validation disabled.
type ValidationError struct {
	Issues []contexts.Issue
}

func (e *ValidationError) Error() string {
	details := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		details[i] = fmt.Sprintf("record %d missing %s",
			issue.RecordIndex, strings.Join(issue.MissingFields, ", "))
	}
	return fmt.Sprintf("%d of the generated records failed schema validation: %s",
		len(e.Issues), strings.Join(details, "; "))
}

// Generator produces test data records through an AI provider. It holds no
// state between calls beyond its configuration and is safe for concurrent
// use.
type Generator struct {
	settings config.Settings
	client   provider.Client
	log      *slog.Logger
}

// New builds a Generator for the resolved settings.
func New(settings config.Settings, log *slog.Logger) (*Generator, error) {
	client, err := provider.New(provider.Settings{
		Provider:    settings.Provider,
		APIKey:      settings.APIKey,
		Model:       settings.Model,
		Temperature: settings.Temperature,
		MaxTokens:   settings.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	return NewWithClient(settings, client, log), nil
}

// NewWithClient builds a Generator around an existing provider client.
func NewWithClient(settings config.Settings, client provider.Client, log *slog.Logger) *Generator {
	if log == nil {
		log = logging.Nop()
	}
	return &Generator{settings: settings, client: client, log: log}
}

// Settings returns the generator's resolved configuration.
func (g *Generator) Settings() config.Settings {
	return g.settings
}

// Generate produces count records for the named context.
//
// Receiving a different number of records than requested is expected from
// generative providers and only logged as a warning; callers can re-request.
// When validate is true, any record missing required fields fails the whole
// call with a *ValidationError.
func (g *Generator) Generate(ctx context.Context, contextName string, count int, validate bool) ([]any, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCount, count)
	}
	if count > largeCountThreshold {
		g.log.Warn("large count may exceed token limits, consider smaller batches", "count", count)
	}

	schema, err := contexts.Get(contextName)
	if err != nil {
		return nil, err
	}

	g.log.Info("generating records",
		"context", contextName,
		"count", count,
		"provider", g.settings.Provider,
		"model", g.settings.Model)

	raw, err := g.client.Generate(ctx, prompt.Build(schema, count), prompt.DefaultSystemPrompt)
	if err != nil {
		return nil, err
	}

	records, err := Normalize(raw)
	if err != nil {
		g.log.Error("failed to parse provider response", "error", err)
		return nil, err
	}

	if len(records) != count {
		g.log.Warn("record count mismatch", "requested", count, "received", len(records))
	}

	if validate {
		if issues := contexts.Validate(schema, records); len(issues) > 0 {
			return nil, &ValidationError{Issues: issues}
		}
	}
	return records, nil
}
