// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

// Package config resolves AI provider settings.
//
// Precedence, highest first: command-line overrides, environment variables
// (a .env file in the working directory is loaded into the environment
// first), an optional testdata-ai.yaml project file, built-in defaults.
// API keys are only ever read from the environment, never from the file.
package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the optional project configuration file.
const FileName = "testdata-ai.yaml"

// Defaults applied when neither flags, environment, nor file say otherwise.
const (
	DefaultProvider    = "openai"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000
)

// DefaultModels maps each supported provider to its default model.
var DefaultModels = map[string]string{
	"openai":    "gpt-4o-mini",
	"anthropic": "claude-haiku-4-5-20251001",
}

// Settings is a fully resolved provider configuration.
type Settings struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// Validate checks the resolved values for valid ranges.
func (s *Settings) Validate() error {
	if s.Temperature < 0.0 || s.Temperature > 1.0 {
		return fmt.Errorf("temperature must be 0.0-1.0, got %g", s.Temperature)
	}
	if s.MaxTokens < 1 {
		return fmt.Errorf("max tokens must be >= 1, got %d", s.MaxTokens)
	}
	return nil
}

// Overrides carries command-line values that take precedence over the
// environment and the project file. Zero values mean "not set".
type Overrides struct {
	Provider    string
	Model       string
	Temperature *float64
	MaxTokens   *int
}

// File is the optional testdata-ai.yaml project configuration.
type File struct {
	Provider    string   `yaml:"provider,omitempty"`
	Model       string   `yaml:"model,omitempty"`
	Temperature *float64 `yaml:"temperature,omitempty"`
	MaxTokens   *int     `yaml:"max_tokens,omitempty"`
}

// LoadFile reads a File from a path.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg File
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve builds Settings from overrides, the environment, and the optional
// project file in the current directory. The error for a missing API key
// names the exact environment variable to set.
func Resolve(ov Overrides, getenv func(string) string) (Settings, error) {
	// Populate the environment from a .env file if one exists.
	_ = godotenv.Load()

	file := &File{}
	if loaded, err := LoadFile(FileName); err == nil {
		file = loaded
	} else if !os.IsNotExist(err) {
		return Settings{}, err
	}

	provider := strings.ToLower(firstNonEmpty(ov.Provider, getenv("AI_PROVIDER"), file.Provider, DefaultProvider))
	if _, ok := DefaultModels[provider]; !ok {
		supported := make([]string, 0, len(DefaultModels))
		for name := range DefaultModels {
			supported = append(supported, name)
		}
		sort.Strings(supported)
		return Settings{}, fmt.Errorf("unsupported AI provider: %q (supported: %s)",
			provider, strings.Join(supported, ", "))
	}

	prefix := strings.ToUpper(provider)

	apiKey := strings.TrimSpace(getenv(prefix + "_API_KEY"))
	if apiKey == "" {
		return Settings{}, fmt.Errorf("%s API key not found: set %s_API_KEY in the environment or a .env file",
			prefix, prefix)
	}

	settings := Settings{
		Provider:    provider,
		APIKey:      apiKey,
		Model:       firstNonEmpty(ov.Model, getenv(prefix+"_MODEL"), file.Model, DefaultModels[provider]),
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}

	if file.Temperature != nil {
		settings.Temperature = *file.Temperature
	}
	if raw := getenv(prefix + "_TEMPERATURE"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s_TEMPERATURE %q: %w", prefix, raw, err)
		}
		settings.Temperature = v
	}
	if ov.Temperature != nil {
		settings.Temperature = *ov.Temperature
	}

	if file.MaxTokens != nil {
		settings.MaxTokens = *file.MaxTokens
	}
	if raw := getenv(prefix + "_MAX_TOKENS"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s_MAX_TOKENS %q: %w", prefix, raw, err)
		}
		settings.MaxTokens = v
	}
	if ov.MaxTokens != nil {
		settings.MaxTokens = *ov.MaxTokens
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
