// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

// Package logging constructs the slog loggers used across the CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Config holds logger construction options.
type Config struct {
	// Level is the minimum level to output.
	Level slog.Level

	// Output is the writer to send logs to. Defaults to os.Stderr.
	Output io.Writer
}

// New creates a text-format slog.Logger with the given configuration.
func New(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	return slog.New(slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{Level: cfg.Level}))
}

// Nop returns a logger that discards all output. Use when a logger is
// required but logging is disabled, e.g. in quiet mode.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel parses a log level string ("debug", "info", "warn", "error").
// Unrecognized values fall back to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug", "DEBUG":
		return slog.LevelDebug
	case "warn", "WARN", "warning":
		return slog.LevelWarn
	case "error", "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
