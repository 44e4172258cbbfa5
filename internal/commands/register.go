// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/testcraft-ai/testdata-ai/internal/version"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "testdata-ai",
		Version: version.Short(),
		Short:   "AI-powered test data generator for QA engineers",
		Long: `Generate realistic, structured test data with AI providers.

Pick a built-in context (e.g. ecommerce_customer, banking_user), request a
record count, and receive schema-validated JSON or CSV.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newListContextsCmd())
	rootCmd.AddCommand(newShowContextCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
