// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

package commands

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/testcraft-ai/testdata-ai/internal/prompts"
	"github.com/testcraft-ai/testdata-ai/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Example: `  # Show the CLI version
  testdata-ai version`,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompts.PrintResult(versionFields(), "")
			return nil
		},
	}
}

func versionFields() []prompts.ResultField {
	return []prompts.ResultField{
		{Label: "Version", Value: version.Short()},
		{Label: "Commit", Value: version.Commit},
		{Label: "Built", Value: version.Date},
		{Label: "Go", Value: runtime.Version()},
	}
}
