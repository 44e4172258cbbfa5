// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/testcraft-ai/testdata-ai/internal/contexts"
	"github.com/testcraft-ai/testdata-ai/internal/prompts"
	"gopkg.in/yaml.v3"
)

type showContextOptions struct {
	output string // output format: text, json, yaml
}

func newShowContextCmd() *cobra.Command {
	opts := &showContextOptions{}

	cmd := &cobra.Command{
		Use:   "show-context [CONTEXT_NAME]",
		Short: "Show details of a specific context",
		Long:  `Display a context's category, description, required fields, sample record, and prompt hints. If no context name is provided, an interactive selection prompt is shown.`,
		Example: `  # Interactive selection
  testdata-ai show-context

  # Human-readable details
  testdata-ai show-context banking_user

  # Details as JSON
  testdata-ai show-context banking_user -o json

  # Details as YAML
  testdata-ai show-context banking_user -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			var err error
			if len(args) > 0 {
				name = args[0]
			} else {
				name, err = prompts.SelectContext()
				if err != nil {
					return err
				}
			}
			return runShowContext(name, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runShowContext(name string, opts *showContextOptions) error {
	schema, err := contexts.Get(name)
	if err != nil {
		return err
	}

	switch opts.output {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(contextDetails(name, schema))

	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		return enc.Encode(contextDetails(name, schema))

	default:
		fmt.Printf("Context:     %s\n", name)
		fmt.Printf("Category:    %s\n", schema.Category)
		fmt.Printf("Description: %s\n", schema.Description)
		fmt.Println()

		fmt.Println("Fields:")
		for _, field := range schema.Fields() {
			fmt.Printf("  - %s\n", field)
		}
		fmt.Println()

		sample, err := json.MarshalIndent(schema.Sample, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println("Sample record:")
		fmt.Println(string(sample))
		fmt.Println()

		fmt.Println("Prompt hints:")
		for _, hint := range schema.Hints {
			fmt.Printf("  - %s\n", hint)
		}
		return nil
	}
}

func contextDetails(name string, schema *contexts.Schema) map[string]any {
	return map[string]any{
		"name":        name,
		"category":    schema.Category,
		"description": schema.Description,
		"fields":      schema.Fields(),
		"sample":      schema.Sample,
		"hints":       schema.Hints,
	}
}
