// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/testcraft-ai/testdata-ai/internal/contexts"
)

type listContextsOptions struct {
	category string
}

func newListContextsCmd() *cobra.Command {
	opts := &listContextsOptions{}

	cmd := &cobra.Command{
		Use:   "list-contexts",
		Short: "List all available data contexts",
		Long: `List the built-in contexts available for generation.
Displays context names, categories, and descriptions.`,
		Example: `  # List every context
  testdata-ai list-contexts

  # Only finance contexts
  testdata-ai list-contexts --category finance`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListContexts(opts)
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", "", "Filter by category")

	return cmd
}

func runListContexts(opts *listContextsOptions) error {
	names := contexts.List(opts.category)
	if len(names) == 0 {
		fmt.Println("No contexts found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CONTEXT\tCATEGORY\tDESCRIPTION")

	for _, name := range names {
		schema, err := contexts.Get(name)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", name, schema.Category, schema.Description)
	}

	return w.Flush()
}
