// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/testcraft-ai/testdata-ai/internal/config"
	"github.com/testcraft-ai/testdata-ai/internal/contexts"
	"github.com/testcraft-ai/testdata-ai/internal/generate"
	"github.com/testcraft-ai/testdata-ai/internal/logging"
	"github.com/testcraft-ai/testdata-ai/internal/output"
	"github.com/testcraft-ai/testdata-ai/internal/prompts"
	"github.com/testcraft-ai/testdata-ai/internal/spinner"
)

type generateOptions struct {
	context     string
	count       int
	output      string // output file path, empty for stdout
	format      string // output format: json, csv
	provider    string
	model       string
	maxTokens   int
	temperature float64
	noValidate  bool
	quiet       bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate realistic test data using AI",
		Long: `Generate test data records for a built-in context.
The provider, model, and sampling settings are resolved from flags,
environment variables (including a .env file), and an optional
testdata-ai.yaml project file, in that order.`,
		Example: `  # 10 e-commerce customers as JSON on stdout
  testdata-ai generate --context ecommerce_customer

  # 25 banking users as CSV, written to a file
  testdata-ai generate --context banking_user --count 25 -f csv -o users.csv

  # Use Anthropic with a custom model
  testdata-ai generate --context saas_trial --provider anthropic --model claude-haiku-4-5-20251001`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.context, "context", "", "Context name (see list-contexts)")
	cmd.Flags().IntVar(&opts.count, "count", 10, "Number of records to generate")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file path (defaults to stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format (json, csv)")
	cmd.Flags().StringVar(&opts.provider, "provider", "", "AI provider (overrides AI_PROVIDER)")
	cmd.Flags().StringVar(&opts.model, "model", "", "Model name (overrides the provider default)")
	cmd.Flags().IntVar(&opts.maxTokens, "max-tokens", 0, "Max tokens for the AI response (increase if you get fewer records than expected)")
	cmd.Flags().Float64Var(&opts.temperature, "temperature", 0, "Sampling temperature 0.0-1.0 (higher = more creative)")
	cmd.Flags().BoolVar(&opts.noValidate, "no-validate", false, "Skip schema validation of generated data")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress status messages (only output data)")
	_ = cmd.MarkFlagRequired("context")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	format, err := output.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	ov := config.Overrides{Provider: opts.provider, Model: opts.model}
	if cmd.Flags().Changed("max-tokens") {
		ov.MaxTokens = &opts.maxTokens
	}
	if cmd.Flags().Changed("temperature") {
		ov.Temperature = &opts.temperature
	}
	settings, err := config.Resolve(ov, os.Getenv)
	if err != nil {
		return err
	}

	schema, err := contexts.Get(opts.context)
	if err != nil {
		return err
	}

	settings.MaxTokens, err = adjustMaxTokens(schema, opts.count, settings.MaxTokens, opts.quiet)
	if err != nil {
		return err
	}

	log := logging.New(logging.Config{Level: slog.LevelWarn})
	if opts.quiet {
		log = logging.Nop()
	}

	gen, err := generate.New(settings, log)
	if err != nil {
		return err
	}

	var sp *spinner.Spinner
	if !opts.quiet {
		label := fmt.Sprintf("Generating %d %s records (%s/%s)",
			opts.count, opts.context, settings.Provider, settings.Model)
		sp = spinner.New(label, os.Stderr)
		sp.Start()
	}
	records, err := gen.Generate(cmd.Context(), opts.context, opts.count, !opts.noValidate)
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return err
	}

	reportGeneration(len(records), opts.count, settings.MaxTokens, opts.quiet)

	text, err := output.Render(records, format)
	if err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(text), 0o600); err != nil {
		return err
	}
	if !opts.quiet {
		fmt.Fprintln(os.Stderr, prompts.SuccessStyle.Render("Saved to "+opts.output))
	}
	return nil
}

// adjustMaxTokens estimates the token budget a request needs from the size
// of the sample record. When the estimate exceeds the configured maximum,
// quiet mode raises the limit automatically and interactive mode asks.
func adjustMaxTokens(schema *contexts.Schema, count, current int, quiet bool) (int, error) {
	sample, err := json.Marshal(schema.Sample)
	if err != nil {
		return 0, err
	}
	estimated := int(float64(len(sample)/3*count) * 1.3)
	if estimated <= current {
		return current, nil
	}

	if quiet {
		return estimated, nil
	}

	choice, err := prompts.SelectTokenBudget(estimated, current)
	if err != nil {
		return 0, err
	}
	switch choice {
	case prompts.TokenIncrease:
		fmt.Fprintln(os.Stderr, prompts.SuccessStyle.Render(fmt.Sprintf("max tokens set to %d", estimated)))
		return estimated, nil
	case prompts.TokenContinue:
		return current, nil
	default:
		return 0, errors.New("cancelled")
	}
}

func reportGeneration(received, requested, maxTokens int, quiet bool) {
	if quiet {
		return
	}
	if received < requested {
		msg := fmt.Sprintf("Warning: requested %d records but received %d. Try increasing with --max-tokens %d",
			requested, received, maxTokens*2)
		fmt.Fprintln(os.Stderr, prompts.WarningStyle.Render(msg))
		return
	}
	fmt.Fprintln(os.Stderr, prompts.SuccessStyle.Render(fmt.Sprintf("Generated %d records.", received)))
}
