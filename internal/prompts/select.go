// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/testcraft-ai/testdata-ai/internal/contexts"
)

// SelectContext runs an interactive picker over the registered contexts.
func SelectContext() (string, error) {
	names := contexts.List("")

	options := make([]huh.Option[string], 0, len(names))
	for _, name := range names {
		schema, err := contexts.Get(name)
		if err != nil {
			return "", err
		}
		label := fmt.Sprintf("%s - %s", name, schema.Description)
		options = append(options, huh.NewOption(label, name))
	}

	var selected string
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select context").
				Options(options...).
				Filtering(true).
				Value(&selected).
				Height(10),
		),
	).WithTheme(Theme()).Run(); err != nil {
		return "", err
	}

	return selected, nil
}

// TokenChoice is the user's decision when the estimated token budget
// exceeds the configured maximum.
type TokenChoice string

// Token budget decisions.
const (
	TokenIncrease TokenChoice = "increase"
	TokenContinue TokenChoice = "continue"
	TokenCancel   TokenChoice = "cancel"
)

// SelectTokenBudget asks how to proceed when a generation request is
// estimated to need more tokens than the configured maximum.
func SelectTokenBudget(estimated, current int) (TokenChoice, error) {
	choice := TokenIncrease
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[TokenChoice]().
				Title(fmt.Sprintf("Estimated tokens needed: ~%d (current max tokens: %d)", estimated, current)).
				Options(
					huh.NewOption(fmt.Sprintf("Increase max tokens to %d", estimated), TokenIncrease),
					huh.NewOption("Continue with current limit", TokenContinue),
					huh.NewOption("Cancel", TokenCancel),
				).
				Value(&choice),
		),
	).WithTheme(Theme()).Run(); err != nil {
		return TokenCancel, err
	}
	return choice, nil
}
