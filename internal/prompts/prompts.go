// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

// Package prompts provides interactive terminal prompts for CLI commands.
package prompts

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme returns the shared huh theme used across all CLI forms.
func Theme() *huh.Theme {
	theme := huh.ThemeBase16()
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n").MarginBottom(1)
	theme.Form.Base = theme.Form.Base.MarginTop(1)
	theme.Group.Base = theme.Group.Base.MarginTop(1)
	theme.Focused.Title = theme.Focused.Title.Foreground(lipgloss.Color("#f9ca24"))
	theme.Blurred.Title = theme.Blurred.Title.Foreground(lipgloss.Color("#bababa"))
	return theme
}

// Styles for status output on stderr.
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9ca24"))
	LabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
)

// ResultField is a label-value pair for PrintResult.
type ResultField struct {
	Label string
	Value string
}

// PrintResult prints a styled summary with green checkmarks and gray labels.
func PrintResult(fields []ResultField, successMsg string) {
	writeResult(os.Stdout, fields, successMsg)
}

func writeResult(w io.Writer, fields []ResultField, successMsg string) {
	check := SuccessStyle.Render("✓")

	fmt.Fprintln(w)
	for _, f := range fields {
		fmt.Fprintf(w, "%s %s %s\n", check, LabelStyle.Render(f.Label+":"), f.Value)
	}

	if successMsg != "" {
		fmt.Fprintln(w, SuccessStyle.Render("\n"+successMsg))
	}
}
