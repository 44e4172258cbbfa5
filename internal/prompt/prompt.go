// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

// Package prompt builds generation prompts from context schemas.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/testcraft-ai/testdata-ai/internal/contexts"
)

// DefaultSystemPrompt is the system instruction sent with every generation
// request. It pushes providers toward returning a JSON array even for N=1.
const DefaultSystemPrompt = "You are a test data generator that returns JSON arrays. " +
	"When asked for N items, return an array with exactly N objects, never a single object."

// Build renders the user prompt for a schema and record count. It embeds the
// exact count, the schema hints verbatim, and the sample record as an
// indented JSON template. Pure function of its inputs; callers are expected
// to have rejected count < 1 already.
func Build(schema *contexts.Schema, count int) string {
	var hints strings.Builder
	for _, hint := range schema.Hints {
		hints.WriteString("- ")
		hints.WriteString(hint)
		hints.WriteString("\n")
	}

	// Sample values are plain maps, slices, and scalars, so this cannot fail.
	sample, _ := json.MarshalIndent(schema.Sample, "", "  ")

	return fmt.Sprintf(`Generate exactly %d realistic %s.

Return a JSON object with a "data" key containing an array of exactly %d objects. Example: {"data": [...]}

Requirements for realistic data:
%s
Each object in the array must follow this structure:
%s
`, count, schema.Description, count, hints.String(), sample)
}
