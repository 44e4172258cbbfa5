// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

package prompt

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcraft-ai/testdata-ai/internal/contexts"
)

func TestBuild_EmbedsCountDescriptionAndHints(t *testing.T) {
	schema, err := contexts.Get("banking_user")
	require.NoError(t, err)

	p := Build(schema, 7)

	assert.Contains(t, p, "Generate exactly 7 realistic banking customer profiles.")
	assert.Contains(t, p, `array of exactly 7 objects`)
	assert.Contains(t, p, `"data"`)
	for _, hint := range schema.Hints {
		assert.Contains(t, p, "- "+hint)
	}
}

func TestBuild_EmbedsSampleStructure(t *testing.T) {
	schema, err := contexts.Get("ecommerce_customer")
	require.NoError(t, err)

	p := Build(schema, 3)

	// Top-level and nested sample keys appear as a JSON template.
	assert.Contains(t, p, `"shopping_behavior"`)
	assert.Contains(t, p, `"payment_method": "upi"`)
	assert.Contains(t, p, `"preferred_categories"`)
}

func TestBuild_Deterministic(t *testing.T) {
	schema, err := contexts.Get("iot_device")
	require.NoError(t, err)

	assert.Equal(t, Build(schema, 5), Build(schema, 5))
}

func TestBuild_AllContexts(t *testing.T) {
	for _, name := range contexts.List("") {
		t.Run(name, func(t *testing.T) {
			schema, err := contexts.Get(name)
			require.NoError(t, err)

			p := Build(schema, 2)
			assert.Contains(t, p, fmt.Sprintf("Generate exactly 2 realistic %s.", schema.Description))
		})
	}
}
