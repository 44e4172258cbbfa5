// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

package generate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_FencedJSON(t *testing.T) {
	records, err := Normalize(" ```json\n{\"data\":[{\"a\":1}]}\n``` ")
	require.NoError(t, err)

	assert.Equal(t, []any{map[string]any{"a": float64(1)}}, records)
}

func TestNormalize_FenceVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "uppercase language tag", raw: "```JSON\n[{\"a\":1}]\n```"},
		{name: "no language tag", raw: "```\n[{\"a\":1}]\n```"},
		{name: "missing closing fence", raw: "```json\n[{\"a\":1}]"},
		{name: "missing opening fence", raw: "[{\"a\":1}]\n```"},
		{name: "no fences at all", raw: "  [{\"a\":1}]  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, []any{map[string]any{"a": float64(1)}}, records)
		})
	}
}

func TestStripFences_NoFencesUnchanged(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("  {\"a\":1}\n"))
}

func TestNormalize_BareArray(t *testing.T) {
	records, err := Normalize(`[{"name":"A"},{"name":"B"}]`)
	require.NoError(t, err)

	assert.Equal(t, []any{
		map[string]any{"name": "A"},
		map[string]any{"name": "B"},
	}, records)
}

func TestNormalize_WrappedArrayArbitraryKey(t *testing.T) {
	records, err := Normalize(`{"customers":[{"name":"A"}]}`)
	require.NoError(t, err)

	assert.Equal(t, []any{map[string]any{"name": "A"}}, records)
}

func TestNormalize_FirstArrayInDocumentOrderWins(t *testing.T) {
	records, err := Normalize(`{"zz_meta":{"note":"x"},"second":[{"b":2}],"first_seen":[{"a":1}]}`)
	require.NoError(t, err)

	// Document order decides, not key name order.
	assert.Equal(t, []any{map[string]any{"b": float64(2)}}, records)
}

func TestNormalize_ObjectWithoutArrayBecomesSingleRecord(t *testing.T) {
	records, err := Normalize(`{"name":"Solo"}`)
	require.NoError(t, err)

	assert.Equal(t, []any{map[string]any{"name": "Solo"}}, records)
}

func TestNormalize_BareScalarIsWrapped(t *testing.T) {
	records, err := Normalize(`"hello"`)
	require.NoError(t, err)

	assert.Equal(t, []any{"hello"}, records)
}

func TestNormalize_InvalidJSON(t *testing.T) {
	_, err := Normalize("not json at all")
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "not json at all")
}

func TestNormalize_InvalidJSONPreviewIsCapped(t *testing.T) {
	long := "garbage " + strings.Repeat("x", 5000)

	_, err := Normalize(long)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Less(t, len(err.Error()), 400)
}
