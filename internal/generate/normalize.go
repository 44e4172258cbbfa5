// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

package generate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidResponse indicates the provider response was not valid JSON
// after fence stripping.
var ErrInvalidResponse = errors.New("response is not valid JSON")

// previewLimit caps how much of a bad response is embedded in an error.
const previewLimit = 200

// Normalize converts a raw provider response into a list of records.
//
// Markdown code fences are stripped first, then the text must parse as
// JSON; anything else fails with ErrInvalidResponse. The parsed value is
// then flattened to a list: an array is used as-is, an object contributes
// its first array-valued entry in document order (providers wrap arrays
// under arbitrary keys like "data" or "customers"), an object with no array
// becomes a single record, and a bare scalar is wrapped verbatim. Shape
// extraction never fails; structural problems are left to validation.
func Normalize(raw string) ([]any, error) {
	text := stripFences(raw)

	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, fmt.Errorf("%w: %v (response preview: %q)", ErrInvalidResponse, err, preview(text))
	}

	switch v := value.(type) {
	case []any:
		return v, nil
	case map[string]any:
		if list, ok := firstArrayValue(text); ok {
			return list, nil
		}
		return []any{v}, nil
	default:
		return []any{value}, nil
	}
}

// stripFences removes a markdown code fence wrapper, tolerating a language
// tag after the opening marker and a missing opening or closing fence.
func stripFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			text = text[i+1:]
		}
	}
	if strings.HasSuffix(text, "```") {
		text = text[:len(text)-3]
	}

	return strings.TrimSpace(text)
}

// firstArrayValue scans a JSON object in document order and returns the
// first value that is an array. Go maps lose key order, so this re-reads
// the text token by token.
func firstArrayValue(text string) ([]any, bool) {
	dec := json.NewDecoder(strings.NewReader(text))

	// Opening brace; the caller has already established this is an object.
	if _, err := dec.Token(); err != nil {
		return nil, false
	}

	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return nil, false
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, false
		}
		if startsWithArray(raw) {
			var list []any
			if err := json.Unmarshal(raw, &list); err != nil {
				return nil, false
			}
			return list, true
		}
	}
	return nil, false
}

func startsWithArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
		default:
			return b == '['
		}
	}
	return false
}

func preview(s string) string {
	if len(s) <= previewLimit {
		return s
	}
	return s[:previewLimit] + "..."
}
