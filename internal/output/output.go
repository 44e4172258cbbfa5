// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

// Package output serializes generated records to JSON or CSV.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Format is a supported output format.
type Format string

// Supported output formats.
const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported output format %q (supported: json, csv)", s)
	}
}

// Render serializes records in the given format.
func Render(records []any, format Format) (string, error) {
	if format == FormatCSV {
		return renderCSV(records)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// renderCSV flattens nested maps into dot-joined columns and serializes
// list values as embedded JSON strings. The column set is the union of keys
// across all flattened records in first-seen order; missing cells are empty.
func renderCSV(records []any) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	flat := make([]map[string]string, len(records))
	for i, record := range records {
		obj, ok := record.(map[string]any)
		if !ok {
			return "", fmt.Errorf("record %d is not an object, cannot render as CSV", i)
		}
		row, err := Flatten(obj)
		if err != nil {
			return "", err
		}
		flat[i] = row
	}

	var columns []string
	seen := make(map[string]bool)
	for _, row := range flat {
		for _, key := range sortedKeys(row) {
			if !seen[key] {
				columns = append(columns, key)
				seen[key] = true
			}
		}
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return "", err
	}
	cells := make([]string, len(columns))
	for _, row := range flat {
		for i, col := range columns {
			cells[i] = row[col]
		}
		if err := w.Write(cells); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

// Flatten converts a nested record into a single-level map with dot-joined
// keys: {"a": {"b": 1}} becomes {"a.b": "1"}. Lists are kept whole as
// embedded JSON strings.
func Flatten(record map[string]any) (map[string]string, error) {
	out := make(map[string]string)
	if err := flattenInto(out, "", record); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenInto(out map[string]string, prefix string, obj map[string]any) error {
	for _, key := range sortedAnyKeys(obj) {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		switch v := obj[key].(type) {
		case map[string]any:
			if err := flattenInto(out, name, v); err != nil {
				return err
			}
		case []any:
			embedded, err := json.Marshal(v)
			if err != nil {
				return err
			}
			out[name] = string(embedded)
		case nil:
			out[name] = ""
		default:
			out[name] = fmt.Sprintf("%v", v)
		}
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedAnyKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
