// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

// Package contexts defines the built-in context schemas for test data
// generation and validates generated records against them.
//
// Each context defines a description and category, a sample record used as
// the structural template in prompts, and hints that steer the model toward
// realistic values. Required fields are derived from the top-level keys of
// the sample so there is a single source of truth for the record structure.
package contexts

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownContext indicates a context name that is not in the registry.
var ErrUnknownContext = errors.New("unknown context")

// Schema is the definition of a test data context.
type Schema struct {
	// Description is a short human-readable phrase, e.g. "banking customer profiles".
	Description string
	// Category groups related contexts, e.g. "finance".
	Category string
	// Sample is the example record embedded in prompts. Values may be
	// nested maps and lists.
	Sample map[string]any
	// Hints are requirements for realistic data, included verbatim in prompts.
	Hints []string
}

// Fields returns the required field names, derived from the top-level keys
// of Sample. Keys are sorted so the order is deterministic.
func (s *Schema) Fields() []string {
	fields := make([]string, 0, len(s.Sample))
	for name := range s.Sample {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}

// MissingFields returns the required fields absent from a record.
// A record that is not a JSON object is missing every field.
func (s *Schema) MissingFields(record any) []string {
	obj, ok := record.(map[string]any)
	if !ok {
		return s.Fields()
	}

	var missing []string
	for _, name := range s.Fields() {
		if _, present := obj[name]; !present {
			missing = append(missing, name)
		}
	}
	return missing
}

// Issue reports a generated record that is missing required fields.
type Issue struct {
	RecordIndex   int      `json:"record_index"`
	MissingFields []string `json:"missing_fields"`
}

// Validate checks each record for the presence of the schema's required
// top-level fields. It reports rather than rejects: the result holds one
// Issue per incomplete record, and an empty result means every record is
// structurally valid. Value types are never checked.
func Validate(schema *Schema, records []any) []Issue {
	var issues []Issue
	for i, record := range records {
		if missing := schema.MissingFields(record); len(missing) > 0 {
			issues = append(issues, Issue{RecordIndex: i, MissingFields: missing})
		}
	}
	return issues
}

// Get returns the schema for a context name.
// The error for an unknown name lists all available contexts.
func Get(name string) (*Schema, error) {
	schema, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownContext, name, strings.Join(List(""), ", "))
	}
	return schema, nil
}

// List returns the names of all registered contexts, sorted. A non-empty
// category restricts the result to exact category matches; an unknown
// category yields an empty list, not an error.
func List(category string) []string {
	names := make([]string, 0, len(registry))
	for name, schema := range registry {
		if category != "" && schema.Category != category {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
