package validation

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps a field name to its ordered error messages.
// It is the failure value returned by Schema.Validate.
type FieldErrors struct {
	Fields map[string][]string
}

// Error implements the error interface, listing fields alphabetically.
func (e *FieldErrors) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], " ")))
	}
	return strings.Join(parts, "; ")
}

// Add appends a message for field, preserving insertion order.
func (e *FieldErrors) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors returns true if any field failed.
func (e *FieldErrors) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// Flatten returns a copy of the per-field messages safe to hand to callers.
func (e *FieldErrors) Flatten() map[string][]string {
	out := make(map[string][]string, len(e.Fields))
	for name, msgs := range e.Fields {
		out[name] = append([]string(nil), msgs...)
	}
	return out
}
