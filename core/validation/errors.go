package validation

import (
	"fmt"
	"strings"
)

// FieldError describes one field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Value   any    `json:"value,omitempty"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// FieldErrors is the list of field failures of one record.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, len(fe))
	for i, e := range fe {
		parts[i] = e.Error()
	}
	return strings.Join(parts, ", ")
}

// Summary renders the errors the way batch reports carry them.
func (fe FieldErrors) Summary() string {
	return "Schema validation failed: " + fe.Error()
}

// ReferenceError reports a foreign key value that does not resolve.
type ReferenceError struct {
	Row   int    `json:"row"`
	Field string `json:"field"`
	Value string `json:"value"`
	Table string `json:"-"`
}

func (e ReferenceError) Error() string {
	return fmt.Sprintf("Foreign key error: %s = '%s' does not exist", e.Field, e.Value)
}
