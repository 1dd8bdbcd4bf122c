package error

import (
	"errors"
	"strings"
)

// ErrValidation is the sentinel wrapped by every ValidationError.
var ErrValidation = errors.New("validation failed")

// FieldError describes one missing or invalid field.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Code   string
	Fields []FieldError
}

// NewValidationError creates a ValidationError with the given code.
func NewValidationError(code string, fields ...FieldError) *ValidationError {
	return &ValidationError{
		Code:   code,
		Fields: fields,
	}
}

// Add appends a field error.
func (e *ValidationError) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// FieldNames returns the names of the failing fields.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return names
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Reason
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap returns ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
