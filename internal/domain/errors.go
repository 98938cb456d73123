package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")

	// ErrInvalidType is returned when an operation receives a nil entity where
	// a todo or list is required.
	ErrInvalidType = errors.New("invalid type")

	// ErrOutOfRange is returned by index-based list operations when the index
	// falls outside [0, Size()).
	ErrOutOfRange = errors.New("index out of range")

	// ErrMalformed is returned when a persisted record cannot be rebuilt into
	// a domain entity because fields are missing or invalid.
	ErrMalformed = errors.New("malformed record")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError with a single field message.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// MalformedError reports which field of a persisted record failed to rebuild.
type MalformedError struct {
	Entity string
	Field  string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: %s.%s %s", ErrMalformed.Error(), e.Entity, e.Field, e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}
