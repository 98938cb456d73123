package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Fields: map[string]string{
		"title": "List title must be unique.",
		"id":    "must be positive",
	}}

	want := "validation error: id: must be positive; title: List title must be unique."
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := fmt.Errorf("creating list: %w", err)
	if !errors.Is(wrapped, ErrValidation) {
		t.Error("errors.Is(wrapped, ErrValidation) = false, want true")
	}
	var verr *ValidationError
	if !errors.As(wrapped, &verr) || verr.Fields["title"] == "" {
		t.Errorf("errors.As lost the fields: %v", verr)
	}
}

func TestNewValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("title", "The todo title is required.")
	if len(err.Fields) != 1 || err.Fields["title"] != "The todo title is required." {
		t.Errorf("Fields = %v", err.Fields)
	}
}

func TestMalformedError(t *testing.T) {
	t.Parallel()

	err := &MalformedError{Entity: "todo", Field: "done", Reason: "is missing"}

	if got, want := err.Error(), "malformed record: todo.done is missing"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrMalformed) {
		t.Error("errors.Is(err, ErrMalformed) = false, want true")
	}
	if errors.Is(err, ErrValidation) {
		t.Error("malformed record matched ErrValidation")
	}
}
