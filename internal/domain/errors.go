package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyName is returned when a submitted name is empty after trimming.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrUnsupportedLanguage is returned for a language outside english, hindi and marathi.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrAlreadyLoading is returned when a submit arrives while a request is in flight.
	ErrAlreadyLoading = errors.New("a meaning is already being revealed")

	// ErrInvalidTransition is returned when a phase change is not allowed from the current phase.
	ErrInvalidTransition = errors.New("invalid phase transition")

	// ErrNothingToShare is returned when sharing is attempted before a result exists.
	ErrNothingToShare = errors.New("no meaning to share yet")
)

// ValidationError describes which field failed and why.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for field wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
