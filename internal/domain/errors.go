package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrInvalidState  = errors.New("invalid state")
	ErrStorage       = errors.New("storage failure")
)

// Specific errors. Each wraps one of the sentinels above so callers can match
// either the precise condition or its category.
var (
	ErrRoundNotFound    = fmt.Errorf("round: %w", ErrNotFound)
	ErrItemNotFound     = fmt.Errorf("item answer: %w", ErrNotFound)
	ErrTemplateNotFound = fmt.Errorf("checklist template: %w", ErrNotFound)
	ErrAnalystNotFound  = fmt.Errorf("analyst: %w", ErrNotFound)
	ErrSectorNotFound   = fmt.Errorf("sector: %w", ErrNotFound)
	ErrPhotoNotFound    = fmt.Errorf("photo: %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user: %w", ErrNotFound)

	ErrRoundClosed      = fmt.Errorf("round already finished: %w", ErrInvalidState)
	ErrNoActiveTemplate = fmt.Errorf("no active checklist template: %w", ErrInvalidState)

	ErrInvalidImage      = fmt.Errorf("invalid image payload: %w", ErrValidation)
	ErrSimulatedDisabled = fmt.Errorf("simulated locations disabled: %w", ErrForbidden)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
