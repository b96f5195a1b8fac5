package booking

import (
	"errors"
	"fmt"
)

var (
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("booking not found")
	ErrProviderNotFound    = errors.New("provider not found")
	ErrProviderNotApproved = errors.New("provider is not approved")
	ErrInvalidTransition   = errors.New("invalid status transition")
)

// ValidationError carries the field that failed, so the client gets a
// field-specific message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missingField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func invalidField(field string, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
