package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// Workflow.
	ErrIllegalTransition = errors.New("illegal transition")
	ErrLedgerWrite       = errors.New("ledger write failure")

	// Mail.
	ErrDeliveryFailed = errors.New("delivery failure")
	// A malformed recipient fails on every transport; a malformed sender only
	// on the transport configured with it. Neither is retried.
	ErrInvalidRecipient = errors.New("invalid recipient address")
	ErrInvalidSender    = errors.New("invalid sender address")

	// Session tokens. Expired prompts a silent refresh, invalid forces re-login.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
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

// TransitionError is returned when a requested move is not in the legal graph.
// The case is never mutated when this error is returned.
type TransitionError struct {
	Current   CaseState
	Attempted CaseState
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal transition: %s -> %s", e.Current, e.Attempted)
}

func (e *TransitionError) Unwrap() error { return ErrIllegalTransition }

// LedgerWriteError wraps a storage failure during the transition+append unit.
// Nothing from the unit has been committed when it is returned.
type LedgerWriteError struct {
	CaseID uuid.UUID
	Op     string
	Err    error
}

func (e *LedgerWriteError) Error() string {
	return fmt.Sprintf("ledger write failure: case %s: %s: %v", e.CaseID, e.Op, e.Err)
}

func (e *LedgerWriteError) Unwrap() []error { return []error{ErrLedgerWrite, e.Err} }

// DeliveryAttempt records one failed send attempt.
type DeliveryAttempt struct {
	Transport string
	Attempt   int
	Err       error
}

// DeliveryError is returned when every primary and fallback attempt failed.
type DeliveryError struct {
	To       string
	Attempts []DeliveryAttempt
}

func (e *DeliveryError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s#%d: %v", a.Transport, a.Attempt, a.Err))
	}
	return fmt.Sprintf("delivery to %s failed after %d attempts: %s", e.To, len(e.Attempts), strings.Join(parts, "; "))
}

func (e *DeliveryError) Unwrap() error { return ErrDeliveryFailed }
