package service

import (
	"errors"
	"strings"

	"github.com/briggittemora/Gestion-de-tareas/internal/validation"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrMaintenance  = errors.New("maintenance mode")
)

// Error is a domain error with a client-facing message. Kind is one of the
// sentinels above and is what errors.Is matches against.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Kind.Error() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

func NotFound(message string) error     { return newError(ErrNotFound, message) }
func Conflict(message string) error     { return newError(ErrConflict, message) }
func Forbidden(message string) error    { return newError(ErrForbidden, message) }
func Unauthorized(message string) error { return newError(ErrUnauthorized, message) }
func Invalid(message string) error      { return newError(ErrValidation, message) }

// ValidationError carries per-field failures.
type ValidationError struct {
	Message string
	Fields  []validation.FieldError
}

func NewValidationError(fields []validation.FieldError) *ValidationError {
	return &ValidationError{Message: "Datos inválidos", Fields: fields}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Error)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// PendingError blocks a deletion while unfinished assignments exist.
// Kind decides the status: users answer 400, tasks 409. Field names the
// response key that lists Pending.
type PendingError struct {
	Kind    error
	Message string
	Field   string
	Pending []string
}

func (e *PendingError) Error() string {
	return e.Message + ": " + strings.Join(e.Pending, ", ")
}

func (e *PendingError) Unwrap() error {
	return e.Kind
}

// Message extracts the client-facing message of a domain error, or "" when err carries none.
func Message(err error) string {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	var pendingErr *PendingError
	if errors.As(err, &pendingErr) {
		return pendingErr.Message
	}
	return ""
}
