// Package apperr holds the error taxonomy shared by services, repositories and handlers.
package apperr

import (
	"errors"
	"strings"
)

// ErrMethodNotAllowed is returned when an endpoint is called with an unsupported HTTP method.
var ErrMethodNotAllowed = errors.New("method not allowed")

// Conflict messages reported by the registration flow.
const (
	MsgUsernameExists   = "username already exists"
	MsgPhoneRegistered  = "phone already registered"
	MsgAccountDuplicate = "account already exists"
)

// ValidationError carries every field-level violation found in a request.
type ValidationError struct {
	Messages []string
}

// NewValidationError returns nil when msgs is empty.
func NewValidationError(msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Messages: msgs}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StorageError wraps a failure of the underlying store. The cause is surfaced as-is.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "database error: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
