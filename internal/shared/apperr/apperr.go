// Package apperr defines error kinds shared by every feature.
// Feature-level sentinel errors wrap these so transport code can map
// them to status codes without knowing the feature.
package apperr

import "errors"

var (
	// ErrNotFound indicates that no record matched the given key.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates that a write would violate a uniqueness rule.
	ErrConflict = errors.New("conflict")
)

// ConflictError carries a human-readable reason for a uniqueness violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Unwrap lets errors.Is(err, ErrConflict) match.
func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewConflict returns a ConflictError with msg.
func NewConflict(msg string) error {
	return &ConflictError{Message: msg}
}
