package usecase

import (
	"fmt"

	"admin_backend/internal/shared/apperr"
)

var (
	// ErrUserNotFound is returned when no user matches the given id or email.
	ErrUserNotFound = fmt.Errorf("user %w", apperr.ErrNotFound)

	// ErrDuplicateUser is returned by the store when its unique indexes reject a write
	// that slipped past the duplicate check (e.g. two concurrent creates).
	ErrDuplicateUser = apperr.NewConflict("Email or phone already exists")
)
