package usecase

import (
	"fmt"

	"admin_backend/internal/shared/apperr"
)

var (
	// ErrProductNotFound is returned when no product has the given id.
	ErrProductNotFound = fmt.Errorf("product %w", apperr.ErrNotFound)

	// ErrDuplicateProduct is returned when the (name, owner) pair is already taken.
	ErrDuplicateProduct = apperr.NewConflict(DuplicateNameOwnerMessage)
)
