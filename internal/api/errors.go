package api

import (
	"errors"
	"net/http"

	"admin_backend/internal/shared/apperr"
	"admin_backend/internal/shared/validation"
)

// MutationError maps an error from a write operation to a status and body.
// notFound is the resource-specific message used for apperr.ErrNotFound.
func MutationError(err error, notFound string) (int, any) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return http.StatusUnprocessableEntity, NewValidationErrorResponse(verrs)
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict, Fail(conflictMessage(err))
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, Fail(notFound)
	default:
		return http.StatusInternalServerError, Fail(err.Error())
	}
}

func conflictMessage(err error) string {
	var ce *apperr.ConflictError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}
