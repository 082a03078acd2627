package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin_backend/internal/shared/apperr"
	"admin_backend/internal/shared/validation"
)

func TestMutationError(t *testing.T) {
	t.Parallel()

	verrs := validation.Errors{
		{Field: "name", Code: validation.CodeRequired, Message: "Name is required", Value: ""},
		{Field: "count", Code: validation.CodeOutOfRange, Message: "Count must be 0 or greater", Value: "-1"},
	}

	t.Run("validation", func(t *testing.T) {
		t.Parallel()

		status, body := MutationError(verrs, "User not found")

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		resp, ok := body.(ValidationErrorResponse)
		require.True(t, ok)
		assert.False(t, resp.Success)
		assert.Equal(t, "Name is required, Count must be 0 or greater", resp.Message)
		require.Len(t, resp.Errors, 2)
		assert.Equal(t, FieldError{Field: "count", Type: "out_of_range", Message: "Count must be 0 or greater", Value: "-1"}, resp.Errors[1])
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"conflict", apperr.NewConflict("Email already exists"), http.StatusConflict, "Email already exists"},
		{"wrapped conflict", fmt.Errorf("create: %w", apperr.NewConflict("Phone already exists")), http.StatusConflict, "Phone already exists"},
		{"not found", fmt.Errorf("user %w", apperr.ErrNotFound), http.StatusNotFound, "User not found"},
		{"store failure", errors.New("connection refused"), http.StatusInternalServerError, "connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			status, body := MutationError(tt.err, "User not found")

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, ResultResponse{Success: false, Message: tt.wantMsg}, body)
		})
	}
}
