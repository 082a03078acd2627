// Package api defines the JSON envelopes shared by every HTTP handler.
package api

import "admin_backend/internal/shared/validation"

// ErrorResponse is returned by read endpoints on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ResultResponse is the outcome of a write without a record in the body.
type ResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FieldError is one rejected field of a submission.
type FieldError struct {
	Field   string `json:"field"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Value   string `json:"value"`
}

// ValidationErrorResponse is returned with 422 Unprocessable Entity.
type ValidationErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// FieldValidationResponse answers a single-field check.
type FieldValidationResponse struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// Fail builds a failed ResultResponse.
func Fail(msg string) ResultResponse {
	return ResultResponse{Success: false, Message: msg}
}

// NewValidationErrorResponse converts field errors into the 422 envelope.
func NewValidationErrorResponse(errs validation.Errors) ValidationErrorResponse {
	items := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		items = append(items, FieldError{
			Field:   fe.Field,
			Type:    string(fe.Code),
			Message: fe.Message,
			Value:   fe.Value,
		})
	}
	return ValidationErrorResponse{
		Success: false,
		Message: errs.Error(),
		Errors:  items,
	}
}
