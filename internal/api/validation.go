package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed binding rule, phrased for API consumers.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// BindingErrors turns a gin binding failure into per-field messages.
// Non-validator errors (malformed JSON, wrong types) get no field detail.
func BindingErrors(err error) []FieldError {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil
	}

	out := make([]FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: fieldErrorMessage(fe),
		})
	}
	return out
}

func fieldErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "email":
		return err.Field() + " must be a valid email address"
	case "min":
		return err.Field() + " must be at least " + err.Param() + " characters"
	case "max":
		return err.Field() + " must be at most " + err.Param() + " characters"
	case "gt":
		return err.Field() + " must be greater than " + err.Param()
	case "gte":
		return err.Field() + " must be greater than or equal to " + err.Param()
	case "lte":
		return err.Field() + " must be less than or equal to " + err.Param()
	default:
		return err.Field() + " is invalid"
	}
}

// ValidationErrorResponse is the 400 body for failed request binding.
type ValidationErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// NewValidationErrorResponse builds the 400 body from a binding error.
func NewValidationErrorResponse(err error) ValidationErrorResponse {
	details := BindingErrors(err)
	if len(details) == 0 {
		return ValidationErrorResponse{Error: "invalid request body"}
	}
	return ValidationErrorResponse{Error: "validation failed", Details: details}
}
