package catalog

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type (
	// ErrorResponse describes one field that failed validation.
	ErrorResponse struct {
		FailedField string `json:"field"`
		Tag         string `json:"tag"`
		Value       any    `json:"value"`
	}

	// XValidator validates request payloads.
	XValidator struct {
		validator *validator.Validate
	}
)

// NewValidator creates a payload validator.
func NewValidator() XValidator {
	return XValidator{validator: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate performs validation on the provided data and returns a slice of ErrorResponse.
func (v XValidator) Validate(data any) []ErrorResponse {
	var validationErrors []ErrorResponse

	err := v.validator.Struct(data)

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}

	for _, fe := range errs {
		validationErrors = append(validationErrors, ErrorResponse{
			FailedField: fe.Field(),
			Tag:         fe.Tag(),
			Value:       fe.Value(),
		})
	}

	return validationErrors
}
