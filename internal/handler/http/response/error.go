package response

import (
	"errors"
	"net/http"

	"github.com/samat2k5/hrms-singapore-sub000/internal/domain/payroll"
	"github.com/samat2k5/hrms-singapore-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Payroll domain errors
	switch {
	case errors.Is(err, payroll.ErrRunAborted):
		UnprocessableEntity(w, "RUN_ABORTED", err.Error())
	case errors.Is(err, payroll.ErrEmptyRunScope):
		BadRequest(w, "Payroll run scope resolved to zero employees", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrUnknownResidency):
		BadRequest(w, "Unknown residency status", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
