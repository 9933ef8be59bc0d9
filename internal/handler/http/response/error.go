package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-payroll/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrUnsupportedClaims):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrMissingCompany):
		Unauthorized(w, "Token is not bound to a company")
	case errors.Is(err, auth.ErrInsufficientRole):
		Forbidden(w, "Insufficient role for this resource")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrMissingTenant):
		Unauthorized(w, "Token is not bound to a company")
	case errors.Is(err, payroll.ErrFetchFailed):
		// Source details stay in the logs.
		ServiceUnavailable(w, "Failed to load payroll data, please try again")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
