package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/namemagic/internal/api/shared"
	"github.com/phrazzld/namemagic/internal/domain"
	"github.com/phrazzld/namemagic/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients. Provider failures never reach this point: they are
// absorbed into a fallback meaning by the service.
func MapErrorToStatusCode(err error) int {
	var validationErr *domain.ValidationError
	var fieldErrs validator.ValidationErrors

	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrUnsupportedLanguage),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, shared.ErrEmptyBody),
		errors.As(err, &validationErr),
		errors.As(err, &fieldErrs):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, domain.ErrAlreadyLoading),
		errors.Is(err, domain.ErrNothingToShare),
		errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict

	case errors.Is(err, service.ErrShareUnsupported):
		return http.StatusNotImplemented

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	// Handle nil error
	if err == nil {
		return "An unexpected error occurred"
	}

	var fieldErrs validator.ValidationErrors

	switch {
	case errors.Is(err, domain.ErrEmptyName):
		return "Name is required"

	case errors.Is(err, domain.ErrUnsupportedLanguage):
		return "Language must be one of english, hindi or marathi"

	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"

	case errors.As(err, &fieldErrs):
		return SanitizeValidationError(err)

	case errors.Is(err, domain.ErrAlreadyLoading):
		return "A meaning is already being revealed"

	case errors.Is(err, domain.ErrNothingToShare):
		return "There is no meaning to share yet"

	case errors.Is(err, service.ErrShareUnsupported):
		return "Sharing is not supported on this device."

	case errors.Is(err, domain.ErrValidation):
		return "Validation error"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the JSON error response for err. When message is
// empty the safe message for err is used. The detailed error is only logged,
// redacted.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Extract the field name and validation tag
		// Example format: "Key: 'RevealRequest.Name' Error:Field validation for 'Name' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			// Further split to get just the field validation part
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				// Create a cleaner error message
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
