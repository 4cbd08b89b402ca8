package generation

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"
)

// Common errors returned by generators
var (
	// ErrGenerationFailed is returned when generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate text")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrQuotaExceeded is returned when the provider refuses the call for billing
	// or quota reasons (HTTP 402 Payment Required, exhausted quota)
	ErrQuotaExceeded = errors.New("language model quota exceeded")

	// ErrUpstreamStatus is returned for any other non-success HTTP status
	ErrUpstreamStatus = errors.New("language model returned an error status")

	// ErrTransport is returned when the provider could not be reached
	ErrTransport = errors.New("language model request failed")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// StatusError records a non-success HTTP status returned by a provider.
type StatusError struct {
	StatusCode int
	Body       string
}

// NewStatusError creates a StatusError for code with a response body excerpt.
func NewStatusError(code int, body string) *StatusError {
	const maxBody = 512
	if len(body) > maxBody {
		cut := maxBody
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut]
	}
	return &StatusError{StatusCode: code, Body: body}
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

// Unwrap maps the status to ErrQuotaExceeded or ErrUpstreamStatus.
func (e *StatusError) Unwrap() error {
	if IsQuotaStatus(e.StatusCode) {
		return ErrQuotaExceeded
	}
	return ErrUpstreamStatus
}

// IsQuotaStatus reports whether code means the caller is out of credits or quota.
func IsQuotaStatus(code int) bool {
	return code == http.StatusPaymentRequired || code == http.StatusTooManyRequests
}
