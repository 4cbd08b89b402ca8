package gemini

import (
	"errors"
	"fmt"

	"github.com/phrazzld/namemagic/internal/generation"
	"google.golang.org/genai"
)

// classifyError maps SDK errors onto the generation sentinels. API errors keep
// their HTTP status through generation.StatusError; anything else, including
// context cancellation, is a transport failure.
func classifyError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return generation.NewStatusError(apiErr.Code, apiErr.Message)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return generation.NewStatusError(apiErrPtr.Code, apiErrPtr.Message)
	}
	return fmt.Errorf("%w: %v", generation.ErrTransport, err)
}
