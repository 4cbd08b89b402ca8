package generation

import "context"

// Generator produces text for a prompt using an external language model.
type Generator interface {
	// GenerateText sends prompt to the model and returns the first completion's
	// text unmodified. Failures are reported with the sentinel errors in errors.go.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
