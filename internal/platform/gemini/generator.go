package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/namemagic/internal/config"
	"github.com/phrazzld/namemagic/internal/generation"
	"google.golang.org/genai"
)

// DefaultModel is used when the configuration does not name a model.
const DefaultModel = "gemini-2.0-flash"

// contentGenerator is the part of *genai.Models the generator uses.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models is the genai Models service (or a test double)
	models contentGenerator

	// model is the name of the Gemini model to use
	model string
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a GeminiGenerator backed by a genai client.
//
// Parameters:
//   - ctx: Context for client construction
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name and timeout
//
// Returns:
//   - A properly initialized GeminiGenerator or an error if initialization fails
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return newWithModels(logger, client.Models, cfg.Model), nil
}

func newWithModels(logger *slog.Logger, models contentGenerator, model string) *GeminiGenerator {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	return &GeminiGenerator{
		logger: logger,
		models: models,
		model:  model,
	}
}

// Model returns the configured model name.
func (g *GeminiGenerator) Model() string {
	return g.model
}

// GenerateText sends prompt as a single user turn and returns the
// concatenated text parts of the first candidate.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.logger.DebugContext(ctx, "calling gemini",
		"model", g.model,
		"prompt_length", len(prompt))

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classifyError(err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}

	g.logger.DebugContext(ctx, "gemini call completed",
		"response_length", len(text))
	return text, nil
}

// extractText validates the response shape and joins the first candidate's text parts.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, candidate.FinishReason)
	}
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}
