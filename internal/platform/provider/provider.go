// Package provider selects the generation.Generator implementation named by
// the llm.provider setting. Exactly one provider is active per process.
package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/namemagic/internal/config"
	"github.com/phrazzld/namemagic/internal/generation"
	"github.com/phrazzld/namemagic/internal/platform/gemini"
	"github.com/phrazzld/namemagic/internal/platform/openrouter"
)

// New builds the generator for cfg.Provider.
func New(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	switch cfg.Provider {
	case config.ProviderOpenRouter, "":
		client, err := openrouter.NewClient(logger, cfg, nil)
		if err != nil {
			return nil, err
		}
		logger.Info("using OpenRouter provider", slog.String("model", client.Model()))
		return client, nil

	case config.ProviderGemini:
		gen, err := gemini.NewGeminiGenerator(ctx, logger, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("using Gemini provider", slog.String("model", gen.Model()))
		return gen, nil

	default:
		return nil, fmt.Errorf("%w: unsupported provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}
