package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/namemagic/internal/config"
	"github.com/phrazzld/namemagic/internal/generation"
	"github.com/phrazzld/namemagic/internal/platform/i18n"
	"github.com/phrazzld/namemagic/internal/platform/provider"
	"github.com/phrazzld/namemagic/internal/service"
	"github.com/phrazzld/namemagic/internal/web"
)

// application holds all the shared application dependencies.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Service interfaces
	generator      generation.Generator
	meaningService service.MeaningService

	// Presentation
	translator *i18n.Translator
	renderer   *web.Renderer
}

// newApplication creates a new application instance with the configured
// provider and all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := provider.New(ctx, logger.With("component", "llm_generator"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully")

	return newApplicationWithGenerator(cfg, logger, generator)
}

// newApplicationWithGenerator wires every dependency around an existing generator.
func newApplicationWithGenerator(
	cfg *config.Config,
	logger *slog.Logger,
	generator generation.Generator,
) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		generator: generator,
	}

	prompts, err := service.NewPromptBuilderFromFile(cfg.LLM.PromptTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	app.meaningService, err = service.NewMeaningService(
		generator,
		logger,
		service.WithPromptBuilder(prompts),
		service.WithShareURL(cfg.LLM.SiteURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create meaning service: %w", err)
	}

	app.translator = i18n.NewTranslator(cfg.UI.DefaultLocale, logger)

	app.renderer, err = web.NewRenderer(app.translator, cfg.LLM.SiteURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create page renderer: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server and blocks until ctx is cancelled or the
// server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
