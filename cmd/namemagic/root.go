package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/namemagic/internal/config"
	"github.com/phrazzld/namemagic/internal/generation"
	"github.com/phrazzld/namemagic/internal/platform/logger"
	"github.com/phrazzld/namemagic/internal/platform/provider"
	"github.com/spf13/cobra"
)

// deps are the pieces a command needs from the outside world. Tests replace
// them with in-memory versions.
type deps struct {
	loadConfig   func() (*config.Config, error)
	newGenerator func(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.Generator, error)
	stderr       io.Writer
}

func defaultDeps() deps {
	return deps{
		loadConfig:   config.Load,
		newGenerator: provider.New,
		stderr:       os.Stderr,
	}
}

// newRootCmd builds the namemagic command tree.
func newRootCmd(d deps) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "namemagic",
		Short: "Discover the hilarious hidden meaning behind a name",
		Long: `namemagic asks the configured LLM provider for a short, fun explanation
of a name. When the provider cannot be reached or refuses the call, a playful
fallback meaning is printed instead of an error.

The provider is configured the same way as the server: NAMEMAGIC_LLM_API_KEY,
NAMEMAGIC_LLM_PROVIDER and friends, a .env file, or config.yaml.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newRevealCmd(d, &logLevel))
	return root
}

// commandLogger returns the logger for a command run. Logs go to stderr so
// that stdout carries only the result.
func commandLogger(d deps, level string) *slog.Logger {
	return logger.New(d.stderr, level)
}

func loadGenerator(ctx context.Context, d deps, log *slog.Logger) (*config.Config, generation.Generator, error) {
	cfg, err := d.loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	gen, err := d.newGenerator(ctx, log.With("component", "llm_generator"), cfg.LLM)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	return cfg, gen, nil
}
