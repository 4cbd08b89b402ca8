package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/namemagic/internal/domain"
	"github.com/phrazzld/namemagic/internal/generation"
	"github.com/phrazzld/namemagic/internal/platform/logger"
	"github.com/phrazzld/namemagic/internal/redact"
)

// Source records where a meaning came from.
type Source string

const (
	// SourceGenerated marks a meaning returned by the provider.
	SourceGenerated Source = "generated"
	// SourceFallback marks a locally generated placeholder meaning.
	SourceFallback Source = "fallback"
)

// Result is the outcome of a reveal. Meaning is never empty.
type Result struct {
	Meaning string
	Source  Source
}

// MeaningService defines the name-meaning use cases.
type MeaningService interface {
	// Reveal produces a meaning for name in lang. Provider failures are
	// absorbed into a fallback meaning, so it has no error return.
	Reveal(ctx context.Context, name string, lang domain.Language) Result

	// Submit runs one request for the session, moving it Loading -> Result.
	// It returns domain.ErrEmptyName or domain.ErrAlreadyLoading without
	// changing state when the request cannot start.
	Submit(ctx context.Context, session *domain.Session) (Result, error)

	// Reset returns the session to Editing.
	Reset(session *domain.Session) error

	// Share hands the session's result to sharer.
	Share(ctx context.Context, sharer Sharer, session *domain.Session) error
}

// Verify interface compliance at compile time
var _ MeaningService = (*meaningServiceImpl)(nil)

type meaningServiceImpl struct {
	generator generation.Generator
	prompts   *PromptBuilder
	fallback  *FallbackGenerator
	shareURL  string
	logger    *slog.Logger
}

// Option configures a MeaningService.
type Option func(*meaningServiceImpl)

// WithPromptBuilder replaces the default prompt builder.
func WithPromptBuilder(b *PromptBuilder) Option {
	return func(s *meaningServiceImpl) {
		if b != nil {
			s.prompts = b
		}
	}
}

// WithFallbackGenerator replaces the clock-seeded fallback generator.
func WithFallbackGenerator(f *FallbackGenerator) Option {
	return func(s *meaningServiceImpl) {
		if f != nil {
			s.fallback = f
		}
	}
}

// WithShareURL sets the URL attached to share payloads.
func WithShareURL(url string) Option {
	return func(s *meaningServiceImpl) {
		s.shareURL = url
	}
}

// NewMeaningService creates a MeaningService backed by generator.
func NewMeaningService(
	generator generation.Generator,
	logger *slog.Logger,
	opts ...Option,
) (MeaningService, error) {
	if generator == nil {
		return nil, fmt.Errorf("%w: generator cannot be nil", generation.ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &meaningServiceImpl{
		generator: generator,
		prompts:   NewPromptBuilder(),
		fallback:  NewFallbackGenerator(nil),
		logger:    logger.With(slog.String("component", "meaning_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Reveal implements MeaningService.Reveal.
func (s *meaningServiceImpl) Reveal(ctx context.Context, name string, lang domain.Language) Result {
	log := logger.FromContextOrDefault(ctx, s.logger)

	prompt, err := s.prompts.Build(name, lang)
	if err != nil {
		log.Error("failed to build prompt, using fallback meaning",
			slog.String("error", redact.Error(err)),
			slog.String("language", string(lang)))
		return s.fallbackResult()
	}

	start := time.Now()
	text, err := s.generator.GenerateText(ctx, prompt)
	duration := time.Since(start)

	if err != nil {
		attrs := []any{
			slog.String("error", redact.Error(err)),
			slog.String("language", string(lang)),
			slog.Duration("duration", duration),
		}
		var statusErr *generation.StatusError
		if errors.As(err, &statusErr) {
			attrs = append(attrs, slog.Int("status_code", statusErr.StatusCode))
		}

		if errors.Is(err, generation.ErrQuotaExceeded) {
			log.Warn("provider quota exhausted, using fallback meaning", attrs...)
		} else {
			log.Error("meaning generation failed, using fallback meaning", attrs...)
		}
		return s.fallbackResult()
	}

	meaning := StripMarkdown(text)
	if strings.TrimSpace(meaning) == "" {
		log.Error("provider returned an empty meaning, using fallback meaning",
			slog.String("language", string(lang)),
			slog.Duration("duration", duration))
		return s.fallbackResult()
	}

	log.Info("meaning generated",
		slog.String("language", string(lang)),
		slog.Duration("duration", duration),
		slog.Int("length", len(meaning)))

	return Result{Meaning: meaning, Source: SourceGenerated}
}

func (s *meaningServiceImpl) fallbackResult() Result {
	return Result{Meaning: s.fallback.Meaning(), Source: SourceFallback}
}

// Submit implements MeaningService.Submit.
func (s *meaningServiceImpl) Submit(ctx context.Context, session *domain.Session) (Result, error) {
	if session == nil {
		return Result{}, ErrNilSession
	}

	snap, err := session.BeginLoading()
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("submit ignored",
			slog.String("reason", err.Error()))
		return Result{}, err
	}

	result := s.Reveal(ctx, snap.Name, snap.Language)

	if err := session.Complete(result.Meaning); err != nil {
		return Result{}, fmt.Errorf("failed to complete session: %w", err)
	}
	return result, nil
}

// Reset implements MeaningService.Reset.
func (s *meaningServiceImpl) Reset(session *domain.Session) error {
	if session == nil {
		return ErrNilSession
	}
	session.Reset()
	return nil
}

// Share implements MeaningService.Share.
func (s *meaningServiceImpl) Share(ctx context.Context, sharer Sharer, session *domain.Session) error {
	if session == nil {
		return ErrNilSession
	}
	if sharer == nil {
		return ErrShareUnsupported
	}

	payload, err := session.SharePayload(s.shareURL)
	if err != nil {
		return err
	}

	if err := sharer.Share(ctx, payload); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("share failed",
			slog.String("error", redact.Error(err)))
		return fmt.Errorf("%w: %v", ErrShareFailed, err)
	}
	return nil
}
