package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/namemagic/internal/config"
	"github.com/phrazzld/namemagic/internal/generation"
)

// Defaults applied when the configuration leaves a value empty.
const (
	DefaultBaseURL  = "https://openrouter.ai/api/v1"
	DefaultModel    = "deepseek/deepseek-r1-0528-qwen3-8b:free"
	DefaultSiteName = "Name Magic Generator"

	maxResponseBytes = 1 << 20
)

// Client implements generation.Generator against OpenRouter.
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
	siteURL    string
	siteName   string
}

var _ generation.Generator = (*Client)(nil)

// NewClient creates a Client from LLM configuration. httpClient may be nil, in
// which case one is built with cfg.Timeout.
func NewClient(logger *slog.Logger, cfg config.LLMConfig, httpClient *http.Client) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: openrouter API key cannot be empty", generation.ErrInvalidConfig)
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	c := &Client{
		logger:     logger,
		httpClient: httpClient,
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(valueOr(cfg.BaseURL, DefaultBaseURL), "/"),
		model:      valueOr(cfg.Model, DefaultModel),
		siteURL:    cfg.SiteURL,
		siteName:   valueOr(cfg.SiteName, DefaultSiteName),
	}
	return c, nil
}

// Model returns the model identifier sent with every request.
func (c *Client) Model() string {
	return c.model
}

// GenerateText sends prompt as a single user message and returns the content
// of the first choice.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", generation.ErrGenerationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", generation.ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.siteURL != "" {
		req.Header.Set("HTTP-Referer", c.siteURL)
	}
	req.Header.Set("X-Title", c.siteName)

	start := time.Now()
	c.logger.DebugContext(ctx, "calling openrouter",
		"model", c.model,
		"prompt_length", len(prompt))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", generation.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", generation.NewStatusError(resp.StatusCode, string(raw))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%w: failed to parse JSON response: %v", generation.ErrInvalidResponse, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("%w: provider error: %s", generation.ErrInvalidResponse, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", generation.ErrInvalidResponse)
	}

	text := parsed.Choices[0].Message.Content
	c.logger.DebugContext(ctx, "openrouter call completed",
		"duration_ms", time.Since(start).Milliseconds(),
		"response_length", len(text))

	return text, nil
}

func valueOr(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
