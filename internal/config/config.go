package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	UI     UIConfig     `mapstructure:"ui"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port         int           `mapstructure:"port"          validate:"required,gt=0,lt=65536"`
	LogLevel     string        `mapstructure:"log_level"     validate:"required,oneof=debug info warn error"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"  validate:"gte=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"gte=0"`
}

// Supported LLM providers. Exactly one is active per process.
const (
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
)

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	Provider string `mapstructure:"provider" validate:"required,oneof=openrouter gemini"`
	APIKey   string `mapstructure:"api_key"  validate:"required"`

	// Model and BaseURL fall back to the provider's defaults when empty.
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	// SiteURL and SiteName are sent to OpenRouter as HTTP-Referer and X-Title.
	SiteURL  string `mapstructure:"site_url"  validate:"omitempty,url"`
	SiteName string `mapstructure:"site_name"`

	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`

	// PromptTemplatePath optionally replaces the built-in prompt template.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`
}

// UIConfig contains settings for the rendered page.
type UIConfig struct {
	DefaultLocale string `mapstructure:"default_locale" validate:"required,oneof=en hi mr"`
}
