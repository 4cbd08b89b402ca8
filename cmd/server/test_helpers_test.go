package main

import (
	"testing"
	"time"

	"github.com/phrazzld/namemagic/internal/config"
	"github.com/phrazzld/namemagic/internal/generation"
	"github.com/phrazzld/namemagic/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:         8080,
			LogLevel:     "debug",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		LLM: config.LLMConfig{
			Provider: config.ProviderOpenRouter,
			APIKey:   "test-key",
			SiteURL:  "https://namemagic.example",
			SiteName: "Name Magic Generator",
			Timeout:  time.Second,
		},
		UI: config.UIConfig{DefaultLocale: "en"},
	}
}

func newTestApp(t *testing.T, gen generation.Generator) (*application, *logger.TestLogBuffer) {
	t.Helper()

	log, logBuf := logger.GetTestLogger(t)
	app, err := newApplicationWithGenerator(testConfig(), log, gen)
	require.NoError(t, err)
	return app, logBuf
}
