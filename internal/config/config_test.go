package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("IMOBIGEST_API_BASE_URL", "http://localhost:8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Contains(t, cfg.SessionFile, ".imobigest")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("IMOBIGEST_API_BASE_URL", "https://api.imobigest.com.br")
	t.Setenv("IMOBIGEST_HTTP_TIMEOUT", "90s")
	t.Setenv("IMOBIGEST_PAGE_SIZE", "25")
	t.Setenv("IMOBIGEST_SESSION_FILE", "/tmp/imobigest-session")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.imobigest.com.br", cfg.APIBaseURL)
	assert.Equal(t, 90*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, "/tmp/imobigest-session", cfg.SessionFile)

	lc := cfg.GetLoggerConfig()
	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "json", lc.Format)
}

func TestLoadRequiresBaseURL(t *testing.T) {
	t.Setenv("IMOBIGEST_API_BASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IMOBIGEST_API_BASE_URL")
}

func TestLoadRejectsBadPageSize(t *testing.T) {
	t.Setenv("IMOBIGEST_API_BASE_URL", "http://localhost:8080")
	t.Setenv("IMOBIGEST_PAGE_SIZE", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IMOBIGEST_PAGE_SIZE")
}
