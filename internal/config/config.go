package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"imobigest/internal/logger"
)

type Config struct {
	// ImobiGest API Configuration
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Session Configuration
	SessionFile string

	// Listing Configuration
	PageSize int

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		APIBaseURL:    getEnv("IMOBIGEST_API_BASE_URL", ""),
		HTTPTimeout:   getEnvDuration("IMOBIGEST_HTTP_TIMEOUT", 30*time.Second),
		SessionFile:   getEnv("IMOBIGEST_SESSION_FILE", defaultSessionFile()),
		PageSize:      getEnvInt("IMOBIGEST_PAGE_SIZE", 10),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("IMOBIGEST_API_BASE_URL is required")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("IMOBIGEST_PAGE_SIZE must be at least 1")
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".imobigest/session"
	}
	return filepath.Join(home, ".imobigest", "session")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
