package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yachai/yachai-cli/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		APIBaseURL:       "http://localhost:5000",
		StorePath:        "yachai.db",
		LogLevel:         "INFO",
		HTTPTimeout:      30 * time.Second,
		ChatPollInterval: 5 * time.Second,
		ChatLimit:        50,
		LeaderboardLimit: 10,
		SessionLimit:     5,
		Difficulty:       "medium",
		AgeRange:         "8-14",
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyAPIBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.APIBaseURL = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API_BASE_URL cannot be empty")
}

func TestValidate_EmptyStorePath(t *testing.T) {
	cfg := validConfig()
	cfg.StorePath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_PATH cannot be empty")
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		ok    bool
	}{
		{name: "invalid level", level: "INVALID", ok: false},
		{name: "empty level", level: "", ok: false},
		{name: "lowercase valid level", level: "debug", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL")
			}
		})
	}
}

func TestValidate_InvalidDurations(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*config.Config)
		expectedError string
	}{
		{
			name:          "zero http timeout",
			mutate:        func(c *config.Config) { c.HTTPTimeout = 0 },
			expectedError: "HTTP_TIMEOUT",
		},
		{
			name:          "negative poll interval",
			mutate:        func(c *config.Config) { c.ChatPollInterval = -time.Second },
			expectedError: "CHAT_POLL_INTERVAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestValidate_InvalidLimits(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*config.Config)
		expectedError string
	}{
		{
			name:          "zero chat limit",
			mutate:        func(c *config.Config) { c.ChatLimit = 0 },
			expectedError: "CHAT_LIMIT",
		},
		{
			name:          "zero leaderboard limit",
			mutate:        func(c *config.Config) { c.LeaderboardLimit = 0 },
			expectedError: "LEADERBOARD_LIMIT",
		},
		{
			name:          "negative session limit",
			mutate:        func(c *config.Config) { c.SessionLimit = -1 },
			expectedError: "SESSION_LIMIT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestValidate_InvalidDifficulty(t *testing.T) {
	cfg := validConfig()
	cfg.Difficulty = "impossible"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DIFFICULTY")
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "API_BASE_URL cannot be empty")
	assert.Contains(t, errStr, "STORE_PATH cannot be empty")
	assert.Contains(t, errStr, "HTTP_TIMEOUT")
	assert.Contains(t, errStr, "CHAT_POLL_INTERVAL")
	assert.Contains(t, errStr, "DIFFICULTY")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	// Save original values
	originalURL := os.Getenv("API_BASE_URL")
	originalStore := os.Getenv("STORE_PATH")

	defer func() {
		if originalURL != "" {
			os.Setenv("API_BASE_URL", originalURL)
		} else {
			os.Unsetenv("API_BASE_URL")
		}
		if originalStore != "" {
			os.Setenv("STORE_PATH", originalStore)
		} else {
			os.Unsetenv("STORE_PATH")
		}
	}()

	os.Setenv("API_BASE_URL", "http://backend:9090")
	os.Setenv("STORE_PATH", "custom.db")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://backend:9090", cfg.APIBaseURL)
	assert.Equal(t, "custom.db", cfg.StorePath)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"API_BASE_URL", "STORE_PATH", "CHAT_POLL_INTERVAL", "CHAT_LIMIT"} {
		original := os.Getenv(key)
		os.Unsetenv(key)
		defer func(k, v string) {
			if v != "" {
				os.Setenv(k, v)
			}
		}(key, original)
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.ChatPollInterval)
	assert.Equal(t, 50, cfg.ChatLimit)
	assert.NoError(t, cfg.Validate())
}
