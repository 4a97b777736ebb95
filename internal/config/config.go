package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL       string        `env:"API_BASE_URL" envDefault:"http://localhost:5000"`
	StorePath        string        `env:"STORE_PATH" envDefault:"yachai.db"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"INFO"`
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	ChatPollInterval time.Duration `env:"CHAT_POLL_INTERVAL" envDefault:"5s"`
	ChatLimit        int           `env:"CHAT_LIMIT" envDefault:"50"`
	LeaderboardLimit int           `env:"LEADERBOARD_LIMIT" envDefault:"10"`
	SessionLimit     int           `env:"SESSION_LIMIT" envDefault:"5"`
	Difficulty       string        `env:"DIFFICULTY" envDefault:"medium"`
	AgeRange         string        `env:"AGE_RANGE" envDefault:"8-14"`
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing.
func Load() (*Config, error) {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration and collects every problem found.
func (c *Config) Validate() error {
	var problems []string

	if c.APIBaseURL == "" {
		problems = append(problems, "API_BASE_URL cannot be empty")
	}
	if c.StorePath == "" {
		problems = append(problems, "STORE_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be DEBUG, INFO, WARN or ERROR, got %q", c.LogLevel))
	}
	if c.HTTPTimeout <= 0 {
		problems = append(problems, "HTTP_TIMEOUT must be positive")
	}
	if c.ChatPollInterval <= 0 {
		problems = append(problems, "CHAT_POLL_INTERVAL must be positive")
	}
	if c.ChatLimit <= 0 {
		problems = append(problems, "CHAT_LIMIT must be positive")
	}
	if c.LeaderboardLimit <= 0 {
		problems = append(problems, "LEADERBOARD_LIMIT must be positive")
	}
	if c.SessionLimit <= 0 {
		problems = append(problems, "SESSION_LIMIT must be positive")
	}
	switch c.Difficulty {
	case "easy", "medium", "hard":
	default:
		problems = append(problems, fmt.Sprintf("DIFFICULTY must be easy, medium or hard, got %q", c.Difficulty))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
