// Package config loads bot settings from the environment, with optional
// .env file support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Token              string
	RedisAddr          string
	RedisPassword      string
	DefaultPrefix      string
	LogChannelID       string
	MetricsAddr        string
	ReaperInterval     time.Duration
	SessionIdleTimeout time.Duration
	MinBet             int
	MaxBet             int
	StartingCurrency   int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is not set")
	}

	cfg := &Config{
		Token:              token,
		RedisAddr:          envString("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      envString("REDIS_PASSWORD", ""),
		DefaultPrefix:      envString("DEFAULT_PREFIX", "!"),
		LogChannelID:       envString("LOG_CHANNEL_ID", ""),
		MetricsAddr:        envString("METRICS_ADDR", ":9090"),
		ReaperInterval:     envDuration("REAPER_INTERVAL", time.Hour),
		SessionIdleTimeout: envDuration("SESSION_IDLE_TIMEOUT", 900*time.Second),
		MinBet:             envInt("BLACKJACK_MIN_BET", 1),
		MaxBet:             envInt("BLACKJACK_MAX_BET", 10000),
		StartingCurrency:   envInt("STARTING_CURRENCY", 500),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the loaded values are usable together
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required but not set")
	}

	if c.DefaultPrefix == "" {
		return fmt.Errorf("DEFAULT_PREFIX cannot be empty")
	}

	if c.ReaperInterval < time.Minute {
		return fmt.Errorf("REAPER_INTERVAL must be at least 1m, got %v", c.ReaperInterval)
	}

	if c.SessionIdleTimeout < time.Minute {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must be at least 1m, got %v", c.SessionIdleTimeout)
	}

	if c.MinBet < 1 {
		return fmt.Errorf("BLACKJACK_MIN_BET must be at least 1, got %d", c.MinBet)
	}

	if c.MaxBet < c.MinBet {
		return fmt.Errorf("BLACKJACK_MAX_BET (%d) must be at least BLACKJACK_MIN_BET (%d)",
			c.MaxBet, c.MinBet)
	}

	if c.StartingCurrency < 0 {
		return fmt.Errorf("STARTING_CURRENCY cannot be negative, got %d", c.StartingCurrency)
	}

	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
