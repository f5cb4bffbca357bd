// Package config provides configuration loading and validation for the
// server and CLI. Values come from the environment, with an optional .env
// file loaded by the command layer.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultPort               = 5000
	DefaultMaxUploadBytes     = 10 << 20 // 10 MB
	DefaultFetchTimeout       = 30 * time.Second
	DefaultRateLimitPerMinute = 60
)

// Config holds runtime configuration for the server.
type Config struct {
	Port               int           // PORT
	DatabaseURL        string        // DATABASE_URL; empty selects the in-memory store
	LogJSON            bool          // LOG_JSON
	Debug              bool          // DEBUG
	MaxUploadBytes     int64         // MAX_UPLOAD_MB, in megabytes
	FetchTimeout       time.Duration // FETCH_TIMEOUT_SECONDS
	RateLimitPerMinute int           // RATE_LIMIT_PER_MINUTE; 0 disables limiting
}

// FromEnv builds a Config from environment variables, applying defaults for
// anything unset.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:               DefaultPort,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		LogJSON:            boolEnv("LOG_JSON"),
		Debug:              boolEnv("DEBUG"),
		MaxUploadBytes:     DefaultMaxUploadBytes,
		FetchTimeout:       DefaultFetchTimeout,
		RateLimitPerMinute: DefaultRateLimitPerMinute,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config error: invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		mb, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config error: invalid MAX_UPLOAD_MB %q: %w", v, err)
		}
		cfg.MaxUploadBytes = int64(mb) << 20
	}
	if v := os.Getenv("FETCH_TIMEOUT_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config error: invalid FETCH_TIMEOUT_SECONDS %q: %w", v, err)
		}
		cfg.FetchTimeout = time.Duration(seconds) * time.Second
	}
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config error: invalid RATE_LIMIT_PER_MINUTE %q: %w", v, err)
		}
		cfg.RateLimitPerMinute = limit
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config error: max upload size must be positive")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("config error: fetch timeout must be positive")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("config error: rate limit must be non-negative")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func boolEnv(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
