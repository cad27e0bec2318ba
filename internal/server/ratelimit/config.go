package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int // requests per Window for unlisted endpoints
	SearchLimit     int // requests per Window for the search endpoint
	Window          time.Duration
	CleanupInterval time.Duration
}

// limitFor returns the per-window limit for an endpoint. Health checks are
// unlimited; the search endpoint carries its own, tighter limit.
func (c *Config) limitFor(endpoint string) int {
	switch endpoint {
	case "/health":
		return 0
	case "/search":
		return c.SearchLimit
	default:
		return c.DefaultLimit
	}
}

func defaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    300,
		SearchLimit:     60,
		Window:          time.Minute,
		CleanupInterval: 5 * time.Minute,
	}
}

// LoadConfig reads rate limit settings from environment variables, falling
// back to defaults: RATE_LIMIT_ENABLED, RATE_LIMIT_DEFAULT,
// RATE_LIMIT_SEARCH, RATE_LIMIT_WINDOW_SECONDS.
func LoadConfig() *Config {
	config := defaultConfig()

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			config.Enabled = enabled
		}
	}
	if v := os.Getenv("RATE_LIMIT_DEFAULT"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			config.DefaultLimit = limit
		}
	}
	if v := os.Getenv("RATE_LIMIT_SEARCH"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			config.SearchLimit = limit
		}
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW_SECONDS"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			config.Window = time.Duration(seconds) * time.Second
		}
	}

	return config
}
