// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	// Paths
	Document  string `json:"document,omitempty"`  // Path to the document text file
	Questions string `json:"questions,omitempty"` // Path to a batch question-set JSON file

	// Pipeline tunables
	ChunkSize int `json:"chunk_size,omitempty"` // Window size in characters
	Overlap   int `json:"overlap,omitempty"`    // Window overlap in characters
	TopK      int `json:"top_k,omitempty"`      // Hotspot cap

	// Server
	Port     int    `json:"port,omitempty"`      // HTTP listen port
	LogLevel string `json:"log_level,omitempty"` // zerolog level name

	// Behavior
	Verbose     bool `json:"verbose,omitempty"`     // Print detailed pipeline stages
	Concurrency int  `json:"concurrency,omitempty"` // Parallel workers for batch mode
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.ChunkSize < 0 {
		return fmt.Errorf("config error: 'chunk_size' must be non-negative")
	}
	if c.Overlap < 0 {
		return fmt.Errorf("config error: 'overlap' must be non-negative")
	}
	if c.ChunkSize > 0 && c.Overlap >= c.ChunkSize {
		return fmt.Errorf("config error: 'overlap' must be smaller than 'chunk_size'")
	}
	if c.TopK < 0 {
		return fmt.Errorf("config error: 'top_k' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}

	if c.Document != "" {
		if _, err := os.Stat(c.Document); os.IsNotExist(err) {
			return fmt.Errorf("config error: document file not found: %s", c.Document)
		}
	}
	if c.Questions != "" {
		if _, err := os.Stat(c.Questions); os.IsNotExist(err) {
			return fmt.Errorf("config error: questions file not found: %s", c.Questions)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. CLI flag overrides are applied separately and always win.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Document == "" {
		result.Document = defaults.Document
	}
	if result.Questions == "" {
		result.Questions = defaults.Questions
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	if result.ChunkSize == 0 {
		result.ChunkSize = defaults.ChunkSize
	}
	if result.Overlap == 0 {
		result.Overlap = defaults.Overlap
	}
	if result.TopK == 0 {
		result.TopK = defaults.TopK
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
