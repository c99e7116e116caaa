// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	SchemaPath  string   `json:"schema_path,omitempty"`                                                                      // External report schema, replaces the built-in one
	Codes       []string `json:"codes,omitempty"`                                                                            // Default codes for filter and count
	LogLevel    string   `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"` // Logging level
	LogFormat   string   `json:"log_format,omitempty" validate:"omitempty,oneof=console json CONSOLE JSON"`                  // Logging format
	MaxParallel int      `json:"max_parallel,omitempty" validate:"gte=-1"`                                                   // Report files read at once; 0 uses the default, -1 means unlimited
	Verbose     bool     `json:"verbose,omitempty"`                                                                          // Print a summary box after loading
}

// Defaults returns the values used when neither flags nor a config file set them.
func Defaults() Config {
	return Config{
		LogLevel:    "warn",
		LogFormat:   "console",
		MaxParallel: 4,
	}
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
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	for _, code := range c.Codes {
		if strings.TrimSpace(code) != code {
			return fmt.Errorf("config error: code %q has surrounding whitespace", code)
		}
	}

	if c.SchemaPath != "" {
		if _, err := os.Stat(c.SchemaPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: schema file not found: %s", c.SchemaPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.SchemaPath == "" {
		result.SchemaPath = defaults.SchemaPath
	}
	if len(result.Codes) == 0 {
		result.Codes = defaults.Codes
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.MaxParallel == 0 {
		result.MaxParallel = defaults.MaxParallel
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
