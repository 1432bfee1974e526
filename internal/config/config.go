// Package config loads the embedcheck CLI configuration from global,
// local, and environment sources.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the embedcheck CLI tool configuration.
type Configuration struct {
	// DefaultType is the schema used when --type is not given.
	DefaultType string `koanf:"default_type" validate:"required,oneof=load settings target page filter filtersContainer"`
	// Color enables colored pass/fail output (NO_COLOR still wins).
	Color bool `koanf:"color"`
	// FailFast stops batch validation at the first invalid document.
	FailFast bool `koanf:"fail_fast"`
	// ShowProgress shows a spinner while validating multiple files.
	ShowProgress bool `koanf:"show_progress"`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"default_type":  "load",
		"color":         true,
		"fail_fast":     false,
		"show_progress": true,
	}
}

// Load loads configuration from global, local, and environment sources.
// Priority: environment variables > local config > global config > defaults.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".embedcheck", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Environment variables win
	k.Load(env.Provider("EMBEDCHECK_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: EMBEDCHECK_DEFAULT_TYPE -> default_type
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "EMBEDCHECK_"))
}
