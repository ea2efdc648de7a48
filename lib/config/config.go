// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable consulted by [Load].
const EnvVar = "RUBYCOM_CONFIG"

// Output is the rendering format for resolution results.
type Output string

const (
	// Text is a human-readable listing.
	Text Output = "text"
	// JSON is one JSON document per result.
	JSON Output = "json"
	// CBOR is deterministic CBOR written to stdout.
	CBOR Output = "cbor"
)

// Outputs lists every accepted output format.
var Outputs = []Output{Text, JSON, CBOR}

// Config is the rubycom configuration.
type Config struct {
	// Manifest is the command-tree manifest used when a command does not
	// receive --manifest.
	Manifest string `yaml:"manifest"`

	// ReservedNames are command names the manifest loader skips, such as
	// helper entries shared by every command file.
	ReservedNames []string `yaml:"reserved_names"`

	// Output is the default output format for resolve.
	// Default: text
	Output Output `yaml:"output"`

	// LogLevel is one of debug, info, warn, error.
	// Default: info
	LogLevel string `yaml:"log_level"`
}

// Default returns the default configuration. Loaded files are decoded
// on top of it, so fields absent from the file keep these values.
func Default() *Config {
	return &Config{
		Output:   Text,
		LogLevel: "info",
	}
}

// Load loads configuration from the RUBYCOM_CONFIG environment variable.
// It fails when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your rubycom.yaml config file, or use --config flag", EnvVar)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path and validates it.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Select returns the configuration named by path, or by RUBYCOM_CONFIG
// when path is empty, or [Default] when neither is set.
func Select(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}
	if os.Getenv(EnvVar) != "" {
		return Load()
	}
	return Default(), nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, c)
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Manifest = expandVars(c.Manifest, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns, checking vars
// before the process environment.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(Outputs, c.Output) {
		errs = append(errs, fmt.Errorf("output must be one of: %v (got %q)", Outputs, c.Output))
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	for i, name := range c.ReservedNames {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("reserved_names[%d] is empty", i))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Level parses LogLevel into a slog level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level must be one of: debug, info, warn, error (got %q)", c.LogLevel)
	}
	return level, nil
}

// Reserved reports whether name is one of the reserved command names.
func (c *Config) Reserved(name string) bool {
	return slices.Contains(c.ReservedNames, name)
}
