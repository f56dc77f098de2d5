// Package config loads the kkll driver settings and operation script from
// YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"kk_linked_lists/logging"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Operations a script step may name.
const (
	OpAppend  = "append"
	OpInsert  = "insert"
	OpReverse = "reverse"
	OpPrint   = "print"
)

// ValidOps lists the operations a script step may use.
var ValidOps = []string{OpAppend, OpInsert, OpReverse, OpPrint}

// ValidFormats lists the supported log formats.
var ValidFormats = []string{logging.FormatPlain, logging.FormatJSON}

var ErrInvalid = errors.New("invalid config")

// Config holds the driver configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`

	// Script is run in order against a fresh list.
	Script []Step `yaml:"script,omitempty"`
}

// LoggingConfig configures the diagnostics logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // plain, json
}

// Step is one list operation. Value is used by append and insert, Position
// only by insert.
type Step struct {
	Op       string `yaml:"op"`
	Value    any    `yaml:"value,omitempty"`
	Position *int   `yaml:"position,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatPlain,
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate validates the configuration. A negative insert position is
// accepted here; the list itself reports it when the step runs.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level)
	}
	if !contains(ValidFormats, c.Logging.Format) {
		return fmt.Errorf("%w: log format %q (valid: %v)", ErrInvalid, c.Logging.Format, ValidFormats)
	}

	for i, s := range c.Script {
		if !contains(ValidOps, s.Op) {
			return fmt.Errorf("%w: step %d: unknown op %q (valid: %v)", ErrInvalid, i, s.Op, ValidOps)
		}
		if s.Op == OpInsert && s.Position == nil {
			return fmt.Errorf("%w: step %d: insert needs a position", ErrInvalid, i)
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
