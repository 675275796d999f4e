// Package config holds compile-time limits and the optional tova.yaml tool
// configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level tova.yaml configuration.
type Config struct {
	// Color controls diagnostic coloring: "auto" (default, color when stdout
	// is a terminal), "always", or "never".
	Color string `yaml:"color,omitempty"`

	// MaxErrors overrides the per-unit diagnostic cap. Zero keeps the
	// built-in default.
	MaxErrors int `yaml:"max_errors,omitempty"`

	// DumpAST prints the AST tree after every successful parse, as if
	// --dump-ast were always passed.
	DumpAST bool `yaml:"dump_ast,omitempty"`
}

// Default returns the configuration used when no tova.yaml is present.
func Default() *Config {
	return &Config{Color: "auto", MaxErrors: MaxErrors}
}

// Load reads and validates a tova.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values and fills in defaults for omitted ones.
func (c *Config) Validate() error {
	switch c.Color {
	case "":
		c.Color = "auto"
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	if c.MaxErrors < 0 {
		return fmt.Errorf("max_errors must not be negative")
	}
	if c.MaxErrors == 0 {
		c.MaxErrors = MaxErrors
	}
	return nil
}
