// Package models defines data structures for profiles, declarations and configuration.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for reading a FIP.
// Defaults are compiled in; a YAML file passed via --config overrides them.
type Config struct {
	// Mirrors are nanopublication servers tried, in order, after the
	// publication's own URI. Candidate URL: {mirror}/{id}.{format}
	Mirrors []string `yaml:"mirrors"`

	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// MaxDeclarations caps how many declarations are fetched from an index.
	// Excess entries are ignored, not an error.
	MaxDeclarations int `yaml:"max_declarations"`
}

// DefaultConfig returns the built-in configuration matching the public
// nanopublication network.
func DefaultConfig() *Config {
	return &Config{
		Mirrors: []string{
			"https://np.petapico.org",
			"https://server.np.trustyuri.net",
			"https://w3id.org/np",
		},
		TimeoutSeconds:  30,
		MaxDeclarations: 50,
	}
}

// LoadConfig reads a YAML config file and merges it over the defaults.
// Fields left out of the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(override.Mirrors) > 0 {
		cfg.Mirrors = override.Mirrors
	}
	if override.TimeoutSeconds > 0 {
		cfg.TimeoutSeconds = override.TimeoutSeconds
	}
	if override.MaxDeclarations > 0 {
		cfg.MaxDeclarations = override.MaxDeclarations
	}

	return cfg, nil
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
