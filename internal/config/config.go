// Package config loads the cubekit configuration file, most importantly
// the user's library of named move sequences.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mstern/cubekit"
)

// Config is the on-disk configuration.
type Config struct {
	// Algorithms maps a name to a notation string, e.g.
	//   sexy: "R U Ri Ui"
	Algorithms map[string]string `yaml:"algorithms"`

	// ScrambleLength is the default scramble size for the CLI.
	ScrambleLength int `yaml:"scramble_length"`
}

// Default returns the built-in configuration used when no file exists.
func Default() *Config {
	return &Config{
		Algorithms: map[string]string{
			"sexy":         cubekit.FormatSequence(cubekit.SexyMove),
			"sledgehammer": cubekit.FormatSequence(cubekit.Sledgehammer),
		},
		ScrambleLength: 25,
	}
}

// DefaultPath returns the default config file path in the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubekit", "config.yaml"), nil
}

// Load reads and validates the config file at path. A missing file yields
// the defaults; a present but invalid file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates raw YAML config data.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.ScrambleLength <= 0 {
		return nil, fmt.Errorf("scramble_length must be positive, got %d", cfg.ScrambleLength)
	}

	// Every algorithm must parse as valid notation up front, so a typo is
	// caught at load time rather than mid-session.
	for name, seq := range cfg.Algorithms {
		if _, err := cubekit.ParseSequence(seq); err != nil {
			return nil, fmt.Errorf("algorithm %q: %w", name, err)
		}
	}

	return cfg, nil
}

// Algorithm resolves a named sequence into moves.
func (c *Config) Algorithm(name string) ([]cubekit.Move, error) {
	seq, ok := c.Algorithms[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q", name)
	}
	return cubekit.ParseSequence(seq)
}

// AlgorithmNames returns the configured algorithm names, sorted.
func (c *Config) AlgorithmNames() []string {
	names := make([]string, 0, len(c.Algorithms))
	for name := range c.Algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
