// Package config provides configuration management for chaincalc.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the chaincalc configuration. It controls how the CLI
// renders results; it never stores calculator state.
type Config struct {
	// General settings
	Verbose bool `yaml:"verbose,omitempty"`

	// Output settings
	Precision int    `yaml:"precision,omitempty"`
	Format    string `yaml:"format,omitempty"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Precision: 2,
		Format:    "text",
	}
}

// Load loads configuration from file, falling back to defaults.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	// If no config file specified, try default locations
	if configFile == "" {
		candidates := []string{".chaincalc.yaml", ".chaincalc.yml"}
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				configFile = candidate

				break
			}
		}
	}

	// If config file exists, load it
	if configFile != "" {
		if err := cfg.loadFromFile(configFile); err != nil {
			return nil, err
		}
	}

	// Validate and set defaults
	cfg.validate()

	return cfg, nil
}

func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse YAML config file: %w", err)
	}

	return nil
}

// validate ensures the configuration has sensible values.
func (c *Config) validate() {
	if c.Precision < 0 {
		c.Precision = 0
	}

	if c.Format != "text" && c.Format != "json" {
		c.Format = "text"
	}
}

// Save saves the configuration to a YAML file with a commented header.
func (c *Config) Save(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML config: %w", err)
	}

	header := `# chaincalc configuration file
# precision: fractional digits in rendered results (negative values clamp to 0)
# format: text or json
`

	content := append([]byte(header), data...)
	if err := os.WriteFile(filename, content, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
