// Package config loads the optional tool configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the tools look for a configuration file.
const DefaultPath = ".dxffix.yaml"

// Config holds the tool configuration
type Config struct {
	// Units the incoming drawings are drawn in (mm, cm or in)
	Units string `yaml:"units"`

	// Tolerance for Z-plane and endpoint comparisons
	Tolerance float64 `yaml:"tolerance"`

	// Suffix appended to the input name when no output name is given
	Suffix string `yaml:"suffix"`

	// Watch mode settings
	Watch WatchConfig `yaml:"watch"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	// Debounce interval between a file event and processing, e.g. "500ms"
	Debounce string `yaml:"debounce"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Units:     "mm",
		Tolerance: 1e-6,
		Suffix:    "-fixed",
		Watch: WatchConfig{
			Debounce: "500ms",
		},
	}
}

// Load loads the configuration from a YAML file. A missing file yields the
// defaults.
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

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative")
	}
	if c.Suffix == "" {
		return fmt.Errorf("suffix must not be empty")
	}
	if _, err := c.DebounceInterval(); err != nil {
		return err
	}
	return nil
}

// DebounceInterval parses the watch debounce setting
func (c *Config) DebounceInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("invalid watch debounce: %w", err)
	}
	return d, nil
}
