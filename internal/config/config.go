// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds run settings that can be provided by a YAML file.
// Precedence is defaults < file < explicit flags; the flag layer is applied
// by the caller using pflag's Changed tracking.
type Config struct {
	Output    string `yaml:"output"`
	Delimiter string `yaml:"delimiter"`
	Threads   int    `yaml:"threads"`
	Top       int    `yaml:"top"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Output:    "-",
		Delimiter: "tab",
		Threads:   0,
		Top:       10,
	}
}

// Load reads path and overlays it on the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Delimiter != "tab" && cfg.Delimiter != "comma" {
		return fmt.Errorf("delimiter must be tab or comma, got %q", cfg.Delimiter)
	}
	if cfg.Threads < 0 {
		return fmt.Errorf("threads must be non-negative")
	}
	if cfg.Top < 1 {
		return fmt.Errorf("top must be >= 1")
	}
	return nil
}
