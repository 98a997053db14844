// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/displaymode/internal/logging"
)

// Config is the on-disk configuration.
type Config struct {
	// Backend is auto, windows, x11, macos or simulated.
	Backend string `yaml:"backend"`
	// Device is the preferred device name for commands run without --device.
	Device string `yaml:"device"`
	// Format is the default output format (yaml or json).
	Format string `yaml:"format"`
	// ConfirmApply prompts before apply changes the display.
	ConfirmApply *bool `yaml:"confirm_apply"`
	// Elevate relaunches with administrator rights where the OS requires it.
	Elevate *bool          `yaml:"elevate"`
	Log     logging.Config `yaml:"log"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	yes := true
	elevate := true
	return &Config{
		Backend:      "auto",
		Format:       "yaml",
		ConfirmApply: &yes,
		Elevate:      &elevate,
		Log:          logging.Config{Level: "warn"},
	}
}

// ShouldConfirm reports whether apply asks before changing the display.
func (c *Config) ShouldConfirm() bool {
	return c.ConfirmApply == nil || *c.ConfirmApply
}

// ShouldElevate reports whether the process may relaunch itself elevated.
func (c *Config) ShouldElevate() bool {
	return c.Elevate == nil || *c.Elevate
}

// DefaultPath returns ~/.config/displaymode/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "displaymode", "config.yaml"), nil
}

// Load reads the file at path over the defaults. A missing file is not an
// error when path is the default location.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Backend {
	case "", "auto", "windows", "x11", "macos", "simulated":
	default:
		return fmt.Errorf("unknown backend %q (use auto, windows, x11, macos or simulated)", c.Backend)
	}
	switch c.Format {
	case "", "yaml", "json":
	default:
		return fmt.Errorf("unsupported format %q (use yaml or json)", c.Format)
	}
	return nil
}
