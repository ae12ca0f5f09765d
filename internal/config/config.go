// Package config handles the configuration directory, the optional
// config.yaml, and environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "stacked"

	// ConfigFile is the optional configuration filename.
	ConfigFile = "config.yaml"

	// DefaultDataFile is the task data file path, relative to the
	// working directory.
	DefaultDataFile = "data/stacked.txt"

	// EnvDataFile overrides the data file path.
	EnvDataFile = "STACKED_DATA_FILE"

	// EnvDebug enables debug logging when set to a non-empty value.
	EnvDebug = "STACKED_DEBUG"
)

// Config holds configuration paths and settings.
//
// Precedence, lowest to highest: built-in defaults, config.yaml in the
// config directory, environment variables, command-line flags (applied by
// the caller).
type Config struct {
	// Dir is the configuration directory path.
	Dir string `yaml:"-"`

	// DataFile is the task data file path.
	DataFile string `yaml:"data_file"`

	// Quiet suppresses the task-total line after mutations.
	Quiet bool `yaml:"quiet"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
}

// New creates a Config from the default or specified config directory,
// merging config.yaml (if present) and environment overrides.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{Dir: dir, DataFile: DefaultDataFile}

	if err := loadFile(filepath.Join(dir, ConfigFile), cfg); err != nil {
		return nil, err
	}

	if v := os.Getenv(EnvDataFile); v != "" {
		cfg.DataFile = v
	}
	if os.Getenv(EnvDebug) != "" {
		cfg.Debug = true
	}

	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// loadFile merges a yaml config file into cfg. A missing file is not an
// error; a malformed one is.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// EnsureDir creates the config directory if it doesn't exist.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
