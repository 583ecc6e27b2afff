// Package config the biscuit configuration
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shiroyk/biscuit/api"
	"gopkg.in/yaml.v3"
)

// DefaultPath the default configuration file path
const DefaultPath = "~/.config/biscuit/config.yml"

// ErrConfigExists the configuration file is already exists
var ErrConfigExists = errors.New("configuration file is already exists")

type configKey struct{}

// NewContext returns a context that contains the given Config.
func NewContext(ctx context.Context, config *Config) context.Context {
	return context.WithValue(ctx, configKey{}, config)
}

// FromContext returns the Config stored in ctx by NewContext, or the default
// Config if there is none.
func FromContext(ctx context.Context) *Config {
	if config, ok := ctx.Value(configKey{}).(*Config); ok && config != nil {
		return config
	}
	return DefaultConfig()
}

// Config The biscuit configuration
type Config struct {
	// API
	API api.Options `yaml:"api"`

	// Log
	Log LogOptions `yaml:"log"`
}

// LogOptions the logger configuration
type LogOptions struct {
	Level   string `yaml:"level"`
	NoColor bool   `yaml:"no_color"`
}

// DefaultConfig The default configuration
func DefaultConfig() *Config {
	return &Config{
		API: api.Options{
			Timeout: api.DefaultTimeout,
			Address: api.DefaultAddress,
		},
		Log: LogOptions{
			Level: "info",
		},
	}
}

// ReadConfig read configuration from the file.
// If the configuration file is not existing then create it with default configuration.
func ReadConfig(path string) (*Config, error) {
	file, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if _, err = os.Stat(file); errors.Is(err, os.ErrNotExist) {
		config := DefaultConfig()
		if err = WriteConfig(file, config); err != nil {
			return nil, err
		}
		return config, nil
	}

	bytes, err := os.ReadFile(file) //nolint:gosec
	if err != nil {
		return nil, err
	}
	config := DefaultConfig()
	if err = yaml.Unmarshal(bytes, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", file, err)
	}
	return config, nil
}

// WriteConfig writes the configuration to the file, the file must not exist.
func WriteConfig(path string, config *Config) error {
	file, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if _, err = os.Stat(file); err == nil {
		return ErrConfigExists
	}
	if err = os.MkdirAll(filepath.Dir(file), os.ModePerm); err != nil {
		return err
	}
	bytes, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(file, bytes, 0o600)
}

// ExpandPath expands path "." or "~"
func ExpandPath(path string) (string, error) {
	// expand local directory
	if strings.HasPrefix(path, ".") {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, path[1:]), nil
	}
	// expand ~ as shortcut for home directory
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}
