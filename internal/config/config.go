// Package config handles reading and writing the policychat config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for config.yaml.
type Config struct {
	Version int          `yaml:"version"`
	Server  ServerConfig `yaml:"server"`
	Chat    ChatConfig   `yaml:"chat"`
	Log     LogConfig    `yaml:"log"`
}

// ServerConfig describes the backend the client talks to.
type ServerConfig struct {
	BaseURL    string `yaml:"base_url"`
	MaxResults int    `yaml:"max_results"` // result-count hint sent with every query
}

// ChatConfig controls conversation behaviour.
type ChatConfig struct {
	Greeting    string `yaml:"greeting"`     // seeded assistant message; empty disables seeding
	HistorySize int    `yaml:"history_size"` // recent-question list bound
}

// LogConfig controls the diagnostics log file.
type LogConfig struct {
	Path       string `yaml:"path"` // empty means <config dir>/policychat.log
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

const configFile = "config.yaml"

// DefaultGreeting is the assistant message a fresh conversation is seeded with.
const DefaultGreeting = "Hello! I'm your climate policy assistant. Ask me anything about the climate policy documents in the knowledge base."

// DefaultDir returns the per-user configuration directory,
// typically ~/.config/policychat.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(base, "policychat"), nil
}

// ReadConfig reads config.yaml from the given directory.
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// WriteConfig writes cfg to config.yaml in the given directory.
// Creates the directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// LogPath returns the effective diagnostics log path for cfg,
// falling back to policychat.log inside dir when unset.
func (c *Config) LogPath(dir string) string {
	if c.Log.Path != "" {
		return c.Log.Path
	}
	return filepath.Join(dir, "policychat.log")
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Server: ServerConfig{
			BaseURL:    "http://localhost:8000",
			MaxResults: 5,
		},
		Chat: ChatConfig{
			Greeting:    DefaultGreeting,
			HistorySize: 5,
		},
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}
