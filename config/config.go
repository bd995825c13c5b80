// Package config handles application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	appName        = "kg3dnav"
	configFileName = "config.json"
)

// Window holds the main window geometry.
type Window struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Config represents the shell configuration. It covers chrome-level
// preferences only; visualization state belongs to the front-end.
type Config struct {
	// InstallID anonymously identifies this installation, assigned on
	// first run.
	InstallID string `json:"install_id"`
	LogLevel  string `json:"log_level,omitempty"` // debug, info, warn, error
	Window    Window `json:"window"`
	DevTools  bool   `json:"dev_tools,omitempty"`
}

// Load loads configuration from the config file.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, fmt.Errorf("get config path: %w", err)
	}
	return loadFrom(path)
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := cfg.saveTo(path); err != nil {
				slog.Warn("save initial config", "error", err)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

// Save persists the configuration to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return fmt.Errorf("get config path: %w", err)
	}
	return c.saveTo(path)
}

func (c *Config) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		InstallID: uuid.New().String(),
		LogLevel:  "info",
		Window:    Window{Width: 1280, Height: 800},
	}
}

// normalize fills in missing fields on configs written by hand or by
// older builds.
func (c *Config) normalize() {
	if c.InstallID == "" {
		c.InstallID = uuid.New().String()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Window.Width <= 0 {
		c.Window.Width = 1280
	}
	if c.Window.Height <= 0 {
		c.Window.Height = 800
	}
}

// SlogLevel maps the configured level name to a slog level. Unknown
// names fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, configFileName), nil
}
