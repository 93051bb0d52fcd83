package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "showroom"
	configFile = "config.yaml"
)

// Config holds user preferences. Command-line flags take precedence.
type Config struct {
	// Theme is "light", "dark" or "auto".
	Theme string `yaml:"theme"`
	// Data points at a catalog file; empty means the built-in catalog.
	Data string `yaml:"data,omitempty"`
	// LogLevel is used when neither the flag nor SHOWROOM_LOG_LEVEL is set.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the preferences used when no file exists.
func Default() Config {
	return Config{Theme: "auto"}
}

// GetConfigDir returns the platform configuration directory:
//   - Linux: $XDG_CONFIG_HOME/showroom or $HOME/.config/showroom
//   - macOS: $HOME/.config/showroom
//   - Windows: %LOCALAPPDATA%\showroom
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, appName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(home, "AppData", "Local", appName), nil
	case "darwin":
	default:
		if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
			return filepath.Join(dir, appName), nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// GetConfigPath returns the full path to config.yaml.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads preferences from path. A missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Theme == "" {
		cfg.Theme = Default().Theme
	}
	return cfg, nil
}

// LoadDefault loads preferences from GetConfigPath().
func LoadDefault() (Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return Default(), err
	}
	return Load(path)
}
