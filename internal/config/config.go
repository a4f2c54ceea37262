// Package config loads user configuration from
// $XDG_CONFIG_HOME/kanban/config.yaml, an optional .env file, and KANBAN_*
// environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Pranshu640/Kanban-Ticketing-System/internal/theme"
)

// Environment variables that override the config file
const (
	EnvDBPath    = "KANBAN_DB_PATH"
	EnvLogLevel  = "KANBAN_LOG_LEVEL"
	EnvTheme     = "KANBAN_THEME"
	EnvThemeFile = "KANBAN_THEME_FILE"
	EnvDemoSeed  = "KANBAN_DEMO_SEED"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig `yaml:"storage"`
	Log         LogConfig     `yaml:"log"`
	Demo        DemoConfig    `yaml:"demo"`
	KeyMappings KeyMappings   `yaml:"key_mappings"`

	// Theme is the theme id used when none has been chosen in the app yet
	Theme  string        `yaml:"theme"`
	Colors theme.Palette `yaml:"colors"`
}

// StorageConfig selects where the board is kept
type StorageConfig struct {
	// Path of the sqlite database. Empty means ~/.kanban/kanban.db
	Path string `yaml:"path"`
	// Memory keeps everything in memory for the life of the process
	Memory bool `yaml:"memory"`
}

// LogConfig controls the log file
type LogConfig struct {
	// Path of the log file. Empty means ~/.kanban/logs/kanban.log
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// DemoConfig controls the generated demo board
type DemoConfig struct {
	// SeedWhenEmpty fills a brand new store with demo tickets
	SeedWhenEmpty *bool `yaml:"seed_when_empty"`
	// Seed makes demo boards reproducible. Zero picks a random seed.
	Seed int64 `yaml:"seed"`
}

// ShouldSeed reports whether an empty store gets demo tickets
func (d DemoConfig) ShouldSeed() bool {
	return d.SeedWhenEmpty == nil || *d.SeedWhenEmpty
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	loadDotEnv(".env")

	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case errors.Is(readErr, fs.ErrNotExist):
			// defaults only
		default:
			return nil, fmt.Errorf("failed to read %s: %w", configPath, readErr)
		}
	}

	loadThemeFile(config)
	config.applyEnv()

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// SlogLevel maps Log.Level to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// loadDotEnv reads KEY=VALUE pairs from path without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		slog.Warn("failed to load env file", "path", path, "error", err)
	}
}

// loadThemeFile merges colors from the file named by KANBAN_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Colors theme.Palette `yaml:"colors"`
	}
	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.Colors.MergeFrom(themeConfig.Colors)
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Storage.Path = v
		c.Storage.Memory = false
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		c.Theme = v
	}
	if v := os.Getenv(EnvDemoSeed); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Demo.Seed = seed
		} else {
			slog.Warn("ignoring invalid demo seed", "value", v)
		}
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "kanban", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "kanban", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()

	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if !theme.Valid(c.Theme) {
		c.Theme = theme.DefaultID
	}
	if c.Colors.ID == "" {
		c.Colors.ID = c.Theme
	}
	c.Colors.ApplyDefaults()

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
