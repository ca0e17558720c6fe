package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

const (
	DefaultServerAddr   = "127.0.0.1:7420"
	DefaultWriteTimeout = 5 * time.Second
	DefaultRedisPrefix  = "tablero:"
)

// Environment variables that override the config file
const (
	EnvStorageBackend = "TABLERO_STORAGE_BACKEND"
	EnvStoragePath    = "TABLERO_STORAGE_PATH"
	EnvRedisURL       = "TABLERO_REDIS_URL"
	EnvServerAddr     = "TABLERO_SERVER_ADDR"
	EnvThemeFile      = "TABLERO_THEME_FILE"
)

// ErrUnknownBackend is returned for an unsupported storage.backend
var ErrUnknownBackend = errors.New("unknown storage backend")

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig   `yaml:"storage"`
	Columns     []models.Column `yaml:"columns"`
	Server      ServerConfig    `yaml:"server"`
	KeyMappings KeyMappings     `yaml:"key_mappings"`
	ColorScheme ColorScheme     `yaml:"theme"`
}

// StorageConfig selects and configures the persistence backend
type StorageConfig struct {
	Backend      string        `yaml:"backend"`
	Path         string        `yaml:"path"`
	RedisURL     string        `yaml:"redis_url"`
	RedisPrefix  string        `yaml:"redis_prefix"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// ServerConfig configures the HTTP surface
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns a config with every default applied
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges the theme from TABLERO_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("failed to parse theme file", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme)
}

// loadDotEnv reads a .env file from the working directory if there is
// one. Variables already set in the environment win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}
}

// applyEnv overrides file values with environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvStorageBackend); v != "" {
		c.Storage.Backend = strings.ToLower(v)
	}
	if v := os.Getenv(EnvStoragePath); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(EnvRedisURL); v != "" {
		c.Storage.RedisURL = v
	}
	if v := os.Getenv(EnvServerAddr); v != "" {
		c.Server.Addr = v
	}
}

// Load loads config from the user's config directory.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	loadDotEnv()

	var config Config

	configPath, err := Path()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case errors.Is(readErr, fs.ErrNotExist):
			// defaults only
		default:
			return nil, fmt.Errorf("failed to read %s: %w", configPath, readErr)
		}
	}

	config.applyEnv()
	loadThemeFile(&config)
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks values that have no sensible fallback
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("%w: %q (must be: sqlite, redis, memory)", ErrUnknownBackend, c.Storage.Backend)
	}

	seen := make(map[string]bool, len(c.Columns))
	for _, col := range c.Columns {
		if col.ID == "" {
			return errors.New("column id cannot be empty")
		}
		if seen[string(col.ID)] {
			return fmt.Errorf("duplicate column id %q", col.ID)
		}
		seen[string(col.ID)] = true
	}
	return nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tablero", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tablero", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendSQLite
	}
	if c.Storage.RedisPrefix == "" {
		c.Storage.RedisPrefix = DefaultRedisPrefix
	}
	if c.Storage.WriteTimeout <= 0 {
		c.Storage.WriteTimeout = DefaultWriteTimeout
	}
	if len(c.Columns) == 0 {
		c.Columns = models.DefaultColumns()
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
