package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/todoey/internal/config/colors"
	"github.com/thenoetrevino/todoey/internal/models"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

const (
	// EnvDataDir overrides storage.path
	EnvDataDir = "TODOEY_DATA_DIR"

	// EnvThemeFile points at a YAML file whose theme section is merged over the config
	EnvThemeFile = "TODOEY_THEME_FILE"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Storage    StorageConfig      `yaml:"storage"`
	Log        LogConfig          `yaml:"log"`
	Categories CategoryConfig     `yaml:"categories"`
	Theme      colors.ColorScheme `yaml:"theme"`
}

// StorageConfig selects the durable medium behind the data store
type StorageConfig struct {
	Backend string `yaml:"backend"` // memory | file | sqlite
	Path    string `yaml:"path"`    // data directory
	Codec   string `yaml:"codec"`   // json | yaml
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
}

// CategoryConfig controls defaults for new categories
type CategoryConfig struct {
	DefaultColor string `yaml:"default_color"`
	RandomColor  bool   `yaml:"random_color"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile merges the theme from TODOEY_THEME_FILE, if set and readable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Debug("theme file not readable", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}
	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("ignoring malformed theme file", "path", themeFile, "error", err)
		return
	}
	config.Theme.MergeFrom(themeConfig.Theme)
}

// Load loads config from the user's config directory.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		return finish(&Config{})
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return finish(&Config{})
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return finish(&config)
}

// finish applies environment overrides and defaults, then validates
func finish(config *Config) (*Config, error) {
	loadThemeFile(config)
	if dir := os.Getenv(EnvDataDir); dir != "" {
		config.Storage.Path = dir
	}
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveFile(configPath)
}

// SaveFile writes the config to path, creating its directory
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "todoey", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "todoey", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendSQLite
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "~/.todoey"
	}
	if c.Storage.Codec == "" {
		c.Storage.Codec = "json"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Categories.DefaultColor == "" {
		c.Categories.DefaultColor = models.DefaultColorTag
	}
	c.Theme.ApplyDefaults()
}

// Validate rejects values the application cannot act on
func (c *Config) Validate() error {
	switch strings.ToLower(c.Storage.Backend) {
	case BackendMemory, BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}
	switch strings.ToLower(c.Storage.Codec) {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("%w: unknown storage codec %q", ErrInvalidConfig, c.Storage.Codec)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// DataDir returns storage.path with a leading ~ expanded
func (c *Config) DataDir() (string, error) {
	path := c.Storage.Path
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path, nil
}

// ParseLevel converts a log.level value into a slog level
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
