package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	AppName               = "reminder-tracker"
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "reminders.sqlite"
	DefaultLogName        = "debug.log"
	DefaultLogLevel       = "info"
	DefaultStorageKey     = "reminders"
)

// Config holds the settings read from the config file.
type Config struct {
	DBPath  string `toml:"db_path"`
	LogPath string `toml:"log_path"`
	// LogLevel is any level understood by zerolog, e.g. debug or warn.
	LogLevel   string `toml:"log_level"`
	StorageKey string `toml:"storage_key"`
}

// Dir returns the directory holding the config file and, by default, the database and log.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}

	return filepath.Join(base, AppName)
}

// ResolveConfigPath returns the default location of the config file.
func ResolveConfigPath() string {
	return filepath.Join(Dir(), DefaultConfigFileName)
}

// LoadOrCreate reads the config file at path, writing one with the defaults if it doesn't exist.
// Relative db and log paths are resolved against the directory of the config file.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}

		return cfg.resolve(filepath.Dir(path)), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing config %s: %w", path, err)
	}

	return cfg.resolve(filepath.Dir(path)), nil
}

func (c Config) resolve(dir string) Config {
	defaults := defaultConfig()

	if c.DBPath == "" {
		c.DBPath = defaults.DBPath
	}

	if c.LogPath == "" {
		c.LogPath = defaults.LogPath
	}

	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}

	if c.StorageKey == "" {
		c.StorageKey = defaults.StorageKey
	}

	if !filepath.IsAbs(c.DBPath) {
		c.DBPath = filepath.Join(dir, c.DBPath)
	}

	if !filepath.IsAbs(c.LogPath) {
		c.LogPath = filepath.Join(dir, c.LogPath)
	}

	return c
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating config dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing config %s: %w", path, err)
	}

	return nil
}

func defaultConfig() Config {
	return Config{
		DBPath:     DefaultDBName,
		LogPath:    DefaultLogName,
		LogLevel:   DefaultLogLevel,
		StorageKey: DefaultStorageKey,
	}
}
