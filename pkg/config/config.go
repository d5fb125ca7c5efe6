// Package config loads tasker settings from defaults, an optional TOML
// file, a .env file and TASKER_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Store drivers.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Defaults.
const (
	DefaultStorePath   = "task_list.json"
	DefaultSQLitePath  = "task_list.db"
	DefaultLockTimeout = 5 * time.Second
)

// DefaultConfigFiles are looked up in the working directory when no
// config path is given.
var DefaultConfigFiles = []string{"tasker.toml", ".tasker.toml"}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string `toml:"env"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// Storage
	Store StoreConfig `toml:"store"`

	// ConfigFile is the TOML file that was read, if any.
	ConfigFile string `toml:"-"`
}

// StoreConfig selects and locates the task store.
type StoreConfig struct {
	Driver      string   `toml:"driver"`
	Path        string   `toml:"path"`
	SQLitePath  string   `toml:"sqlite_path"`
	LockTimeout Duration `toml:"lock_timeout"`
}

// Duration is a time.Duration written as a Go duration string ("2s").
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText renders the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		AppEnv:    "production",
		LogLevel:  "warn",
		LogFormat: "text",
		Store: StoreConfig{
			Driver:      DriverFile,
			Path:        DefaultStorePath,
			SQLitePath:  DefaultSQLitePath,
			LockTimeout: Duration{DefaultLockTimeout},
		},
	}
}

// Load builds the configuration. configPath names a TOML file that must
// exist; when empty the default config files are tried and skipped if absent.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	path, err := findConfigFile(configPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
	}

	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	loadFromEnv(cfg)

	return cfg, nil
}

func findConfigFile(configPath string) (string, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return "", fmt.Errorf("config file %s: %w", configPath, err)
		}
		return configPath, nil
	}
	for _, name := range DefaultConfigFiles {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return name, nil
		}
	}
	return "", nil
}

func loadFromEnv(cfg *Config) {
	cfg.AppEnv = getEnv("TASKER_ENV", cfg.AppEnv)
	cfg.LogLevel = getEnv("TASKER_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("TASKER_LOG_FORMAT", cfg.LogFormat)
	cfg.Store.Driver = getEnv("TASKER_STORE_DRIVER", cfg.Store.Driver)
	cfg.Store.Path = getEnv("TASKER_STORE_PATH", cfg.Store.Path)
	cfg.Store.SQLitePath = getEnv("TASKER_SQLITE_PATH", cfg.Store.SQLitePath)
	cfg.Store.LockTimeout.Duration = getDurationEnv("TASKER_LOCK_TIMEOUT", cfg.Store.LockTimeout.Duration)
}

// Validate checks the settings that cannot be repaired by defaults.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverFile, DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("%w: unknown store driver %q (valid: file, sqlite, memory)", ErrInvalidConfig, c.Store.Driver)
	}
	if c.Store.Driver == DriverFile && strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("%w: store path is empty", ErrInvalidConfig)
	}
	if c.Store.Driver == DriverSQLite && strings.TrimSpace(c.Store.SQLitePath) == "" {
		return fmt.Errorf("%w: sqlite path is empty", ErrInvalidConfig)
	}
	if c.Store.LockTimeout.Duration <= 0 {
		return fmt.Errorf("%w: lock timeout must be positive, got %s", ErrInvalidConfig, c.Store.LockTimeout.Duration)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q (valid: text, json)", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// LockTimeout returns the store lock timeout.
func (c *Config) LockTimeout() time.Duration {
	return c.Store.LockTimeout.Duration
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
