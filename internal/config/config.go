// Package config loads and saves the lifedays TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/theirongolddev/lifedays/internal/model"
)

// BirthDateEnv overrides the saved birth date when set.
const BirthDateEnv = "LIFEDAYS_BIRTHDATE"

// Config holds all lifedays configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Storage    StorageConfig    `toml:"storage"`
	Logging    LoggingConfig    `toml:"logging"`
}

// GeneralConfig holds the budget and default view.
type GeneralConfig struct {
	TotalDays   int    `toml:"total_days"`
	DefaultView string `toml:"default_view"`
	Timezone    string `toml:"timezone,omitempty"`
}

// AppearanceConfig holds theme and grid layout settings.
type AppearanceConfig struct {
	Theme       string `toml:"theme"`
	WeekColumns int    `toml:"week_columns"`
	DayColumns  int    `toml:"day_columns"`
}

// StorageConfig locates the SQLite store.
type StorageConfig struct {
	DBPath string `toml:"db_path,omitempty"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			TotalDays:   model.DefaultTotalDays,
			DefaultView: "week",
		},
		Appearance: AppearanceConfig{
			Theme:       "flexoki-dark",
			WeekColumns: 52,
			DayColumns:  73,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lifedays")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "lifedays")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Validate checks the invariants the calculator relies on.
func (c Config) Validate() error {
	var errs []error
	if c.General.TotalDays <= 0 {
		errs = append(errs, fmt.Errorf("general.total_days must be positive, got %d", c.General.TotalDays))
	}
	switch c.General.DefaultView {
	case "week", "day":
	default:
		errs = append(errs, fmt.Errorf("general.default_view must be week or day, got %q", c.General.DefaultView))
	}
	if c.General.Timezone != "" {
		if _, err := time.LoadLocation(c.General.Timezone); err != nil {
			errs = append(errs, fmt.Errorf("general.timezone: %w", err))
		}
	}
	if c.Appearance.WeekColumns <= 0 || c.Appearance.DayColumns <= 0 {
		errs = append(errs, errors.New("appearance columns must be positive"))
	}
	return errors.Join(errs...)
}

// Location returns the configured timezone, or UTC when unset.
func (c Config) Location() *time.Location {
	if c.General.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.General.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DBPath returns the store location, falling back to dataDefault.
func (c Config) DBPath(dataDefault string) string {
	if c.Storage.DBPath != "" {
		return c.Storage.DBPath
	}
	return dataDefault
}

// LogPath returns the log file location.
func (c Config) LogPath() string {
	if c.Logging.File != "" {
		return c.Logging.File
	}
	return filepath.Join(Dir(), "lifedays.log")
}

// BirthDateOverride returns the birth date from the environment, if any.
func BirthDateOverride() string {
	return os.Getenv(BirthDateEnv)
}
