package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Shell    ShellConfig    `mapstructure:"shell"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Playback PlaybackConfig `mapstructure:"playback"`
}

// CatalogConfig selects the video catalog
type CatalogConfig struct {
	Path   string `mapstructure:"path"`   // Empty uses the built-in sample catalog
	Strict bool   `mapstructure:"strict"` // Reject duplicate video IDs instead of replacing
}

// ShellConfig holds command shell configuration
type ShellConfig struct {
	Prompt       string `mapstructure:"prompt"`
	Suggestions  bool   `mapstructure:"suggestions"`  // "Did you mean" hints on empty searches
	HistoryFile  string `mapstructure:"history_file"` // Empty keeps history in memory
	HistoryLimit int    `mapstructure:"history_limit" validate:"gte=0"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level" validate:"omitempty,oneof=DEBUG INFO WARN WARNING ERROR debug info warn warning error"`
}

// PlaybackConfig holds playback configuration
type PlaybackConfig struct {
	Seed uint64 `mapstructure:"seed"` // 0 seeds random picks from the clock
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Shell: ShellConfig{
			Prompt:       "> ",
			Suggestions:  true,
			HistoryFile:  defaultHistoryPath(),
			HistoryLimit: 500,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultDataDir returns the per-user data directory for the current OS
func defaultDataDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "reel")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "reel")
	}
}

func defaultLogPath() string {
	return filepath.Join(defaultDataDir(), "reel.log")
}

func defaultHistoryPath() string {
	return filepath.Join(defaultDataDir(), "history.db")
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "reel")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "reel")
	}
}

// LoadConfig loads configuration from file and environment. An empty path
// searches the default locations; a missing file there is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	setDefaults(v, cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. REEL_LOGGING_LEVEL
	v.SetEnvPrefix("REEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so environment overrides reach Unmarshal
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("catalog.path", cfg.Catalog.Path)
	v.SetDefault("catalog.strict", cfg.Catalog.Strict)
	v.SetDefault("shell.prompt", cfg.Shell.Prompt)
	v.SetDefault("shell.suggestions", cfg.Shell.Suggestions)
	v.SetDefault("shell.history_file", cfg.Shell.HistoryFile)
	v.SetDefault("shell.history_limit", cfg.Shell.HistoryLimit)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("playback.seed", cfg.Playback.Seed)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
