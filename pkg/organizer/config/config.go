// Package config loads organizer configuration from file and
// environment. Only ambient settings live here: the category table is
// fixed and is deliberately not configurable.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	// DryRun makes preview the default mode when no flag says otherwise.
	DryRun bool `mapstructure:"dry_run"`

	// Output selects the default report format (pretty, plain, json, tsv).
	Output string `mapstructure:"output"`

	// Quiet suppresses informational output.
	Quiet bool `mapstructure:"quiet"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// Load loads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/organizer/config.yaml
//   - $HOME/.config/organizer/config.yaml
//
// Environment variables are prefixed with ORGANIZER_
// (e.g., ORGANIZER_OUTPUT).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		v.AddConfigPath(filepath.Join(xdgConfigHome, "organizer"))
	}
	homeDir, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".config", "organizer"))
	}

	v.SetEnvPrefix("ORGANIZER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// setDefaults registers the default values on a viper instance. The
// root command shares these for its own viper binding.
func setDefaults(v *viper.Viper) {
	v.SetDefault("dry_run", false)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("quiet", false)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.path", "") // empty means logging.DefaultLogPath
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
