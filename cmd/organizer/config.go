package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jamesainslie/organizer/pkg/organizer/config"
	"github.com/jamesainslie/organizer/pkg/organizer/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage organizer configuration settings.

Configuration is loaded from:
  1. $XDG_CONFIG_HOME/organizer/config.yaml (if set)
  2. ~/.config/organizer/config.yaml

Environment variables can override config file settings using the
ORGANIZER_ prefix:
  ORGANIZER_OUTPUT=json
  ORGANIZER_DRY_RUN=true`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration settings from all sources.`,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Long:  `Display the path to the configuration file.`,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// runConfigShow displays the current configuration.
func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Printf("Config file: %s\n\n", configFile)
	} else {
		fmt.Println("Config file: (using defaults, no file found)")
		fmt.Println()
	}

	logPath := cfg.Logging.Path
	if logPath == "" {
		logPath = logging.DefaultLogPath()
	}

	fmt.Println("Current Configuration:")
	fmt.Println("----------------------")
	fmt.Printf("dry_run:        %v\n", cfg.DryRun)
	fmt.Printf("output:         %s\n", cfg.Output)
	fmt.Printf("quiet:          %v\n", cfg.Quiet)
	fmt.Printf("logging.level:  %s\n", cfg.Logging.Level)
	fmt.Printf("logging.path:   %s\n", logPath)
	return nil
}

// runConfigPath prints the expected config file location.
func runConfigPath(cmd *cobra.Command, args []string) error {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Println(configFile)
		return nil
	}

	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".config")
	}
	fmt.Println(filepath.Join(dir, "organizer", "config.yaml"))
	return nil
}
