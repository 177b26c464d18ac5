package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/organizer/pkg/organizer/config"
	"github.com/jamesainslie/organizer/pkg/organizer/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "organizer <directory>",
		Short: "Organize files into type-based folders",
		Long: `Organizer classifies the files of a directory into subfolders by file
type (Images, Videos, Audio, Documents, Archives, Others) with
collision-safe moves and a plain-text move log.

Only the immediate children of the directory are organized; nothing is
recursed into. Apply runs write the performed moves to organizer.log in
the target directory.

Examples:
  organizer ~/Downloads            # Organize (moves files)
  organizer --dry ~/Downloads      # Preview without moving anything
  organizer -o json ~/Downloads    # Machine-readable report
  organizer log ~/Downloads        # Show the last run's move log`,
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: initLogging,
		RunE:              runOrganize,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/organizer/config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (pretty, plain, json, tsv)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")

	rootCmd.Flags().BoolP("dry", "d", false, "preview changes without moving files")
	rootCmd.Flags().Bool("preview", false, "alias for --dry")
	rootCmd.Flags().BoolP("run", "r", false, "actually move files (default if not specified)")
	rootCmd.Flags().Bool("apply", false, "alias for --run")

	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "organizer"))
		}
		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "organizer"))
		}
	}

	viper.SetEnvPrefix("ORGANIZER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("output", config.DefaultOutput)
	viper.SetDefault("dry_run", false)
	viper.SetDefault("logging.level", config.DefaultLogLevel)
	viper.SetDefault("logging.path", "")

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// initLogging wires the file logger before any command runs. Verbose
// mode additionally mirrors debug output to stderr.
func initLogging(cmd *cobra.Command, args []string) error {
	cfg := logging.Config{
		Level: viper.GetString("logging.level"),
		Path:  viper.GetString("logging.path"),
	}
	if getVerbose() {
		cfg.Level = "debug"
		cfg.ConsoleLevel = "debug"
	}
	if err := logging.Init(cfg); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printInfo prints a message if quiet mode is not enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
