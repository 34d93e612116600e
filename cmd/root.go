// Package cmd contains all CLI commands for delayspottr.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/micutio/delayspottr/internal/config"
	"github.com/micutio/delayspottr/internal/logging"
)

const appName = "delayspottr"

var (
	cfgFile  string
	verbose  bool
	logFile  string
	cfg      *config.Config
	logger   *slog.Logger
	logClose func()
	version  = "dev"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Explore airline on-time performance data",
	Long: `delayspottr fetches one day of flight on-time performance data from the
aviationstack API, classifies every flight by delay severity and renders the
result as a table with summary statistics.

Example usage:
  delayspottr fetch --flight-date 2024-01-01        # fetch and display
  delayspottr fetch --flight-date 2024-01-01 --tui  # browse interactively
  delayspottr parse flights.json                    # read a local data file`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logClose != nil {
			logClose()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .delayspottr.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to this file")
}

// initConfig reads in config file and ENV variables if set and builds the logger.
func initConfig() error {
	var err error

	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if verbose {
		level = slog.LevelDebug
	}

	file := cfg.Logging.File
	if logFile != "" {
		file = logFile
	}

	logger, logClose, err = logging.New(level, file)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	logger.Debug("configuration loaded",
		"base_url", cfg.API.BaseURL,
		"max_retries", cfg.API.MaxRetries,
		"timeout_seconds", cfg.API.TimeoutSeconds,
	)

	return nil
}
