package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.sudomsg.com/counters"
	"go.sudomsg.com/counters/internal/ticker"
)

var cfgFile string

// NewRootCmd creates the countdown command.
func NewRootCmd() *cobra.Command {
	var interval time.Duration

	rootCmd := &cobra.Command{
		Use:           "countdown <duration>",
		Short:         "Count down a duration in the terminal",
		Long:          `Run a countdown timer, printing the remaining time each tick and exiting once it expires.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := time.ParseDuration(args[0])
			if err != nil {
				return fmt.Errorf("could not parse duration %q: %w", args[0], err)
			}

			if !cmd.Flags().Changed("interval") {
				interval = viper.GetDuration("interval")
			}
			if interval <= 0 {
				return fmt.Errorf("interval must be positive, got %v", interval)
			}

			return run(d, interval)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default locations: $XDG_CONFIG_HOME/countdown/config.yaml or ~/.config/countdown/config.yaml)")
	rootCmd.Flags().DurationVar(&interval, "interval", time.Second, "how often to print the remaining time")

	// PersistentPreRun handles configuration initialization
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initConfig()
	}

	return rootCmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	viper.SetDefault("interval", time.Second)

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find config file in standard locations
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "countdown"))
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get user home directory: %w", err)
			}
			viper.AddConfigPath(filepath.Join(home, ".config", "countdown"))
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("COUNTDOWN")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return nil
}

func run(d, interval time.Duration) error {
	cd := counters.NewCountdown(d)
	tick := ticker.New(cd, interval)
	defer tick.Stop()

	log.Info("Counting down", "duration", d)
	tick.Start()

	for !tick.Expired() {
		<-tick.C
		log.Info("Remaining", "left", tick.Remaining().Round(interval))
	}

	log.Info("Done", "elapsed", cd.Elapsed().Round(interval))
	return nil
}
