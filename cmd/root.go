// Package cmd provides the command-line interface for the selgrab application.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/connorhough/selgrab/internal/config"
	"github.com/connorhough/selgrab/internal/logging"
	"github.com/connorhough/selgrab/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	debug   bool
	rootCmd *cobra.Command
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.go. It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) error {
	if rootCmd == nil {
		rootCmd = NewRootCmd()
	}
	return rootCmd.ExecuteContext(ctx)
}

// NewRootCmd creates and returns the root command for selgrab
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "selgrab",
		Short: "Read the text selected in the foreground application",
		Long: `selgrab retrieves whatever is selected in the frontmost application,
using the accessibility API where the application supports it and a
clipboard swap around a synthetic copy keystroke where it does not.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default locations: $XDG_CONFIG_HOME/selgrab/config.yaml, ~/.config/selgrab/config.yaml, or ~/.selgrab.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newWatchCmd())

	// PersistentPreRun handles configuration initialization
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		level := viper.GetString(config.KeyLogLevel)
		if debug {
			level = "debug"
		}
		return logging.Setup(level, cmd.ErrOrStderr())
	}

	return rootCmd
}

// initConfig reads in .env, the config file and ENV variables if set.
func initConfig() error {
	if err := config.LoadDotenv(".env"); err != nil {
		return err
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find config file in standard locations
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "selgrab"))
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get user home directory: %w", err)
			}
			viper.AddConfigPath(filepath.Join(home, ".config", "selgrab"))
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("SELGRAB")
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		// Fall back to the home dotfile.
		if dotfile := homeDotfile(); dotfile != "" {
			viper.SetConfigFile(dotfile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read %s: %w", dotfile, err)
			}
		}
	}

	return nil
}

// homeDotfile returns ~/.selgrab.yaml if it exists.
func homeDotfile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".selgrab.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
