// Package main provides the CLI entrypoint for coinoverlay.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/spf13/cobra"

	"go-coin-overlay/settings"
)

var globalOpts struct {
	settingsPath string
}

var (
	logger log.Logger
	cfg    settings.File
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "coinoverlay",
	Short: "Secondary-currency companion for in-game money displays",
	Long: `coinoverlay appends a real-currency equivalent wherever the host
renders a coin amount: formatted strings, frame overlays, tooltips and
chat messages.

Running coinoverlay serve starts the JSON conversion service; the toggle
commands flip the persisted display flag read by a running service.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		w := log.NewSyncWriter(os.Stderr)
		logger = log.NewLogfmtLogger(w)
		logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

		var err error
		cfg, err = settings.Load(settingsPath())
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}
		return nil
	},
}

// settingsPath resolves the settings file location, preferring the flag.
func settingsPath() string {
	if globalOpts.settingsPath != "" {
		return globalOpts.settingsPath
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "coinoverlay.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "coinoverlay", "settings.toml")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalOpts.settingsPath, "settings", "",
		"path to the settings file (default: XDG config directory)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
