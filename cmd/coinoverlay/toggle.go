package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-coin-overlay/settings"
)

// toggleCmd flips the persisted display flag.
var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle the conversion display",
	Long:  `Toggle the conversion display between enabled and disabled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(!cfg.Enabled)
	},
}

var onCmd = &cobra.Command{
	Use:   "on",
	Short: "Enable the conversion display",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(true)
	},
}

var offCmd = &cobra.Command{
	Use:   "off",
	Short: "Disable the conversion display",
	Long: `Disable the conversion display.

Surfaces keep their last overlay text until the host updates them again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(false)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the conversion display state",
	RunE: func(cmd *cobra.Command, args []string) error {
		printEnabled(cfg.Enabled)
		fmt.Printf("  Rate: %s %s per gold\n", cfg.Rate, cfg.Currency)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(onCmd)
	rootCmd.AddCommand(offCmd)
	rootCmd.AddCommand(statusCmd)
}

func setEnabled(enabled bool) error {
	cfg.Enabled = enabled
	if err := settings.Save(settingsPath(), cfg); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	printEnabled(enabled)
	return nil
}

func printEnabled(enabled bool) {
	if enabled {
		fmt.Println("Conversion display: enabled")
	} else {
		fmt.Println("Conversion display: disabled")
	}
}
