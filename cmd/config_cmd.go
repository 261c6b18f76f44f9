package cmd

import (
	"fmt"

	"tmanina/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    City:    %s\n", cfg.General.City)
	fmt.Printf("    Country: %s\n", cfg.General.Country)
	fmt.Printf("    Method:  %d\n", cfg.General.Method)
	fmt.Printf("    Store:   %s\n", cfg.General.Store)
	if cfg.General.DataDir != "" {
		fmt.Printf("    Data:    %s\n", cfg.General.DataDir)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Reminders]")
	fmt.Printf("    Enabled: %v\n", cfg.Reminders.Enabled)
	fmt.Printf("    Morning: %s\n", cfg.Reminders.Morning)
	fmt.Printf("    Evening: %s\n", cfg.Reminders.Evening)

	return nil
}
