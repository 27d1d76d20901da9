// Package cmd implements the lifedays CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/lifedays/internal/config"
	"github.com/theirongolddev/lifedays/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Total days:   %d\n", cfg.General.TotalDays)
	fmt.Printf("    Default view: %s\n", cfg.General.DefaultView)
	tz := cfg.General.Timezone
	if tz == "" {
		tz = "UTC"
	}
	fmt.Printf("    Timezone:     %s\n", tz)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:        %s\n", cfg.Appearance.Theme)
	fmt.Printf("    Week columns: %d\n", cfg.Appearance.WeekColumns)
	fmt.Printf("    Day columns:  %d\n", cfg.Appearance.DayColumns)
	fmt.Println()

	fmt.Println("  [Storage]")
	fmt.Printf("    Database: %s\n", cfg.DBPath(store.DefaultPath()))
	if override := config.BirthDateOverride(); override != "" {
		fmt.Printf("    %s: %s (overrides saved date)\n", config.BirthDateEnv, override)
	}
	fmt.Println()

	fmt.Println("  [Logging]")
	fmt.Printf("    Level: %s\n", cfg.Logging.Level)
	fmt.Printf("    File:  %s\n", cfg.LogPath())
	fmt.Println()

	fmt.Println("  Run `lifedays config init` to write a config file.")
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		return fmt.Errorf("config already exists at %s", config.Path())
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Printf("  Wrote %s\n", config.Path())
	return nil
}
