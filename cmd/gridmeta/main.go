package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridmeta/gridmeta/cmd/gridmeta/commands"
	"github.com/gridmeta/gridmeta/config"
	"github.com/gridmeta/gridmeta/logger"
)

var rootCmd = &cobra.Command{
	Use:   "gridmeta",
	Short: "gridmeta - distributed metadata service tooling",
	Long: `gridmeta - distributed metadata service tooling.

Inspect the version and protocol-feature compatibility of a gridmeta
build, and check whether a peer build is new enough to handshake with.

Examples:
  gridmeta version                 # Show build and compatibility info
  gridmeta features --role client  # Show client-side feature lifetimes
  gridmeta check server 1.2.769    # Would this server be accepted?`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize global logger from config before any command runs
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := logger.InitializeAtLevel(cfg.Log.JSON, logger.ParseLevel(cfg.Log.Level)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commands.VersionCmd)
	rootCmd.AddCommand(commands.FeaturesCmd)
	rootCmd.AddCommand(commands.CheckCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
