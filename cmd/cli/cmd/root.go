// Package cmd provides the CLI commands for dimgrid.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dimgrid/internal/config"
	"dimgrid/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dimgrid",
	Short: "Resolve dimension mappings for multi-axis energy datasets",
	Long: `dimgrid converts values recorded against one dimension scheme into
values for another compatible scheme across the four dataset axes:
geography, sector, end-use, and time.

Examples:
  dimgrid convert-unit kWh GWh
  dimgrid resolve counties states
  dimgrid catalog`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dimgrid.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(convertUnitCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfgFile = home + "/.dimgrid.json"
		}
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}
