package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "windward",
		Short: "Windward - offshore wind cost and logistics simulator",
		Long: `Windward models the capital cost and installation logistics of an
offshore wind plant: component design phases feed a weather-gated
installation simulation over a shared vessel fleet, and the results roll
up into a capex breakdown.

Examples:
  windward run --scenario scenarios/fixed_bottom.yaml
  windward run --scenario scenarios/floating.yaml --save
  windward validate --scenario scenarios/floating.yaml
  windward report --list
  windward report <run-id> --actions`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewReportCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
