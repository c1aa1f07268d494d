package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/windward-offshore/windward-go/internal/infrastructure/config"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	var scenarioPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a scenario without running it",
		Long: `Load a scenario file, construct every configured phase, and resolve the
dependency graph. Reports the error a run would fail with, without
simulating anything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := config.LoadScenario(scenarioPath)
			if err != nil {
				return err
			}

			manager, err := buildManager(scenario)
			if err != nil {
				return err
			}

			if err := manager.Validate(); err != nil {
				return fmt.Errorf("scenario is invalid: %w", err)
			}

			fmt.Printf("Scenario %q is valid: %d design phases, %d install phases\n",
				scenario.Name, len(scenario.DesignPhases), len(scenario.InstallPhases))
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to scenario file (required)")
	cmd.MarkFlagRequired("scenario")

	return cmd
}
