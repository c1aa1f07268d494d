package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/windward-offshore/windward-go/internal/adapters/persistence"
	"github.com/windward-offshore/windward-go/internal/infrastructure/config"
	"github.com/windward-offshore/windward-go/internal/infrastructure/database"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	var (
		scenarioPath string
		save         bool
		showActions  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a project scenario",
		Long: `Run the design phases and the installation simulation described by a
scenario file and print the resulting capex breakdown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfigOrDefault(configPath)
			if err := setupMetrics(cfg); err != nil {
				return err
			}

			scenario, err := config.LoadScenario(scenarioPath)
			if err != nil {
				return err
			}
			if verbose {
				log.Printf("loaded scenario %q: %d design phases, %d install phases",
					scenario.Name, len(scenario.DesignPhases), len(scenario.InstallPhases))
			}

			manager, err := buildManager(scenario)
			if err != nil {
				return err
			}

			result, err := manager.Run(context.Background())
			if err != nil {
				return fmt.Errorf("run failed: %w", err)
			}

			printRunReport(os.Stdout, result)
			if showActions {
				fmt.Println()
				printActions(os.Stdout, result)
			}

			if save {
				db, err := database.NewConnection(&cfg.Database)
				if err != nil {
					return fmt.Errorf("failed to connect to database: %w", err)
				}
				defer database.Close(db)

				if err := database.AutoMigrate(db); err != nil {
					return fmt.Errorf("failed to migrate database: %w", err)
				}

				repo := persistence.NewGormRunRepository(db)
				if err := repo.Save(context.Background(), result, scenario.Name); err != nil {
					return fmt.Errorf("failed to save run: %w", err)
				}
				fmt.Printf("\nSaved run %s\n", result.RunID)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to scenario file (required)")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the run to the database")
	cmd.Flags().BoolVar(&showActions, "actions", false, "Print the full action ledger")
	cmd.MarkFlagRequired("scenario")

	return cmd
}
