package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/windward-offshore/windward-go/internal/adapters/persistence"
	"github.com/windward-offshore/windward-go/internal/infrastructure/config"
	"github.com/windward-offshore/windward-go/internal/infrastructure/database"
)

// NewReportCommand creates the report command
func NewReportCommand() *cobra.Command {
	var (
		list        bool
		limit       int
		showActions bool
	)

	cmd := &cobra.Command{
		Use:   "report [run-id]",
		Short: "Inspect persisted runs",
		Long:  `List saved runs or print the full report of one saved run.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfigOrDefault(configPath)

			db, err := database.NewConnection(&cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close(db)

			repo := persistence.NewGormRunRepository(db)
			ctx := context.Background()

			if list || len(args) == 0 {
				runs, err := repo.List(ctx, limit)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					fmt.Println("No saved runs")
					return nil
				}

				table := newTable(os.Stdout)
				fmt.Fprintln(table, "RUN\tSCENARIO\tTURBINES\tCAPACITY\tCAPEX\tINSTALL TIME\tCREATED")
				for _, r := range runs {
					fmt.Fprintf(table, "%s\t%s\t%d\t%.0f MW\t%s\t%s\t%s\n",
						r.ID, r.ScenarioName, r.NumTurbines, r.CapacityMW,
						formatUSD(r.TotalCapex), formatHours(r.InstallationHours),
						r.CreatedAt.Format("2006-01-02 15:04"))
				}
				table.Flush()
				return nil
			}

			record, err := repo.FindByID(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Run %s (%s)\n", record.Run.ID, record.Run.ScenarioName)
			fmt.Printf("  Plant:             %d turbines, %.0f MW\n", record.Run.NumTurbines, record.Run.CapacityMW)
			fmt.Printf("  Total capex:       %s (%.0f $/kW)\n", formatUSD(record.Run.TotalCapex), record.Run.CapexPerKW)
			fmt.Printf("  Installation time: %s\n", formatHours(record.Run.InstallationHours))
			fmt.Println()

			table := newTable(os.Stdout)
			fmt.Fprintln(table, "CATEGORY\tCAPEX")
			for _, e := range record.CapexEntries {
				if e.Absent {
					fmt.Fprintf(table, "%s\tabsent (%s)\n", e.Category, e.Reason)
					continue
				}
				fmt.Fprintf(table, "%s\t%s\n", e.Category, formatUSD(e.Value))
			}
			table.Flush()

			if len(record.PhaseErrors) > 0 {
				fmt.Println()
				fmt.Println("Phase errors:")
				for _, pe := range record.PhaseErrors {
					fmt.Printf("  %s: %s\n", pe.Phase, pe.Message)
				}
			}

			if showActions {
				fmt.Println()
				table := newTable(os.Stdout)
				fmt.Fprintln(table, "START\tDURATION\tAGENT\tACTION\tPHASE\tCOST")
				for _, a := range record.Actions {
					fmt.Fprintf(table, "%.1f\t%.1f\t%s\t%s\t%s\t%s\n",
						a.StartHour, a.Duration, a.Agent, a.Name, a.Phase, formatUSD(a.Cost))
				}
				table.Flush()
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List saved runs")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list")
	cmd.Flags().BoolVar(&showActions, "actions", false, "Print the full action ledger")

	return cmd
}
