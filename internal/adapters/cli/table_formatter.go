package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/windward-offshore/windward-go/internal/application/orchestrator"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
)

// newTable creates a tab-aligned writer for report output
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// formatUSD renders a dollar amount with thousands separators
func formatUSD(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.0f", v)
	out := ""
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	if neg {
		return "-$" + out
	}
	return "$" + out
}

// formatHours renders a simulated duration in hours and days
func formatHours(h float64) string {
	return fmt.Sprintf("%.1f h (%.1f d)", h, h/shared.HoursPerDay)
}

// printRunReport writes the full run summary: capex breakdown, schedule,
// and any phase errors
func printRunReport(w io.Writer, result *orchestrator.RunResult) {
	fmt.Fprintf(w, "Run %s\n", result.RunID)
	fmt.Fprintf(w, "  Plant:             %d x %s (%.0f MW)\n",
		result.Params.Plant.NumTurbines, result.Params.Turbine.Name, result.Params.CapacityMW())
	fmt.Fprintf(w, "  Installation time: %s\n", formatHours(result.InstallationHours))
	fmt.Fprintln(w)

	perKW := result.CapexPerKW()
	table := newTable(w)
	fmt.Fprintln(table, "CATEGORY\tCAPEX\t$/KW")
	for _, category := range result.Breakdown.Categories() {
		value, _ := result.Breakdown.Value(category)
		fmt.Fprintf(table, "%s\t%s\t%.0f\n", category, formatUSD(value), perKW[category])
	}
	for _, category := range result.Breakdown.AbsentCategories() {
		reason, _ := result.Breakdown.AbsentReason(category)
		fmt.Fprintf(table, "%s\tabsent\t(%s)\n", category, reason)
	}
	fmt.Fprintf(table, "TOTAL\t%s\t%.0f\n", formatUSD(result.TotalCapex()),
		result.TotalCapex()/result.Params.CapacityKW())
	table.Flush()

	if len(result.PhaseErrors) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Phase errors:")
		for _, pe := range result.PhaseErrors {
			fmt.Fprintf(w, "  %s: %v\n", pe.Phase, pe.Err)
		}
	}
}

// printActions writes the action ledger as a table
func printActions(w io.Writer, result *orchestrator.RunResult) {
	if result.Ledger == nil || result.Ledger.Len() == 0 {
		fmt.Fprintln(w, "No actions recorded")
		return
	}

	table := newTable(w)
	fmt.Fprintln(table, "START\tDURATION\tAGENT\tACTION\tPHASE\tCOST")
	for _, a := range result.Ledger.Actions() {
		fmt.Fprintf(table, "%.1f\t%.1f\t%s\t%s\t%s\t%s\n",
			a.Start(), a.Duration(), a.Agent(), a.Name(), a.Phase(), formatUSD(a.Cost()))
	}
	table.Flush()
}
