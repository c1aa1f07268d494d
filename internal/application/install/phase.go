// Package install implements the discrete-event installation phases. Each
// phase owns a fixed task graph (per turbine, per cable segment, per mooring
// line) and schedules it against pool units through the shared simulation
// environment, writing every step to the action ledger.
//
// Weather policy, declared once for the whole family: every phase here
// serializes its work on chartered vessels, and simulated time only moves
// forward: once a WeatherDataError reports the series exhausted, no later
// unit of work can find an earlier window. A phase therefore stops
// scheduling at the first WeatherDataError. Actions committed before the
// failure stay in the ledger and contribute to partial aggregates.
package install

import (
	"github.com/windward-offshore/windward-go/internal/application/simulation"
	"github.com/windward-offshore/windward-go/internal/domain/project"
)

// Phase is one discrete-event installation procedure, selected by
// configuration key
type Phase interface {
	// Name is the phase's configuration identifier
	Name() string

	// Requires lists the design components the phase consumes. The
	// orchestrator refuses to run until every listed component has a
	// producer in the configured design-phase list.
	Requires() []string

	// Run schedules the phase's task graph against the environment and
	// returns its totals. A returned error marks the phase as failed;
	// its committed ledger entries remain valid.
	Run(env *simulation.Env, p project.Params, store *project.ResultStore) (Result, error)
}

// Result is a phase's rollup over its own ledger entries
type Result struct {
	Cost  float64
	Hours float64
}

// tally recomputes a phase's totals from the ledger: cost is the sum of its
// entries, completion is the latest end time across them.
func tally(env *simulation.Env, phase string) Result {
	var r Result
	for _, a := range env.Ledger().ByPhase(phase) {
		r.Cost += a.Cost()
		if end := a.End(); end > r.Hours {
			r.Hours = end
		}
	}
	return r
}
