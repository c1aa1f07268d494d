// Package design implements the pure design phases of a project: given site,
// plant and turbine parameters each phase produces sized, costed artifacts
// for one subsystem. Design phases have no time axis and no side effects:
// identical inputs produce identical results on every call, which makes
// them trivially parallelizable and cacheable by input hash.
package design

import "github.com/windward-offshore/windward-go/internal/domain/project"

// Phase is one design computation, selected by configuration key
type Phase interface {
	// Name is the phase's configuration identifier
	Name() string

	// Components lists the component identifiers the phase produces,
	// used for dependency resolution before any phase runs
	Components() []string

	// Compute produces the phase's design results. It must be
	// deterministic and side-effect-free.
	Compute(p project.Params) ([]project.DesignResult, error)
}
