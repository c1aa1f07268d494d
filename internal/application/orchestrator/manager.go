package orchestrator

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/windward-offshore/windward-go/internal/adapters/metrics"
	"github.com/windward-offshore/windward-go/internal/application/design"
	"github.com/windward-offshore/windward-go/internal/application/install"
	"github.com/windward-offshore/windward-go/internal/application/simulation"
	"github.com/windward-offshore/windward-go/internal/domain/ledger"
	"github.com/windward-offshore/windward-go/internal/domain/project"
	"github.com/windward-offshore/windward-go/internal/domain/resource"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
	"github.com/windward-offshore/windward-go/internal/domain/weather"
)

// ProjectCosts carries the per-kW cost basis for capex categories that are
// priced rather than simulated. Zero values select the documented defaults.
type ProjectCosts struct {
	TurbineCapexPerKW float64
	SoftCapexPerKW    float64
	ProjectCapexPerKW float64
}

func (c ProjectCosts) withDefaults() ProjectCosts {
	if c.TurbineCapexPerKW == 0 {
		c.TurbineCapexPerKW = 1300
	}
	if c.SoftCapexPerKW == 0 {
		c.SoftCapexPerKW = 645
	}
	return c
}

// Config wires a Manager: parameters, constructed phases, and the shared
// collaborators the installation simulation runs against
type Config struct {
	Params        project.Params
	DesignPhases  []design.Phase
	InstallPhases []install.Phase
	Pool          *resource.Pool
	Oracle        *weather.Oracle
	Costs         ProjectCosts
}

// PhaseError records a phase-level failure. Phase failures never abort the
// run; they remove the phase's contribution from the aggregate.
type PhaseError struct {
	Phase string
	Err   error
}

func (e PhaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Phase, e.Err)
}

// RunResult is the contract surface a caller consumes: the design result
// store, the action ledger and the derived aggregates. The CLI and
// persistence layers only read it.
type RunResult struct {
	RunID             string
	Params            project.Params
	Designs           *project.ResultStore
	Ledger            *ledger.Ledger
	PhaseErrors       []PhaseError
	Breakdown         *project.Breakdown
	InstallationHours float64
}

// TotalCapex sums every computed capex category
func (r *RunResult) TotalCapex() float64 {
	return r.Breakdown.Total()
}

// CapexPerKW derives the per-kW view of the breakdown
func (r *RunResult) CapexPerKW() map[project.Category]float64 {
	return r.Breakdown.PerKW(r.Params.CapacityKW())
}

// Manager resolves phase dependencies, executes design phases before the
// installation phases that consume their results, merges partial failures,
// and aggregates capex and schedule totals.
type Manager struct {
	cfg Config
}

// NewManager validates the configuration and creates a Manager
func NewManager(cfg Config) (*Manager, error) {
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}
	if cfg.Pool == nil {
		cfg.Pool = resource.NewPool()
	}
	cfg.Costs = cfg.Costs.withDefaults()
	return &Manager{cfg: cfg}, nil
}

// Validate resolves phase dependencies without executing any phase. It
// returns the error a Run call would fail with before simulating.
func (m *Manager) Validate() error {
	_, _, err := m.resolve()
	return err
}

// Run executes the project. Dependency resolution failures are returned
// before any phase runs; phase-level failures are recorded in the result and
// the run continues with the remaining independent phases.
func (m *Manager) Run(ctx context.Context) (*RunResult, error) {
	order, producers, err := m.resolve()
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		RunID:     uuid.NewString(),
		Params:    m.cfg.Params,
		Designs:   project.NewResultStore(),
		Breakdown: project.NewBreakdown(),
	}
	metrics.RecordRunStarted()

	failedDesigns := m.runDesigns(ctx, order, result)
	m.runInstalls(ctx, order, producers, failedDesigns, result)
	m.aggregate(result)

	metrics.RecordRunCompleted(result.TotalCapex(), result.InstallationHours, len(result.PhaseErrors))
	return result, nil
}

// resolve builds the dependency graph and returns the topological phase
// order plus the producing design phase for every component
func (m *Manager) resolve() ([]string, map[string]string, error) {
	graph := project.NewPhaseGraph()
	producers := make(map[string]string)

	for _, d := range m.cfg.DesignPhases {
		if err := graph.AddPhase(d.Name()); err != nil {
			return nil, nil, err
		}
		for _, c := range d.Components() {
			if prev, dup := producers[c]; dup {
				return nil, nil, shared.NewDependencyError(d.Name(),
					fmt.Sprintf("component %q already produced by %s", c, prev))
			}
			producers[c] = d.Name()
		}
	}
	for _, i := range m.cfg.InstallPhases {
		if err := graph.AddPhase(i.Name()); err != nil {
			return nil, nil, err
		}
		for _, c := range i.Requires() {
			producer, ok := producers[c]
			if !ok {
				return nil, nil, shared.NewDependencyError(i.Name(),
					fmt.Sprintf("requires component %q which no configured design phase produces", c))
			}
			if err := graph.AddDependency(i.Name(), producer); err != nil {
				return nil, nil, err
			}
		}
	}

	order, err := graph.Order()
	if err != nil {
		return nil, nil, err
	}
	return order, producers, nil
}

// runDesigns executes the pure design phases and returns the names of the
// ones that failed
func (m *Manager) runDesigns(ctx context.Context, order []string, result *RunResult) map[string]bool {
	byName := make(map[string]design.Phase, len(m.cfg.DesignPhases))
	for _, d := range m.cfg.DesignPhases {
		byName[d.Name()] = d
	}

	failed := make(map[string]bool)
	for _, name := range order {
		d, ok := byName[name]
		if !ok {
			continue
		}
		if ctx.Err() != nil {
			failed[name] = true
			result.PhaseErrors = append(result.PhaseErrors, PhaseError{Phase: name, Err: ctx.Err()})
			continue
		}
		designs, err := d.Compute(m.cfg.Params)
		if err != nil {
			failed[name] = true
			result.PhaseErrors = append(result.PhaseErrors, PhaseError{Phase: name, Err: err})
			metrics.RecordPhaseFailed(name)
			continue
		}
		for _, r := range designs {
			if err := result.Designs.Put(r); err != nil {
				failed[name] = true
				result.PhaseErrors = append(result.PhaseErrors, PhaseError{Phase: name, Err: err})
				break
			}
		}
	}
	return failed
}

// runInstalls executes the installation phases over a shared environment.
// Phases whose producing design phase failed are skipped with a recorded
// dependency error; the rest run in topological order against the shared
// clock, pool and ledger.
func (m *Manager) runInstalls(ctx context.Context, order []string, producers map[string]string, failedDesigns map[string]bool, result *RunResult) {
	byName := make(map[string]install.Phase, len(m.cfg.InstallPhases))
	for _, i := range m.cfg.InstallPhases {
		byName[i.Name()] = i
	}

	env := simulation.NewEnv(m.cfg.Oracle, m.cfg.Pool)
	result.Ledger = env.Ledger()

	for _, name := range order {
		ph, ok := byName[name]
		if !ok {
			continue
		}
		if ctx.Err() != nil {
			result.PhaseErrors = append(result.PhaseErrors, PhaseError{Phase: name, Err: ctx.Err()})
			continue
		}

		skipped := false
		for _, c := range ph.Requires() {
			if failedDesigns[producers[c]] {
				result.PhaseErrors = append(result.PhaseErrors, PhaseError{
					Phase: name,
					Err:   shared.NewDependencyError(name, fmt.Sprintf("design phase %s failed", producers[c])),
				})
				skipped = true
				break
			}
		}
		if skipped {
			continue
		}

		phaseResult, err := ph.Run(env, m.cfg.Params, result.Designs)
		if err != nil {
			result.PhaseErrors = append(result.PhaseErrors, PhaseError{Phase: name, Err: err})
			metrics.RecordPhaseFailed(name)
			continue
		}
		metrics.RecordPhaseCompleted(name, phaseResult.Hours, phaseResult.Cost)
	}
}

// categoryFor maps a design component to its capex category
func categoryFor(component string) project.Category {
	switch component {
	case design.ComponentMonopile, design.ComponentTransitionPiece, design.ComponentSemiSubmersible:
		return project.CategorySubstructure
	case design.ComponentArrayCable:
		return project.CategoryArrayCableSystem
	case design.ComponentExportCable:
		return project.CategoryExportSystem
	case design.ComponentMooring:
		return project.CategoryMooringSystem
	case design.ComponentSubstationTopside, design.ComponentSubstationSubstructure:
		return project.CategorySubstation
	default:
		return project.CategoryProjectDevelopment
	}
}

// aggregate derives the capex breakdown and installation duration. Failed
// phases leave their categories flagged absent rather than zero-filled.
func (m *Manager) aggregate(result *RunResult) {
	for _, component := range result.Designs.Components() {
		r, _ := result.Designs.Get(component)
		result.Breakdown.Add(categoryFor(component), r.SystemCost)
	}
	for _, d := range m.cfg.DesignPhases {
		for _, c := range d.Components() {
			if !result.Designs.Has(c) {
				result.Breakdown.MarkAbsent(categoryFor(c), fmt.Sprintf("design phase %s failed", d.Name()))
			}
		}
	}

	if result.Ledger != nil && result.Ledger.Len() > 0 {
		result.Breakdown.Add(project.CategoryInstallation, result.Ledger.TotalCost())
		result.InstallationHours = result.Ledger.MaxEnd()
	} else if len(m.cfg.InstallPhases) > 0 {
		result.Breakdown.MarkAbsent(project.CategoryInstallation, "no installation actions recorded")
	}

	capacityKW := m.cfg.Params.CapacityKW()
	result.Breakdown.Add(project.CategoryTurbine, m.cfg.Costs.TurbineCapexPerKW*capacityKW)
	result.Breakdown.Add(project.CategorySoftCosts, m.cfg.Costs.SoftCapexPerKW*capacityKW)
	if m.cfg.Costs.ProjectCapexPerKW > 0 {
		result.Breakdown.Add(project.CategoryProjectDevelopment, m.cfg.Costs.ProjectCapexPerKW*capacityKW)
	}
}
