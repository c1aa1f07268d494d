package install

import (
	"github.com/windward-offshore/windward-go/internal/application/design"
	"github.com/windward-offshore/windward-go/internal/application/simulation"
	"github.com/windward-offshore/windward-go/internal/domain/project"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
	"github.com/windward-offshore/windward-go/internal/domain/weather"
)

// CableKind selects which cable system a CableInstallation lays
type CableKind string

const (
	CableArray  CableKind = "array"
	CableExport CableKind = "export"
)

// CableInstallConfig drives a cable lay campaign
type CableInstallConfig struct {
	Vessel         string
	LaySpeedKmH    float64 // simultaneous lay and burial
	PositionHours  float64 // per segment
	TerminateHours float64 // pull-in and termination per segment end
	LayLimits      weather.Limits
}

func (c CableInstallConfig) withDefaults() CableInstallConfig {
	if c.LaySpeedKmH == 0 {
		c.LaySpeedKmH = 0.3
	}
	if c.PositionHours == 0 {
		c.PositionHours = 2
	}
	if c.TerminateHours == 0 {
		c.TerminateHours = 4
	}
	if !c.LayLimits.Constrained() {
		c.LayLimits = weather.Limits{MaxWaveHeight: 1.5, MaxWindSpeed: 20}
	}
	return c
}

// CableInstallation models a cable lay vessel working through the system's
// segments in order: position, lay and bury at the configured speed,
// terminate. The task graph is strictly sequential; each segment starts
// from the previous segment's end position.
type CableInstallation struct {
	kind CableKind
	cfg  CableInstallConfig
}

// NewCableInstallation creates the phase for the given cable system
func NewCableInstallation(kind CableKind, cfg CableInstallConfig) (*CableInstallation, error) {
	if kind != CableArray && kind != CableExport {
		return nil, shared.NewNotImplementedError("cable_install.kind", string(kind))
	}
	if cfg.Vessel == "" {
		return nil, shared.NewMissingInputError("cable_install.vessel")
	}
	return &CableInstallation{kind: kind, cfg: cfg.withDefaults()}, nil
}

// Name is the phase's configuration identifier
func (ph *CableInstallation) Name() string {
	if ph.kind == CableArray {
		return "ArrayCableInstallation"
	}
	return "ExportCableInstallation"
}

func (ph *CableInstallation) component() string {
	if ph.kind == CableArray {
		return design.ComponentArrayCable
	}
	return design.ComponentExportCable
}

// Requires lists the design components the phase consumes
func (ph *CableInstallation) Requires() []string {
	return []string{ph.component()}
}

// Run schedules the phase's task graph
func (ph *CableInstallation) Run(env *simulation.Env, p project.Params, store *project.ResultStore) (Result, error) {
	name := ph.Name()
	result, ok := store.Get(ph.component())
	if !ok {
		return Result{}, shared.NewDependencyError(name, "no design result for "+ph.component())
	}

	segments, segmentKm := ph.segments(result)
	if segments == 0 {
		return Result{}, shared.NewDomainValidationError(name+".segments", 0, "design produced no cable to lay")
	}

	if err := env.Mobilize(name, ph.cfg.Vessel); err != nil {
		return tally(env, name), err
	}
	if _, err := env.Transit(name, ph.cfg.Vessel, "Site", p.Site.DistanceToPort, 0); err != nil {
		return tally(env, name), err
	}

	layHours := segmentKm / ph.cfg.LaySpeedKmH
	for i := 0; i < segments; i++ {
		steps := []simulation.Request{
			{Name: "Position Over Route", Duration: ph.cfg.PositionHours, Limits: &ph.cfg.LayLimits},
			{Name: "Lay and Bury Cable", Duration: layHours, Limits: &ph.cfg.LayLimits},
			{Name: "Terminate Cable", Duration: ph.cfg.TerminateHours, Limits: &ph.cfg.LayLimits},
		}
		for _, step := range steps {
			step.Agent = ph.cfg.Vessel
			step.Phase = name
			step.Location = "Site"
			if _, err := env.Process(step); err != nil {
				return tally(env, name), err
			}
		}
	}

	if _, err := env.Transit(name, ph.cfg.Vessel, "Port", p.Site.DistanceToPort, 0); err != nil {
		return tally(env, name), err
	}
	return tally(env, name), nil
}

// segments derives the lay campaign from the design result: array systems
// lay one segment per turbine, export systems one per cable.
func (ph *CableInstallation) segments(r project.DesignResult) (int, float64) {
	switch ph.kind {
	case CableArray:
		n := r.Units
		if n == 0 {
			return 0, 0
		}
		return n, r.Attributes["total_length"] / float64(n)
	default:
		n := int(r.Attributes["num_cables"])
		if n == 0 {
			return 0, 0
		}
		return n, r.Attributes["cable_length"]
	}
}
