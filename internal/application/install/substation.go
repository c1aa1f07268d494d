package install

import (
	"github.com/windward-offshore/windward-go/internal/application/design"
	"github.com/windward-offshore/windward-go/internal/application/simulation"
	"github.com/windward-offshore/windward-go/internal/domain/project"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
	"github.com/windward-offshore/windward-go/internal/domain/weather"
)

// SubstationInstallConfig drives the offshore substation installation
type SubstationInstallConfig struct {
	Vessel            string // heavy lift vessel pool id
	SubstructureHours float64
	TopsideHours      float64
	CommissionHours   float64
	LiftLimits        weather.Limits
}

func (c SubstationInstallConfig) withDefaults() SubstationInstallConfig {
	if c.SubstructureHours == 0 {
		c.SubstructureHours = 24
	}
	if c.TopsideHours == 0 {
		c.TopsideHours = 18
	}
	if c.CommissionHours == 0 {
		c.CommissionHours = 72
	}
	if !c.LiftLimits.Constrained() {
		c.LiftLimits = weather.Limits{MaxWaveHeight: 1.5, MaxWindSpeed: 12}
	}
	return c
}

// SubstationInstallation models a heavy lift vessel setting the substation
// substructure and topside. Quayside assembly completes before the vessel
// sails; it is recorded as a zero-duration readiness marker since the yard
// work is priced into the design result.
type SubstationInstallation struct {
	cfg SubstationInstallConfig
}

// NewSubstationInstallation creates the phase for the given fleet assignment
func NewSubstationInstallation(cfg SubstationInstallConfig) (*SubstationInstallation, error) {
	if cfg.Vessel == "" {
		return nil, shared.NewMissingInputError("substation_install.vessel")
	}
	return &SubstationInstallation{cfg: cfg.withDefaults()}, nil
}

// Name is the phase's configuration identifier
func (ph *SubstationInstallation) Name() string {
	return "SubstationInstallation"
}

// Requires lists the design components the phase consumes
func (ph *SubstationInstallation) Requires() []string {
	return []string{design.ComponentSubstationTopside, design.ComponentSubstationSubstructure}
}

// Run schedules the phase's task graph
func (ph *SubstationInstallation) Run(env *simulation.Env, p project.Params, store *project.ResultStore) (Result, error) {
	name := ph.Name()
	topside, ok := store.Get(design.ComponentSubstationTopside)
	if !ok {
		return Result{}, shared.NewDependencyError(name, "no design result for "+design.ComponentSubstationTopside)
	}
	if !store.Has(design.ComponentSubstationSubstructure) {
		return Result{}, shared.NewDependencyError(name, "no design result for "+design.ComponentSubstationSubstructure)
	}

	if err := env.Mobilize(name, ph.cfg.Vessel); err != nil {
		return tally(env, name), err
	}

	for i := 0; i < topside.Units; i++ {
		if _, err := env.RecordUnmanned("Substation Substructure Assembly", name, 0, 0, 0); err != nil {
			return tally(env, name), err
		}

		if _, err := env.Transit(name, ph.cfg.Vessel, "Site", p.Site.DistanceToPort, 0); err != nil {
			return tally(env, name), err
		}

		steps := []simulation.Request{
			{Name: "Install Substation Substructure", Duration: ph.cfg.SubstructureHours, Limits: &ph.cfg.LiftLimits},
			{Name: "Install Substation Topside", Duration: ph.cfg.TopsideHours, Limits: &ph.cfg.LiftLimits},
			{Name: "Commission Substation", Duration: ph.cfg.CommissionHours, Limits: &weather.Limits{}},
		}
		for _, step := range steps {
			step.Agent = ph.cfg.Vessel
			step.Phase = name
			step.Location = "Site"
			if _, err := env.Process(step); err != nil {
				return tally(env, name), err
			}
		}

		if _, err := env.Transit(name, ph.cfg.Vessel, "Port", p.Site.DistanceToPort, 0); err != nil {
			return tally(env, name), err
		}
	}

	return tally(env, name), nil
}
