package install

import (
	"github.com/windward-offshore/windward-go/internal/application/design"
	"github.com/windward-offshore/windward-go/internal/application/simulation"
	"github.com/windward-offshore/windward-go/internal/domain/project"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
	"github.com/windward-offshore/windward-go/internal/domain/weather"
)

// MooredSubConfig drives the quayside assembly and tow-out campaign.
// AssemblyLineGroup, CraneGroup and TowGroup name pool groups; how many
// parallel lines, cranes and tow vessels exist is a property of the pool.
type MooredSubConfig struct {
	AssemblyLineGroup string
	CraneGroup        string
	TowGroup          string
	TowVesselsPerTow  int // default 2
	SupportVessel     string

	TaktHours            float64 // substructure assembly takt time
	TurbineAssemblyHours float64
	TowSpeedKmH          float64
	BallastHours         float64
	HookupHours          float64

	TowLimits    weather.Limits
	HookupLimits weather.Limits
}

func (c MooredSubConfig) withDefaults() MooredSubConfig {
	if c.TowVesselsPerTow == 0 {
		c.TowVesselsPerTow = 2
	}
	if c.TaktHours == 0 {
		c.TaktHours = 168
	}
	if c.TurbineAssemblyHours == 0 {
		c.TurbineAssemblyHours = 96
	}
	if c.TowSpeedKmH == 0 {
		c.TowSpeedKmH = 6
	}
	if c.BallastHours == 0 {
		c.BallastHours = 6
	}
	if c.HookupHours == 0 {
		c.HookupHours = 12
	}
	if !c.TowLimits.Constrained() {
		c.TowLimits = weather.Limits{MaxWaveHeight: 2.5, MaxWindSpeed: 15}
	}
	if !c.HookupLimits.Constrained() {
		c.HookupLimits = weather.Limits{MaxWaveHeight: 2, MaxWindSpeed: 15}
	}
	return c
}

// MooredSubInstallation models quayside assembly, tow-out and hookup of
// moored floating substructures: substructures come off parallel assembly
// lines at the takt time, turbines are assembled onto them by quayside
// cranes, tow groups take each completed assembly to site, and a support
// vessel ballasts it down and hooks up the pre-laid mooring spread.
type MooredSubInstallation struct {
	cfg MooredSubConfig
}

// NewMooredSubInstallation creates the phase for the given fleet assignment
func NewMooredSubInstallation(cfg MooredSubConfig) (*MooredSubInstallation, error) {
	if cfg.AssemblyLineGroup == "" {
		return nil, shared.NewMissingInputError("moored_sub_install.assembly_line_group")
	}
	if cfg.CraneGroup == "" {
		return nil, shared.NewMissingInputError("moored_sub_install.crane_group")
	}
	if cfg.TowGroup == "" {
		return nil, shared.NewMissingInputError("moored_sub_install.tow_group")
	}
	if cfg.SupportVessel == "" {
		return nil, shared.NewMissingInputError("moored_sub_install.support_vessel")
	}
	return &MooredSubInstallation{cfg: cfg.withDefaults()}, nil
}

// Name is the phase's configuration identifier
func (ph *MooredSubInstallation) Name() string {
	return "MooredSubInstallation"
}

// Requires lists the design components the phase consumes
func (ph *MooredSubInstallation) Requires() []string {
	return []string{design.ComponentSemiSubmersible, design.ComponentMooring}
}

// Run schedules the phase's task graph
func (ph *MooredSubInstallation) Run(env *simulation.Env, p project.Params, store *project.ResultStore) (Result, error) {
	name := ph.Name()
	if !store.Has(design.ComponentSemiSubmersible) {
		return Result{}, shared.NewDependencyError(name, "no design result for "+design.ComponentSemiSubmersible)
	}
	if !store.Has(design.ComponentMooring) {
		return Result{}, shared.NewDependencyError(name, "no design result for "+design.ComponentMooring)
	}

	if err := env.Mobilize(name, ph.cfg.SupportVessel); err != nil {
		return tally(env, name), err
	}
	for _, id := range env.Pool().GroupUnits(ph.cfg.TowGroup) {
		if err := env.Mobilize(name, id); err != nil {
			return tally(env, name), err
		}
	}

	towHours := p.Site.DistanceToPort / ph.cfg.TowSpeedKmH
	for i := 0; i < p.Plant.NumTurbines; i++ {
		// Quayside work runs on whichever line and crane free up first;
		// parallelism falls out of the group sizes in the pool.
		assembly, err := env.ProcessGroup(ph.cfg.AssemblyLineGroup, 1, simulation.Request{
			Name:     "Substructure Assembly",
			Phase:    name,
			Location: "Port",
			Duration: ph.cfg.TaktHours,
		})
		if err != nil {
			return tally(env, name), err
		}

		turbine, err := env.ProcessGroup(ph.cfg.CraneGroup, 1, simulation.Request{
			Name:     "Turbine Assembly",
			Phase:    name,
			Location: "Port",
			Duration: ph.cfg.TurbineAssemblyHours,
			Earliest: assembly[0].End(),
		})
		if err != nil {
			return tally(env, name), err
		}

		tow, err := env.ProcessGroup(ph.cfg.TowGroup, ph.cfg.TowVesselsPerTow, simulation.Request{
			Name:     "Tow to Site",
			Phase:    name,
			Location: "Site",
			Duration: towHours,
			Earliest: turbine[0].End(),
			Limits:   &ph.cfg.TowLimits,
		})
		if err != nil {
			return tally(env, name), err
		}

		steps := []simulation.Request{
			{Name: "Ballast to Operational Draft", Duration: ph.cfg.BallastHours, Limits: &ph.cfg.HookupLimits},
			{Name: "Mooring Hookup", Duration: ph.cfg.HookupHours, Limits: &ph.cfg.HookupLimits},
		}
		for _, step := range steps {
			step.Agent = ph.cfg.SupportVessel
			step.Phase = name
			step.Location = "Site"
			step.Earliest = tow[0].End()
			if _, err := env.Process(step); err != nil {
				return tally(env, name), err
			}
		}

		// Tow vessels run home empty for the next assembly
		if _, err := env.ProcessGroup(ph.cfg.TowGroup, ph.cfg.TowVesselsPerTow, simulation.Request{
			Name:     "Transit",
			Phase:    name,
			Location: "Port",
			Duration: towHours,
			Earliest: tow[0].End(),
			Limits:   &ph.cfg.TowLimits,
		}); err != nil {
			return tally(env, name), err
		}
	}

	return tally(env, name), nil
}
