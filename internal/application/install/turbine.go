package install

import (
	"github.com/windward-offshore/windward-go/internal/application/simulation"
	"github.com/windward-offshore/windward-go/internal/domain/project"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
	"github.com/windward-offshore/windward-go/internal/domain/weather"
)

// TurbineInstallConfig drives the turbine installation phase
type TurbineInstallConfig struct {
	Vessel          string
	TurbinesPerTrip int
	LoadHours       float64
	TowerHours      float64
	NacelleHours    float64
	BladeHours      float64 // per blade
	LiftLimits      weather.Limits
	BladeLimits     weather.Limits
}

func (c TurbineInstallConfig) withDefaults() TurbineInstallConfig {
	if c.TurbinesPerTrip == 0 {
		c.TurbinesPerTrip = 3
	}
	if c.LoadHours == 0 {
		c.LoadHours = 8
	}
	if c.TowerHours == 0 {
		c.TowerHours = 6
	}
	if c.NacelleHours == 0 {
		c.NacelleHours = 6
	}
	if c.BladeHours == 0 {
		c.BladeHours = 3.5
	}
	if !c.LiftLimits.Constrained() {
		c.LiftLimits = weather.Limits{MaxWaveHeight: 2, MaxWindSpeed: 15}
	}
	if !c.BladeLimits.Constrained() {
		// Blade lifts stand down at lower wind than tower or nacelle lifts
		c.BladeLimits = weather.Limits{MaxWaveHeight: 2, MaxWindSpeed: 12}
	}
	return c
}

// TurbineInstallation models the turbine erection campaign: tower, nacelle
// and three blade lifts per position, shuttled from port a deck-load at a
// time. It requires a substructure to land on, either a monopile or a
// floating unit, which is expressed through the configured substructure
// component.
type TurbineInstallation struct {
	cfg          TurbineInstallConfig
	substructure string
}

// NewTurbineInstallation creates the phase; substructure names the design
// component the turbines are erected onto
func NewTurbineInstallation(cfg TurbineInstallConfig, substructure string) (*TurbineInstallation, error) {
	if cfg.Vessel == "" {
		return nil, shared.NewMissingInputError("turbine_install.vessel")
	}
	if substructure == "" {
		return nil, shared.NewMissingInputError("turbine_install.substructure")
	}
	return &TurbineInstallation{cfg: cfg.withDefaults(), substructure: substructure}, nil
}

// Name is the phase's configuration identifier
func (ph *TurbineInstallation) Name() string {
	return "TurbineInstallation"
}

// Requires lists the design components the phase consumes
func (ph *TurbineInstallation) Requires() []string {
	return []string{ph.substructure}
}

// Run schedules the phase's task graph
func (ph *TurbineInstallation) Run(env *simulation.Env, p project.Params, store *project.ResultStore) (Result, error) {
	name := ph.Name()
	if !store.Has(ph.substructure) {
		return Result{}, shared.NewDependencyError(name, "no design result for "+ph.substructure)
	}

	if err := env.Mobilize(name, ph.cfg.Vessel); err != nil {
		return tally(env, name), err
	}

	remaining := p.Plant.NumTurbines
	for remaining > 0 {
		trip := ph.cfg.TurbinesPerTrip
		if trip > remaining {
			trip = remaining
		}

		for i := 0; i < trip; i++ {
			if _, err := env.Process(simulation.Request{
				Agent:    ph.cfg.Vessel,
				Name:     "Load Turbine Components",
				Phase:    name,
				Location: "Port",
				Duration: ph.cfg.LoadHours,
				Limits:   &weather.Limits{},
			}); err != nil {
				return tally(env, name), err
			}
		}

		if _, err := env.Transit(name, ph.cfg.Vessel, "Site", p.Site.DistanceToPort, 0); err != nil {
			return tally(env, name), err
		}

		for i := 0; i < trip; i++ {
			steps := []simulation.Request{
				{Name: "Lift and Attach Tower", Duration: ph.cfg.TowerHours, Limits: &ph.cfg.LiftLimits},
				{Name: "Lift and Attach Nacelle", Duration: ph.cfg.NacelleHours, Limits: &ph.cfg.LiftLimits},
				{Name: "Lift and Attach Blade", Duration: ph.cfg.BladeHours, Limits: &ph.cfg.BladeLimits},
				{Name: "Lift and Attach Blade", Duration: ph.cfg.BladeHours, Limits: &ph.cfg.BladeLimits},
				{Name: "Lift and Attach Blade", Duration: ph.cfg.BladeHours, Limits: &ph.cfg.BladeLimits},
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
		remaining -= trip

		if _, err := env.Transit(name, ph.cfg.Vessel, "Port", p.Site.DistanceToPort, 0); err != nil {
			return tally(env, name), err
		}
	}

	return tally(env, name), nil
}
