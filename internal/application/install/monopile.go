package install

import (
	"github.com/windward-offshore/windward-go/internal/application/design"
	"github.com/windward-offshore/windward-go/internal/application/simulation"
	"github.com/windward-offshore/windward-go/internal/domain/project"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
	"github.com/windward-offshore/windward-go/internal/domain/weather"
)

// MonopileInstallConfig drives the monopile installation phase. Durations
// are hours per unit of work; zero values select the documented defaults.
type MonopileInstallConfig struct {
	Vessel        string // installation vessel pool id
	PilesPerTrip  int
	LoadHours     float64
	PositionHours float64
	DriveHours    float64
	BoltHours     float64
	DriveLimits   weather.Limits
	LiftLimits    weather.Limits
}

func (c MonopileInstallConfig) withDefaults() MonopileInstallConfig {
	if c.PilesPerTrip == 0 {
		c.PilesPerTrip = 4
	}
	if c.LoadHours == 0 {
		c.LoadHours = 6
	}
	if c.PositionHours == 0 {
		c.PositionHours = 8
	}
	if c.DriveHours == 0 {
		c.DriveHours = 12
	}
	if c.BoltHours == 0 {
		c.BoltHours = 8
	}
	if !c.DriveLimits.Constrained() {
		c.DriveLimits = weather.Limits{MaxWaveHeight: 2, MaxWindSpeed: 15}
	}
	if !c.LiftLimits.Constrained() {
		c.LiftLimits = weather.Limits{MaxWaveHeight: 2.5, MaxWindSpeed: 18}
	}
	return c
}

// MonopileInstallation models an installation vessel shuttling monopiles
// from port: load a deck's worth, transit out, position / drive / bolt each
// pile under its weather limits, transit home for the next load.
type MonopileInstallation struct {
	cfg MonopileInstallConfig
}

// NewMonopileInstallation creates the phase for the given fleet assignment
func NewMonopileInstallation(cfg MonopileInstallConfig) (*MonopileInstallation, error) {
	if cfg.Vessel == "" {
		return nil, shared.NewMissingInputError("monopile_install.vessel")
	}
	return &MonopileInstallation{cfg: cfg.withDefaults()}, nil
}

// Name is the phase's configuration identifier
func (ph *MonopileInstallation) Name() string {
	return "MonopileInstallation"
}

// Requires lists the design components the phase consumes
func (ph *MonopileInstallation) Requires() []string {
	return []string{design.ComponentMonopile, design.ComponentTransitionPiece}
}

// Run schedules the phase's task graph
func (ph *MonopileInstallation) Run(env *simulation.Env, p project.Params, store *project.ResultStore) (Result, error) {
	name := ph.Name()
	if _, ok := store.Get(design.ComponentMonopile); !ok {
		return Result{}, shared.NewDependencyError(name, "no design result for "+design.ComponentMonopile)
	}

	if err := env.Mobilize(name, ph.cfg.Vessel); err != nil {
		return tally(env, name), err
	}

	remaining := p.Plant.NumTurbines
	for remaining > 0 {
		trip := ph.cfg.PilesPerTrip
		if trip > remaining {
			trip = remaining
		}

		for i := 0; i < trip; i++ {
			if _, err := env.Process(simulation.Request{
				Agent:    ph.cfg.Vessel,
				Name:     "Load Monopile",
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
				{Name: "Position Monopile", Duration: ph.cfg.PositionHours, Limits: &ph.cfg.DriveLimits},
				{Name: "Drive Monopile", Duration: ph.cfg.DriveHours, Limits: &ph.cfg.DriveLimits},
				{Name: "Bolt Transition Piece", Duration: ph.cfg.BoltHours, Limits: &ph.cfg.LiftLimits},
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
