package install

import (
	"fmt"

	"github.com/windward-offshore/windward-go/internal/application/design"
	"github.com/windward-offshore/windward-go/internal/application/simulation"
	"github.com/windward-offshore/windward-go/internal/domain/project"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
	"github.com/windward-offshore/windward-go/internal/domain/weather"
)

// MooringInstallConfig drives the mooring pre-lay campaign
type MooringInstallConfig struct {
	Vessel       string  // anchor handling vessel pool id
	AnchorHours  float64 // per anchor
	LineHours    float64 // per line
	SitesPerTrip int
	WorkLimits   weather.Limits
}

func (c MooringInstallConfig) withDefaults() MooringInstallConfig {
	if c.AnchorHours == 0 {
		c.AnchorHours = 5
	}
	if c.LineHours == 0 {
		c.LineHours = 5
	}
	if c.SitesPerTrip == 0 {
		c.SitesPerTrip = 5
	}
	if !c.WorkLimits.Constrained() {
		c.WorkLimits = weather.Limits{MaxWaveHeight: 2, MaxWindSpeed: 18}
	}
	return c
}

// MooringInstallation models an anchor handling vessel pre-laying the
// mooring spread: for each turbine site, one anchor and one line per
// configured mooring leg, resupplying at port between site batches.
type MooringInstallation struct {
	cfg MooringInstallConfig
}

// NewMooringInstallation creates the phase for the given fleet assignment
func NewMooringInstallation(cfg MooringInstallConfig) (*MooringInstallation, error) {
	if cfg.Vessel == "" {
		return nil, shared.NewMissingInputError("mooring_install.vessel")
	}
	return &MooringInstallation{cfg: cfg.withDefaults()}, nil
}

// Name is the phase's configuration identifier
func (ph *MooringInstallation) Name() string {
	return "MooringSystemInstallation"
}

// Requires lists the design components the phase consumes
func (ph *MooringInstallation) Requires() []string {
	return []string{design.ComponentMooring}
}

// Run schedules the phase's task graph
func (ph *MooringInstallation) Run(env *simulation.Env, p project.Params, store *project.ResultStore) (Result, error) {
	name := ph.Name()
	result, ok := store.Get(design.ComponentMooring)
	if !ok {
		return Result{}, shared.NewDependencyError(name, "no design result for "+design.ComponentMooring)
	}
	lines := int(result.Attributes["lines_per_unit"])
	if lines == 0 {
		lines = 4
	}

	if err := env.Mobilize(name, ph.cfg.Vessel); err != nil {
		return tally(env, name), err
	}

	remaining := p.Plant.NumTurbines
	for remaining > 0 {
		batch := ph.cfg.SitesPerTrip
		if batch > remaining {
			batch = remaining
		}

		if _, err := env.Process(simulation.Request{
			Agent:    ph.cfg.Vessel,
			Name:     "Load Mooring Hardware",
			Phase:    name,
			Location: "Port",
			Duration: float64(batch*lines) * 1.5,
			Limits:   &weather.Limits{},
		}); err != nil {
			return tally(env, name), err
		}
		if _, err := env.Transit(name, ph.cfg.Vessel, "Site", p.Site.DistanceToPort, 0); err != nil {
			return tally(env, name), err
		}

		for site := 0; site < batch; site++ {
			for line := 0; line < lines; line++ {
				anchor := fmt.Sprintf("Install %s Anchor", result.Labels["anchor_type"])
				steps := []simulation.Request{
					{Name: anchor, Duration: ph.cfg.AnchorHours, Limits: &ph.cfg.WorkLimits},
					{Name: "Install Mooring Line", Duration: ph.cfg.LineHours, Limits: &ph.cfg.WorkLimits},
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
		}
		remaining -= batch

		if _, err := env.Transit(name, ph.cfg.Vessel, "Port", p.Site.DistanceToPort, 0); err != nil {
			return tally(env, name), err
		}
	}

	return tally(env, name), nil
}
