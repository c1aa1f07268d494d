package project

import "github.com/windward-offshore/windward-go/internal/domain/shared"

// Site holds the immutable physical parameters of the project site.
// Distances are in km, depth in m, wind speeds in m/s.
type Site struct {
	Depth            float64
	DistanceToShore  float64
	DistanceToPort   float64
	MeanWindspeed    float64
}

// Validate checks the physical plausibility of the site
func (s Site) Validate() error {
	if s.Depth <= 0 {
		return shared.NewDomainValidationError("site.depth", s.Depth, "must be positive")
	}
	if s.DistanceToShore < 0 {
		return shared.NewDomainValidationError("site.distance_to_shore", s.DistanceToShore, "must be non-negative")
	}
	if s.DistanceToPort < 0 {
		return shared.NewDomainValidationError("site.distance_to_port", s.DistanceToPort, "must be non-negative")
	}
	if s.MeanWindspeed < 0 {
		return shared.NewDomainValidationError("site.mean_windspeed", s.MeanWindspeed, "must be non-negative")
	}
	return nil
}

// Plant holds the immutable layout parameters of the plant
type Plant struct {
	NumTurbines int

	// TurbineSpacing and RowSpacing in rotor diameters
	TurbineSpacing float64
	RowSpacing     float64

	// SubstationDistance from the plant edge, km
	SubstationDistance float64
}

// Validate checks the physical plausibility of the plant layout
func (p Plant) Validate() error {
	if p.NumTurbines <= 0 {
		return shared.NewDomainValidationError("plant.num_turbines", float64(p.NumTurbines), "must be positive")
	}
	if p.TurbineSpacing <= 0 {
		return shared.NewDomainValidationError("plant.turbine_spacing", p.TurbineSpacing, "must be positive")
	}
	return nil
}

// Turbine holds the immutable turbine parameters. Rotor diameter, hub height
// in m; rated power in MW; windspeeds in m/s.
type Turbine struct {
	Name           string
	RatedPowerMW   float64
	RotorDiameter  float64
	HubHeight      float64
	RatedWindspeed float64
}

// Validate checks the physical plausibility of the turbine
func (t Turbine) Validate() error {
	if t.RatedPowerMW <= 0 {
		return shared.NewDomainValidationError("turbine.rated_power", t.RatedPowerMW, "must be positive")
	}
	if t.RotorDiameter <= 0 {
		return shared.NewDomainValidationError("turbine.rotor_diameter", t.RotorDiameter, "must be positive")
	}
	if t.HubHeight <= 0 {
		return shared.NewDomainValidationError("turbine.hub_height", t.HubHeight, "must be positive")
	}
	if t.RatedWindspeed <= 0 {
		return shared.NewDomainValidationError("turbine.rated_windspeed", t.RatedWindspeed, "must be positive")
	}
	return nil
}

// Params bundles the read-only inputs handed to every phase. Owned by the
// orchestrator; phases never mutate it.
type Params struct {
	Site    Site
	Plant   Plant
	Turbine Turbine
}

// Validate checks all parameter groups
func (p Params) Validate() error {
	if err := p.Site.Validate(); err != nil {
		return err
	}
	if err := p.Plant.Validate(); err != nil {
		return err
	}
	return p.Turbine.Validate()
}

// CapacityMW returns the plant's nameplate capacity
func (p Params) CapacityMW() float64 {
	return float64(p.Plant.NumTurbines) * p.Turbine.RatedPowerMW
}

// CapacityKW returns the nameplate capacity in kW
func (p Params) CapacityKW() float64 {
	return p.CapacityMW() * 1000
}

// SpacingKm returns the in-row turbine spacing in km
func (p Params) SpacingKm() float64 {
	return p.Plant.TurbineSpacing * p.Turbine.RotorDiameter / 1000
}
