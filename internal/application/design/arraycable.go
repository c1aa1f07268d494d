package design

import (
	"math"

	"github.com/windward-offshore/windward-go/internal/domain/project"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
)

// ComponentArrayCable is produced by ArrayCableDesign
const ComponentArrayCable = "array_cable"

// CableSpec is the static description of a cable product
type CableSpec struct {
	Name            string
	LinearDensity   float64 // t/km
	CostPerKM       float64 // USD/km
	RatedCapacityMW float64
}

func (c CableSpec) validate(section string) error {
	if c.Name == "" {
		return shared.NewMissingInputError(section + ".cable.name")
	}
	if c.LinearDensity <= 0 {
		return shared.NewDomainValidationError(section+".cable.linear_density", c.LinearDensity, "must be positive")
	}
	if c.CostPerKM <= 0 {
		return shared.NewDomainValidationError(section+".cable.cost_per_km", c.CostPerKM, "must be positive")
	}
	if c.RatedCapacityMW <= 0 {
		return shared.NewDomainValidationError(section+".cable.rated_capacity", c.RatedCapacityMW, "must be positive")
	}
	return nil
}

// ArrayCableConfig selects the array cable product and routing allowances
type ArrayCableConfig struct {
	Cable CableSpec

	// TouchdownAllowance adds suspended cable per segment end, m.
	// Defaults to the site depth.
	TouchdownAllowance float64
}

// ArrayCableDesign routes the inter-turbine collection system: turbines are
// chained into strings sized by the cable's rated capacity, each string
// running home to the substation.
type ArrayCableDesign struct {
	cfg ArrayCableConfig
}

// NewArrayCableDesign creates the phase for the given cable choice
func NewArrayCableDesign(cfg ArrayCableConfig) *ArrayCableDesign {
	return &ArrayCableDesign{cfg: cfg}
}

// Name is the phase's configuration identifier
func (d *ArrayCableDesign) Name() string {
	return "ArrayCableDesign"
}

// Components lists the produced component identifiers
func (d *ArrayCableDesign) Components() []string {
	return []string{ComponentArrayCable}
}

// Compute sizes and prices the array cable system
func (d *ArrayCableDesign) Compute(p project.Params) ([]project.DesignResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := d.cfg.Cable.validate("array_cable_design"); err != nil {
		return nil, err
	}

	perString := int(d.cfg.Cable.RatedCapacityMW / p.Turbine.RatedPowerMW)
	if perString < 1 {
		return nil, shared.NewDomainValidationError(
			"array_cable_design.cable.rated_capacity", d.cfg.Cable.RatedCapacityMW,
			"cable cannot carry a single turbine",
		)
	}
	numStrings := int(math.Ceil(float64(p.Plant.NumTurbines) / float64(perString)))

	touchdown := d.cfg.TouchdownAllowance
	if touchdown == 0 {
		touchdown = p.Site.Depth
	}
	segmentKm := p.SpacingKm() + 2*touchdown/1000
	totalKm := float64(p.Plant.NumTurbines)*segmentKm +
		float64(numStrings)*p.Plant.SubstationDistance

	result := project.DesignResult{
		Component:  ComponentArrayCable,
		Mass:       d.cfg.Cable.LinearDensity * totalKm,
		UnitCost:   d.cfg.Cable.CostPerKM,
		Units:      p.Plant.NumTurbines,
		SystemCost: totalKm * d.cfg.Cable.CostPerKM,
		Attributes: map[string]float64{
			"total_length":        totalKm,
			"segment_length":      segmentKm,
			"num_strings":         float64(numStrings),
			"turbines_per_string": float64(perString),
		},
		Labels: map[string]string{"cable": d.cfg.Cable.Name},
	}
	return []project.DesignResult{result}, nil
}
