package design

import (
	"github.com/windward-offshore/windward-go/internal/domain/project"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
)

// ComponentSemiSubmersible is produced by SemiSubmersibleDesign
const ComponentSemiSubmersible = "semisubmersible"

// SemiSubConfig carries the fabrication cost rates for a semisubmersible
// floating substructure. Zero values select the documented defaults.
type SemiSubConfig struct {
	ColumnCostRate         float64 // USD/t
	TrussCostRate          float64 // USD/t
	HeavePlateCostRate     float64 // USD/t
	SecondarySteelCostRate float64 // USD/t
	TowingSpeed            float64 // km/h, recorded for the install phase
}

func (c SemiSubConfig) withDefaults() SemiSubConfig {
	if c.ColumnCostRate == 0 {
		c.ColumnCostRate = 3120
	}
	if c.TrussCostRate == 0 {
		c.TrussCostRate = 6250
	}
	if c.HeavePlateCostRate == 0 {
		c.HeavePlateCostRate = 6250
	}
	if c.SecondarySteelCostRate == 0 {
		c.SecondarySteelCostRate = 7250
	}
	return c
}

// SemiSubmersibleDesign sizes a semisubmersible floating substructure from
// mass regressions fitted against turbine rated power, then prices each
// steel family at its fabrication rate.
type SemiSubmersibleDesign struct {
	cfg SemiSubConfig
}

// NewSemiSubmersibleDesign creates the phase with the given cost basis
func NewSemiSubmersibleDesign(cfg SemiSubConfig) *SemiSubmersibleDesign {
	return &SemiSubmersibleDesign{cfg: cfg.withDefaults()}
}

// Name is the phase's configuration identifier
func (d *SemiSubmersibleDesign) Name() string {
	return "SemiSubmersibleDesign"
}

// Components lists the produced component identifiers
func (d *SemiSubmersibleDesign) Components() []string {
	return []string{ComponentSemiSubmersible}
}

// Compute sizes and prices the floating substructure
func (d *SemiSubmersibleDesign) Compute(p project.Params) ([]project.DesignResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	power := p.Turbine.RatedPowerMW
	if power > 20 {
		return nil, shared.NewDomainValidationError(
			"turbine.rated_power", power, "mass regressions are fitted up to 20 MW")
	}

	columnMass := -0.9571*power*power + 40.89*power + 802.09
	trussMass := 2.7894*power*power + 15.591*power + 266.03
	heavePlateMass := -0.4397*power*power + 21.545*power + 177.42
	secondaryMass := -0.153*power*power + 6.54*power + 128.34

	unitMass := columnMass + trussMass + heavePlateMass + secondaryMass
	unitCost := columnMass*d.cfg.ColumnCostRate +
		trussMass*d.cfg.TrussCostRate +
		heavePlateMass*d.cfg.HeavePlateCostRate +
		secondaryMass*d.cfg.SecondarySteelCostRate

	n := p.Plant.NumTurbines
	result := project.DesignResult{
		Component:  ComponentSemiSubmersible,
		Mass:       unitMass,
		UnitCost:   unitCost,
		Units:      n,
		SystemCost: unitCost * float64(n),
		Attributes: map[string]float64{
			"stiffened_column_mass": columnMass,
			"truss_mass":            trussMass,
			"heave_plate_mass":      heavePlateMass,
			"secondary_steel_mass":  secondaryMass,
			"towing_speed":          d.cfg.TowingSpeed,
		},
	}
	return []project.DesignResult{result}, nil
}
