package design

import (
	"math"

	"github.com/windward-offshore/windward-go/internal/domain/project"
)

// Component identifiers produced by SubstationDesign
const (
	ComponentSubstationTopside      = "substation_topside"
	ComponentSubstationSubstructure = "substation_substructure"
)

// SubstationConfig carries the electrical sizing basis. Zero values select
// the documented defaults.
type SubstationConfig struct {
	NumSubstations   int     // default 1
	MPTRatingMVA     float64 // per main power transformer, default 330
	MPTCostRate      float64 // USD/MVA
	TopsideFabRate   float64 // USD/t
	TopsideDesignFee float64 // USD
	ShuntCostRate    float64 // USD/MW
	SwitchgearCost   float64 // USD per substation
	BackupGenCost    float64
	WorkspaceCost    float64
	AncillaryCost    float64
	SubstructureRate float64 // USD/t
}

func (c SubstationConfig) withDefaults() SubstationConfig {
	if c.NumSubstations == 0 {
		c.NumSubstations = 1
	}
	if c.MPTRatingMVA == 0 {
		c.MPTRatingMVA = 330
	}
	if c.MPTCostRate == 0 {
		c.MPTCostRate = 12500
	}
	if c.TopsideFabRate == 0 {
		c.TopsideFabRate = 14500
	}
	if c.TopsideDesignFee == 0 {
		c.TopsideDesignFee = 4.5e6
	}
	if c.ShuntCostRate == 0 {
		c.ShuntCostRate = 35000
	}
	if c.SwitchgearCost == 0 {
		c.SwitchgearCost = 14.5e6
	}
	if c.BackupGenCost == 0 {
		c.BackupGenCost = 1e6
	}
	if c.WorkspaceCost == 0 {
		c.WorkspaceCost = 2e6
	}
	if c.AncillaryCost == 0 {
		c.AncillaryCost = 3e6
	}
	if c.SubstructureRate == 0 {
		c.SubstructureRate = 3000
	}
	return c
}

// SubstationDesign sizes the offshore substation: transformer count from
// plant capacity, topside mass from the transformer bank, substructure mass
// from the topside it carries.
type SubstationDesign struct {
	cfg SubstationConfig
}

// NewSubstationDesign creates the phase with the given sizing basis
func NewSubstationDesign(cfg SubstationConfig) *SubstationDesign {
	return &SubstationDesign{cfg: cfg.withDefaults()}
}

// Name is the phase's configuration identifier
func (d *SubstationDesign) Name() string {
	return "SubstationDesign"
}

// Components lists the produced component identifiers
func (d *SubstationDesign) Components() []string {
	return []string{ComponentSubstationTopside, ComponentSubstationSubstructure}
}

// Compute sizes and prices the substation topside and substructure
func (d *SubstationDesign) Compute(p project.Params) ([]project.DesignResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	capacityPer := p.CapacityMW() / float64(d.cfg.NumSubstations)
	numMPT := int(math.Ceil(capacityPer / d.cfg.MPTRatingMVA))

	topsideMass := 3.85*d.cfg.MPTRatingMVA*float64(numMPT) + 285
	electricalCost := d.cfg.MPTCostRate*d.cfg.MPTRatingMVA*float64(numMPT) +
		d.cfg.ShuntCostRate*capacityPer +
		d.cfg.SwitchgearCost + d.cfg.BackupGenCost +
		d.cfg.WorkspaceCost + d.cfg.AncillaryCost
	topsideCost := topsideMass*d.cfg.TopsideFabRate + d.cfg.TopsideDesignFee + electricalCost

	substructureMass := 0.4 * topsideMass
	substructureCost := substructureMass * d.cfg.SubstructureRate

	n := d.cfg.NumSubstations
	topside := project.DesignResult{
		Component:  ComponentSubstationTopside,
		Mass:       topsideMass,
		UnitCost:   topsideCost,
		Units:      n,
		SystemCost: topsideCost * float64(n),
		Attributes: map[string]float64{
			"num_mpt":    float64(numMPT),
			"mpt_rating": d.cfg.MPTRatingMVA,
		},
	}
	substructure := project.DesignResult{
		Component:  ComponentSubstationSubstructure,
		Mass:       substructureMass,
		UnitCost:   substructureCost,
		Units:      n,
		SystemCost: substructureCost * float64(n),
	}
	return []project.DesignResult{topside, substructure}, nil
}
