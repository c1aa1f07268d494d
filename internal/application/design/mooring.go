package design

import (
	"github.com/windward-offshore/windward-go/internal/domain/project"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
)

// ComponentMooring is produced by MooringSystemDesign
const ComponentMooring = "mooring_system"

// MooringType selects the station-keeping arrangement
type MooringType string

const (
	MooringCatenary MooringType = "Catenary"
	MooringSemiTaut MooringType = "SemiTaut"
	MooringTLP      MooringType = "TLP"
)

// IsValid checks if the mooring type has an implementation
func (m MooringType) IsValid() bool {
	switch m {
	case MooringCatenary, MooringSemiTaut, MooringTLP:
		return true
	default:
		return false
	}
}

// AnchorType returns the anchor family the arrangement uses
func (m MooringType) AnchorType() string {
	switch m {
	case MooringCatenary:
		return "Drag Embedment"
	case MooringSemiTaut:
		return "Suction Pile"
	case MooringTLP:
		return "Driven Pile"
	default:
		return ""
	}
}

// MooringConfig selects the mooring arrangement and its cost basis
type MooringConfig struct {
	Type           MooringType
	LinesPerUnit   int     // default 4
	LineDiameter   float64 // m, default 0.15
	LineCostRate   float64 // USD/m, default 1100
	AnchorCostRate float64 // USD/t, default 8500
}

func (c MooringConfig) withDefaults() MooringConfig {
	if c.LinesPerUnit == 0 {
		c.LinesPerUnit = 4
	}
	if c.LineDiameter == 0 {
		c.LineDiameter = 0.15
	}
	if c.LineCostRate == 0 {
		c.LineCostRate = 1100
	}
	if c.AnchorCostRate == 0 {
		c.AnchorCostRate = 8500
	}
	return c
}

// MooringSystemDesign sizes lines and anchors for a floating unit. Line
// length is a depth regression calibrated per arrangement: catenary systems
// pay for seabed scope, semi-taut for synthetic segments, TLP tendons run
// near-vertical. Unrecognized arrangements fail with a "not implemented"
// condition rather than a silent default.
type MooringSystemDesign struct {
	cfg MooringConfig
}

// NewMooringSystemDesign creates the phase for the given arrangement
func NewMooringSystemDesign(cfg MooringConfig) *MooringSystemDesign {
	return &MooringSystemDesign{cfg: cfg.withDefaults()}
}

// Name is the phase's configuration identifier
func (d *MooringSystemDesign) Name() string {
	return "MooringSystemDesign"
}

// Components lists the produced component identifiers
func (d *MooringSystemDesign) Components() []string {
	return []string{ComponentMooring}
}

// Compute sizes and prices the mooring system
func (d *MooringSystemDesign) Compute(p project.Params) ([]project.DesignResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if d.cfg.Type == "" {
		return nil, shared.NewMissingInputError("mooring_design.type")
	}
	if !d.cfg.Type.IsValid() {
		return nil, shared.NewNotImplementedError("mooring_design.type", string(d.cfg.Type))
	}

	depth := p.Site.Depth
	var lineLength, anchorMass float64
	switch d.cfg.Type {
	case MooringCatenary:
		// Scope regression for chain catenary with drag embedment anchors
		lineLength = 0.0002*depth*depth + 1.264*depth + 47.776
		anchorMass = 20
	case MooringSemiTaut:
		lineLength = 1.5*depth + 400
		anchorMass = 50
	case MooringTLP:
		lineLength = depth + 20
		anchorMass = 80
	}

	// Studless chain weight scales with the diameter squared
	lineMass := 19.9 * d.cfg.LineDiameter * d.cfg.LineDiameter * lineLength // t

	lineCost := lineLength * d.cfg.LineCostRate
	anchorCost := anchorMass * d.cfg.AnchorCostRate
	unitCost := float64(d.cfg.LinesPerUnit) * (lineCost + anchorCost)
	n := p.Plant.NumTurbines

	result := project.DesignResult{
		Component:  ComponentMooring,
		Mass:       lineMass,
		UnitCost:   unitCost,
		Units:      n * d.cfg.LinesPerUnit,
		SystemCost: unitCost * float64(n),
		Attributes: map[string]float64{
			"line_length":    lineLength,
			"line_mass":      lineMass,
			"line_diameter":  d.cfg.LineDiameter,
			"anchor_mass":    anchorMass,
			"lines_per_unit": float64(d.cfg.LinesPerUnit),
		},
		Labels: map[string]string{
			"mooring_type": string(d.cfg.Type),
			"anchor_type":  d.cfg.Type.AnchorType(),
		},
	}
	return []project.DesignResult{result}, nil
}
