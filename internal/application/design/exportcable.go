package design

import (
	"math"

	"github.com/windward-offshore/windward-go/internal/domain/project"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
)

// ComponentExportCable is produced by ExportCableDesign
const ComponentExportCable = "export_cable"

// ExportCableConfig selects the export cable product and landfall allowances
type ExportCableConfig struct {
	Cable CableSpec

	// LandfallLength covers the shore approach per cable, km
	LandfallLength float64

	// Redundancy adds spare export capacity, e.g. 0.1 for 10%
	Redundancy float64
}

// ExportCableDesign sizes the transmission run from substation to landfall:
// enough parallel cables to carry plant capacity plus configured redundancy.
type ExportCableDesign struct {
	cfg ExportCableConfig
}

// NewExportCableDesign creates the phase for the given cable choice
func NewExportCableDesign(cfg ExportCableConfig) *ExportCableDesign {
	return &ExportCableDesign{cfg: cfg}
}

// Name is the phase's configuration identifier
func (d *ExportCableDesign) Name() string {
	return "ExportCableDesign"
}

// Components lists the produced component identifiers
func (d *ExportCableDesign) Components() []string {
	return []string{ComponentExportCable}
}

// Compute sizes and prices the export cable system
func (d *ExportCableDesign) Compute(p project.Params) ([]project.DesignResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := d.cfg.Cable.validate("export_cable_design"); err != nil {
		return nil, err
	}
	if p.Site.DistanceToShore <= 0 {
		return nil, shared.NewMissingInputError("site.distance_to_shore")
	}

	required := p.CapacityMW() * (1 + d.cfg.Redundancy)
	numCables := int(math.Ceil(required / d.cfg.Cable.RatedCapacityMW))
	lengthKm := p.Site.DistanceToShore + p.Site.Depth/1000 + d.cfg.LandfallLength
	totalKm := lengthKm * float64(numCables)

	result := project.DesignResult{
		Component:  ComponentExportCable,
		Mass:       d.cfg.Cable.LinearDensity * totalKm,
		UnitCost:   lengthKm * d.cfg.Cable.CostPerKM,
		Units:      numCables,
		SystemCost: totalKm * d.cfg.Cable.CostPerKM,
		Attributes: map[string]float64{
			"total_length":  totalKm,
			"cable_length":  lengthKm,
			"num_cables":    float64(numCables),
		},
		Labels: map[string]string{"cable": d.cfg.Cable.Name},
	}
	return []project.DesignResult{result}, nil
}
