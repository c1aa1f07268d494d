package design

import "github.com/windward-offshore/windward-go/internal/domain/shared"

// Options bundles every per-component design configuration a scenario can
// carry. The registry hands each phase its own section.
type Options struct {
	Monopile    MonopileConfig
	ArrayCable  ArrayCableConfig
	ExportCable ExportCableConfig
	Mooring     MooringConfig
	SemiSub     SemiSubConfig
	Substation  SubstationConfig
}

// NewPhase constructs the design phase registered under the given
// configuration key. Unrecognized keys fail with a "not implemented"
// condition, never a silent default.
func NewPhase(name string, opts Options) (Phase, error) {
	switch name {
	case "MonopileDesign":
		return NewMonopileDesign(opts.Monopile), nil
	case "ArrayCableDesign":
		return NewArrayCableDesign(opts.ArrayCable), nil
	case "ExportCableDesign":
		return NewExportCableDesign(opts.ExportCable), nil
	case "MooringSystemDesign":
		return NewMooringSystemDesign(opts.Mooring), nil
	case "SemiSubmersibleDesign":
		return NewSemiSubmersibleDesign(opts.SemiSub), nil
	case "SubstationDesign":
		return NewSubstationDesign(opts.Substation), nil
	default:
		return nil, shared.NewNotImplementedError("design_phases", name)
	}
}
