package install

import (
	"github.com/windward-offshore/windward-go/internal/application/design"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
)

// Options bundles every per-phase installation configuration a scenario can
// carry. The registry hands each phase its own section.
type Options struct {
	Monopile    MonopileInstallConfig
	Turbine     TurbineInstallConfig
	ArrayCable  CableInstallConfig
	ExportCable CableInstallConfig
	Mooring     MooringInstallConfig
	MooredSub   MooredSubConfig
	Substation  SubstationInstallConfig

	// TurbineSubstructure names the design component turbines are erected
	// onto: monopile for fixed-bottom plants, semisubmersible for floating.
	// Defaults to monopile.
	TurbineSubstructure string
}

// NewPhase constructs the installation phase registered under the given
// configuration key. Unrecognized keys fail with a "not implemented"
// condition, never a silent default.
func NewPhase(name string, opts Options) (Phase, error) {
	switch name {
	case "MonopileInstallation":
		return NewMonopileInstallation(opts.Monopile)
	case "TurbineInstallation":
		sub := opts.TurbineSubstructure
		if sub == "" {
			sub = design.ComponentMonopile
		}
		return NewTurbineInstallation(opts.Turbine, sub)
	case "ArrayCableInstallation":
		return NewCableInstallation(CableArray, opts.ArrayCable)
	case "ExportCableInstallation":
		return NewCableInstallation(CableExport, opts.ExportCable)
	case "MooringSystemInstallation":
		return NewMooringInstallation(opts.Mooring)
	case "MooredSubInstallation":
		return NewMooredSubInstallation(opts.MooredSub)
	case "SubstationInstallation":
		return NewSubstationInstallation(opts.Substation)
	default:
		return nil, shared.NewNotImplementedError("install_phases", name)
	}
}
