package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/windward-offshore/windward-go/internal/application/design"
	"github.com/windward-offshore/windward-go/internal/application/install"
	"github.com/windward-offshore/windward-go/internal/domain/project"
	"github.com/windward-offshore/windward-go/internal/domain/resource"
	"github.com/windward-offshore/windward-go/internal/domain/weather"
)

// Scenario is the declarative description of one project run: the site and
// plant, the phases to execute, the fleet, and the cost basis. It is loaded
// from its own YAML file, separate from the process-level Config.
type Scenario struct {
	Name string `mapstructure:"name"`

	Site    SiteConfig    `mapstructure:"site" validate:"required"`
	Plant   PlantConfig   `mapstructure:"plant" validate:"required"`
	Turbine TurbineConfig `mapstructure:"turbine" validate:"required"`

	Weather WeatherConfig `mapstructure:"weather"`

	DesignPhases  []string `mapstructure:"design_phases"`
	InstallPhases []string `mapstructure:"install_phases"`

	Design  DesignSection  `mapstructure:"design"`
	Install InstallSection `mapstructure:"install"`

	Vessels []VesselConfig `mapstructure:"vessels" validate:"dive"`
	Groups  []GroupConfig  `mapstructure:"groups" validate:"dive"`

	Costs CostsConfig `mapstructure:"costs"`
}

// SiteConfig describes the development site
type SiteConfig struct {
	Depth           float64 `mapstructure:"depth" validate:"gt=0"`
	DistanceToShore float64 `mapstructure:"distance_to_shore" validate:"gt=0"`
	DistanceToPort  float64 `mapstructure:"distance_to_port" validate:"gt=0"`
	MeanWindspeed   float64 `mapstructure:"mean_windspeed" validate:"gt=0"`
}

// PlantConfig describes the plant layout
type PlantConfig struct {
	NumTurbines        int     `mapstructure:"num_turbines" validate:"min=1"`
	TurbineSpacing     float64 `mapstructure:"turbine_spacing"`
	RowSpacing         float64 `mapstructure:"row_spacing"`
	SubstationDistance float64 `mapstructure:"substation_distance"`
}

// TurbineConfig describes the turbine model
type TurbineConfig struct {
	Name           string  `mapstructure:"name" validate:"required"`
	RatedPowerMW   float64 `mapstructure:"rated_power_mw" validate:"gt=0"`
	RotorDiameter  float64 `mapstructure:"rotor_diameter" validate:"gt=0"`
	HubHeight      float64 `mapstructure:"hub_height" validate:"gt=0"`
	RatedWindspeed float64 `mapstructure:"rated_windspeed" validate:"gt=0"`
}

// WeatherConfig points at the weather time series. An empty file means the
// run is unconstrained by weather.
type WeatherConfig struct {
	File string `mapstructure:"file"`
}

// LimitsConfig holds operational weather limits; zero on an axis leaves that
// axis unconstrained
type LimitsConfig struct {
	MaxWaveHeight float64 `mapstructure:"max_waveheight"`
	MaxWindSpeed  float64 `mapstructure:"max_windspeed"`
}

func (c LimitsConfig) toLimits() weather.Limits {
	return weather.Limits{MaxWaveHeight: c.MaxWaveHeight, MaxWindSpeed: c.MaxWindSpeed}
}

// CableConfig describes one cable product
type CableConfig struct {
	Name            string  `mapstructure:"name"`
	LinearDensity   float64 `mapstructure:"linear_density"`
	CostPerKM       float64 `mapstructure:"cost_per_km"`
	RatedCapacityMW float64 `mapstructure:"rated_capacity_mw"`
}

func (c CableConfig) toSpec() design.CableSpec {
	return design.CableSpec{
		Name:            c.Name,
		LinearDensity:   c.LinearDensity,
		CostPerKM:       c.CostPerKM,
		RatedCapacityMW: c.RatedCapacityMW,
	}
}

// DesignSection holds the per-phase design knobs a scenario tunes. Physics
// constants not listed here keep their library defaults.
type DesignSection struct {
	Monopile struct {
		MonopileSteelCost float64 `mapstructure:"monopile_steel_cost"`
		TPSteelCost       float64 `mapstructure:"tp_steel_cost"`
		DesignCost        float64 `mapstructure:"design_cost"`
	} `mapstructure:"monopile"`

	ArrayCable struct {
		Cable              CableConfig `mapstructure:"cable"`
		TouchdownAllowance float64     `mapstructure:"touchdown_allowance"`
	} `mapstructure:"array_cable"`

	ExportCable struct {
		Cable          CableConfig `mapstructure:"cable"`
		LandfallLength float64     `mapstructure:"landfall_length"`
		Redundancy     float64     `mapstructure:"redundancy"`
	} `mapstructure:"export_cable"`

	Mooring struct {
		Type           string  `mapstructure:"type"`
		LinesPerUnit   int     `mapstructure:"lines_per_unit"`
		LineDiameter   float64 `mapstructure:"line_diameter"`
		LineCostRate   float64 `mapstructure:"line_cost_rate"`
		AnchorCostRate float64 `mapstructure:"anchor_cost_rate"`
	} `mapstructure:"mooring"`

	SemiSub struct {
		ColumnCostRate         float64 `mapstructure:"column_cost_rate"`
		TrussCostRate          float64 `mapstructure:"truss_cost_rate"`
		HeavePlateCostRate     float64 `mapstructure:"heave_plate_cost_rate"`
		SecondarySteelCostRate float64 `mapstructure:"secondary_steel_cost_rate"`
		TowingSpeed            float64 `mapstructure:"towing_speed"`
	} `mapstructure:"semisub"`

	Substation struct {
		NumSubstations   int     `mapstructure:"num_substations"`
		MPTCostRate      float64 `mapstructure:"mpt_cost_rate"`
		TopsideFabRate   float64 `mapstructure:"topside_fab_rate"`
		SubstructureRate float64 `mapstructure:"substructure_rate"`
	} `mapstructure:"substation"`
}

// DesignOptions converts the scenario's design section into phase options
func (s *Scenario) DesignOptions() design.Options {
	d := s.Design
	return design.Options{
		Monopile: design.MonopileConfig{
			MonopileSteelCost: d.Monopile.MonopileSteelCost,
			TPSteelCost:       d.Monopile.TPSteelCost,
			DesignCost:        d.Monopile.DesignCost,
		},
		ArrayCable: design.ArrayCableConfig{
			Cable:              d.ArrayCable.Cable.toSpec(),
			TouchdownAllowance: d.ArrayCable.TouchdownAllowance,
		},
		ExportCable: design.ExportCableConfig{
			Cable:          d.ExportCable.Cable.toSpec(),
			LandfallLength: d.ExportCable.LandfallLength,
			Redundancy:     d.ExportCable.Redundancy,
		},
		Mooring: design.MooringConfig{
			Type:           design.MooringType(d.Mooring.Type),
			LinesPerUnit:   d.Mooring.LinesPerUnit,
			LineDiameter:   d.Mooring.LineDiameter,
			LineCostRate:   d.Mooring.LineCostRate,
			AnchorCostRate: d.Mooring.AnchorCostRate,
		},
		SemiSub: design.SemiSubConfig{
			ColumnCostRate:         d.SemiSub.ColumnCostRate,
			TrussCostRate:          d.SemiSub.TrussCostRate,
			HeavePlateCostRate:     d.SemiSub.HeavePlateCostRate,
			SecondarySteelCostRate: d.SemiSub.SecondarySteelCostRate,
			TowingSpeed:            d.SemiSub.TowingSpeed,
		},
		Substation: design.SubstationConfig{
			NumSubstations:   d.Substation.NumSubstations,
			MPTCostRate:      d.Substation.MPTCostRate,
			TopsideFabRate:   d.Substation.TopsideFabRate,
			SubstructureRate: d.Substation.SubstructureRate,
		},
	}
}

// InstallSection holds the per-phase installation knobs a scenario tunes
type InstallSection struct {
	Monopile struct {
		Vessel       string       `mapstructure:"vessel"`
		PilesPerTrip int          `mapstructure:"piles_per_trip"`
		DriveLimits  LimitsConfig `mapstructure:"drive_limits"`
		LiftLimits   LimitsConfig `mapstructure:"lift_limits"`
	} `mapstructure:"monopile"`

	Turbine struct {
		Vessel          string       `mapstructure:"vessel"`
		TurbinesPerTrip int          `mapstructure:"turbines_per_trip"`
		LiftLimits      LimitsConfig `mapstructure:"lift_limits"`
		BladeLimits     LimitsConfig `mapstructure:"blade_limits"`
	} `mapstructure:"turbine"`

	ArrayCable  CableInstallSection `mapstructure:"array_cable"`
	ExportCable CableInstallSection `mapstructure:"export_cable"`

	Mooring struct {
		Vessel       string       `mapstructure:"vessel"`
		SitesPerTrip int          `mapstructure:"sites_per_trip"`
		WorkLimits   LimitsConfig `mapstructure:"work_limits"`
	} `mapstructure:"mooring"`

	MooredSub struct {
		AssemblyLineGroup string       `mapstructure:"assembly_line_group"`
		CraneGroup        string       `mapstructure:"crane_group"`
		TowGroup          string       `mapstructure:"tow_group"`
		TowVesselsPerTow  int          `mapstructure:"tow_vessels_per_tow"`
		SupportVessel     string       `mapstructure:"support_vessel"`
		TaktHours         float64      `mapstructure:"takt_hours"`
		TowSpeedKmH       float64      `mapstructure:"tow_speed_kmh"`
		TowLimits         LimitsConfig `mapstructure:"tow_limits"`
		HookupLimits      LimitsConfig `mapstructure:"hookup_limits"`
	} `mapstructure:"moored_sub"`

	Substation struct {
		Vessel     string       `mapstructure:"vessel"`
		LiftLimits LimitsConfig `mapstructure:"lift_limits"`
	} `mapstructure:"substation"`

	// TurbineSubstructure selects what turbines are erected onto:
	// "monopile" (default) or "semisubmersible"
	TurbineSubstructure string `mapstructure:"turbine_substructure" validate:"omitempty,oneof=monopile semisubmersible"`
}

// CableInstallSection holds the knobs shared by both cable campaigns
type CableInstallSection struct {
	Vessel      string       `mapstructure:"vessel"`
	LaySpeedKmH float64      `mapstructure:"lay_speed_kmh"`
	LayLimits   LimitsConfig `mapstructure:"lay_limits"`
}

// InstallOptions converts the scenario's install section into phase options
func (s *Scenario) InstallOptions() install.Options {
	i := s.Install
	return install.Options{
		Monopile: install.MonopileInstallConfig{
			Vessel:       i.Monopile.Vessel,
			PilesPerTrip: i.Monopile.PilesPerTrip,
			DriveLimits:  i.Monopile.DriveLimits.toLimits(),
			LiftLimits:   i.Monopile.LiftLimits.toLimits(),
		},
		Turbine: install.TurbineInstallConfig{
			Vessel:          i.Turbine.Vessel,
			TurbinesPerTrip: i.Turbine.TurbinesPerTrip,
			LiftLimits:      i.Turbine.LiftLimits.toLimits(),
			BladeLimits:     i.Turbine.BladeLimits.toLimits(),
		},
		ArrayCable: install.CableInstallConfig{
			Vessel:      i.ArrayCable.Vessel,
			LaySpeedKmH: i.ArrayCable.LaySpeedKmH,
			LayLimits:   i.ArrayCable.LayLimits.toLimits(),
		},
		ExportCable: install.CableInstallConfig{
			Vessel:      i.ExportCable.Vessel,
			LaySpeedKmH: i.ExportCable.LaySpeedKmH,
			LayLimits:   i.ExportCable.LayLimits.toLimits(),
		},
		Mooring: install.MooringInstallConfig{
			Vessel:       i.Mooring.Vessel,
			SitesPerTrip: i.Mooring.SitesPerTrip,
			WorkLimits:   i.Mooring.WorkLimits.toLimits(),
		},
		MooredSub: install.MooredSubConfig{
			AssemblyLineGroup: i.MooredSub.AssemblyLineGroup,
			CraneGroup:        i.MooredSub.CraneGroup,
			TowGroup:          i.MooredSub.TowGroup,
			TowVesselsPerTow:  i.MooredSub.TowVesselsPerTow,
			SupportVessel:     i.MooredSub.SupportVessel,
			TaktHours:         i.MooredSub.TaktHours,
			TowSpeedKmH:       i.MooredSub.TowSpeedKmH,
			TowLimits:         i.MooredSub.TowLimits.toLimits(),
			HookupLimits:      i.MooredSub.HookupLimits.toLimits(),
		},
		Substation: install.SubstationInstallConfig{
			Vessel:     i.Substation.Vessel,
			LiftLimits: i.Substation.LiftLimits.toLimits(),
		},
		TurbineSubstructure: turbineSubstructureComponent(i.TurbineSubstructure),
	}
}

func turbineSubstructureComponent(key string) string {
	if key == "semisubmersible" {
		return design.ComponentSemiSubmersible
	}
	return ""
}

// VesselConfig describes one named vessel or piece of port equipment
type VesselConfig struct {
	ID               string       `mapstructure:"id" validate:"required"`
	DayRate          float64      `mapstructure:"day_rate" validate:"gt=0"`
	IdleDayRate      float64      `mapstructure:"idle_day_rate"`
	TransitSpeed     float64      `mapstructure:"transit_speed"`
	MobilizationDays float64      `mapstructure:"mobilization_days"`
	MobilizationMult float64      `mapstructure:"mobilization_mult"`
	Limits           LimitsConfig `mapstructure:"limits"`
}

func (c VesselConfig) toSpec() resource.Spec {
	return resource.Spec{
		Name:             c.ID,
		DayRate:          c.DayRate,
		IdleDayRate:      c.IdleDayRate,
		TransitSpeed:     c.TransitSpeed,
		MobilizationDays: c.MobilizationDays,
		MobilizationMult: c.MobilizationMult,
		Limits:           c.Limits.toLimits(),
	}
}

// GroupConfig describes a pool of identical units addressed as a group
type GroupConfig struct {
	Name             string       `mapstructure:"name" validate:"required"`
	Count            int          `mapstructure:"count" validate:"min=1"`
	DayRate          float64      `mapstructure:"day_rate" validate:"gt=0"`
	IdleDayRate      float64      `mapstructure:"idle_day_rate"`
	TransitSpeed     float64      `mapstructure:"transit_speed"`
	MobilizationDays float64      `mapstructure:"mobilization_days"`
	MobilizationMult float64      `mapstructure:"mobilization_mult"`
	Limits           LimitsConfig `mapstructure:"limits"`
}

// CostsConfig holds the per-kW cost basis for priced capex categories
type CostsConfig struct {
	TurbineCapexPerKW float64 `mapstructure:"turbine_capex_per_kw"`
	SoftCapexPerKW    float64 `mapstructure:"soft_capex_per_kw"`
	ProjectCapexPerKW float64 `mapstructure:"project_capex_per_kw"`
}

// ToParams converts the scenario's project sections into domain parameters
func (s *Scenario) ToParams() project.Params {
	return project.Params{
		Site: project.Site{
			Depth:           s.Site.Depth,
			DistanceToShore: s.Site.DistanceToShore,
			DistanceToPort:  s.Site.DistanceToPort,
			MeanWindspeed:   s.Site.MeanWindspeed,
		},
		Plant: project.Plant{
			NumTurbines:        s.Plant.NumTurbines,
			TurbineSpacing:     s.Plant.TurbineSpacing,
			RowSpacing:         s.Plant.RowSpacing,
			SubstationDistance: s.Plant.SubstationDistance,
		},
		Turbine: project.Turbine{
			Name:           s.Turbine.Name,
			RatedPowerMW:   s.Turbine.RatedPowerMW,
			RotorDiameter:  s.Turbine.RotorDiameter,
			HubHeight:      s.Turbine.HubHeight,
			RatedWindspeed: s.Turbine.RatedWindspeed,
		},
	}
}

// BuildPool registers every vessel and group of the scenario into a pool
func (s *Scenario) BuildPool() (*resource.Pool, error) {
	pool := resource.NewPool()
	for _, v := range s.Vessels {
		if err := pool.Register(v.ID, v.toSpec()); err != nil {
			return nil, err
		}
	}
	for _, g := range s.Groups {
		spec := resource.Spec{
			Name:             g.Name,
			DayRate:          g.DayRate,
			IdleDayRate:      g.IdleDayRate,
			TransitSpeed:     g.TransitSpeed,
			MobilizationDays: g.MobilizationDays,
			MobilizationMult: g.MobilizationMult,
			Limits:           g.Limits.toLimits(),
		}
		if err := pool.RegisterGroup(g.Name, g.Count, spec); err != nil {
			return nil, err
		}
	}
	return pool, nil
}

// LoadScenario reads and validates a scenario file
func LoadScenario(path string) (*Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var s Scenario
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}

	if err := ValidateScenario(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &s, nil
}
