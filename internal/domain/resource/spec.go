package resource

import (
	"github.com/windward-offshore/windward-go/internal/domain/shared"
	"github.com/windward-offshore/windward-go/internal/domain/weather"
)

// Spec is the static description of a vessel or shared asset: rates, transit
// performance, mobilization terms and operating limits. Specs are supplied by
// configuration and never mutated by the simulation.
type Spec struct {
	Name string

	// DayRate is the charter rate in USD/day while working or transiting
	DayRate float64

	// IdleDayRate prices weather and contention delays. Zero is valid:
	// some charters do not bill standby time.
	IdleDayRate float64

	// TransitSpeed in km/h
	TransitSpeed float64

	// MobilizationDays and MobilizationMult price the one-time mobilization:
	// cost = DayRate * MobilizationDays * MobilizationMult
	MobilizationDays float64
	MobilizationMult float64

	// Limits are the vessel's own operating thresholds, used when an action
	// does not carry stricter limits of its own
	Limits weather.Limits
}

// Validate checks the physical plausibility of the spec
func (s Spec) Validate() error {
	if s.DayRate < 0 {
		return shared.NewDomainValidationError("day_rate", s.DayRate, "must be non-negative")
	}
	if s.IdleDayRate < 0 {
		return shared.NewDomainValidationError("idle_day_rate", s.IdleDayRate, "must be non-negative")
	}
	if s.TransitSpeed < 0 {
		return shared.NewDomainValidationError("transit_speed", s.TransitSpeed, "must be non-negative")
	}
	if s.MobilizationDays < 0 {
		return shared.NewDomainValidationError("mobilization_days", s.MobilizationDays, "must be non-negative")
	}
	return nil
}

// MobilizationHours returns the mobilization duration on the simulation axis
func (s Spec) MobilizationHours() float64 {
	return shared.DaysToHours(s.MobilizationDays)
}

// MobilizationCost returns the one-time mobilization charge
func (s Spec) MobilizationCost() float64 {
	mult := s.MobilizationMult
	if mult == 0 {
		mult = 1
	}
	return s.DayRate * s.MobilizationDays * mult
}

// HourlyRate returns the working rate on the simulation axis
func (s Spec) HourlyRate() float64 {
	return shared.DayRateToHourly(s.DayRate)
}

// IdleHourlyRate returns the delay rate on the simulation axis
func (s Spec) IdleHourlyRate() float64 {
	return shared.DayRateToHourly(s.IdleDayRate)
}

// TransitHours returns the time to cover the given distance, or zero when the
// spec has no transit speed (quayside assets never transit)
func (s Spec) TransitHours(distanceKm float64) float64 {
	if s.TransitSpeed <= 0 {
		return 0
	}
	return distanceKm / s.TransitSpeed
}
