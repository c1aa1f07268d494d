package weather

import (
	"sort"

	"github.com/windward-offshore/windward-go/internal/domain/shared"
)

// Oracle answers feasibility queries against a time-indexed series of
// environmental observations. It only ever looks backward from the requested
// window: there is no lookahead beyond the window being evaluated, so phases
// cannot gain implicit foresight of future weather.
//
// An Oracle built without a series (see Unconstrained) reports every window
// as feasible. That mode exists for scenarios that deliberately model calm
// conditions; it is selected explicitly in configuration, never silently.
type Oracle struct {
	samples []Sample
	end     float64
}

// NewOracle creates an Oracle over an ascending series of samples.
// The last sample is assumed to hold for the same spacing as the preceding
// interval; queries extending past that point fail with a WeatherDataError.
func NewOracle(samples []Sample) (*Oracle, error) {
	for i := 1; i < len(samples); i++ {
		if samples[i].Hour <= samples[i-1].Hour {
			return nil, shared.NewDomainValidationError(
				"weather.samples", samples[i].Hour,
				"sample hours must be strictly ascending",
			)
		}
	}
	o := &Oracle{samples: samples}
	switch n := len(samples); {
	case n >= 2:
		o.end = samples[n-1].Hour + (samples[n-1].Hour - samples[n-2].Hour)
	case n == 1:
		o.end = samples[0].Hour
	}
	return o, nil
}

// Unconstrained returns an Oracle with no series: every window is feasible.
// This is the documented fallback for runs configured without weather data.
func Unconstrained() *Oracle {
	return &Oracle{}
}

// HasSeries reports whether the Oracle carries actual weather data
func (o *Oracle) HasSeries() bool {
	return len(o.samples) > 0
}

// SeriesEnd returns the last simulated hour covered by the series
func (o *Oracle) SeriesEnd() float64 {
	return o.end
}

// IsFeasible reports whether every sample within [start, start+window)
// satisfies both thresholds.
func (o *Oracle) IsFeasible(start, window float64, limits Limits) (bool, error) {
	if !o.HasSeries() || !limits.Constrained() {
		return true, nil
	}
	if start+window > o.end {
		return false, shared.NewWeatherDataError(start, window, o.end)
	}
	return o.violationIn(start, window, limits) < 0, nil
}

// NextFeasible finds the earliest hour >= start at which the entire window
// satisfies both thresholds. It walks the series sample by sample, so a
// permanently hostile trace terminates with a WeatherDataError once the
// candidate window runs off the end of the series, never by hanging.
func (o *Oracle) NextFeasible(start, window float64, limits Limits) (float64, error) {
	if !o.HasSeries() || !limits.Constrained() {
		return start, nil
	}
	candidate := start
	for {
		if candidate+window > o.end {
			return 0, shared.NewWeatherDataError(candidate, window, o.end)
		}
		i := o.violationIn(candidate, window, limits)
		if i < 0 {
			return candidate, nil
		}
		// The violating sample holds until the next one; restart there.
		if i+1 >= len(o.samples) {
			return 0, shared.NewWeatherDataError(candidate, window, o.end)
		}
		candidate = o.samples[i+1].Hour
	}
}

// violationIn returns the index of the first sample governing any part of
// [start, start+window) that violates the limits, or -1 if the window is clear.
func (o *Oracle) violationIn(start, window float64, limits Limits) int {
	// First sample whose step interval covers `start`: the last sample with
	// Hour <= start, or the first sample if the window begins before the series.
	first := sort.Search(len(o.samples), func(i int) bool {
		return o.samples[i].Hour > start
	}) - 1
	if first < 0 {
		first = 0
	}
	for i := first; i < len(o.samples) && o.samples[i].Hour < start+window; i++ {
		if !limits.Permits(o.samples[i]) {
			return i
		}
	}
	return -1
}
