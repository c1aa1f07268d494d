package weather

// Sample is one environmental observation: significant wave height (m) and
// wind speed (m/s) at a given simulated hour. Samples are treated as step
// functions: a sample holds its value until the hour of the next sample.
type Sample struct {
	Hour       float64
	WaveHeight float64
	WindSpeed  float64
}

// Limits are the operating thresholds an action must satisfy for its entire
// working window. A zero or negative threshold means the corresponding axis
// is unconstrained.
type Limits struct {
	MaxWaveHeight float64
	MaxWindSpeed  float64
}

// Constrained returns true if at least one axis carries a threshold
func (l Limits) Constrained() bool {
	return l.MaxWaveHeight > 0 || l.MaxWindSpeed > 0
}

// Permits reports whether the sample satisfies both thresholds
func (l Limits) Permits(s Sample) bool {
	if l.MaxWaveHeight > 0 && s.WaveHeight > l.MaxWaveHeight {
		return false
	}
	if l.MaxWindSpeed > 0 && s.WindSpeed > l.MaxWindSpeed {
		return false
	}
	return true
}
