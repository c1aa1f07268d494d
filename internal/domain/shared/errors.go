package shared

import "fmt"

// ConfigurationError indicates a missing or unrecognized configuration key,
// including unknown design-module or install-module choices.
// Fatal to the affected phase only.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Key, e.Reason)
}

func NewConfigurationError(key, reason string) *ConfigurationError {
	return &ConfigurationError{Key: key, Reason: reason}
}

// NewMissingInputError reports a required configuration key that was not supplied
func NewMissingInputError(key string) *ConfigurationError {
	return &ConfigurationError{Key: key, Reason: "missing required input"}
}

// NewNotImplementedError reports a module choice that has no registered implementation
func NewNotImplementedError(key, choice string) *ConfigurationError {
	return &ConfigurationError{
		Key:    key,
		Reason: fmt.Sprintf("%q is not implemented", choice),
	}
}

// DomainValidationError indicates a physically impossible input value.
// Fatal to the affected phase only.
type DomainValidationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DomainValidationError) Error() string {
	return fmt.Sprintf("domain validation: %s=%v: %s", e.Field, e.Value, e.Reason)
}

func NewDomainValidationError(field string, value float64, reason string) *DomainValidationError {
	return &DomainValidationError{Field: field, Value: value, Reason: reason}
}

// WeatherDataError indicates a feasibility query that runs past the end of
// the supplied weather series. Fatal to the affected unit of work; whether
// the phase continues is decided by that phase's task graph.
type WeatherDataError struct {
	RequestedStart float64
	WindowHours    float64
	SeriesEnd      float64
}

func (e *WeatherDataError) Error() string {
	return fmt.Sprintf(
		"insufficient weather data: window [%.1f, %.1f) extends past series end %.1f",
		e.RequestedStart, e.RequestedStart+e.WindowHours, e.SeriesEnd,
	)
}

func NewWeatherDataError(start, window, seriesEnd float64) *WeatherDataError {
	return &WeatherDataError{RequestedStart: start, WindowHours: window, SeriesEnd: seriesEnd}
}

// ResourceContentionError indicates a request for more concurrent units of a
// resource class than the run was configured with. Fatal to the phase.
type ResourceContentionError struct {
	Group     string
	Requested int
	Available int
}

func (e *ResourceContentionError) Error() string {
	return fmt.Sprintf(
		"resource contention: group %q: requested %d units, configured %d",
		e.Group, e.Requested, e.Available,
	)
}

func NewResourceContentionError(group string, requested, available int) *ResourceContentionError {
	return &ResourceContentionError{Group: group, Requested: requested, Available: available}
}

// DependencyError indicates a cyclic or unsatisfiable phase dependency.
// Unlike the phase-level errors above, dependency resolution failures are
// fatal to the whole run and are raised before any simulation starts.
type DependencyError struct {
	Phase  string
	Reason string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("dependency error: phase %q: %s", e.Phase, e.Reason)
}

func NewDependencyError(phase, reason string) *DependencyError {
	return &DependencyError{Phase: phase, Reason: reason}
}
