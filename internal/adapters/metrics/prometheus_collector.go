package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "windward"
	// Subsystem for simulation metrics
	subsystem = "simulation"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalRunCollector is the singleton run metrics collector
	// Set by SetGlobalRunCollector() when metrics are enabled
	globalRunCollector RunMetricsRecorder
)

// RunMetricsRecorder defines the interface for recording run metrics events
// This interface is used by application code to record metrics
type RunMetricsRecorder interface {
	RecordRunStarted()
	RecordRunCompleted(totalCapex, installationHours float64, phaseErrors int)
	RecordPhaseCompleted(phase string, hours, cost float64)
	RecordPhaseFailed(phase string)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalRunCollector sets the global run metrics collector
// This should be called after the collector is created and registered
func SetGlobalRunCollector(collector RunMetricsRecorder) {
	globalRunCollector = collector
}

// RecordRunStarted records the start of a project run globally
func RecordRunStarted() {
	if globalRunCollector != nil {
		globalRunCollector.RecordRunStarted()
	}
}

// RecordRunCompleted records a completed project run globally
func RecordRunCompleted(totalCapex, installationHours float64, phaseErrors int) {
	if globalRunCollector != nil {
		globalRunCollector.RecordRunCompleted(totalCapex, installationHours, phaseErrors)
	}
}

// RecordPhaseCompleted records a completed phase globally
func RecordPhaseCompleted(phase string, hours, cost float64) {
	if globalRunCollector != nil {
		globalRunCollector.RecordPhaseCompleted(phase, hours, cost)
	}
}

// RecordPhaseFailed records a phase failure globally
func RecordPhaseFailed(phase string) {
	if globalRunCollector != nil {
		globalRunCollector.RecordPhaseFailed(phase)
	}
}
