package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// RunMetricsCollector handles all project run metrics (runs, phases, capex)
type RunMetricsCollector struct {
	// Run metrics
	runsStarted   prometheus.Counter
	runsCompleted prometheus.Counter
	runCapex      prometheus.Histogram
	runHours      prometheus.Histogram
	runErrors     prometheus.Histogram

	// Phase metrics
	phasesCompleted *prometheus.CounterVec
	phasesFailed    *prometheus.CounterVec
	phaseHours      *prometheus.HistogramVec
	phaseCost       *prometheus.HistogramVec
}

// NewRunMetricsCollector creates a new run metrics collector
func NewRunMetricsCollector() *RunMetricsCollector {
	return &RunMetricsCollector{
		runsStarted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "runs_started_total",
				Help:      "Total number of project runs started",
			},
		),

		runsCompleted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "runs_completed_total",
				Help:      "Total number of project runs completed",
			},
		),

		// Total capex distribution across runs
		runCapex: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "run_capex_usd",
				Help:      "Total capital expenditure per run",
				Buckets:   prometheus.ExponentialBuckets(1e7, 4, 8),
			},
		),

		// Installation duration distribution across runs
		runHours: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "run_installation_hours",
				Help:      "Simulated installation duration per run",
				Buckets:   []float64{168, 720, 2190, 4380, 8760, 17520, 26280},
			},
		),

		runErrors: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "run_phase_errors",
				Help:      "Number of phase errors per run",
				Buckets:   []float64{0, 1, 2, 3, 5, 10},
			},
		),

		phasesCompleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "phases_completed_total",
				Help:      "Total number of completed phases by name",
			},
			[]string{"phase"},
		),

		phasesFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "phases_failed_total",
				Help:      "Total number of failed phases by name",
			},
			[]string{"phase"},
		),

		phaseHours: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "phase_hours",
				Help:      "Simulated duration per phase",
				Buckets:   []float64{24, 168, 720, 2190, 4380, 8760},
			},
			[]string{"phase"},
		),

		phaseCost: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "phase_cost_usd",
				Help:      "Simulated cost per phase",
				Buckets:   prometheus.ExponentialBuckets(1e5, 4, 8),
			},
			[]string{"phase"},
		),
	}
}

// Register registers all run metrics with the Prometheus registry
func (c *RunMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.runsStarted,
		c.runsCompleted,
		c.runCapex,
		c.runHours,
		c.runErrors,
		c.phasesCompleted,
		c.phasesFailed,
		c.phaseHours,
		c.phaseCost,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordRunStarted records the start of a project run
func (c *RunMetricsCollector) RecordRunStarted() {
	c.runsStarted.Inc()
}

// RecordRunCompleted records a completed project run
func (c *RunMetricsCollector) RecordRunCompleted(totalCapex, installationHours float64, phaseErrors int) {
	c.runsCompleted.Inc()
	c.runCapex.Observe(totalCapex)
	c.runHours.Observe(installationHours)
	c.runErrors.Observe(float64(phaseErrors))
}

// RecordPhaseCompleted records a completed phase
func (c *RunMetricsCollector) RecordPhaseCompleted(phase string, hours, cost float64) {
	c.phasesCompleted.WithLabelValues(phase).Inc()
	c.phaseHours.WithLabelValues(phase).Observe(hours)
	c.phaseCost.WithLabelValues(phase).Observe(cost)
}

// RecordPhaseFailed records a phase failure
func (c *RunMetricsCollector) RecordPhaseFailed(phase string) {
	c.phasesFailed.WithLabelValues(phase).Inc()
}
