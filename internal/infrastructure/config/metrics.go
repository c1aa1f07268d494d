package config

// MetricsConfig holds Prometheus metrics configuration
type MetricsConfig struct {
	// Enabled toggles metrics collection and the /metrics endpoint
	Enabled bool `mapstructure:"enabled"`

	// Address the metrics HTTP server listens on
	Address string `mapstructure:"address"`
}
