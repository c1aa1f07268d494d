package cli

import (
	"fmt"

	"github.com/windward-offshore/windward-go/internal/adapters/metrics"
	"github.com/windward-offshore/windward-go/internal/application/design"
	"github.com/windward-offshore/windward-go/internal/application/install"
	"github.com/windward-offshore/windward-go/internal/application/orchestrator"
	"github.com/windward-offshore/windward-go/internal/domain/weather"
	"github.com/windward-offshore/windward-go/internal/infrastructure/config"
)

// buildManager assembles an orchestrator from a loaded scenario: phases from
// the two registries, the vessel pool, and the weather series.
func buildManager(s *config.Scenario) (*orchestrator.Manager, error) {
	designOpts := s.DesignOptions()
	installOpts := s.InstallOptions()

	var designPhases []design.Phase
	for _, name := range s.DesignPhases {
		ph, err := design.NewPhase(name, designOpts)
		if err != nil {
			return nil, fmt.Errorf("design phase %s: %w", name, err)
		}
		designPhases = append(designPhases, ph)
	}

	var installPhases []install.Phase
	for _, name := range s.InstallPhases {
		ph, err := install.NewPhase(name, installOpts)
		if err != nil {
			return nil, fmt.Errorf("install phase %s: %w", name, err)
		}
		installPhases = append(installPhases, ph)
	}

	pool, err := s.BuildPool()
	if err != nil {
		return nil, fmt.Errorf("fleet: %w", err)
	}

	var oracle *weather.Oracle
	if s.Weather.File != "" {
		oracle, err = config.LoadWeather(s.Weather.File)
		if err != nil {
			return nil, err
		}
	}

	return orchestrator.NewManager(orchestrator.Config{
		Params:        s.ToParams(),
		DesignPhases:  designPhases,
		InstallPhases: installPhases,
		Pool:          pool,
		Oracle:        oracle,
		Costs: orchestrator.ProjectCosts{
			TurbineCapexPerKW: s.Costs.TurbineCapexPerKW,
			SoftCapexPerKW:    s.Costs.SoftCapexPerKW,
			ProjectCapexPerKW: s.Costs.ProjectCapexPerKW,
		},
	})
}

// setupMetrics wires the global run metrics collector when metrics are
// enabled in the config
func setupMetrics(cfg *config.Config) error {
	if !cfg.Metrics.Enabled {
		return nil
	}
	metrics.InitRegistry()
	collector := metrics.NewRunMetricsCollector()
	if err := collector.Register(); err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}
	metrics.SetGlobalRunCollector(collector)
	return nil
}
