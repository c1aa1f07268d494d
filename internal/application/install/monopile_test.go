package install_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windward-offshore/windward-go/internal/application/design"
	"github.com/windward-offshore/windward-go/internal/application/install"
	"github.com/windward-offshore/windward-go/internal/application/simulation"
	"github.com/windward-offshore/windward-go/internal/domain/ledger"
	"github.com/windward-offshore/windward-go/internal/domain/project"
	"github.com/windward-offshore/windward-go/internal/domain/resource"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
)

func newInstallEnv(t *testing.T) *simulation.Env {
	pool := resource.NewPool()
	err := pool.Register("wtiv", resource.Spec{
		Name:             "wtiv",
		DayRate:          24000, // 1000/h
		IdleDayRate:      12000,
		TransitSpeed:     10,
		MobilizationDays: 2,
	})
	require.NoError(t, err)
	return simulation.NewEnv(nil, pool)
}

func substructureStore(t *testing.T) *project.ResultStore {
	store := project.NewResultStore()
	require.NoError(t, store.Put(project.DesignResult{
		Component:  design.ComponentMonopile,
		Mass:       800,
		SystemCost: 100e6,
		Units:      2,
	}))
	require.NoError(t, store.Put(project.DesignResult{
		Component:  design.ComponentTransitionPiece,
		Mass:       250,
		SystemCost: 40e6,
		Units:      2,
	}))
	return store
}

func installParams() project.Params {
	return project.Params{
		Site:    project.Site{Depth: 25, DistanceToShore: 60, DistanceToPort: 50, MeanWindspeed: 9.5},
		Plant:   project.Plant{NumTurbines: 2, TurbineSpacing: 7, RowSpacing: 7, SubstationDistance: 1},
		Turbine: project.Turbine{Name: "SWT-6MW-154", RatedPowerMW: 6, RotorDiameter: 154, HubHeight: 110, RatedWindspeed: 13},
	}
}

func TestMonopileInstallation_Run(t *testing.T) {
	// Arrange - two piles, one trip, unconstrained weather
	phase, err := install.NewMonopileInstallation(install.MonopileInstallConfig{Vessel: "wtiv"})
	require.NoError(t, err)
	env := newInstallEnv(t)

	// Act
	result, err := phase.Run(env, installParams(), substructureStore(t))

	// Assert - mobilize, two loads, transit out, three steps per pile,
	// transit home
	require.NoError(t, err)
	actions := env.Ledger().ByPhase("MonopileInstallation")
	require.Len(t, actions, 11)
	assert.Equal(t, ledger.ActionMobilize, actions[0].Name())
	assert.Equal(t, "Load Monopile", actions[1].Name())

	// 48h mobilization, 12h loading, 5h out, 2x28h at site, 5h home
	assert.Equal(t, 126.0, result.Hours)
	// 48000 mobilization plus 78 working hours at 1000/h
	assert.Equal(t, 126000.0, result.Cost)
}

func TestMonopileInstallation_ResultMatchesLedger(t *testing.T) {
	// Arrange
	phase, err := install.NewMonopileInstallation(install.MonopileInstallConfig{Vessel: "wtiv"})
	require.NoError(t, err)
	env := newInstallEnv(t)

	// Act
	result, err := phase.Run(env, installParams(), substructureStore(t))
	require.NoError(t, err)

	// Assert - the rollup is exactly the phase's ledger entries
	var cost, hours float64
	for _, a := range env.Ledger().ByPhase(phase.Name()) {
		cost += a.Cost()
		if a.End() > hours {
			hours = a.End()
		}
	}
	assert.Equal(t, cost, result.Cost)
	assert.Equal(t, hours, result.Hours)
}

func TestMonopileInstallation_MissingDesignResult(t *testing.T) {
	// Arrange - no monopile design on the store
	phase, err := install.NewMonopileInstallation(install.MonopileInstallConfig{Vessel: "wtiv"})
	require.NoError(t, err)
	env := newInstallEnv(t)

	// Act
	_, err = phase.Run(env, installParams(), project.NewResultStore())

	// Assert - fails before any vessel is chartered
	var depErr *shared.DependencyError
	require.Error(t, err)
	assert.True(t, errors.As(err, &depErr))
	assert.Equal(t, 0, env.Ledger().Len())
}

func TestNewMonopileInstallation_RequiresVessel(t *testing.T) {
	// Act
	_, err := install.NewMonopileInstallation(install.MonopileInstallConfig{})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "monopile_install.vessel")
}

func TestInstallRegistry_UnknownPhase(t *testing.T) {
	// Act
	_, err := install.NewPhase("GravityBaseInstallation", install.Options{})

	// Assert
	var cfgErr *shared.ConfigurationError
	require.Error(t, err)
	assert.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "not implemented")
}
