package orchestrator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windward-offshore/windward-go/internal/application/design"
	"github.com/windward-offshore/windward-go/internal/application/install"
	"github.com/windward-offshore/windward-go/internal/application/orchestrator"
	"github.com/windward-offshore/windward-go/internal/domain/project"
	"github.com/windward-offshore/windward-go/internal/domain/resource"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
)

func fixedBottomParams() project.Params {
	return project.Params{
		Site:    project.Site{Depth: 25, DistanceToShore: 60, DistanceToPort: 50, MeanWindspeed: 9.5},
		Plant:   project.Plant{NumTurbines: 4, TurbineSpacing: 7, RowSpacing: 7, SubstationDistance: 1},
		Turbine: project.Turbine{Name: "SWT-6MW-154", RatedPowerMW: 6, RotorDiameter: 154, HubHeight: 110, RatedWindspeed: 13},
	}
}

func fixedBottomPool(t *testing.T) *resource.Pool {
	pool := resource.NewPool()
	err := pool.Register("wtiv", resource.Spec{
		Name:             "wtiv",
		DayRate:          180000,
		IdleDayRate:      90000,
		TransitSpeed:     10,
		MobilizationDays: 7,
	})
	require.NoError(t, err)
	return pool
}

func TestManager_Run_FixedBottomProject(t *testing.T) {
	// Arrange
	monopileInstall, err := install.NewMonopileInstallation(install.MonopileInstallConfig{Vessel: "wtiv"})
	require.NoError(t, err)
	params := fixedBottomParams()
	manager, err := orchestrator.NewManager(orchestrator.Config{
		Params:        params,
		DesignPhases:  []design.Phase{design.NewMonopileDesign(design.MonopileConfig{})},
		InstallPhases: []install.Phase{monopileInstall},
		Pool:          fixedBottomPool(t),
	})
	require.NoError(t, err)

	// Act
	result, err := manager.Run(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Empty(t, result.PhaseErrors)
	assert.NotEmpty(t, result.RunID)
	assert.True(t, result.Designs.Has(design.ComponentMonopile))
	assert.True(t, result.Designs.Has(design.ComponentTransitionPiece))

	// Installation equals the ledger total, schedule equals its horizon
	installed, ok := result.Breakdown.Value(project.CategoryInstallation)
	require.True(t, ok)
	assert.Equal(t, result.Ledger.TotalCost(), installed)
	assert.Equal(t, result.Ledger.MaxEnd(), result.InstallationHours)
	assert.Greater(t, result.InstallationHours, 0.0)

	// Priced categories use the documented defaults
	capacityKW := params.CapacityKW()
	turbine, ok := result.Breakdown.Value(project.CategoryTurbine)
	require.True(t, ok)
	assert.Equal(t, 1300*capacityKW, turbine)
	soft, ok := result.Breakdown.Value(project.CategorySoftCosts)
	require.True(t, ok)
	assert.Equal(t, 645*capacityKW, soft)

	// The total is exactly the sum of its computed categories
	var sum float64
	for _, c := range result.Breakdown.Categories() {
		v, ok := result.Breakdown.Value(c)
		require.True(t, ok)
		sum += v
	}
	assert.Equal(t, sum, result.TotalCapex())
	assert.Equal(t, 1300.0, result.CapexPerKW()[project.CategoryTurbine])
}

func TestManager_Validate_MissingProducer(t *testing.T) {
	// Arrange - an installation phase with no design phase feeding it
	monopileInstall, err := install.NewMonopileInstallation(install.MonopileInstallConfig{Vessel: "wtiv"})
	require.NoError(t, err)
	manager, err := orchestrator.NewManager(orchestrator.Config{
		Params:        fixedBottomParams(),
		InstallPhases: []install.Phase{monopileInstall},
		Pool:          fixedBottomPool(t),
	})
	require.NoError(t, err)

	// Act
	validateErr := manager.Validate()
	_, runErr := manager.Run(context.Background())

	// Assert - both refuse before anything simulates
	var depErr *shared.DependencyError
	require.Error(t, validateErr)
	assert.True(t, errors.As(validateErr, &depErr))
	assert.Contains(t, validateErr.Error(), design.ComponentMonopile)
	require.Error(t, runErr)
	assert.True(t, errors.As(runErr, &depErr))
}

func TestManager_Validate_DuplicateProducer(t *testing.T) {
	// Arrange - two design phases claiming the same component
	manager, err := orchestrator.NewManager(orchestrator.Config{
		Params: fixedBottomParams(),
		DesignPhases: []design.Phase{
			design.NewMonopileDesign(design.MonopileConfig{}),
			design.NewMonopileDesign(design.MonopileConfig{}),
		},
	})
	require.NoError(t, err)

	// Act
	err = manager.Validate()

	// Assert
	var depErr *shared.DependencyError
	require.Error(t, err)
	assert.True(t, errors.As(err, &depErr))
}

func TestManager_Run_FailedDesignSkipsDependents(t *testing.T) {
	// Arrange - zero mean windspeed makes the monopile design fail
	monopileInstall, err := install.NewMonopileInstallation(install.MonopileInstallConfig{Vessel: "wtiv"})
	require.NoError(t, err)
	params := fixedBottomParams()
	params.Site.MeanWindspeed = 0
	manager, err := orchestrator.NewManager(orchestrator.Config{
		Params:        params,
		DesignPhases:  []design.Phase{design.NewMonopileDesign(design.MonopileConfig{})},
		InstallPhases: []install.Phase{monopileInstall},
		Pool:          fixedBottomPool(t),
	})
	require.NoError(t, err)

	// Act
	result, err := manager.Run(context.Background())

	// Assert - the run completes, both phases are reported
	require.NoError(t, err)
	require.Len(t, result.PhaseErrors, 2)
	assert.Equal(t, "MonopileDesign", result.PhaseErrors[0].Phase)
	assert.Equal(t, "MonopileInstallation", result.PhaseErrors[1].Phase)

	var depErr *shared.DependencyError
	assert.True(t, errors.As(result.PhaseErrors[1].Err, &depErr))
	assert.Equal(t, 0, result.Ledger.Len())

	// Affected categories are flagged absent, never zero-filled
	_, computed := result.Breakdown.Value(project.CategorySubstructure)
	assert.False(t, computed)
	reason, ok := result.Breakdown.AbsentReason(project.CategorySubstructure)
	require.True(t, ok)
	assert.Contains(t, reason, "MonopileDesign")
	_, computed = result.Breakdown.Value(project.CategoryInstallation)
	assert.False(t, computed)

	// Priced categories still aggregate
	_, computed = result.Breakdown.Value(project.CategoryTurbine)
	assert.True(t, computed)
}

func TestManager_Run_CancelledContext(t *testing.T) {
	// Arrange
	monopileInstall, err := install.NewMonopileInstallation(install.MonopileInstallConfig{Vessel: "wtiv"})
	require.NoError(t, err)
	manager, err := orchestrator.NewManager(orchestrator.Config{
		Params:        fixedBottomParams(),
		DesignPhases:  []design.Phase{design.NewMonopileDesign(design.MonopileConfig{})},
		InstallPhases: []install.Phase{monopileInstall},
		Pool:          fixedBottomPool(t),
	})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	result, err := manager.Run(ctx)

	// Assert - every phase reports the cancellation, nothing simulates
	require.NoError(t, err)
	require.Len(t, result.PhaseErrors, 2)
	for _, pe := range result.PhaseErrors {
		assert.ErrorIs(t, pe.Err, context.Canceled)
	}
	assert.Equal(t, 0, result.Ledger.Len())
}
