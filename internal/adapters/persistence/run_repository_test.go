package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windward-offshore/windward-go/internal/adapters/persistence"
	"github.com/windward-offshore/windward-go/internal/application/design"
	"github.com/windward-offshore/windward-go/internal/application/install"
	"github.com/windward-offshore/windward-go/internal/application/orchestrator"
	"github.com/windward-offshore/windward-go/internal/domain/project"
	"github.com/windward-offshore/windward-go/internal/domain/resource"
	"github.com/windward-offshore/windward-go/test/helpers"
)

func completedRun(t *testing.T) *orchestrator.RunResult {
	pool := resource.NewPool()
	require.NoError(t, pool.Register("wtiv", resource.Spec{
		Name:             "wtiv",
		DayRate:          180000,
		IdleDayRate:      90000,
		TransitSpeed:     10,
		MobilizationDays: 7,
	}))
	monopileInstall, err := install.NewMonopileInstallation(install.MonopileInstallConfig{Vessel: "wtiv"})
	require.NoError(t, err)

	manager, err := orchestrator.NewManager(orchestrator.Config{
		Params: project.Params{
			Site:    project.Site{Depth: 25, DistanceToShore: 60, DistanceToPort: 50, MeanWindspeed: 9.5},
			Plant:   project.Plant{NumTurbines: 4, TurbineSpacing: 7, RowSpacing: 7, SubstationDistance: 1},
			Turbine: project.Turbine{Name: "SWT-6MW-154", RatedPowerMW: 6, RotorDiameter: 154, HubHeight: 110, RatedWindspeed: 13},
		},
		DesignPhases:  []design.Phase{design.NewMonopileDesign(design.MonopileConfig{})},
		InstallPhases: []install.Phase{monopileInstall},
		Pool:          pool,
	})
	require.NoError(t, err)

	result, err := manager.Run(context.Background())
	require.NoError(t, err)
	require.Empty(t, result.PhaseErrors)
	return result
}

func TestGormRunRepository_SaveAndFindByID(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)
	result := completedRun(t)

	// Act
	err := repo.Save(context.Background(), result, "fixed-bottom-reference")
	require.NoError(t, err)
	record, err := repo.FindByID(context.Background(), result.RunID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, result.RunID, record.Run.ID)
	assert.Equal(t, "fixed-bottom-reference", record.Run.ScenarioName)
	assert.Equal(t, 4, record.Run.NumTurbines)
	assert.Equal(t, result.TotalCapex(), record.Run.TotalCapex)
	assert.Equal(t, result.InstallationHours, record.Run.InstallationHours)

	assert.Len(t, record.Actions, result.Ledger.Len())
	assert.Len(t, record.Designs, 2)
	assert.NotEmpty(t, record.CapexEntries)
	assert.Empty(t, record.PhaseErrors)

	// Actions come back in schedule order
	for i := 1; i < len(record.Actions); i++ {
		assert.GreaterOrEqual(t, record.Actions[i].StartHour, record.Actions[i-1].StartHour)
	}
}

func TestGormRunRepository_FindByID_NotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)

	// Act
	_, err := repo.FindByID(context.Background(), "does-not-exist")

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGormRunRepository_List(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)
	first := completedRun(t)
	second := completedRun(t)
	require.NoError(t, repo.Save(context.Background(), first, "scenario-a"))
	require.NoError(t, repo.Save(context.Background(), second, "scenario-b"))

	// Act
	runs, err := repo.List(context.Background(), 1)

	// Assert
	require.NoError(t, err)
	require.Len(t, runs, 1)

	all, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
