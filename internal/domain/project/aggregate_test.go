package project_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windward-offshore/windward-go/internal/domain/project"
)

func TestBreakdown_TotalEqualsSumOfCategories(t *testing.T) {
	// Arrange
	b := project.NewBreakdown()
	b.Add(project.CategorySubstructure, 100e6)
	b.Add(project.CategoryInstallation, 40e6)
	b.Add(project.CategoryTurbine, 200e6)

	// Act
	var sum float64
	for _, c := range b.Categories() {
		v, ok := b.Value(c)
		require.True(t, ok)
		sum += v
	}

	// Assert
	assert.Equal(t, sum, b.Total())
	assert.Equal(t, 340e6, b.Total())
}

func TestBreakdown_AbsentCategoriesExcluded(t *testing.T) {
	// Arrange
	b := project.NewBreakdown()
	b.Add(project.CategorySubstructure, 100e6)
	b.MarkAbsent(project.CategoryMooringSystem, "design phase MooringSystemDesign failed")

	// Assert - absent categories are flagged, never zero-filled
	_, computed := b.Value(project.CategoryMooringSystem)
	assert.False(t, computed)
	assert.Equal(t, 100e6, b.Total())

	reason, ok := b.AbsentReason(project.CategoryMooringSystem)
	require.True(t, ok)
	assert.Contains(t, reason, "MooringSystemDesign")
	assert.Contains(t, b.AbsentCategories(), project.CategoryMooringSystem)
}

func TestBreakdown_PerKW(t *testing.T) {
	// Arrange
	b := project.NewBreakdown()
	b.Add(project.CategorySubstructure, 120e6)

	// Act
	perKW := b.PerKW(600000)

	// Assert
	assert.Equal(t, 200.0, perKW[project.CategorySubstructure])
}

func TestParams_Capacity(t *testing.T) {
	// Arrange
	p := project.Params{
		Plant:   project.Plant{NumTurbines: 50},
		Turbine: project.Turbine{RatedPowerMW: 12},
	}

	// Assert
	assert.Equal(t, 600.0, p.CapacityMW())
	assert.Equal(t, 600000.0, p.CapacityKW())
}
