package design_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windward-offshore/windward-go/internal/application/design"
	"github.com/windward-offshore/windward-go/internal/domain/project"
)

func referenceParams() project.Params {
	return project.Params{
		Site: project.Site{
			Depth:           25,
			DistanceToShore: 60,
			DistanceToPort:  50,
			MeanWindspeed:   9.5,
		},
		Plant: project.Plant{
			NumTurbines:        50,
			TurbineSpacing:     7,
			RowSpacing:         7,
			SubstationDistance: 1,
		},
		Turbine: project.Turbine{
			Name:           "SWT-6MW-154",
			RatedPowerMW:   6,
			RotorDiameter:  154,
			HubHeight:      110,
			RatedWindspeed: 13,
		},
	}
}

func TestMonopileDesign_Compute(t *testing.T) {
	// Arrange
	phase := design.NewMonopileDesign(design.MonopileConfig{})

	// Act
	results, err := phase.Compute(referenceParams())

	// Assert
	require.NoError(t, err)
	require.Len(t, results, 2)

	pile := results[0]
	assert.Equal(t, design.ComponentMonopile, pile.Component)
	assert.Equal(t, 50, pile.Units)
	assert.Greater(t, pile.Mass, 0.0)
	assert.Greater(t, pile.SystemCost, 0.0)

	// Sized for a 6 MW machine in 25 m of water
	assert.InDelta(t, 6.5, pile.Attributes["diameter"], 2.0)
	assert.Greater(t, pile.Attributes["embedment_length"], pile.Attributes["diameter"])
	assert.Greater(t, pile.Attributes["length"], 25.0)

	tp := results[1]
	assert.Equal(t, design.ComponentTransitionPiece, tp.Component)
	assert.Greater(t, tp.Attributes["diameter"], pile.Attributes["diameter"])
}

func TestMonopileDesign_IsPure(t *testing.T) {
	// Arrange
	phase := design.NewMonopileDesign(design.MonopileConfig{})
	params := referenceParams()

	// Act - same inputs twice
	first, err := phase.Compute(params)
	require.NoError(t, err)
	second, err := phase.Compute(params)
	require.NoError(t, err)

	// Assert - byte-identical outcomes, no hidden state
	assert.Equal(t, first, second)
}

func TestMonopileDesign_DeeperWaterNeedsMorePile(t *testing.T) {
	// Arrange
	phase := design.NewMonopileDesign(design.MonopileConfig{})
	shallow := referenceParams()
	deep := referenceParams()
	deep.Site.Depth = 45

	// Act
	shallowResults, err := phase.Compute(shallow)
	require.NoError(t, err)
	deepResults, err := phase.Compute(deep)
	require.NoError(t, err)

	// Assert
	assert.Greater(t, deepResults[0].Mass, shallowResults[0].Mass)
}

func TestMonopileDesign_RequiresMeanWindspeed(t *testing.T) {
	// Arrange
	phase := design.NewMonopileDesign(design.MonopileConfig{})
	params := referenceParams()
	params.Site.MeanWindspeed = 0

	// Act
	_, err := phase.Compute(params)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mean_windspeed")
}
