package design_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windward-offshore/windward-go/internal/application/design"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
)

func TestMooringSystemDesign_Catenary(t *testing.T) {
	// Arrange
	phase := design.NewMooringSystemDesign(design.MooringConfig{Type: design.MooringCatenary})
	params := referenceParams()
	params.Site.Depth = 100

	// Act
	results, err := phase.Compute(params)

	// Assert
	require.NoError(t, err)
	require.Len(t, results, 1)
	mooring := results[0]

	// Scope regression at 100 m: 0.0002*100^2 + 1.264*100 + 47.776
	assert.InDelta(t, 176.176, mooring.Attributes["line_length"], 1e-9)
	assert.Equal(t, 4.0, mooring.Attributes["lines_per_unit"])
	assert.Equal(t, "catenary", mooring.Labels["mooring_type"])
	assert.Equal(t, "Drag Embedment", mooring.Labels["anchor_type"])
	assert.Equal(t, 50*4, mooring.Units)
	assert.Greater(t, mooring.SystemCost, 0.0)
}

func TestMooringSystemDesign_DeeperWaterNeedsLongerLines(t *testing.T) {
	// Arrange
	phase := design.NewMooringSystemDesign(design.MooringConfig{Type: design.MooringSemiTaut})
	shallow := referenceParams()
	shallow.Site.Depth = 100
	deep := referenceParams()
	deep.Site.Depth = 600

	// Act
	shallowResults, err := phase.Compute(shallow)
	require.NoError(t, err)
	deepResults, err := phase.Compute(deep)
	require.NoError(t, err)

	// Assert
	assert.Greater(t,
		deepResults[0].Attributes["line_length"],
		shallowResults[0].Attributes["line_length"])
}

func TestMooringSystemDesign_UnknownArrangement(t *testing.T) {
	// Arrange
	phase := design.NewMooringSystemDesign(design.MooringConfig{Type: "dynamic-positioning"})

	// Act
	_, err := phase.Compute(referenceParams())

	// Assert - fails loudly, never a silent default
	var cfgErr *shared.ConfigurationError
	require.Error(t, err)
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "not implemented")
}

func TestMooringSystemDesign_RequiresType(t *testing.T) {
	// Arrange
	phase := design.NewMooringSystemDesign(design.MooringConfig{})

	// Act
	_, err := phase.Compute(referenceParams())

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mooring_design.type")
}

func TestDesignRegistry_UnknownPhase(t *testing.T) {
	// Act
	_, err := design.NewPhase("GravityBaseDesign", design.Options{})

	// Assert
	var cfgErr *shared.ConfigurationError
	require.Error(t, err)
	assert.True(t, errors.As(err, &cfgErr))
}
