package weather_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windward-offshore/windward-go/internal/domain/shared"
	"github.com/windward-offshore/windward-go/internal/domain/weather"
)

// hourly builds a series at one-sample-per-hour spacing from parallel
// waveheight and windspeed values
func hourly(waves, winds []float64) []weather.Sample {
	samples := make([]weather.Sample, len(waves))
	for i := range waves {
		samples[i] = weather.Sample{Hour: float64(i), WaveHeight: waves[i], WindSpeed: winds[i]}
	}
	return samples
}

func TestNewOracle_RejectsUnorderedSamples(t *testing.T) {
	// Arrange
	samples := []weather.Sample{
		{Hour: 0, WaveHeight: 1},
		{Hour: 2, WaveHeight: 1},
		{Hour: 1, WaveHeight: 1},
	}

	// Act
	_, err := weather.NewOracle(samples)

	// Assert
	var validationErr *shared.DomainValidationError
	require.Error(t, err)
	assert.True(t, errors.As(err, &validationErr))
}

func TestOracle_NextFeasible_WaitsOutStorm(t *testing.T) {
	// Arrange - three stormy hours, then calm
	oracle, err := weather.NewOracle(hourly(
		[]float64{3, 3, 3, 0.5, 0.5, 0.5, 0.5, 0.5},
		[]float64{5, 5, 5, 5, 5, 5, 5, 5},
	))
	require.NoError(t, err)
	limits := weather.Limits{MaxWaveHeight: 2}

	// Act
	start, err := oracle.NextFeasible(0, 2, limits)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3.0, start)
}

func TestOracle_NextFeasible_WindowAlreadyClear(t *testing.T) {
	// Arrange
	oracle, err := weather.NewOracle(hourly(
		[]float64{0.5, 0.5, 0.5, 0.5},
		[]float64{5, 5, 5, 5},
	))
	require.NoError(t, err)

	// Act
	start, err := oracle.NextFeasible(1, 2, weather.Limits{MaxWaveHeight: 2, MaxWindSpeed: 10})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1.0, start)
}

func TestOracle_NextFeasible_SeriesExhausted(t *testing.T) {
	// Arrange - permanently hostile trace
	oracle, err := weather.NewOracle(hourly(
		[]float64{3, 3, 3, 3, 3},
		[]float64{25, 25, 25, 25, 25},
	))
	require.NoError(t, err)

	// Act
	_, err = oracle.NextFeasible(0, 2, weather.Limits{MaxWaveHeight: 2})

	// Assert - terminates with an error, never hangs
	var weatherErr *shared.WeatherDataError
	require.Error(t, err)
	require.True(t, errors.As(err, &weatherErr))
	assert.Equal(t, oracle.SeriesEnd(), weatherErr.SeriesEnd)
}

func TestOracle_NextFeasible_WindowPastSeriesEnd(t *testing.T) {
	// Arrange - calm but short series
	oracle, err := weather.NewOracle(hourly(
		[]float64{0.5, 0.5, 0.5},
		[]float64{5, 5, 5},
	))
	require.NoError(t, err)

	// Act - window longer than the remaining series
	_, err = oracle.NextFeasible(0, 100, weather.Limits{MaxWaveHeight: 2})

	// Assert
	var weatherErr *shared.WeatherDataError
	require.Error(t, err)
	assert.True(t, errors.As(err, &weatherErr))
}

func TestOracle_Unconstrained_PermitsEverything(t *testing.T) {
	// Arrange
	oracle := weather.Unconstrained()

	// Act
	start, err := oracle.NextFeasible(1e6, 1e6, weather.Limits{MaxWaveHeight: 0.01})
	ok, feasErr := oracle.IsFeasible(1e6, 1e6, weather.Limits{MaxWaveHeight: 0.01})

	// Assert
	require.NoError(t, err)
	require.NoError(t, feasErr)
	assert.Equal(t, 1e6, start)
	assert.True(t, ok)
	assert.False(t, oracle.HasSeries())
}

func TestOracle_UnconstrainedLimits_SkipGating(t *testing.T) {
	// Arrange - hostile trace, but the step carries no limits
	oracle, err := weather.NewOracle(hourly(
		[]float64{9, 9, 9},
		[]float64{40, 40, 40},
	))
	require.NoError(t, err)

	// Act
	start, err := oracle.NextFeasible(0, 2, weather.Limits{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0.0, start)
}

func TestOracle_SeriesEnd_ExtendsLastSpacing(t *testing.T) {
	// Arrange - samples at 0, 6, 12: the last holds until 18
	oracle, err := weather.NewOracle([]weather.Sample{
		{Hour: 0, WaveHeight: 1},
		{Hour: 6, WaveHeight: 1},
		{Hour: 12, WaveHeight: 1},
	})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 18.0, oracle.SeriesEnd())
}

func TestLimits_ZeroAxisUnconstrained(t *testing.T) {
	// Arrange - wave limit only; windspeed axis is open
	limits := weather.Limits{MaxWaveHeight: 2}

	// Assert
	assert.True(t, limits.Permits(weather.Sample{WaveHeight: 1.5, WindSpeed: 80}))
	assert.False(t, limits.Permits(weather.Sample{WaveHeight: 2.5, WindSpeed: 1}))
	assert.True(t, limits.Constrained())
	assert.False(t, weather.Limits{}.Constrained())
}
