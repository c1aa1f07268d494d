package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windward-offshore/windward-go/internal/infrastructure/config"
)

const fixedBottomScenario = `
name: fixed-bottom-reference

site:
  depth: 25
  distance_to_shore: 60
  distance_to_port: 50
  mean_windspeed: 9.5

plant:
  num_turbines: 50
  turbine_spacing: 7
  row_spacing: 7
  substation_distance: 1

turbine:
  name: SWT-6MW-154
  rated_power_mw: 6
  rotor_diameter: 154
  hub_height: 110
  rated_windspeed: 13

design_phases:
  - MonopileDesign

install_phases:
  - MonopileInstallation

install:
  monopile:
    vessel: wtiv
    piles_per_trip: 4
    drive_limits:
      max_waveheight: 2
      max_windspeed: 15

vessels:
  - id: wtiv
    day_rate: 180000
    idle_day_rate: 90000
    transit_speed: 11.5
    mobilization_days: 7
    mobilization_mult: 0.5

groups:
  - name: tug
    count: 3
    day_rate: 35000

costs:
  turbine_capex_per_kw: 1300
  soft_capex_per_kw: 645
`

func writeScenario(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadScenario(t *testing.T) {
	// Arrange
	path := writeScenario(t, fixedBottomScenario)

	// Act
	s, err := config.LoadScenario(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "fixed-bottom-reference", s.Name)
	assert.Equal(t, []string{"MonopileDesign"}, s.DesignPhases)
	assert.Equal(t, []string{"MonopileInstallation"}, s.InstallPhases)

	params := s.ToParams()
	assert.Equal(t, 50, params.Plant.NumTurbines)
	assert.Equal(t, 300.0, params.CapacityMW())

	opts := s.InstallOptions()
	assert.Equal(t, "wtiv", opts.Monopile.Vessel)
	assert.Equal(t, 4, opts.Monopile.PilesPerTrip)
	assert.Equal(t, 2.0, opts.Monopile.DriveLimits.MaxWaveHeight)
}

func TestLoadScenario_BuildPool(t *testing.T) {
	// Arrange
	s, err := config.LoadScenario(writeScenario(t, fixedBottomScenario))
	require.NoError(t, err)

	// Act
	pool, err := s.BuildPool()

	// Assert
	require.NoError(t, err)
	unit, err := pool.Unit("wtiv")
	require.NoError(t, err)
	assert.Equal(t, 180000.0, unit.Spec().DayRate)
	assert.Equal(t, 0.5, unit.Spec().MobilizationMult)

	_, err = pool.Unit("tug-1")
	assert.NoError(t, err)
}

func TestLoadScenario_InvalidSite(t *testing.T) {
	// Arrange - depth missing entirely
	body := `
name: broken
site:
  distance_to_shore: 60
  distance_to_port: 50
  mean_windspeed: 9.5
plant:
  num_turbines: 50
turbine:
  name: SWT-6MW-154
  rated_power_mw: 6
  rotor_diameter: 154
  hub_height: 110
  rated_windspeed: 13
`

	// Act
	_, err := config.LoadScenario(writeScenario(t, body))

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scenario")
}

func TestLoadScenario_MissingFile(t *testing.T) {
	// Act
	_, err := config.LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))

	// Assert
	require.Error(t, err)
}

func TestLoadWeather(t *testing.T) {
	// Arrange - header row plus three hourly samples
	path := filepath.Join(t.TempDir(), "weather.csv")
	body := "hour,waveheight,windspeed\n0,0.5,8\n1,0.7,9\n2,3.5,22\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	// Act
	oracle, err := config.LoadWeather(path)

	// Assert
	require.NoError(t, err)
	assert.True(t, oracle.HasSeries())
	assert.Equal(t, 3.0, oracle.SeriesEnd())
}

func TestLoadWeather_MissingFile(t *testing.T) {
	// Act
	_, err := config.LoadWeather(filepath.Join(t.TempDir(), "nope.csv"))

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open weather file")
}
