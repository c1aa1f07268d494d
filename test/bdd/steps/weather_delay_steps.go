package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/windward-offshore/windward-go/internal/application/simulation"
	"github.com/windward-offshore/windward-go/internal/domain/ledger"
	"github.com/windward-offshore/windward-go/internal/domain/resource"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
	"github.com/windward-offshore/windward-go/internal/domain/weather"
)

type weatherDelayContext struct {
	pool       *resource.Pool
	oracle     *weather.Oracle
	env        *simulation.Env
	vessel     string
	lastAction ledger.Action
	err        error
}

func (wc *weatherDelayContext) reset() {
	wc.pool = resource.NewPool()
	wc.oracle = nil
	wc.env = nil
	wc.vessel = ""
	wc.lastAction = ledger.Action{}
	wc.err = nil
}

func (wc *weatherDelayContext) environment() *simulation.Env {
	if wc.env == nil {
		wc.env = simulation.NewEnv(wc.oracle, wc.pool)
	}
	return wc.env
}

func (wc *weatherDelayContext) aCharteredVessel(name string, dayRate, idleRate int) error {
	wc.vessel = name
	return wc.pool.Register(name, resource.Spec{
		Name:        name,
		DayRate:     float64(dayRate),
		IdleDayRate: float64(idleRate),
	})
}

func (wc *weatherDelayContext) aStormyThenCalmSeries(stormHours, totalHours int) error {
	samples := make([]weather.Sample, totalHours)
	for i := range samples {
		wave := 5.0
		if i >= stormHours {
			wave = 0.5
		}
		samples[i] = weather.Sample{Hour: float64(i), WaveHeight: wave, WindSpeed: 8}
	}
	oracle, err := weather.NewOracle(samples)
	if err != nil {
		return err
	}
	wc.oracle = oracle
	return nil
}

func (wc *weatherDelayContext) aCalmThenStormySeries(calmHours, totalHours int) error {
	samples := make([]weather.Sample, totalHours)
	for i := range samples {
		wave := 0.5
		if i >= calmHours {
			wave = 5.0
		}
		samples[i] = weather.Sample{Hour: float64(i), WaveHeight: wave, WindSpeed: 8}
	}
	oracle, err := weather.NewOracle(samples)
	if err != nil {
		return err
	}
	wc.oracle = oracle
	return nil
}

func (wc *weatherDelayContext) theVesselPerforms(name string, hours int, waveLimit float64) error {
	wc.lastAction, wc.err = wc.environment().Process(simulation.Request{
		Agent:    wc.vessel,
		Name:     name,
		Phase:    "MonopileInstallation",
		Duration: float64(hours),
		Limits:   &weather.Limits{MaxWaveHeight: waveLimit},
	})
	return nil
}

func (wc *weatherDelayContext) theWorkStartsAtHour(hour int) error {
	if wc.err != nil {
		return fmt.Errorf("operation failed: %v", wc.err)
	}
	if wc.lastAction.Start() != float64(hour) {
		return fmt.Errorf("work started at %f, expected %d", wc.lastAction.Start(), hour)
	}
	return nil
}

func (wc *weatherDelayContext) theLedgerRecordsADelay(hours, cost int) error {
	for _, a := range wc.environment().Ledger().Actions() {
		if a.Name() == ledger.ActionDelay && a.Duration() == float64(hours) && a.Cost() == float64(cost) {
			return nil
		}
	}
	return fmt.Errorf("no delay of %d hours costing %d on the ledger", hours, cost)
}

func (wc *weatherDelayContext) theOperationFailsWithAWeatherDataError() error {
	if wc.err == nil {
		return fmt.Errorf("expected the operation to fail")
	}
	var weatherErr *shared.WeatherDataError
	if !errors.As(wc.err, &weatherErr) {
		return fmt.Errorf("expected a weather data error, got %v", wc.err)
	}
	return nil
}

func (wc *weatherDelayContext) theLastLedgerEntryIsADelayEndingAtTheSeriesEnd() error {
	actions := wc.environment().Ledger().Actions()
	if len(actions) == 0 {
		return fmt.Errorf("ledger is empty")
	}
	last := actions[len(actions)-1]
	if last.Name() != ledger.ActionDelay {
		return fmt.Errorf("last entry is %q, expected a delay", last.Name())
	}
	if last.End() != wc.oracle.SeriesEnd() {
		return fmt.Errorf("delay ends at %f, series ends at %f", last.End(), wc.oracle.SeriesEnd())
	}
	return nil
}

// InitializeWeatherDelayScenario registers the weather delay step definitions
func InitializeWeatherDelayScenario(sc *godog.ScenarioContext) {
	wc := &weatherDelayContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		wc.reset()
		return ctx, nil
	})

	sc.Step(`^a chartered vessel "([^"]*)" with a day rate of (\d+) and an idle rate of (\d+)$`, wc.aCharteredVessel)
	sc.Step(`^a weather series that is stormy for the first (\d+) hours of (\d+)$`, wc.aStormyThenCalmSeries)
	sc.Step(`^a weather series that is calm until hour (\d+) and stormy for the rest of (\d+)$`, wc.aCalmThenStormySeries)
	sc.Step(`^the vessel performs "([^"]*)" for (\d+) hours under a wave limit of (\d+\.?\d*) m$`, wc.theVesselPerforms)
	sc.Step(`^the work starts at hour (\d+)$`, wc.theWorkStartsAtHour)
	sc.Step(`^the ledger records a delay of (\d+) hours costing (\d+)$`, wc.theLedgerRecordsADelay)
	sc.Step(`^the operation fails with a weather data error$`, wc.theOperationFailsWithAWeatherDataError)
	sc.Step(`^the last ledger entry is a delay ending at the end of the series$`, wc.theLastLedgerEntryIsADelayEndingAtTheSeriesEnd)
}
