package simulation

import (
	"github.com/windward-offshore/windward-go/internal/domain/ledger"
	"github.com/windward-offshore/windward-go/internal/domain/resource"
	"github.com/windward-offshore/windward-go/internal/domain/weather"
)

// Request describes one unit of work to schedule against a pool unit.
// Zero Multiplier means 1. Nil Limits fall back to the unit's own operating
// limits; an explicit zero-value Limits disables weather gating for the step.
type Request struct {
	Agent      string
	Name       string
	Phase      string
	Location   string
	Duration   float64
	Multiplier float64
	Limits     *weather.Limits
	Earliest   float64
	State      resource.State
}

func (r Request) state() resource.State {
	if r.State == "" {
		return resource.StateBusy
	}
	return r.State
}

func (r Request) multiplier() float64 {
	if r.Multiplier > 0 {
		return r.Multiplier
	}
	return 1
}

// Mobilize bills a unit's one-time mobilization and records it in the ledger.
// Safe to call from every phase that uses the unit: mobilization is
// idempotent per run, so only the first call emits an action.
func (e *Env) Mobilize(phase, unitID string) error {
	m, err := e.pool.Mobilize(unitID)
	if err != nil {
		return err
	}
	if !m.First {
		return nil
	}
	a, err := ledger.NewAction(unitID, ledger.ActionMobilize, phase, m.Start, m.Hours, m.Cost)
	if err != nil {
		return err
	}
	e.record(a)
	return nil
}

// Process schedules one weather-gated unit of work. The action starts at the
// later of the requested hour and the unit's free time, pushed further to the
// earliest feasible weather window when limits apply. Every wait becomes an
// explicit Delay ledger entry priced at the unit's idle rate, never an
// invisible time skip, so the ledger remains a faithful audit trail.
// A window that runs past the weather series fails with a WeatherDataError;
// the phase decides whether to continue with its remaining units.
func (e *Env) Process(req Request) (ledger.Action, error) {
	unit, err := e.pool.Unit(req.Agent)
	if err != nil {
		return ledger.Action{}, err
	}
	spec := unit.Spec()

	floor := req.Earliest
	if f := unit.FreeAt(); f > floor {
		floor = f
	}

	limits := spec.Limits
	if req.Limits != nil {
		limits = *req.Limits
	}

	start := floor
	if limits.Constrained() {
		start, err = e.weather.NextFeasible(floor, req.Duration, limits)
		if err != nil {
			// The series ran out before a window opened. Make the futile
			// wait observable before surfacing the error: the unit idles
			// to the end of the data, then the unit of work fails.
			e.recordExhaustion(req, unit.Spec(), floor)
			return ledger.Action{}, err
		}
	}

	res, err := e.pool.Acquire(req.Agent, start, req.Duration, req.state())
	if err != nil {
		return ledger.Action{}, err
	}
	defer e.pool.Release(res)

	if err := e.recordDelay(req, spec, res); err != nil {
		return ledger.Action{}, err
	}

	cost := req.Duration * spec.HourlyRate() * req.multiplier()
	a, err := ledger.NewAction(req.Agent, req.Name, req.Phase, res.Start, req.Duration, cost)
	if err != nil {
		return ledger.Action{}, err
	}
	a = a.WithMultiplier(req.multiplier())
	if req.Location != "" {
		a = a.WithLocation(req.Location)
	}
	if limits.Constrained() {
		a = a.WithLimits(limits)
	}
	e.record(a)
	return a, nil
}

// ProcessGroup schedules one unit of work across any k units of a group,
// acting for a common interval. Waiting for the group to muster k units is
// recorded as a Delay on the group itself, so a deferred acquisition is
// always observable in the ledger; the units' charters stay billed to the
// phases actually working them, so the group entry carries no cost.
func (e *Env) ProcessGroup(group string, k int, req Request) ([]ledger.Action, error) {
	muster, err := e.pool.GroupFreeAt(group, k)
	if err != nil {
		return nil, err
	}

	start := req.Earliest
	if muster > start {
		a, err := ledger.NewAction(group, ledger.ActionDelay, req.Phase, start, muster-start, 0)
		if err != nil {
			return nil, err
		}
		e.record(a)
		start = muster
	}

	limits := weather.Limits{}
	if req.Limits != nil {
		limits = *req.Limits
	}
	if limits.Constrained() {
		start, err = e.weather.NextFeasible(start, req.Duration, limits)
		if err != nil {
			return nil, err
		}
	}

	reservations, err := e.pool.AcquireGroup(group, k, start, req.Duration, req.state())
	if err != nil {
		return nil, err
	}

	actions := make([]ledger.Action, 0, k)
	for _, res := range reservations {
		unit, err := e.pool.Unit(res.UnitID)
		if err != nil {
			return nil, err
		}
		spec := unit.Spec()
		if err := e.recordDelay(req, spec, res); err != nil {
			return nil, err
		}
		cost := req.Duration * spec.HourlyRate() * req.multiplier()
		a, err := ledger.NewAction(res.UnitID, req.Name, req.Phase, res.Start, req.Duration, cost)
		if err != nil {
			return nil, err
		}
		a = a.WithMultiplier(req.multiplier())
		if req.Location != "" {
			a = a.WithLocation(req.Location)
		}
		if limits.Constrained() {
			a = a.WithLimits(limits)
		}
		e.record(a)
		actions = append(actions, a)
		e.pool.Release(res)
	}
	return actions, nil
}

// Transit schedules a transit leg for a unit, its duration derived from the
// unit's transit speed. Transit is gated by the unit's own operating limits.
func (e *Env) Transit(phase, unitID, location string, distanceKm, earliest float64) (ledger.Action, error) {
	unit, err := e.pool.Unit(unitID)
	if err != nil {
		return ledger.Action{}, err
	}
	return e.Process(Request{
		Agent:    unitID,
		Name:     ledger.ActionTransit,
		Phase:    phase,
		Location: location,
		Duration: unit.Spec().TransitHours(distanceKm),
		Earliest: earliest,
		State:    resource.StateTransiting,
	})
}

// RecordUnmanned records work with no physical agent requirement, such as
// onshore construction or a readiness marker. Zero-duration entries are valid.
func (e *Env) RecordUnmanned(name, phase string, earliest, duration, cost float64) (ledger.Action, error) {
	a, err := ledger.NewAction("", name, phase, earliest, duration, cost)
	if err != nil {
		return ledger.Action{}, err
	}
	e.record(a)
	return a, nil
}

// recordExhaustion bills the idle wait from a unit's free time to the end of
// the weather series when no feasible window exists before the data runs out
func (e *Env) recordExhaustion(req Request, spec resource.Spec, floor float64) {
	end := e.weather.SeriesEnd()
	if end <= floor {
		return
	}
	gap := end - floor
	res, err := e.pool.Acquire(req.Agent, floor, gap, resource.StateAvailable)
	if err != nil {
		return
	}
	a, err := ledger.NewAction(req.Agent, ledger.ActionDelay, req.Phase, res.Start, gap, gap*spec.IdleHourlyRate())
	if err != nil {
		return
	}
	e.record(a)
}

// recordDelay makes the gap between when a unit could have started and when
// it actually starts visible as a ledger entry. The gap never overlaps the
// unit's prior work: it begins at the later of the request and the unit's
// previous free time.
func (e *Env) recordDelay(req Request, spec resource.Spec, res resource.Reservation) error {
	gapStart := req.Earliest
	if res.PrevFreeAt > gapStart {
		gapStart = res.PrevFreeAt
	}
	gap := res.Start - gapStart
	if gap <= 0 {
		return nil
	}
	cost := gap * spec.IdleHourlyRate()
	a, err := ledger.NewAction(res.UnitID, ledger.ActionDelay, req.Phase, gapStart, gap, cost)
	if err != nil {
		return err
	}
	e.record(a)
	return nil
}
