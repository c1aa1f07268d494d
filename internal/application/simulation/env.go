package simulation

import (
	"github.com/windward-offshore/windward-go/internal/domain/ledger"
	"github.com/windward-offshore/windward-go/internal/domain/resource"
	"github.com/windward-offshore/windward-go/internal/domain/shared"
	"github.com/windward-offshore/windward-go/internal/domain/weather"
)

// Env is the discrete-event context a run threads through its installation
// phases: the shared simulated clock, the weather oracle, the resource pool
// and the action ledger. It is passed explicitly rather than held as ambient
// state so runs are reentrant and testable in isolation.
type Env struct {
	clock   *shared.Clock
	weather *weather.Oracle
	pool    *resource.Pool
	ledger  *ledger.Ledger
}

// NewEnv creates an environment over the given collaborators. A nil oracle
// selects the documented unconstrained mode.
func NewEnv(oracle *weather.Oracle, pool *resource.Pool) *Env {
	if oracle == nil {
		oracle = weather.Unconstrained()
	}
	return &Env{
		clock:   shared.NewClock(),
		weather: oracle,
		pool:    pool,
		ledger:  ledger.NewLedger(),
	}
}

// Clock returns the run's shared simulated clock
func (e *Env) Clock() *shared.Clock {
	return e.clock
}

// Weather returns the run's weather oracle
func (e *Env) Weather() *weather.Oracle {
	return e.weather
}

// Pool returns the run's resource pool
func (e *Env) Pool() *resource.Pool {
	return e.pool
}

// Ledger returns the run's action ledger
func (e *Env) Ledger() *ledger.Ledger {
	return e.ledger
}

func (e *Env) record(a ledger.Action) {
	e.ledger.Append(a)
	e.clock.AdvanceTo(a.End())
}
