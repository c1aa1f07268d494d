package ledger

import (
	"fmt"

	"github.com/windward-offshore/windward-go/internal/domain/shared"
	"github.com/windward-offshore/windward-go/internal/domain/weather"
)

// Well-known action names. Phases may record additional, operation-specific
// names; these are the ones the engine itself emits.
const (
	ActionMobilize = "Mobilize"
	ActionTransit  = "Transit"
	ActionDelay    = "Delay"
)

// Action is one entry in the ledger: an agent performing a timed, costed
// step. Agent may be empty for work with no physical resource requirement
// (onshore construction, design milestones). Location, and Limits are
// optional and only present for the action kinds that carry them.
// Actions are immutable once appended.
type Action struct {
	agent      string
	name       string
	phase      string
	location   string
	start      float64
	duration   float64
	cost       float64
	multiplier float64
	limits     *weather.Limits
}

// NewAction creates a validated action. A zero multiplier defaults to 1.
// Zero-duration actions are valid and mark instantaneous state transitions.
func NewAction(agent, name, phase string, start, duration, cost float64) (Action, error) {
	if name == "" {
		return Action{}, shared.NewConfigurationError("action.name", "must not be empty")
	}
	if start < 0 {
		return Action{}, shared.NewDomainValidationError("action.start", start, "must be non-negative")
	}
	if duration < 0 {
		return Action{}, shared.NewDomainValidationError("action.duration", duration, "must be non-negative")
	}
	if cost < 0 {
		return Action{}, shared.NewDomainValidationError("action.cost", cost, "must be non-negative")
	}
	return Action{
		agent:      agent,
		name:       name,
		phase:      phase,
		start:      start,
		duration:   duration,
		cost:       cost,
		multiplier: 1,
	}, nil
}

// WithMultiplier returns a copy carrying the incurred cost multiplier
func (a Action) WithMultiplier(m float64) Action {
	if m > 0 {
		a.multiplier = m
	}
	return a
}

// WithLocation returns a copy tagged with a location
func (a Action) WithLocation(location string) Action {
	a.location = location
	return a
}

// WithLimits returns a copy tagged with the weather limits the action was
// scheduled under
func (a Action) WithLimits(l weather.Limits) Action {
	a.limits = &l
	return a
}

func (a Action) Agent() string    { return a.agent }
func (a Action) Name() string     { return a.name }
func (a Action) Phase() string    { return a.phase }
func (a Action) Location() string { return a.location }
func (a Action) Start() float64   { return a.start }
func (a Action) Duration() float64 {
	return a.duration
}
func (a Action) Cost() float64       { return a.cost }
func (a Action) Multiplier() float64 { return a.multiplier }

// End returns start + duration
func (a Action) End() float64 {
	return a.start + a.duration
}

// Limits returns the weather limits the action was gated by, or nil
func (a Action) Limits() *weather.Limits {
	if a.limits == nil {
		return nil
	}
	l := *a.limits
	return &l
}

// String provides a human-readable representation
func (a Action) String() string {
	agent := a.agent
	if agent == "" {
		agent = "-"
	}
	return fmt.Sprintf("%s %s [%.1f, %.1f) $%.0f (%s)", agent, a.name, a.start, a.End(), a.cost, a.phase)
}
