package ledger

import "sort"

// Ledger is the append-only record of simulated events and the canonical
// output artifact of a run. Entries are immutable once appended. Reporting
// order is by start time with ties broken by insertion order.
type Ledger struct {
	actions []Action
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append adds an action to the ledger
func (l *Ledger) Append(a Action) {
	l.actions = append(l.actions, a)
}

// Len returns the number of recorded actions
func (l *Ledger) Len() int {
	return len(l.actions)
}

// Actions returns a copy of the ledger sorted by start time, insertion order
// preserved among equal starts
func (l *Ledger) Actions() []Action {
	out := make([]Action, len(l.actions))
	copy(out, l.actions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].start < out[j].start
	})
	return out
}

// ByAgent returns the actions of a single agent in appended order
func (l *Ledger) ByAgent(agent string) []Action {
	var out []Action
	for _, a := range l.actions {
		if a.agent == agent {
			out = append(out, a)
		}
	}
	return out
}

// ByPhase returns the actions of a single phase in appended order
func (l *Ledger) ByPhase(phase string) []Action {
	var out []Action
	for _, a := range l.actions {
		if a.phase == phase {
			out = append(out, a)
		}
	}
	return out
}

// TotalCost sums the cost of every recorded action
func (l *Ledger) TotalCost() float64 {
	var total float64
	for _, a := range l.actions {
		total += a.cost
	}
	return total
}

// CostByPhase aggregates action costs per originating phase
func (l *Ledger) CostByPhase() map[string]float64 {
	out := make(map[string]float64)
	for _, a := range l.actions {
		out[a.phase] += a.cost
	}
	return out
}

// MaxEnd returns the latest end time across all actions: the total
// installation duration of the run
func (l *Ledger) MaxEnd() float64 {
	var max float64
	for _, a := range l.actions {
		if end := a.End(); end > max {
			max = end
		}
	}
	return max
}
