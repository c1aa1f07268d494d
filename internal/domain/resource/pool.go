package resource

import (
	"fmt"
	"sort"
	"sync"

	"github.com/windward-offshore/windward-go/internal/domain/shared"
)

// Reservation is an exclusive hold on a unit for one time interval.
// PrevFreeAt records when the unit was last free before this hold, letting
// callers price the deferral between requested and granted start.
type Reservation struct {
	UnitID     string
	Start      float64
	End        float64
	PrevFreeAt float64
}

// Mobilization describes the outcome of a mobilize call. First is false when
// the unit was already mobilized this run, in which case nothing is billed.
type Mobilization struct {
	UnitID string
	Start  float64
	Hours  float64
	Cost   float64
	First  bool
}

// Pool tracks the finite, named resources of a run. It is the sole mutation
// point for resource state: all acquire/release/mobilize calls serialize on
// the pool's mutex, so phase execution may later be parallelized without
// changing this type.
type Pool struct {
	mu     sync.Mutex
	units  map[string]*Unit
	groups map[string][]string
}

// NewPool creates an empty pool
func NewPool() *Pool {
	return &Pool{
		units:  make(map[string]*Unit),
		groups: make(map[string][]string),
	}
}

// Register adds a single unit to the pool
func (p *Pool) Register(id string, spec Spec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.units[id]; exists {
		return shared.NewConfigurationError(id, "duplicate resource identifier")
	}
	p.units[id] = &Unit{id: id, spec: spec, state: StateUnmobilized}
	return nil
}

// RegisterGroup adds count identical units under a shared group name,
// identified as "<group>-1" .. "<group>-<count>". Phases request "any K of
// group G" through AcquireGroup.
func (p *Pool) RegisterGroup(group string, count int, spec Spec) error {
	if count <= 0 {
		return shared.NewConfigurationError(group, "group size must be positive")
	}
	ids := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		id := fmt.Sprintf("%s-%d", group, i)
		if err := p.Register(id, spec); err != nil {
			return err
		}
		ids = append(ids, id)
	}
	p.mu.Lock()
	p.groups[group] = ids
	p.mu.Unlock()
	return nil
}

// Unit looks up a unit by identifier. Unknown identifiers are configuration
// errors, surfaced to the orchestrator and fatal to the requesting phase only.
func (p *Pool) Unit(id string) (*Unit, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.unitLocked(id)
}

func (p *Pool) unitLocked(id string) (*Unit, error) {
	u, ok := p.units[id]
	if !ok {
		return nil, shared.NewConfigurationError(id, "unknown resource identifier")
	}
	return u, nil
}

// GroupSize returns the configured size of a group, zero if unknown
func (p *Pool) GroupSize(group string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.groups[group])
}

// GroupUnits returns the unit identifiers of a group in registration order
func (p *Pool) GroupUnits(group string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.groups[group]))
	copy(out, p.groups[group])
	return out
}

// Mobilize marks a unit mobilized. Mobilization is idempotent per run: a unit
// already mobilized is never re-billed, and the returned Mobilization has
// First=false and zero cost.
func (p *Pool) Mobilize(id string) (Mobilization, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	u, err := p.unitLocked(id)
	if err != nil {
		return Mobilization{}, err
	}
	if u.mobilized {
		return Mobilization{UnitID: id, Start: u.freeAt}, nil
	}
	m := Mobilization{
		UnitID: id,
		Start:  u.freeAt,
		Hours:  u.spec.MobilizationHours(),
		Cost:   u.spec.MobilizationCost(),
		First:  true,
	}
	u.mobilized = true
	u.state = StateMobilizing
	u.freeAt += m.Hours
	if m.Hours == 0 {
		u.state = StateAvailable
	}
	return m, nil
}

// Acquire reserves a unit exclusively for [start, start+duration), where
// start is the later of the requested hour and the unit's free time. The
// caller observes any deferral through Reservation.Start.
func (p *Pool) Acquire(id string, earliest, duration float64, state State) (Reservation, error) {
	if duration < 0 {
		return Reservation{}, shared.NewDomainValidationError("duration", duration, "must be non-negative")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	u, err := p.unitLocked(id)
	if err != nil {
		return Reservation{}, err
	}
	prev := u.freeAt
	start := earliest
	if u.freeAt > start {
		start = u.freeAt
	}
	u.freeAt = start + duration
	u.state = state
	return Reservation{UnitID: id, Start: start, End: start + duration, PrevFreeAt: prev}, nil
}

// AcquireGroup reserves any k units of the group for a common interval
// beginning no earlier than the requested hour. When fewer than k units are
// free at that hour the common start is deferred until k become free.
// Requesting more units than the group holds is a contention error.
func (p *Pool) AcquireGroup(group string, k int, earliest, duration float64, state State) ([]Reservation, error) {
	if duration < 0 {
		return nil, shared.NewDomainValidationError("duration", duration, "must be non-negative")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	ids, ok := p.groups[group]
	if !ok {
		return nil, shared.NewConfigurationError(group, "unknown resource group")
	}
	if k > len(ids) {
		return nil, shared.NewResourceContentionError(group, k, len(ids))
	}

	// Pick the k units that free up soonest; the common start is gated by
	// the latest of those, which is exactly "block until k become free".
	chosen := make([]*Unit, len(ids))
	for i, id := range ids {
		chosen[i] = p.units[id]
	}
	sort.SliceStable(chosen, func(i, j int) bool {
		return chosen[i].freeAt < chosen[j].freeAt
	})
	chosen = chosen[:k]

	start := earliest
	for _, u := range chosen {
		if u.freeAt > start {
			start = u.freeAt
		}
	}

	reservations := make([]Reservation, 0, k)
	for _, u := range chosen {
		prev := u.freeAt
		u.freeAt = start + duration
		u.state = state
		reservations = append(reservations, Reservation{
			UnitID: u.id, Start: start, End: start + duration, PrevFreeAt: prev,
		})
	}
	return reservations, nil
}

// GroupFreeAt returns the earliest hour at which k units of the group are
// simultaneously free: the kth-smallest free time among the group's units.
func (p *Pool) GroupFreeAt(group string, k int) (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids, ok := p.groups[group]
	if !ok {
		return 0, shared.NewConfigurationError(group, "unknown resource group")
	}
	if k > len(ids) {
		return 0, shared.NewResourceContentionError(group, k, len(ids))
	}
	frees := make([]float64, len(ids))
	for i, id := range ids {
		frees[i] = p.units[id].freeAt
	}
	sort.Float64s(frees)
	return frees[k-1], nil
}

// Release returns a unit to the available state once its reservation interval
// has elapsed. Releasing does not rewind the unit's free time.
func (p *Pool) Release(r Reservation) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	u, err := p.unitLocked(r.UnitID)
	if err != nil {
		return err
	}
	if u.freeAt == r.End {
		u.state = StateAvailable
	}
	return nil
}

// FreeAt returns the hour at which the unit next becomes free
func (p *Pool) FreeAt(id string) (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	u, err := p.unitLocked(id)
	if err != nil {
		return 0, err
	}
	return u.freeAt, nil
}
