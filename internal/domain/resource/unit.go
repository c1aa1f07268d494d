package resource

// State is the lifecycle state of a pool entry within a run
type State string

const (
	StateUnmobilized State = "UNMOBILIZED"
	StateMobilizing  State = "MOBILIZING"
	StateAvailable   State = "AVAILABLE"
	StateBusy        State = "BUSY"
	StateTransiting  State = "TRANSITING"
)

// Unit is one vessel or shared asset instance. Exclusivity is enforced
// through freeAt: a unit can never be reserved for an interval that begins
// before its previous reservation ends, so no two of its actions overlap.
type Unit struct {
	id        string
	spec      Spec
	state     State
	freeAt    float64
	mobilized bool
}

// ID returns the unit's pool identifier
func (u *Unit) ID() string {
	return u.id
}

// Spec returns the unit's static specification
func (u *Unit) Spec() Spec {
	return u.spec
}

// State returns the unit's current lifecycle state
func (u *Unit) State() State {
	return u.state
}

// FreeAt returns the simulated hour at which the unit next becomes free
func (u *Unit) FreeAt() float64 {
	return u.freeAt
}

// Mobilized reports whether the unit has been mobilized this run
func (u *Unit) Mobilized() bool {
	return u.mobilized
}
