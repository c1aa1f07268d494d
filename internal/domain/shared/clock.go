package shared

// Clock tracks simulated time for a single run, measured in hours from the
// start of the simulation. The clock is process-wide for a run: every phase
// advances it only through its own scheduled actions, so simulated time is
// monotonically non-decreasing.
type Clock struct {
	now float64
}

// NewClock creates a Clock starting at hour zero
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the current simulated time in hours
func (c *Clock) Now() float64 {
	return c.now
}

// AdvanceTo moves the clock forward to the given hour.
// Requests to move backwards are ignored; simulated time never rewinds.
func (c *Clock) AdvanceTo(hour float64) {
	if hour > c.now {
		c.now = hour
	}
}
