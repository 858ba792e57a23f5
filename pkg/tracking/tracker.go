package tracking

import (
	"sync"
)

// Tracker holds the delivery status of a user's most recent order.
// Mutex-guarded: ticks arrive from a simulator goroutine while handlers
// read from request goroutines.
type Tracker struct {
	mu     sync.Mutex
	status Status
}

func NewTracker() *Tracker {
	return &Tracker{status: StatusReceived}
}

func (t *Tracker) Current() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Advance moves one step forward. At delivered it is a no-op; the tracker
// must be explicitly reset to restart. Returns the status after the call
// and whether it changed.
func (t *Tracker) Advance() (Status, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	next, ok := Next(t.status)
	if !ok {
		return t.status, false
	}
	t.status = next
	return t.status, true
}

// Set jumps directly to s, bypassing the linear rule. Meant for
// initialization when a new order is placed, not as a general transition
// path. Unknown values are ignored.
func (t *Tracker) Set(s Status) {
	if !Valid(s) {
		return
	}
	t.mu.Lock()
	t.status = s
	t.mu.Unlock()
}

// Reset returns the tracker to received regardless of current state.
func (t *Tracker) Reset() { t.Set(StatusReceived) }
