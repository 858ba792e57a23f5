package tracking

import (
	"sync"
)

// Registry keeps one tracker per user, covering that user's most recent
// order. Volatile, like the cart: a restart forgets in-flight simulations.
type Registry struct {
	mu       sync.Mutex
	trackers map[uint]*Tracker
}

func NewRegistry() *Registry {
	return &Registry{trackers: make(map[uint]*Tracker)}
}

func (r *Registry) Get(userID uint) *Tracker {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trackers[userID]
	if !ok {
		t = NewTracker()
		r.trackers[userID] = t
	}
	return t
}
