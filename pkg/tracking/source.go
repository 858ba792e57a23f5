package tracking

import (
	"context"
	"time"
)

// StatusSource feeds status changes to a consumer. The real system would
// back this with a push feed from the kitchen/rider side; the simulator
// below is a stand-in with the same shape so swapping it in later does not
// touch the state machine.
type StatusSource interface {
	// Run drives tr until ctx is cancelled or the lifecycle completes,
	// calling onChange after every transition.
	Run(ctx context.Context, tr *Tracker, onChange func(Status))
}

// Simulator advances the tracker one step per interval. It is simulation
// only, not business logic: it exists so the tracking view has something
// to show without a real feed.
type Simulator struct {
	Interval time.Duration
}

// DefaultInterval matches the legacy client's 5-second fake progression.
const DefaultInterval = 5 * time.Second

func NewSimulator() *Simulator {
	return &Simulator{Interval: DefaultInterval}
}

// Run ticks until delivered or ctx is done. Binding the ticker to ctx is
// what keeps a closed tracking view from leaking a timer.
func (s *Simulator) Run(ctx context.Context, tr *Tracker, onChange func(Status)) {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st, changed := tr.Advance()
			if !changed {
				return
			}
			if onChange != nil {
				onChange(st)
			}
			if st == StatusDelivered {
				return
			}
		}
	}
}
