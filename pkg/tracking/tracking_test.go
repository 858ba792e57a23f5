package tracking

import (
	"context"
	"testing"
	"time"
)

func TestAdvanceWalksLifecycleInOrder(t *testing.T) {
	tr := NewTracker()
	want := []Status{StatusPreparing, StatusReady, StatusOutForDelivery, StatusDelivered}

	for _, w := range want {
		st, changed := tr.Advance()
		if !changed {
			t.Fatalf("advance to %s did not change", w)
		}
		if st != w {
			t.Fatalf("advanced to %s, want %s", st, w)
		}
	}
}

func TestDeliveredIsTerminal(t *testing.T) {
	tr := NewTracker()
	tr.Set(StatusDelivered)

	st, changed := tr.Advance()
	if changed {
		t.Error("advance past delivered should not change")
	}
	if st != StatusDelivered {
		t.Errorf("status = %s, want delivered", st)
	}
}

func TestResetFromAnyState(t *testing.T) {
	for _, start := range Steps {
		tr := NewTracker()
		tr.Set(start)
		tr.Reset()
		if tr.Current() != StatusReceived {
			t.Errorf("reset from %s gave %s, want received", start, tr.Current())
		}
	}
}

func TestSetIgnoresUnknownStatus(t *testing.T) {
	tr := NewTracker()
	tr.Set(StatusReady)
	tr.Set(Status("cancelled"))
	if tr.Current() != StatusReady {
		t.Errorf("unknown Set changed status to %s", tr.Current())
	}
}

func TestCanTransitionForwardByOneOnly(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusReceived, StatusPreparing, true},
		{StatusPreparing, StatusReady, true},
		{StatusReady, StatusOutForDelivery, true},
		{StatusOutForDelivery, StatusDelivered, true},
		{StatusReceived, StatusReady, false},         // no skipping
		{StatusPreparing, StatusReceived, false},     // no regression
		{StatusDelivered, StatusReceived, false},     // terminal
		{StatusReceived, Status("cancelled"), false}, // unknown
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestSimulatorRunsToDelivered(t *testing.T) {
	tr := NewTracker()
	sim := &Simulator{Interval: time.Millisecond}

	var seen []Status
	done := make(chan struct{})
	go func() {
		sim.Run(context.Background(), tr, func(st Status) { seen = append(seen, st) })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("simulator did not finish")
	}

	if tr.Current() != StatusDelivered {
		t.Fatalf("final status = %s, want delivered", tr.Current())
	}
	want := []Status{StatusPreparing, StatusReady, StatusOutForDelivery, StatusDelivered}
	if len(seen) != len(want) {
		t.Fatalf("saw %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("saw %v, want %v", seen, want)
		}
	}
}

func TestSimulatorStopsOnCancel(t *testing.T) {
	tr := NewTracker()
	sim := &Simulator{Interval: time.Hour} // would never tick

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sim.Run(ctx, tr, nil)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("simulator leaked after cancel")
	}

	if tr.Current() != StatusReceived {
		t.Errorf("cancelled simulator advanced to %s", tr.Current())
	}
}

func TestRegistryReturnsSameTrackerPerUser(t *testing.T) {
	r := NewRegistry()
	a := r.Get(7)
	a.Set(StatusReady)

	if r.Get(7).Current() != StatusReady {
		t.Error("registry handed out a different tracker for the same user")
	}
	if r.Get(8).Current() != StatusReceived {
		t.Error("new user's tracker should start at received")
	}
}
