package tracking

// Status is the delivery lifecycle of an order. Progression is strictly
// linear; there are no back-transitions and no skipping.
type Status string

const (
	StatusReceived       Status = "received"
	StatusPreparing      Status = "preparing"
	StatusReady          Status = "ready"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
)

// Steps is the fixed lifecycle order, first to last.
var Steps = []Status{
	StatusReceived,
	StatusPreparing,
	StatusReady,
	StatusOutForDelivery,
	StatusDelivered,
}

func index(s Status) int {
	for i, st := range Steps {
		if st == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a known lifecycle value.
func Valid(s Status) bool { return index(s) >= 0 }

// Next returns the following step and true, or s and false when s is
// terminal or unknown.
func Next(s Status) (Status, bool) {
	i := index(s)
	if i < 0 || i == len(Steps)-1 {
		return s, false
	}
	return Steps[i+1], true
}

// CanTransition allows forward-by-one moves only. Guards the admin status
// update so an order never regresses or skips a step.
func CanTransition(from, to Status) bool {
	next, ok := Next(from)
	return ok && next == to
}
