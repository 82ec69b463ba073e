package core

// Schedule describes the departure timetable of a single edge.
//
// A departure happens at DepartureStart and then every Period time
// units after it. Period == 0 means the edge is one-shot: only the
// departure at exactly DepartureStart exists. Once a departure is
// taken, traversal takes Duration regardless of when it was boarded.
//
// The zero value is a one-shot departure at t=0 with zero duration.
type Schedule struct {
	// DepartureStart is the time of the first possible departure.
	DepartureStart int64

	// Period is the recurrence interval between departures.
	// Zero means one-shot, no recurrence.
	Period int64

	// Duration is the fixed traversal time once a departure is taken.
	Duration int64

	// constant marks the zero-wait degenerate schedule produced by
	// Constant: the edge behaves like a plain weighted edge and the
	// wait computation is skipped entirely.
	constant bool
}

// Constant returns the schedule of a plain weighted edge: traversable
// at any time with zero wait and traversal time weight. The result is
// indistinguishable from a periodic schedule whose phase is always
// zero — EarliestArrival(t) == t + weight for every t.
func Constant(weight int64) Schedule {
	return Schedule{Duration: weight, constant: true}
}

// Constant reports whether s is a zero-wait constant-weight schedule.
func (s Schedule) Constant() bool { return s.constant }

// EarliestArrival maps the arrival time at the edge's tail to the
// earliest possible arrival time at its head.
//
// The ok result is false when the edge cannot be taken at or after
// current: a one-shot departure that has already passed, or a sum that
// would overflow past Infinity. In both cases the returned time is 0
// and must not be used.
//
// Exact semantics for a scheduled edge:
//  1. Period == 0 and current > DepartureStart → unreachable.
//  2. current <= DepartureStart → wait = DepartureStart - current.
//  3. otherwise phase = (current - DepartureStart) mod Period;
//     wait = 0 if phase == 0, else Period - phase.
//  4. earliest arrival = current + Duration + wait.
//
// The function is pure and total for every current >= 0, and never
// returns a time smaller than current (non-negative effective cost,
// required for greedy search correctness).
func (s Schedule) EarliestArrival(current int64) (int64, bool) {
	if s.constant {
		return addSaturating(current, s.Duration)
	}

	var wait int64
	switch {
	case s.Period == 0 && current > s.DepartureStart:
		// The single departure has already left.
		return 0, false
	case current <= s.DepartureStart:
		wait = s.DepartureStart - current
	default:
		phase := (current - s.DepartureStart) % s.Period
		if phase != 0 {
			wait = s.Period - phase
		}
	}

	t, ok := addSaturating(current, s.Duration)
	if !ok {
		return 0, false
	}

	return addSaturating(t, wait)
}

// addSaturating adds two non-negative times, reporting failure instead
// of wrapping. Sums reaching Infinity itself are rejected too: the
// sentinel must stay distinct from every valid arrival time.
func addSaturating(a, b int64) (int64, bool) {
	if a >= Infinity-b {
		return 0, false
	}

	return a + b, true
}
