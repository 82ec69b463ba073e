// Package intervalcover defines types and sentinel errors for the
// greedy minimum interval-covering utility.
package intervalcover

import "errors"

// Sentinel errors for interval covering.
var (
	// ErrBadTarget indicates the target interval's end precedes its start.
	ErrBadTarget = errors.New("intervalcover: target end precedes start")

	// ErrNoCover indicates no subset of the candidates covers the target.
	// This is the "impossible" outcome of the covering problem, reported
	// as an error so callers cannot mistake it for an empty cover.
	ErrNoCover = errors.New("intervalcover: target cannot be covered")
)

// Interval is a closed interval [Start, End] on the real line.
// A point is represented as Start == End.
type Interval struct {
	Start float64
	End   float64
}

// Contains reports whether x lies within the closed interval.
func (iv Interval) Contains(x float64) bool {
	return iv.Start <= x && x <= iv.End
}
