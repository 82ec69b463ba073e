// Package timetable defines configuration options and sentinel errors
// for the earliest-arrival search on scheduled graphs.
//
// The search computes, for every node reachable from a source, the
// minimum time at which it can be reached when each edge is only
// traversable at its scheduled departure instants (see core.Schedule).
// It is Dijkstra's label-setting algorithm with the scalar edge weight
// replaced by the schedule's earliest-arrival function.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |nodes|, E = |edges|
//	   • Each node is extracted from the priority queue at most once.
//	   • Each successful relaxation pushes one entry (lazy decrease-key).
//	– Space: O(V + E)
//	   • Node state lives in the graph arena; the heap holds up to E entries.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrSourceOutOfRange if the resolved source index is not a valid node.
//	– ErrBadMaxArrival    if WithMaxArrival is given a negative cutoff.
package timetable

import (
	"errors"

	"github.com/aldvik/timegraph/core"
)

// Sentinel errors returned by the earliest-arrival search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("timetable: graph is nil")

	// ErrSourceOutOfRange indicates the source index does not name a node.
	ErrSourceOutOfRange = errors.New("timetable: source index out of range")

	// ErrBadMaxArrival indicates MaxArrival was set to a negative value,
	// which is not meaningful as a time cutoff.
	ErrBadMaxArrival = errors.New("timetable: MaxArrival must be non-negative")
)

// UseGraphSource is the default Source value: run the search from the
// graph's own current source index rather than overriding it.
const UseGraphSource = -1

// Options configures the behavior of the earliest-arrival search.
//
// Source     – node index to search from; UseGraphSource (the default)
//              keeps the index already stored on the graph.
// MaxArrival – defensive cutoff: nodes whose earliest arrival would
//              exceed this time are not finalized. Default is
//              core.Infinity (no cutoff). Purely an optimization —
//              results for nodes within the cutoff are unaffected.
// OnSettle   – hook invoked as each node is finalized, in settle
//              order, with the node's proven earliest-arrival time.
type Options struct {
	Source     int
	MaxArrival int64
	OnSettle   func(id int, arrival int64)
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// Source overrides the graph's stored source index for this search.
func Source(index int) Option {
	return func(o *Options) {
		o.Source = index
	}
}

// WithMaxArrival stops the search from finalizing nodes whose arrival
// time exceeds max. Must be non-negative; a negative value panics with
// ErrBadMaxArrival, matching option-constructor validation elsewhere
// in the module.
func WithMaxArrival(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxArrival.Error())
		}
		o.MaxArrival = max
	}
}

// WithOnSettle registers a callback fired when a node is finalized.
// Nodes settle in non-decreasing arrival order, so the hook observes
// the greedy finalization sequence directly.
func WithOnSettle(fn func(id int, arrival int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns an Options struct with the module defaults:
// search from the graph's stored source, no arrival cutoff, no hook.
func DefaultOptions() Options {
	return Options{
		Source:     UseGraphSource,
		MaxArrival: core.Infinity,
		OnSettle:   nil,
	}
}
