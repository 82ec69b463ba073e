// Package core defines the central Graph, Node, Edge, and Schedule
// types for timetable routing.
//
// Nodes live in a dense arena indexed 0..N-1; edges store head indices
// into the same arena, and predecessor links are optional indices.
// No pointers cross package boundaries except *Graph and *Node views.
//
// This file declares the arena types, search-state constants, and
// sentinel errors.
//
// Errors:
//
//	ErrBadNodeCount   - graph constructed with a non-positive node count.
//	ErrNodeOutOfRange - a node index falls outside 0..N-1.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrBadNodeCount indicates a graph was requested with node count < 1.
	ErrBadNodeCount = errors.New("core: node count must be positive")

	// ErrNodeOutOfRange indicates an operation referenced an index outside 0..N-1.
	ErrNodeOutOfRange = errors.New("core: node index out of range")
)

// Infinity is the sentinel arrival value meaning "not yet reached".
// It is deliberately the maximum int64 so that any genuine arrival
// time compares strictly smaller. Arithmetic never touches it:
// Schedule.EarliestArrival reports unreachability via its ok flag
// instead of returning a value near Infinity.
const Infinity int64 = int64(^uint64(0) >> 1) // math.MaxInt64

// NoPredecessor marks a node with no recorded predecessor: the search
// source, or any node never improved by a relaxation.
const NoPredecessor = -1

// Node is one slot of the graph arena.
//
// ID is the node's position in the arena and never changes. Arrival,
// Finalized, and Predecessor are search state: they are reset by
// Graph.Reset and owned exclusively by one search at a time. Arrival
// only ever decreases during a search (each update is a strict
// improvement), and once Finalized is set it is permanent for that
// search.
type Node struct {
	// ID is the dense 0-based index of this node.
	ID int

	// Arrival is the best known earliest-arrival time, or Infinity.
	Arrival int64

	// Finalized reports whether Arrival is proven optimal.
	Finalized bool

	// Predecessor is the index of the node used to reach this one on
	// the best known path, or NoPredecessor.
	Predecessor int

	// Edges are this node's outgoing edges, in insertion order.
	Edges []Edge
}

// Edge is a directed, scheduled connection owned by its tail node.
// The head is referenced by index; the edge does not own it.
type Edge struct {
	// Head is the arena index of the target node.
	Head int

	// Schedule describes when this edge can be traversed.
	Schedule Schedule
}
