// Package core provides the graph arena and schedule arithmetic that
// the timetable search runs on.
//
// Overview:
//
//   - Graph owns a dense arena of Nodes indexed 0..N-1; each Node owns
//     its outgoing Edges, and every cross-reference (edge head,
//     predecessor link) is an index into the same arena. There is no
//     pointer-based ownership to manage.
//   - Schedule is the per-edge timetable: first departure, recurrence
//     period, traversal duration. Schedule.EarliestArrival is the pure
//     cost function of the whole system — it maps "I am at the tail at
//     time t" to "I can be at the head at time t'", or reports that
//     the edge cannot be taken at all.
//   - Constant(weight) recovers the classic fixed-cost edge as a
//     degenerate zero-wait schedule, so plain shortest-path problems
//     run through the identical machinery.
//
// Search-state lifecycle:
//
//	NewGraph → (AddEdge | AddWeightedEdge)* → search mutates node state
//	→ ArrivalAt / PathTo read results → Reset → next search
//
// Reset reinitializes Arrival/Finalized/Predecessor for every node
// without reallocating the topology, so one graph instance can serve
// any number of consecutive searches with no state leaking across.
//
// Unreachability model:
//
//   - Node values use the Infinity sentinel; ArrivalAt hides it behind
//     an (int64, bool) return.
//   - Edge arithmetic never touches Infinity: EarliestArrival reports
//     (0, false) for a missed one-shot departure or a saturating sum.
//
// Thread safety: none. A Graph is owned by one search at a time; the
// search holds exclusive access to the mutable node fields for its
// duration (see the timetable package).
package core
