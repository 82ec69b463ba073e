// Package timetable provides a precise earliest-arrival shortest-path
// search for graphs whose edges follow departure schedules.
//
// Overview:
//
//   - Classic Dijkstra asks "what is the cheapest path?"; timetable
//     routing asks "leaving the source at time 0, when is the earliest
//     I can be at each node?". The two coincide when every edge is a
//     constant-weight schedule (core.Constant), so this package also
//     subsumes the ordinary non-negative shortest-path problem.
//   - The edge cost is time-dependent: boarding an edge at time t
//     yields arrival core.Schedule.EarliestArrival(t), which includes
//     the wait for the next scheduled departure. Because waiting never
//     moves time backwards, every effective cost is non-negative and
//     the greedy label-setting invariant holds.
//
// Key properties:
//
//   - Once a node is finalized its arrival time never changes again.
//   - Nodes finalize in non-decreasing arrival order (observable via
//     WithOnSettle).
//   - A one-shot edge whose departure has passed contributes no
//     relaxation; it behaves as if absent for that boarding time.
//   - Unreachable nodes keep core.Infinity and report "no value"
//     through core.Graph.ArrivalAt — never an error.
//
// The frontier is a binary min-heap keyed by (arrival, node id) with
// the lazy decrease-key strategy: improving a node pushes a duplicate
// entry, and stale entries are recognized on extraction by the node's
// Finalized flag. This is a documented invariant of the algorithm, not
// an incidental optimization — correctness of the skip depends on
// finalization being permanent.
//
// Results live in the graph arena rather than in returned maps: the
// search takes exclusive access to the nodes' mutable fields for its
// duration, and afterwards the graph's read-only accessors (ArrivalAt,
// PathTo) serve any number of queries.
//
// Example usage:
//
//	g, _ := core.NewGraph(3, 0)
//	_ = g.AddEdge(0, 1, core.Schedule{DepartureStart: 5, Duration: 2})
//	_ = g.AddEdge(1, 2, core.Schedule{DepartureStart: 10, Period: 3, Duration: 1})
//
//	if err := timetable.Dijkstra(g); err != nil {
//	    log.Fatal(err)
//	}
//	if at, ok := g.ArrivalAt(2); ok {
//	    fmt.Println("node 2 at time", at) // 11
//	}
//
// Thread safety: a Graph must not be shared between concurrent
// searches or mutated while one runs; synchronize externally if
// needed.
package timetable
