// Package timegraph is a small toolkit for earliest-arrival routing on
// graphs whose edges follow departure timetables — transit-style
// networks where waiting for the next departure is part of the cost.
//
// 🚆 What is timegraph?
//
//	A focused library built around one question:
//	"leaving node S at time 0, when is the earliest I can stand at T?"
//		• core/          — arena-based graph of dense-indexed nodes,
//		                   scheduled edges, path reconstruction
//		• timetable/     — label-setting (Dijkstra-style) earliest-arrival
//		                   search driven by per-edge departure schedules
//		• intervalcover/ — greedy minimum interval covering utility
//		• batch/         — line-oriented batch protocols + YAML networks
//		• cmd/timegraph  — command-line front-end for the batch protocols
//
// ✨ Design points
//
//   - Edges carry (DepartureStart, Period, Duration) schedules; a
//     constant-weight edge is just the zero-wait degenerate schedule.
//   - Unreachability is data, not an error: core.Infinity for node
//     values, (value, ok) returns for per-edge time arithmetic.
//   - The search uses a lazy decrease-key min-heap keyed by
//     (arrival, node id); stale entries are discarded on extraction.
//
// Quick ASCII example:
//
//	0 ──(start 5, one-shot, 2 min)──▶ 1 ──(start 10, every 3, 1 min)──▶ 2
//
//	Leaving 0 at t=0: wait until 5, ride 2 → node 1 at t=7.
//	At node 1, next departure is 10, ride 1 → node 2 at t=11.
//
// Start with core.NewGraph and timetable.Dijkstra.
//
//	go get github.com/aldvik/timegraph
package timegraph
