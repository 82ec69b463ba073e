// Package batch is the outer interface of the module: it parses
// line-oriented batch input, drives the routing and covering cores,
// and formats results — the layer the algorithm packages deliberately
// exclude.
//
// Two stream protocols are supported, both whitespace-separated:
//
//   - Run: timetable routing. Per case a `nodes edges queries source`
//     header, edge records `tail head start period duration`, then
//     query node indices. An all-zero header terminates. Each query
//     answers with the earliest-arrival time or "Impossible".
//   - Cover: interval covering. Per case a target `start end` pair, a
//     candidate count, and the candidate pairs. Each case answers with
//     the chosen count and indices, or "impossible".
//
// Graphs can also come from YAML network descriptions (ParseNetwork,
// LoadNetwork) instead of the token stream — same validation, friendlier
// authoring:
//
//	nodes: 3
//	source: 0
//	edges:
//	  - {tail: 0, head: 1, start: 5, period: 0, duration: 2}
//	  - {tail: 1, head: 2, weight: 4}
//
// Validation lives here by contract: the cores document range and sign
// preconditions instead of defending against them, so this package
// checks every index and schedule field before anything reaches a
// graph. All failures wrap the ErrBadInput or ErrBadNetwork sentinels;
// an unreachable query node is not a failure but a regular result
// line.
package batch
