// Package intervalcover solves the minimum interval covering problem:
// given a target interval and a set of candidate intervals, select as
// few candidates as possible whose union contains the entire target.
//
// Overview:
//
//   - Intervals are closed ranges on the real line; a point target
//     (Start == End) is valid and needs a single containing candidate.
//   - Cover returns the indices of a minimum-cardinality selection in
//     left-to-right order, or ErrNoCover when the candidates leave a
//     gap. An impossible cover is an expected outcome of the problem,
//     distinct from the empty selection.
//
// Algorithm:
//
//	Sort candidates by start, then sweep: among the candidates that
//	start at or before the farthest point covered so far, commit to
//	the one reaching farthest right, and continue from its end. The
//	exchange argument for this greedy choice is standard; the result
//	is optimal in O(N log N) time and O(N) space.
//
// Typical uses: choosing the fewest sensors to watch a fence line,
// the fewest shifts to cover a working day, or the fewest sprinklers
// to water a strip — anywhere segments must jointly span a range.
//
// This package is self-contained and independent of the routing
// packages; it shares only the module's error conventions.
package intervalcover
