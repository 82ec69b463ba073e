package intervalcover

import "sort"

// Cover selects a minimum number of candidate intervals whose union
// contains the whole target interval, and returns their indices into
// the original candidates slice, ordered left to right along the
// target.
//
// Greedy sweep: among all candidates starting at or before the
// currently covered point, take the one reaching farthest right;
// repeat from its end. The greedy choice is optimal for interval
// covering, and each candidate is examined once after an O(N log N)
// sort, so the total cost is O(N log N).
//
// Touching endpoints count as covered (intervals are closed), and a
// point target Start == End is covered by any candidate containing
// the point. The candidates slice is never modified; the sweep runs
// over a sorted copy of index/interval pairs.
//
// Returns ErrBadTarget if the target's end precedes its start, and
// ErrNoCover if no selection of candidates can cover the target.
func Cover(target Interval, candidates []Interval) ([]int, error) {
	if target.End < target.Start {
		return nil, ErrBadTarget
	}

	// Indexed copy sorted by start, leaving the caller's slice intact.
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return candidates[order[a]].Start < candidates[order[b]].Start
	})

	var (
		chosen  []int
		covered = target.Start
		next    = 0
		first   = true
	)
	// Each round extends coverage past `covered`; the point target
	// needs exactly one round even though Start == End.
	for first || covered < target.End {
		first = false

		// Farthest-reaching candidate among those starting in time.
		best, bestEnd := -1, covered
		for next < len(order) && candidates[order[next]].Start <= covered {
			if c := candidates[order[next]]; best == -1 || c.End > bestEnd {
				best, bestEnd = order[next], c.End
			}
			next++
		}
		if best == -1 || bestEnd < covered {
			return nil, ErrNoCover
		}

		chosen = append(chosen, best)
		covered = bestEnd

		if covered >= target.End {
			break
		}
		// If this round made no rightward progress, the next round has
		// no fresh candidates to consider and fails with ErrNoCover;
		// the loop therefore always terminates.
	}

	return chosen, nil
}
