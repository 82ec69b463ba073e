package timetable

import (
	"container/heap"
	"fmt"

	"github.com/aldvik/timegraph/core"
)

// Dijkstra computes the earliest-arrival time from the source node to
// every reachable node of g, leaving the results in the graph arena:
// Node.Arrival holds the proven minimum, Node.Predecessor the back
// link for path reconstruction, Node.Finalized the reachability flag.
// Read them back with g.ArrivalAt and g.PathTo.
//
// The graph is fully reset before the search, so any state from a
// previous run is discarded. The search takes exclusive ownership of
// the mutable node fields until it returns; it runs to completion and
// never fails after validation — unreachable nodes are a result
// (Arrival stays core.Infinity), not an error.
//
// State machine per node: Unsettled → Frontier → Finalized. A node
// enters the frontier when a relaxation first improves it and is
// finalized when popped with the smallest (arrival, id) key. Once
// finalized, its arrival never changes again, and nodes finalize in
// non-decreasing arrival order.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. The resolved source — Options.Source, or the graph's stored
//     source under UseGraphSource — must be a valid index
//     (ErrSourceOutOfRange).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) error {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph pointer.
	if g == nil {
		return ErrNilGraph
	}

	// 3) Resolve and validate the source index.
	src := cfg.Source
	if src == UseGraphSource {
		src = g.Source()
	}
	if src < 0 || src >= g.NodeCount() {
		return fmt.Errorf("%w: %d (graph has %d nodes)", ErrSourceOutOfRange, src, g.NodeCount())
	}

	// 4) Reset the arena so this search starts from a clean state.
	if err := g.Reset(src); err != nil {
		return err
	}

	// 5) Run the main loop.
	r := &runner{
		g:       g,
		options: cfg,
		pq:      make(nodePQ, 0, g.NodeCount()),
	}
	r.run(src)

	return nil
}

// runner holds the mutable state for a single search execution.
// Node labels live in the graph arena itself; the runner owns only
// the frontier heap.
type runner struct {
	g       *core.Graph // arena under exclusive mutation for this search
	options Options
	pq      nodePQ // min-heap keyed by (arrival, id), lazy decrease-key
}

// run executes the label-setting loop from the given source index.
func (r *runner) run(src int) {
	// 1) Seed the frontier: the source is reachable at time 0.
	r.g.Node(src).Arrival = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: src, arrival: 0})

	// 2) Repeatedly finalize the closest frontier node.
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		node := r.g.Node(item.id)

		// Stale duplicate from lazy decrease-key: a better entry for
		// this node was already popped. Discard.
		if node.Finalized {
			continue
		}

		// Beyond the defensive cutoff; nothing closer remains.
		if item.arrival > r.options.MaxArrival {
			break
		}

		// Finalize: item.arrival is the proven earliest arrival.
		node.Finalized = true
		if r.options.OnSettle != nil {
			r.options.OnSettle(node.ID, node.Arrival)
		}

		r.relax(node)
	}
}

// relax attempts to improve every non-finalized head reachable through
// an outgoing edge of node, whose own arrival is already final.
// Self-loops and parallel edges each get their own attempt; a
// self-loop can never improve its finalized tail and falls out on the
// Finalized check.
func (r *runner) relax(node *core.Node) {
	for i := range node.Edges {
		e := &node.Edges[i]
		head := r.g.Node(e.Head)
		if head.Finalized {
			continue
		}

		// Earliest arrival at the head if we board this edge now.
		// A one-shot departure that has passed (or a saturating sum)
		// contributes no relaxation at all.
		arrival, ok := e.Schedule.EarliestArrival(node.Arrival)
		if !ok {
			continue
		}
		if arrival > r.options.MaxArrival {
			continue
		}

		// Strict improvement only; Infinity is the unreached default,
		// so first contact always improves.
		if arrival >= head.Arrival {
			continue
		}

		head.Arrival = arrival
		head.Predecessor = node.ID
		heap.Push(&r.pq, nodeItem{id: head.ID, arrival: arrival})
	}
}

// nodeItem is one frontier entry: a node index and the arrival time it
// was pushed with. Duplicates per node are permitted; stale ones are
// discarded on extraction via the Finalized flag.
type nodeItem struct {
	id      int
	arrival int64
}

// nodePQ is a min-heap of nodeItem keyed by (arrival, id) ascending.
// The id tiebreak makes extraction order deterministic when several
// frontier nodes share an arrival time.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

// Less orders by arrival, then by node index for equal arrivals.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].arrival != pq[j].arrival {
		return pq[i].arrival < pq[j].arrival
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new entry; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last entry; called by heap.Pop after it
// has swapped the minimum to the end.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
