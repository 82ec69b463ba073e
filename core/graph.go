package core

// Graph owns an arena of nodes; nodes own their outgoing edges.
//
// Topology (node count, edges) is built once and then left alone;
// search state (Arrival, Finalized, Predecessor per node) is
// reinitialized by Reset between independent searches. During one
// search the running algorithm has exclusive access to the mutable
// node fields; afterwards callers read results through ArrivalAt and
// PathTo, which never mutate.
type Graph struct {
	nodes  []Node
	source int
}

// NewGraph allocates a graph of nodeCount nodes, all unreached
// (Arrival == Infinity, not finalized, no predecessor), with the
// search origin set to source.
//
// Returns ErrBadNodeCount if nodeCount < 1, or ErrNodeOutOfRange if
// source is not a valid index.
func NewGraph(nodeCount, source int) (*Graph, error) {
	if nodeCount < 1 {
		return nil, ErrBadNodeCount
	}
	if source < 0 || source >= nodeCount {
		return nil, ErrNodeOutOfRange
	}

	g := &Graph{
		nodes:  make([]Node, nodeCount),
		source: source,
	}
	for i := range g.nodes {
		g.nodes[i].ID = i
		g.nodes[i].Arrival = Infinity
		g.nodes[i].Predecessor = NoPredecessor
	}

	return g, nil
}

// NodeCount returns the number of nodes in the arena.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Source returns the index of the current search origin.
func (g *Graph) Source() int { return g.source }

// Node returns a pointer into the arena for direct state access.
// The index must be in range; this is the one accessor that does not
// defend, matching the arena's dense-index invariant.
func (g *Graph) Node(i int) *Node { return &g.nodes[i] }

// AddEdge appends a directed scheduled edge tail→head. Self-loops and
// parallel edges are permitted; each is relaxed independently by a
// search. Returns ErrNodeOutOfRange if either endpoint is invalid.
func (g *Graph) AddEdge(tail, head int, sched Schedule) error {
	if tail < 0 || tail >= len(g.nodes) || head < 0 || head >= len(g.nodes) {
		return ErrNodeOutOfRange
	}
	g.nodes[tail].Edges = append(g.nodes[tail].Edges, Edge{Head: head, Schedule: sched})

	return nil
}

// AddWeightedEdge appends a constant-weight edge tail→head, the
// degenerate no-schedule case: traversable at any time, zero wait.
func (g *Graph) AddWeightedEdge(tail, head int, weight int64) error {
	return g.AddEdge(tail, head, Constant(weight))
}

// Reset reinitializes every node's search state — Arrival back to
// Infinity, flags cleared, predecessors dropped — without discarding
// the edge topology, and moves the search origin to source.
//
// Returns ErrNodeOutOfRange if source is not a valid index; the graph
// is left untouched in that case.
func (g *Graph) Reset(source int) error {
	if source < 0 || source >= len(g.nodes) {
		return ErrNodeOutOfRange
	}
	for i := range g.nodes {
		g.nodes[i].Arrival = Infinity
		g.nodes[i].Finalized = false
		g.nodes[i].Predecessor = NoPredecessor
	}
	g.source = source

	return nil
}

// ArrivalAt returns the earliest-arrival time computed for node i by
// the most recent search. The ok result is false when i is out of
// range or the node was never reached (its value is still Infinity).
// ArrivalAt never mutates graph state.
func (g *Graph) ArrivalAt(i int) (int64, bool) {
	if i < 0 || i >= len(g.nodes) {
		return 0, false
	}
	if g.nodes[i].Arrival == Infinity {
		return 0, false
	}

	return g.nodes[i].Arrival, true
}

// PathTo reconstructs the node sequence from the search origin to
// target by walking predecessor links backwards and reversing.
//
// The result is empty — a normal outcome, not a fault — when target
// is out of range, was never finalized by a search, or has no
// predecessor and is not itself the origin. For target == origin the
// result is the single-element path [origin].
func (g *Graph) PathTo(target int) []int {
	if target < 0 || target >= len(g.nodes) {
		return nil
	}
	if !g.nodes[target].Finalized {
		return nil
	}

	// Walk back to the origin, then reverse in place.
	path := []int{target}
	for prev := g.nodes[target].Predecessor; prev != NoPredecessor; prev = g.nodes[prev].Predecessor {
		path = append(path, prev)
	}
	if path[len(path)-1] != g.source {
		return nil
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
