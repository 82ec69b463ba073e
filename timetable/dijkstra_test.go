// Package timetable_test contains unit tests for the earliest-arrival
// search: validation, scheduled and constant-weight routing, one-shot
// departures, unreachability, and the greedy finalization invariants.
package timetable_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/aldvik/timegraph/core"
	"github.com/aldvik/timegraph/timetable"
)

// ------------------------------------------------------------------------
// 1. Validation: errors for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	if err := timetable.Dijkstra(nil); err != timetable.ErrNilGraph {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	g, _ := core.NewGraph(3, 0)
	if err := timetable.Dijkstra(g, timetable.Source(3)); !errors.Is(err, timetable.ErrSourceOutOfRange) {
		t.Fatalf("expected ErrSourceOutOfRange, got %v", err)
	}
	if err := timetable.Dijkstra(g, timetable.Source(-2)); !errors.Is(err, timetable.ErrSourceOutOfRange) {
		t.Fatalf("expected ErrSourceOutOfRange for negative index, got %v", err)
	}
}

func TestWithMaxArrival_NegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative MaxArrival")
		}
	}()
	timetable.WithMaxArrival(-1)(&timetable.Options{})
}

// ------------------------------------------------------------------------
// 2. Scheduled routing: the two-leg timetable scenario.
// ------------------------------------------------------------------------

// TestDijkstra_TwoLegTimetable follows a rider through two scheduled
// connections: 0→1 departs once at t=5 taking 2; 1→2 departs at t=10
// and every 3 after, taking 1. Arrivals: node 1 at 7, node 2 at 11
// (arrive 7, wait for the t=10 departure, ride 1).
func TestDijkstra_TwoLegTimetable(t *testing.T) {
	g, _ := core.NewGraph(3, 0)
	_ = g.AddEdge(0, 1, core.Schedule{DepartureStart: 5, Period: 0, Duration: 2})
	_ = g.AddEdge(1, 2, core.Schedule{DepartureStart: 10, Period: 3, Duration: 1})

	if err := timetable.Dijkstra(g); err != nil {
		t.Fatal(err)
	}

	if got, ok := g.ArrivalAt(0); !ok || got != 0 {
		t.Errorf("ArrivalAt(0) = (%d, %v); want (0, true)", got, ok)
	}
	if got, ok := g.ArrivalAt(1); !ok || got != 7 {
		t.Errorf("ArrivalAt(1) = (%d, %v); want (7, true)", got, ok)
	}
	if got, ok := g.ArrivalAt(2); !ok || got != 11 {
		t.Errorf("ArrivalAt(2) = (%d, %v); want (11, true)", got, ok)
	}

	// Path reconstruction follows the predecessor chain.
	path := g.PathTo(2)
	want := []int{0, 1, 2}
	if len(path) != len(want) {
		t.Fatalf("PathTo(2) = %v; want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("PathTo(2) = %v; want %v", path, want)
		}
	}
}

// TestDijkstra_MissedOneShot starts the same two-leg network from a
// source that reaches the one-shot edge too late: 0→1 departs once at
// t=5, but an extra hop 3→0 costs 6, so node 0 is reached at t=6 > 5
// and everything past the one-shot edge is unreachable.
func TestDijkstra_MissedOneShot(t *testing.T) {
	g, _ := core.NewGraph(4, 3)
	_ = g.AddWeightedEdge(3, 0, 6)
	_ = g.AddEdge(0, 1, core.Schedule{DepartureStart: 5, Period: 0, Duration: 2})
	_ = g.AddEdge(1, 2, core.Schedule{DepartureStart: 10, Period: 3, Duration: 1})

	if err := timetable.Dijkstra(g); err != nil {
		t.Fatal(err)
	}

	if got, ok := g.ArrivalAt(0); !ok || got != 6 {
		t.Errorf("ArrivalAt(0) = (%d, %v); want (6, true)", got, ok)
	}
	for _, idx := range []int{1, 2} {
		if _, ok := g.ArrivalAt(idx); ok {
			t.Errorf("ArrivalAt(%d) ok = true; want unreachable after missed departure", idx)
		}
		if path := g.PathTo(idx); len(path) != 0 {
			t.Errorf("PathTo(%d) = %v; want empty", idx, path)
		}
	}
}

// TestDijkstra_WaitingBeatsDirect checks that the search accounts for
// waiting time, not just riding time: a slow direct edge can beat a
// fast connection with a long wait.
func TestDijkstra_WaitingBeatsDirect(t *testing.T) {
	g, _ := core.NewGraph(2, 0)
	// Fast ride (1) but first departure at t=50.
	_ = g.AddEdge(0, 1, core.Schedule{DepartureStart: 50, Period: 10, Duration: 1})
	// Slow ride (20) departing immediately, every unit.
	_ = g.AddEdge(0, 1, core.Schedule{DepartureStart: 0, Period: 1, Duration: 20})

	if err := timetable.Dijkstra(g); err != nil {
		t.Fatal(err)
	}
	if got, _ := g.ArrivalAt(1); got != 20 {
		t.Errorf("ArrivalAt(1) = %d; want 20 (slow immediate edge wins)", got)
	}
}

// ------------------------------------------------------------------------
// 3. Constant-weight degenerate case: plain Dijkstra semantics.
// ------------------------------------------------------------------------

func TestDijkstra_ConstantWeights(t *testing.T) {
	// Directed diamond: 0→1(2), 0→2(1), 2→1(1), 1→3(3), 2→3(5).
	g, _ := core.NewGraph(4, 0)
	_ = g.AddWeightedEdge(0, 1, 2)
	_ = g.AddWeightedEdge(0, 2, 1)
	_ = g.AddWeightedEdge(2, 1, 1)
	_ = g.AddWeightedEdge(1, 3, 3)
	_ = g.AddWeightedEdge(2, 3, 5)

	if err := timetable.Dijkstra(g); err != nil {
		t.Fatal(err)
	}

	want := map[int]int64{0: 0, 1: 2, 2: 1, 3: 5}
	for idx, w := range want {
		if got, ok := g.ArrivalAt(idx); !ok || got != w {
			t.Errorf("ArrivalAt(%d) = (%d, %v); want (%d, true)", idx, got, ok, w)
		}
	}

	// Shortest route to 3 goes 0→1→3 (cost 5) and not 0→2→3 (cost 6);
	// 0→2→1→3 ties at 5 but 1 is settled at 2 via the direct edge first.
	path := g.PathTo(3)
	if len(path) != 3 || path[0] != 0 || path[2] != 3 {
		t.Errorf("PathTo(3) = %v; want a three-node chain from 0 to 3", path)
	}
}

// TestDijkstra_ConstantMatchesSchedule verifies the degenerate-case
// equivalence: an always-departing periodic schedule and a Constant
// edge of the same duration produce identical results.
func TestDijkstra_ConstantMatchesSchedule(t *testing.T) {
	build := func(sched core.Schedule) *core.Graph {
		g, _ := core.NewGraph(3, 0)
		_ = g.AddEdge(0, 1, sched)
		_ = g.AddEdge(1, 2, sched)
		return g
	}

	gc := build(core.Constant(4))
	gp := build(core.Schedule{DepartureStart: 0, Period: 1, Duration: 4})

	if err := timetable.Dijkstra(gc); err != nil {
		t.Fatal(err)
	}
	if err := timetable.Dijkstra(gp); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		a, _ := gc.ArrivalAt(i)
		b, _ := gp.ArrivalAt(i)
		if a != b {
			t.Errorf("node %d: constant %d vs period-1 schedule %d", i, a, b)
		}
	}
}

// ------------------------------------------------------------------------
// 4. Edge cases: single node, self-loops, disconnected components.
// ------------------------------------------------------------------------

func TestDijkstra_SingleNode(t *testing.T) {
	g, _ := core.NewGraph(1, 0)
	if err := timetable.Dijkstra(g); err != nil {
		t.Fatal(err)
	}
	if got, ok := g.ArrivalAt(0); !ok || got != 0 {
		t.Errorf("ArrivalAt(0) = (%d, %v); want (0, true)", got, ok)
	}
	if path := g.PathTo(0); len(path) != 1 || path[0] != 0 {
		t.Errorf("PathTo(0) = %v; want [0]", path)
	}
}

func TestDijkstra_SelfLoopIsHarmless(t *testing.T) {
	g, _ := core.NewGraph(2, 0)
	_ = g.AddWeightedEdge(0, 0, 1)
	_ = g.AddWeightedEdge(0, 1, 3)

	if err := timetable.Dijkstra(g); err != nil {
		t.Fatal(err)
	}
	if got, _ := g.ArrivalAt(0); got != 0 {
		t.Errorf("ArrivalAt(0) = %d; want 0 (self-loop must not inflate the source)", got)
	}
	if got, _ := g.ArrivalAt(1); got != 3 {
		t.Errorf("ArrivalAt(1) = %d; want 3", got)
	}
}

func TestDijkstra_DisconnectedComponent(t *testing.T) {
	g, _ := core.NewGraph(4, 0)
	_ = g.AddWeightedEdge(0, 1, 1)
	_ = g.AddWeightedEdge(2, 3, 1) // island

	if err := timetable.Dijkstra(g); err != nil {
		t.Fatal(err)
	}
	for _, idx := range []int{2, 3} {
		if _, ok := g.ArrivalAt(idx); ok {
			t.Errorf("ArrivalAt(%d) ok = true; want unreachable", idx)
		}
		if path := g.PathTo(idx); len(path) != 0 {
			t.Errorf("PathTo(%d) = %v; want empty", idx, path)
		}
	}
}

// TestDijkstra_MultiEdgePicksBest ensures parallel edges are relaxed
// independently and the best one wins.
func TestDijkstra_MultiEdgePicksBest(t *testing.T) {
	g, _ := core.NewGraph(2, 0)
	_ = g.AddWeightedEdge(0, 1, 9)
	_ = g.AddEdge(0, 1, core.Schedule{DepartureStart: 2, Period: 0, Duration: 1})
	_ = g.AddWeightedEdge(0, 1, 7)

	if err := timetable.Dijkstra(g); err != nil {
		t.Fatal(err)
	}
	// One-shot edge: wait until 2, ride 1 → arrival 3.
	if got, _ := g.ArrivalAt(1); got != 3 {
		t.Errorf("ArrivalAt(1) = %d; want 3", got)
	}
}

// ------------------------------------------------------------------------
// 5. MaxArrival cutoff.
// ------------------------------------------------------------------------

func TestDijkstra_MaxArrivalLimits(t *testing.T) {
	// Chain 0→1→2→3 with unit constant edges.
	g, _ := core.NewGraph(4, 0)
	for i := 0; i < 3; i++ {
		_ = g.AddWeightedEdge(i, i+1, 1)
	}

	if err := timetable.Dijkstra(g, timetable.WithMaxArrival(1)); err != nil {
		t.Fatal(err)
	}
	if got, ok := g.ArrivalAt(1); !ok || got != 1 {
		t.Errorf("ArrivalAt(1) = (%d, %v); want (1, true)", got, ok)
	}
	for _, idx := range []int{2, 3} {
		if _, ok := g.ArrivalAt(idx); ok {
			t.Errorf("ArrivalAt(%d) ok = true; want cut off beyond MaxArrival", idx)
		}
	}
}

// ------------------------------------------------------------------------
// 6. Invariants: settle order, idempotence, re-sourcing.
// ------------------------------------------------------------------------

// buildRandomNetwork assembles a reproducible scheduled graph with a
// mix of constant, periodic, and one-shot edges.
func buildRandomNetwork(t *testing.T, rng *rand.Rand, nodes, edges int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(nodes, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < edges; i++ {
		tail, head := rng.Intn(nodes), rng.Intn(nodes)
		var sched core.Schedule
		switch rng.Intn(3) {
		case 0:
			sched = core.Constant(int64(rng.Intn(20)))
		case 1:
			sched = core.Schedule{
				DepartureStart: int64(rng.Intn(30)),
				Period:         int64(1 + rng.Intn(9)),
				Duration:       int64(rng.Intn(15)),
			}
		default: // one-shot
			sched = core.Schedule{
				DepartureStart: int64(rng.Intn(40)),
				Period:         0,
				Duration:       int64(rng.Intn(15)),
			}
		}
		if err := g.AddEdge(tail, head, sched); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

// TestDijkstra_SettleOrderNonDecreasing asserts the greedy invariant
// over random networks: the sequence of finalized arrival times is
// sorted, and finalized values match what queries report afterwards.
func TestDijkstra_SettleOrderNonDecreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		g := buildRandomNetwork(t, rng, 30, 90)

		var settled []int64
		err := timetable.Dijkstra(g, timetable.WithOnSettle(func(_ int, arrival int64) {
			settled = append(settled, arrival)
		}))
		if err != nil {
			t.Fatal(err)
		}

		for i := 1; i < len(settled); i++ {
			if settled[i] < settled[i-1] {
				t.Fatalf("trial %d: settle order regressed at %d: %v", trial, i, settled)
			}
		}
	}
}

// TestDijkstra_Idempotent re-runs the search on an unmodified graph
// and expects bit-identical results.
func TestDijkstra_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := buildRandomNetwork(t, rng, 25, 80)

	if err := timetable.Dijkstra(g); err != nil {
		t.Fatal(err)
	}
	first := make([]int64, g.NodeCount())
	for i := range first {
		first[i] = g.Node(i).Arrival
	}

	if err := timetable.Dijkstra(g); err != nil {
		t.Fatal(err)
	}
	for i := range first {
		if g.Node(i).Arrival != first[i] {
			t.Errorf("node %d: arrival %d on rerun, %d on first run", i, g.Node(i).Arrival, first[i])
		}
	}
}

// TestDijkstra_SourceOption re-sources the same graph without
// rebuilding it, the multi-test-case lifecycle.
func TestDijkstra_SourceOption(t *testing.T) {
	g, _ := core.NewGraph(3, 0)
	_ = g.AddWeightedEdge(0, 1, 1)
	_ = g.AddWeightedEdge(1, 2, 1)

	if err := timetable.Dijkstra(g); err != nil {
		t.Fatal(err)
	}
	if got, _ := g.ArrivalAt(2); got != 2 {
		t.Errorf("from 0: ArrivalAt(2) = %d; want 2", got)
	}

	if err := timetable.Dijkstra(g, timetable.Source(1)); err != nil {
		t.Fatal(err)
	}
	if g.Source() != 1 {
		t.Errorf("Source() = %d; want 1 after re-sourced run", g.Source())
	}
	if got, _ := g.ArrivalAt(2); got != 1 {
		t.Errorf("from 1: ArrivalAt(2) = %d; want 1", got)
	}
	if _, ok := g.ArrivalAt(0); ok {
		t.Error("node 0 should be unreachable from source 1")
	}
}
