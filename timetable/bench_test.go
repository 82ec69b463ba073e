package timetable_test

import (
	"math/rand"
	"testing"

	"github.com/aldvik/timegraph/core"
	"github.com/aldvik/timegraph/timetable"
)

// BenchmarkDijkstra_Chain measures the search on a linear chain of
// constant-weight edges: the degenerate plain-Dijkstra workload.
func BenchmarkDijkstra_Chain(b *testing.B) {
	const N = 10000
	g, err := core.NewGraph(N+1, 0)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < N; i++ {
		_ = g.AddWeightedEdge(i, i+1, 1)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := timetable.Dijkstra(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDijkstra_RandomSchedules measures the search on a dense
// random network of periodic and one-shot timetable edges.
func BenchmarkDijkstra_RandomSchedules(b *testing.B) {
	const (
		V = 2000
		E = 10000
	)
	rng := rand.New(rand.NewSource(1))
	g, err := core.NewGraph(V, 0)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < E; i++ {
		sched := core.Schedule{
			DepartureStart: int64(rng.Intn(100)),
			Period:         int64(rng.Intn(10)), // 0 makes one-shots too
			Duration:       int64(rng.Intn(30)),
		}
		_ = g.AddEdge(rng.Intn(V), rng.Intn(V), sched)
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := timetable.Dijkstra(g); err != nil {
			b.Fatal(err)
		}
	}
}
