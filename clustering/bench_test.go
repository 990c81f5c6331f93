package clustering_test

import (
	"math/rand"
	"testing"

	"github.com/GunterMueller/KaDraw/clustering"
	"github.com/GunterMueller/KaDraw/core"
	"github.com/GunterMueller/KaDraw/ordering"
)

// BenchmarkLabelPropagation_Ring measures a full run on a ring with chords:
// every vertex has degree 4, so sweeps are cache-friendly and uniform.
func BenchmarkLabelPropagation_Ring(b *testing.B) {
	const V = 10000
	g, _ := core.NewGraph(V)
	for v := 0; v < V; v++ {
		_ = g.AddUndirectedEdge(v, (v+1)%V, 1)
		_ = g.AddUndirectedEdge(v, (v+13)%V, 1)
	}
	E := g.NumberOfEdges()

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = clustering.LabelPropagation(g,
			clustering.WithUpperBound(64),
			clustering.WithIterations(5))
	}
}

// BenchmarkLabelPropagation_RandomSparse measures a run on a sparse random
// graph built once outside the timed loop.
func BenchmarkLabelPropagation_RandomSparse(b *testing.B) {
	const V = 5000
	const E = 20000

	rnd := rand.New(rand.NewSource(42))
	g, _ := core.NewGraph(V)
	for k := 0; k < E; k++ {
		u, v := rnd.Intn(V), rnd.Intn(V)
		if u == v {
			continue
		}
		_ = g.AddUndirectedEdge(u, v, int64(1+rnd.Intn(4)))
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + g.NumberOfEdges()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = clustering.LabelPropagation(g,
			clustering.WithUpperBound(32),
			clustering.WithIterations(3),
			clustering.WithSeed(7))
	}
}

// BenchmarkMatch_IdentityOrder isolates the deterministic path: identity
// visiting order, no shuffle cost in the measurement.
func BenchmarkMatch_IdentityOrder(b *testing.B) {
	const V = 10000
	g, _ := core.NewGraph(V)
	for v := 1; v < V; v++ {
		_ = g.AddUndirectedEdge(v-1, v, 1)
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + g.NumberOfEdges()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = clustering.Match(g,
			clustering.WithUpperBound(16),
			clustering.WithIterations(2),
			clustering.WithOrderingStrategy(ordering.Identity))
	}
}
