package mst_test

import (
	"testing"

	"github.com/katalvlaran/primst/builder"
	"github.com/katalvlaran/primst/core"
	"github.com/katalvlaran/primst/frontier"
	"github.com/katalvlaran/primst/mst"
)

// benchGraph is the performance fixture: a random connected graph with
// weights in [1,100].
func benchGraph(b *testing.B, n, extra int) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.From1To100WeightFn)},
		builder.RandomConnected(n, extra),
	)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkPrim_Heap(b *testing.B) {
	g := benchGraph(b, 2000, 8000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mst.Prim(g, 0)
	}
}

func BenchmarkPrim_BTree(b *testing.B) {
	g := benchGraph(b, 2000, 8000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mst.Prim(g, 0, mst.WithFrontier(frontier.KindBTree))
	}
}

func BenchmarkKruskal(b *testing.B) {
	g := benchGraph(b, 2000, 8000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = mst.Kruskal(g)
	}
}
