package mst_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/primst/core"
)

// mustGraph builds a graph or fails the test.
func mustGraph(t testing.TB, order int, edges ...core.Edge) *core.Graph {
	t.Helper()
	g, err := core.New(order, edges)
	require.NoError(t, err)

	return g
}

// e is a short edge literal.
func e(u, v int, w int64) core.Edge { return core.Edge{From: u, To: v, Weight: w} }

// randomGraph returns a graph with n vertices and m random edges (loops and
// parallels allowed), weights in [0, maxW].
func randomGraph(t testing.TB, r *rand.Rand, n, m int, maxW int64) *core.Graph {
	t.Helper()
	edges := make([]core.Edge, 0, m)
	for i := 0; i < m; i++ {
		edges = append(edges, e(r.Intn(n), r.Intn(n), r.Int63n(maxW+1)))
	}

	return mustGraph(t, n, edges...)
}

// gonumForestWeight is an independent minimum spanning forest weight.
// simple graphs reject loops and keep one edge per pair, so the input is
// reduced to the cheapest edge of each pair first.
func gonumForestWeight(g *core.Graph) int64 {
	src := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for v := 0; v < g.Order(); v++ {
		src.AddNode(simple.Node(v))
	}
	best := make(map[[2]int]int64)
	for _, ed := range g.Edges() {
		if ed.IsLoop() {
			continue
		}
		k := [2]int{min(ed.From, ed.To), max(ed.From, ed.To)}
		if w, ok := best[k]; !ok || ed.Weight < w {
			best[k] = ed.Weight
		}
	}
	for k, w := range best {
		src.SetWeightedEdge(src.NewWeightedEdge(simple.Node(k[0]), simple.Node(k[1]), float64(w)))
	}
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))

	return int64(path.Kruskal(dst, src))
}
