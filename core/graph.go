// SPDX-License-Identifier: MIT
// File: graph.go
// Role: Graph construction (New) and read-only queries.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Adjacency of each vertex follows insertion order of the incident edges.
// Concurrency:
//   - No locks: the Graph is never mutated after New returns.

package core

import "fmt"

// New builds an immutable Graph with order vertices (ids 0..order-1) from edges.
//
// Implementation:
//   - Stage 1: Validate 0 <= order <= MaxOrder (ErrNegativeOrder, ErrOrderTooLarge).
//   - Stage 2: Validate every edge: endpoints in [0, order) (ErrInvalidEdgeEndpoint),
//     weight >= 0 (ErrNegativeWeight). Nothing is allocated for adjacency on failure.
//   - Stage 3: Count degrees. A regular edge contributes one half-edge to each endpoint;
//     a self-loop contributes a single half-edge to its vertex.
//   - Stage 4: Prefix-sum degrees into offsets.
//   - Stage 5: Scatter half-edges into targets/weights in insertion order.
//
// Behavior highlights:
//   - order == 0 and/or len(edges) == 0 yields a valid empty structure.
//   - Parallel edges are all kept; self-loops are kept and reported by Loops().
//   - The input slice is copied; later changes by the caller do not leak in.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func New(order int, edges []Edge) (*Graph, error) {
	// Stage 1: vertex count domain.
	if order < 0 {
		return nil, fmt.Errorf("order=%d: %w", order, ErrNegativeOrder)
	}
	if order > MaxOrder {
		return nil, fmt.Errorf("order=%d > %d: %w", order, MaxOrder, ErrOrderTooLarge)
	}

	// Stage 2: edge validation before any adjacency work.
	for i, e := range edges {
		if e.From < 0 || e.From >= order || e.To < 0 || e.To >= order {
			return nil, fmt.Errorf("edge #%d (%d,%d) with V=%d: %w", i, e.From, e.To, order, ErrInvalidEdgeEndpoint)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("edge #%d (%d,%d) weight=%d: %w", i, e.From, e.To, e.Weight, ErrNegativeWeight)
		}
	}

	g := &Graph{
		order:   order,
		edges:   append([]Edge(nil), edges...),
		offsets: make([]int, order+1),
	}

	// Stage 3: degree counting, shifted by one so the prefix sum lands in place.
	for _, e := range edges {
		g.offsets[e.From+1]++
		if e.IsLoop() {
			g.loops++
			continue
		}
		g.offsets[e.To+1]++
	}

	// Stage 4: prefix sums.
	for v := 1; v <= order; v++ {
		g.offsets[v] += g.offsets[v-1]
	}

	// Stage 5: scatter half-edges; next[v] is the write cursor of vertex v.
	half := g.offsets[order]
	g.targets = make([]int, half)
	g.weights = make([]int64, half)
	next := make([]int, order)
	copy(next, g.offsets[:order])
	for _, e := range edges {
		g.targets[next[e.From]] = e.To
		g.weights[next[e.From]] = e.Weight
		next[e.From]++
		if e.IsLoop() {
			continue
		}
		g.targets[next[e.To]] = e.From
		g.weights[next[e.To]] = e.Weight
		next[e.To]++
	}

	return g, nil
}

// Order returns the number of vertices V.
func (g *Graph) Order() int { return g.order }

// Size returns the number of edges E as supplied to New (loops and parallels included).
func (g *Graph) Size() int { return len(g.edges) }

// Loops returns the number of stored self-loops.
func (g *Graph) Loops() int { return g.loops }

// HasVertex reports whether v is a valid vertex id, i.e. 0 <= v < V.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.order }

// Degree returns the number of half-edges stored for v; 0 for an unknown id.
// A self-loop counts once.
func (g *Graph) Degree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}

	return g.offsets[v+1] - g.offsets[v]
}

// Edges returns a copy of the edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
