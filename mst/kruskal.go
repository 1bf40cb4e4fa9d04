// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/primst/core"
)

// Kruskal computes a minimum spanning forest of graph: one minimum spanning
// tree per connected component.
//
// Error Conditions:
//   - ErrNilGraph : if graph is nil.
//
// Steps:
//  1. Collect all edges, skipping self-loops.
//  2. Stable sort by ascending weight (ties keep insertion order).
//  3. Walk the sorted edges; add an edge when its endpoints are in different
//     sets, then merge the sets.
//  4. Stop early once V-1 edges are chosen.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	if graph == nil {
		return nil, 0, ErrNilGraph
	}
	forest, _ := kruskalForest(graph)

	var total int64
	for _, e := range forest {
		total += e.Weight
	}

	return forest, total, nil
}

// ComponentWeight returns the minimum spanning tree weight of the component
// containing root.
//
// Error Conditions:
//   - ErrNilGraph        : if graph is nil.
//   - ErrStartOutOfRange : if root is not a vertex of graph.
func ComponentWeight(graph *core.Graph, root int) (int64, error) {
	if graph == nil {
		return 0, ErrNilGraph
	}
	if !graph.HasVertex(root) {
		return 0, fmt.Errorf("ComponentWeight: root=%d with V=%d: %w", root, graph.Order(), ErrStartOutOfRange)
	}
	forest, ds := kruskalForest(graph)

	target := ds.find(root)
	var total int64
	for _, e := range forest {
		if ds.find(e.From) == target {
			total += e.Weight
		}
	}

	return total, nil
}

// kruskalForest returns the forest edges and the final union-find state.
func kruskalForest(graph *core.Graph) ([]core.Edge, *disjointSet) {
	n := graph.Order()
	ds := newDisjointSet(n)

	// 1. Collect non-loop edges.
	all := graph.Edges()
	edges := all[:0]
	for _, e := range all {
		if e.IsLoop() {
			continue
		}
		edges = append(edges, e)
	}

	// 2. Deterministic order for equal weights.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3-4. Greedy union.
	forest := make([]core.Edge, 0, max(n-1, 0))
	for _, e := range edges {
		if len(forest) == n-1 {
			break
		}
		if ds.union(e.From, e.To) {
			forest = append(forest, e)
		}
	}

	return forest, ds
}
