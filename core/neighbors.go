// SPDX-License-Identifier: MIT
// File: neighbors.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Neighbors(v) yields half-edges in insertion order of the incident edges.
//   - Each regular incident edge appears once; a self-loop appears once.

package core

import "iter"

// Neighbors returns the lazy sequence of (neighbor, weight) pairs incident to v.
//
// Behavior highlights:
//   - Allocation-free: the sequence walks the CSR slice of v directly.
//   - An unknown id yields an empty sequence rather than an error; callers that
//     must distinguish use HasVertex.
//   - Parallel edges are yielded once each, so the caller sees every weight.
//   - The sequence stops early when the consumer breaks out of the range loop.
//
// Complexity:
//   - Time O(deg(v)) for a full walk, Space O(1).
//
// Example:
//
//	for u, w := range g.Neighbors(v) {
//		_ = u // neighbor id
//		_ = w // edge weight
//	}
func (g *Graph) Neighbors(v int) iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		if !g.HasVertex(v) {
			return
		}
		for i := g.offsets[v]; i < g.offsets[v+1]; i++ {
			if !yield(g.targets[i], g.weights[i]) {
				return
			}
		}
	}
}

// NeighborIDs returns the neighbor ids of v in adjacency order.
// Duplicates are kept when parallel edges exist.
// Complexity: O(deg(v)).
func (g *Graph) NeighborIDs(v int) []int {
	if !g.HasVertex(v) {
		return nil
	}
	out := make([]int, g.Degree(v))
	copy(out, g.targets[g.offsets[v]:g.offsets[v+1]])

	return out
}
