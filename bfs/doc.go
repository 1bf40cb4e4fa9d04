// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances, parent links and visit order.
//
// The mst package uses it to check that a spanning tree covers exactly the
// component of its start vertex; it is equally usable on its own.
//
// Determinism
//
//	core.Graph.Neighbors yields half-edges in edge insertion order and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
