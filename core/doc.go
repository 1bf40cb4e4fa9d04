// Package core provides the immutable, index-based Graph store used by the
// MST engine.
//
// A Graph G = (V,E) is built once from a vertex count and an edge list:
//
//   - Vertices are the integers 0..V-1; they carry no payload.
//   - Edges are undirected (u, v, w) triples with w >= 0.
//   - Parallel edges are kept, each with its own weight.
//   - Self-loops are kept (and counted by Loops) but never shrink a key in Prim.
//   - Adjacency lives in compressed sparse row form, so Neighbors(v) walks a
//     contiguous slice in O(deg(v)) without allocating.
//
// Why an immutable store?
//
//   - One build, many readers: a *Graph can be shared by concurrent engine runs
//     with no locking at all.
//   - Deterministic iteration: adjacency order equals edge insertion order, so
//     algorithm output is reproducible run to run.
//
// Core Methods:
//
//	New(order int, edges []Edge) (*Graph, error) // O(V+E)
//	Order() int                                   // O(1)
//	Size() int                                    // O(1)
//	HasVertex(v int) bool                         // O(1)
//	Degree(v int) int                             // O(1)
//	Neighbors(v int) iter.Seq2[int, int64]        // O(deg(v))
//	NeighborIDs(v int) []int                      // O(deg(v))
//	Edges() []Edge                                // O(E)
//
// Errors:
//
//	ErrNegativeOrder, ErrOrderTooLarge, ErrInvalidEdgeEndpoint, ErrNegativeWeight.
//	New wraps them with the offending edge index; branch with errors.Is.
package core
