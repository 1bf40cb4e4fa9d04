// Package mst computes minimum spanning trees over an immutable *core.Graph.
//
// What & Why
//
//   - Prim grows a single tree from a caller-chosen start vertex. Every vertex
//     gets a tagged Parent (Root, AttachedTo(u) or Unreached) and a frontier.Key
//     (the weight of the edge that attached it, or Infinite).
//   - Disconnected input is normal: vertices outside the start component stay
//     Unreached with an Infinite key and never receive a parent id.
//   - Kruskal builds the minimum spanning forest with a union-find and serves as
//     the reference that Verify checks Prim against.
//
// Algorithms Provided
//
//	Prim(g, start, opts...) (*Result, error)            O((V+E) log V)
//	Kruskal(g) ([]core.Edge, int64, error)              O(E log E)
//	ComponentWeight(g, root) (int64, error)             O(E log E)
//	Verify(g, res) error                                O((V+E) log V)
//	PrimMany(ctx, g, starts, workers, opts...)          independent runs, errgroup-bounded
//	Compute(g, method, start, opts...)                  dispatch by MethodPrim / MethodKruskal
//
// # Determinism
//
// The frontier orders vertices by (key, vertex id), so among equal keys the
// lowest id is extracted first. For a fixed graph, start vertex and frontier
// kind the Result is identical across runs; heap and btree frontiers agree.
//
// Options
//
//	WithFrontier(frontier.KindHeap | frontier.KindBTree)
//	WithLogger(*slog.Logger)  debug record per run, tagged with a run_id
//	WithObserver(Observer)    receives Stats after each run (see package metrics)
//
// # Concurrency
//
// A run owns its keys, parents and frontier; the graph is only read. Any number
// of runs may share one *core.Graph.
//
// Error Conditions
//
//	ErrNilGraph        graph is nil.
//	ErrStartOutOfRange start is not in [0, V) for V > 0.
//	ErrUnknownMethod   Compute got an unsupported method name.
//	ErrBrokenTree      Verify found a malformed parent structure.
//	ErrWeightMismatch  Verify found a non-minimal total weight.
package mst
