// Package primst computes minimum spanning trees of weighted undirected
// graphs with Prim's algorithm and reports, for every vertex, the tree
// neighbor it was attached through.
//
// What is in the box?
//
//	core/      - immutable CSR graph store over vertex ids 0..V-1
//	frontier/  - decrease-key priority frontiers: binary heap and B-tree
//	mst/       - Prim engine, Kruskal reference, Verify, PrimMany
//	edgelist/  - "V E start" + "u v w" text format, decode and encode
//	report/    - per-vertex output records with root / unreachable markers
//	config/    - YAML configuration (strict) and slog logger setup
//	metrics/   - Prometheus instrumentation of engine runs
//	builder/   - deterministic graph generators for tests and fixtures
//	cmd/primst - the command-line solver
//	cmd/primgen- fixture generator
//
// Quick ASCII example:
//
//	0──1──2      3──4
//	  10  20       30
//
// From start 0 the records are 0 NIL, 1 0, 2 1, 3 -1, 4 -1:
// vertices 3 and 4 have no path to 0 and are reported unreachable.
//
//	go get github.com/katalvlaran/primst
package primst
