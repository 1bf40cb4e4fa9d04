// Package builder generates deterministic edge lists for well-known
// topologies, used as fixtures for tests, benchmarks and the primgen tool.
//
// Constructors
//
//	Complete(n)              - K_n, every pair once.
//	Star(n)                  - hub + n-1 leaves; the hub is the first id of the block.
//	Path(n), Cycle(n)        - P_n and C_n.
//	Isolated(n)              - n vertices, no edges.
//	RandomSparse(n, p)       - G(n, p), requires an RNG for 0<p<1.
//	RandomConnected(n, extra)- random spanning tree + extra distinct pairs.
//
// Constructors compose: Build(opts, Path(3), Isolated(2)) lays the blocks
// side by side (ids 0..2, then 3..4), producing a disconnected graph.
//
// Options
//
//	WithSeed(seed) / WithRand(r) - RNG for stochastic constructors and weights.
//	WithWeightFn(fn)             - per-edge weights; default constant 1.
//
// Determinism: for equal constructors, options and seed, Build returns an
// identical EdgeList.
package builder
