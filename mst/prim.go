// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/primst/core"
	"github.com/katalvlaran/primst/frontier"
)

// Prim computes the minimum spanning tree of the component containing start
// and reports it as parent pointers and attaching keys for every vertex.
//
// Error Conditions:
//   - ErrNilGraph         : if graph is nil.
//   - ErrStartOutOfRange  : if V > 0 and start is not in [0, V).
//   - frontier.ErrUnknownKind : if the configured frontier kind is unsupported.
//   - frontier errors     : wrapped; any of them here is an engine bug.
//
// Disconnected graphs are not an error: vertices outside the start component
// end with Parents[v] = Unreached() and Keys[v] = Infinite().
//
// Steps:
//  1. Validate graph and start. V == 0 returns an empty Result (start ignored).
//  2. Initialize keys (start = 0, others Infinite), parents (start = Root, others Unreached).
//  3. Load every vertex into the frontier with its initial key.
//  4. While the frontier is not empty:
//     a. u = ExtractMin().
//     b. If u is visited, skip it.
//     c. Mark u visited. If its key is Infinite, u is unreachable: finalize it
//     without relaxing, so unreachable components never receive parents.
//     d. For each (v, w) incident to u with v unvisited and w < key[v]:
//     key[v] = w, parent[v] = u, DecreaseKey(v, w).
//  5. Report Stats to the Observer and return the Result.
//
// Complexity: O((V + E) log V) time, O(V) extra memory besides the graph.
func Prim(graph *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate inputs.
	if graph == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	kind, err := frontier.ParseKind(string(o.Frontier))
	if err != nil {
		return nil, fmt.Errorf("Prim: %w", err)
	}
	o.Frontier = kind

	n := graph.Order()
	r := &runner{
		g:       graph,
		start:   start,
		opts:    o,
		began:   time.Now(),
		keys:    make([]frontier.Key, n),
		parents: make([]Parent, n),
		visited: make([]bool, n),
	}
	if n == 0 {
		return r.finish(), nil
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("Prim: start=%d with V=%d: %w", start, n, ErrStartOutOfRange)
	}

	// 2-3. Initialize state and the frontier.
	if err := r.init(); err != nil {
		return nil, err
	}

	// 4. Grow the tree.
	if err := r.process(); err != nil {
		return nil, err
	}

	// 5. Publish.
	return r.finish(), nil
}

// runner holds the state of a single Prim invocation. Nothing in it is shared
// across runs, so concurrent runs over one graph are independent.
type runner struct {
	g     *core.Graph
	start int
	opts  Options
	began time.Time

	keys    []frontier.Key
	parents []Parent
	visited []bool
	pq      frontier.Frontier

	reached     int
	unreached   int
	extractions int
	relaxations int
}

// init sets initial keys and parents and loads every vertex into the frontier.
func (r *runner) init() error {
	// Keys default to Infinite and parents to Unreached (zero values).
	r.keys[r.start] = frontier.Finite(0)
	r.parents[r.start] = Root()

	pq, err := frontier.New(r.opts.Frontier, len(r.keys))
	if err != nil {
		return fmt.Errorf("Prim: %w", err)
	}
	r.pq = pq

	// The heap can take the whole key set in one O(V) heapify.
	if h, ok := pq.(*frontier.Heap); ok {
		if err := h.Load(r.keys); err != nil {
			return fmt.Errorf("Prim: load frontier: %w", err)
		}
		return nil
	}
	for v, k := range r.keys {
		if err := pq.Insert(v, k); err != nil {
			return fmt.Errorf("Prim: insert vertex %d: %w", v, err)
		}
	}

	return nil
}

// process drains the frontier, finalizing one vertex per extraction.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		// a) Cheapest vertex across the tree boundary.
		u, k, err := r.pq.ExtractMin()
		if err != nil {
			return fmt.Errorf("Prim: %w", err)
		}
		r.extractions++

		// b) Stale entry guard; harmless with a strict decrease-key frontier.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		// c) Infinite key: no edge reaches u from the tree.
		if k.IsInfinite() {
			r.unreached++
			continue
		}
		r.reached++

		// d) Relax edges leaving u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax lowers the key of every unvisited neighbor reachable more cheaply through u.
// Self-loops are skipped by the visited check because u is already finalized.
func (r *runner) relax(u int) error {
	for v, w := range r.g.Neighbors(u) {
		if r.visited[v] {
			continue
		}
		nk := frontier.Finite(w)
		if !nk.Less(r.keys[v]) {
			continue
		}
		r.keys[v] = nk
		r.parents[v] = AttachedTo(u)
		if err := r.pq.DecreaseKey(v, nk); err != nil {
			return fmt.Errorf("Prim: relax %d-%d: %w", u, v, err)
		}
		r.relaxations++
	}

	return nil
}

// finish builds the Result and reports Stats.
func (r *runner) finish() *Result {
	res := &Result{
		Start:   r.start,
		Parents: r.parents,
		Keys:    r.keys,
	}

	st := Stats{
		RunID:       uuid.New(),
		Frontier:    r.opts.Frontier,
		Vertices:    r.g.Order(),
		Edges:       r.g.Size(),
		Reached:     r.reached,
		Unreached:   r.unreached,
		Extractions: r.extractions,
		Relaxations: r.relaxations,
		TotalWeight: res.TotalWeight(),
		Elapsed:     time.Since(r.began),
	}
	r.opts.Logger.Debug("prim run finished",
		"run_id", st.RunID.String(),
		"frontier", string(st.Frontier),
		"vertices", st.Vertices,
		"edges", st.Edges,
		"start", r.start,
		"reached", st.Reached,
		"unreached", st.Unreached,
		"relaxations", st.Relaxations,
		"total_weight", st.TotalWeight,
		"elapsed", st.Elapsed,
	)
	if r.opts.Observer != nil {
		r.opts.Observer.ObserveRun(st)
	}

	return res
}
