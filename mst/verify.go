// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"

	"github.com/katalvlaran/primst/bfs"
	"github.com/katalvlaran/primst/core"
)

// Verify checks that res is a minimum spanning tree of the component of
// graph that contains res.Start.
//
// Checks, in order:
//  1. res covers exactly graph.Order() vertices.
//  2. The start vertex, and only it, is Root.
//  3. Every attached vertex is joined to its parent by an edge of weight Keys[v],
//     and its parent chain reaches the root without a cycle.
//  4. The reached set equals the start component; every other vertex is Unreached
//     with an Infinite key.
//  5. The total weight equals ComponentWeight (Kruskal reference).
//
// Errors: ErrNilGraph, ErrBrokenTree (checks 1-4), ErrWeightMismatch (check 5).
// Complexity: O((V + E) log V).
func Verify(graph *core.Graph, res *Result) error {
	if graph == nil {
		return ErrNilGraph
	}
	if res == nil {
		return fmt.Errorf("Verify: nil result: %w", ErrBrokenTree)
	}
	n := graph.Order()

	// 1. Shape.
	if res.Order() != n || len(res.Keys) != n {
		return fmt.Errorf("Verify: result covers %d/%d vertices, graph has %d: %w",
			len(res.Parents), len(res.Keys), n, ErrBrokenTree)
	}
	if n == 0 {
		return nil
	}
	if res.Start < 0 || res.Start >= n {
		return fmt.Errorf("Verify: start=%d with V=%d: %w", res.Start, n, ErrBrokenTree)
	}

	// 2. Root marker.
	for v, p := range res.Parents {
		if p.IsRoot() != (v == res.Start) {
			return fmt.Errorf("Verify: vertex %d root=%t, start=%d: %w", v, p.IsRoot(), res.Start, ErrBrokenTree)
		}
	}

	// 3. Tree edges exist and chains terminate at the root.
	for v, p := range res.Parents {
		u, ok := p.Vertex()
		if !ok {
			continue
		}
		w, finite := res.Keys[v].Weight()
		if !finite || !hasEdge(graph, u, v, w) {
			return fmt.Errorf("Verify: no edge %d-%d with weight %s: %w", u, v, res.Keys[v], ErrBrokenTree)
		}
	}
	if err := checkChains(res); err != nil {
		return err
	}

	// 4. Reached set equals the start component.
	comp, err := bfs.BFS(graph, res.Start)
	if err != nil {
		return fmt.Errorf("Verify: %w", err)
	}
	for v, p := range res.Parents {
		inComponent := comp.Reached(v)
		if inComponent == p.IsUnreached() {
			return fmt.Errorf("Verify: vertex %d reachable=%t but parent=%s: %w", v, inComponent, p, ErrBrokenTree)
		}
		if p.IsUnreached() && !res.Keys[v].IsInfinite() {
			return fmt.Errorf("Verify: unreached vertex %d has key %s: %w", v, res.Keys[v], ErrBrokenTree)
		}
	}

	// 5. Optimality against the reference.
	want, err := ComponentWeight(graph, res.Start)
	if err != nil {
		return err
	}
	if got := res.TotalWeight(); got != want {
		return fmt.Errorf("Verify: prim=%d kruskal=%d: %w", got, want, ErrWeightMismatch)
	}

	return nil
}

// hasEdge reports whether an edge u-v of weight w exists.
func hasEdge(graph *core.Graph, u, v int, w int64) bool {
	for x, xw := range graph.Neighbors(v) {
		if x == u && xw == w {
			return true
		}
	}

	return false
}

// checkChains walks parent pointers from every attached vertex. Each vertex is
// resolved once: state 1 marks "on the current walk", 2 marks "reaches root".
func checkChains(res *Result) error {
	state := make([]uint8, res.Order())
	state[res.Start] = 2
	path := make([]int, 0, 16)
	for v := range res.Parents {
		if state[v] != 0 || res.Parents[v].IsUnreached() {
			continue
		}
		path = path[:0]
		x := v
		for state[x] == 0 {
			state[x] = 1
			path = append(path, x)
			u, ok := res.Parents[x].Vertex()
			if !ok {
				return fmt.Errorf("Verify: chain from %d stops at non-root %d: %w", v, x, ErrBrokenTree)
			}
			x = u
		}
		if state[x] == 1 {
			return fmt.Errorf("Verify: cycle through vertex %d: %w", x, ErrBrokenTree)
		}
		for _, y := range path {
			state[y] = 2
		}
	}

	return nil
}
