// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/primst/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g from start and returns the visit order,
// hop depths and BFS-tree parents of every vertex.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// ctx.Err() on cancellation, or the OnVisit hook's error.
// Complexity: O(V + E).
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("start=%d with V=%d: %w", start, g.Order(), ErrStartVertexNotFound)
	}

	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := range n {
		w.res.Depth[v] = Unvisited
		w.res.Parent[v] = Unvisited
	}

	w.enqueue(start, 0, Unvisited)

	return w.res, w.loop()
}

// enqueue marks v seen at depth d with the given parent.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		d := w.res.Depth[v]
		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
			continue
		}
		for u := range w.graph.Neighbors(v) {
			if w.res.Depth[u] == Unvisited {
				w.enqueue(u, d+1, v)
			}
		}
	}

	return nil
}
