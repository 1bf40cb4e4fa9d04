// SPDX-License-Identifier: MIT
// File: types.go
// Role: Edge record, Graph layout and sentinel errors.

package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for graph construction.
var (
	// ErrNegativeOrder indicates that the requested vertex count is below zero.
	ErrNegativeOrder = errors.New("core: vertex count is negative")

	// ErrInvalidEdgeEndpoint indicates that an edge references a vertex id outside [0, V).
	ErrInvalidEdgeEndpoint = errors.New("core: edge endpoint out of range")

	// ErrNegativeWeight indicates that an edge weight is below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrOrderTooLarge indicates a vertex count above MaxOrder.
	ErrOrderTooLarge = errors.New("core: vertex count too large")
)

// MaxOrder is the largest vertex count New accepts.
const MaxOrder = math.MaxInt32

// Edge is an undirected connection between two vertices.
//
// From and To are zero-based vertex ids. The pair is unordered: an Edge
// {From: u, To: v} is traversable u→v and v→u with the same Weight.
type Edge struct {
	// From is one endpoint.
	From int

	// To is the other endpoint; equal to From for a self-loop.
	To int

	// Weight is the non-negative cost of the edge.
	Weight int64
}

// IsLoop reports whether the edge connects a vertex to itself.
func (e Edge) IsLoop() bool { return e.From == e.To }

// String renders the edge as "u-v(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.From, e.To, e.Weight)
}

// Graph is an immutable adjacency store over vertices 0..V-1.
//
// Adjacency is kept in compressed sparse row form:
// the half-edges of vertex u occupy targets[offsets[u]:offsets[u+1]]
// and weights[offsets[u]:offsets[u+1]].
// Nothing mutates a Graph after New returns, so any number of goroutines
// may read it concurrently without locking.
type Graph struct {
	order int // V
	loops int // stored self-loops

	// Storage
	edges   []Edge  // input edges in insertion order
	offsets []int   // len V+1, prefix sums of degrees
	targets []int   // neighbor ids, grouped by source vertex
	weights []int64 // parallel to targets
}
