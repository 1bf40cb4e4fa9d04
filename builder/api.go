// SPDX-License-Identifier: MIT
// Package: primst/builder
//
// api.go - public entry points: Constructor, EdgeList, Build, BuildGraph.
//
// Contract:
//   • Constructors are applied in order; each one appends its own fresh
//     vertices, so Build(a, b) is the disjoint union of a and b.
//   • Build never panics at runtime; nil constructors yield ErrConstructFailed.
//   • Output is deterministic for equal inputs and equal seeds.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primst/core"
)

// EdgeList is the staging area constructors append to: a vertex count and an
// undirected edge list over ids [0, Order).
type EdgeList struct {
	Order int
	Edges []core.Edge
}

// addVertices reserves n fresh vertex ids and returns the first one.
func (l *EdgeList) addVertices(n int) int {
	base := l.Order
	l.Order += n

	return base
}

// addEdge appends the undirected edge u-v with weight w.
func (l *EdgeList) addEdge(u, v int, w int64) {
	l.Edges = append(l.Edges, core.Edge{From: u, To: v, Weight: w})
}

// Graph builds the immutable core.Graph for the staged list.
func (l *EdgeList) Graph() (*core.Graph, error) {
	return core.New(l.Order, l.Edges)
}

// Constructor appends one topology to an EdgeList using the resolved config.
type Constructor func(l *EdgeList, cfg builderConfig) error

// Build applies constructors in order to an empty EdgeList.
// Complexity: sum of the constructors' costs.
func Build(bopts []BuilderOption, cons ...Constructor) (*EdgeList, error) {
	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(bopts...)
	l := &EdgeList{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(l, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return l, nil
}

// BuildGraph is Build followed by core.New.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	l, err := Build(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := l.Graph()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
