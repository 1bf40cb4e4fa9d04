// SPDX-License-Identifier: MIT
// Package: primst/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once, lexicographic by (i,j).
//   • Weight per pair: cfg.weightFn(cfg.rng).
//
// Complexity:
//   • Time: O(n²) edges emission. Space: O(1) extra.

package builder

import "fmt"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(l *EdgeList, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		base := l.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				l.addEdge(base+i, base+j, cfg.weight())
			}
		}

		return nil
	}
}
