// SPDX-License-Identifier: MIT
// Package: primst/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits the path 0-1-…-(n-1) followed by the closing edge (n-1)-0.

package builder

import "fmt"

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(l *EdgeList, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		base := l.addVertices(n)
		for i := 0; i+1 < n; i++ {
			l.addEdge(base+i, base+i+1, cfg.weight())
		}
		l.addEdge(base+n-1, base, cfg.weight())

		return nil
	}
}
