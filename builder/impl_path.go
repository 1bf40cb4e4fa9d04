// SPDX-License-Identifier: MIT
// Package: primst/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits i-(i+1) for i = 0..n-2 in increasing order.

package builder

import "fmt"

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(l *EdgeList, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		base := l.addVertices(n)
		for i := 0; i+1 < n; i++ {
			l.addEdge(base+i, base+i+1, cfg.weight())
		}

		return nil
	}
}
