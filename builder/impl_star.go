// SPDX-License-Identifier: MIT
// Package: primst/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first vertex of the block; leaves follow in index order.
//   - Emits spokes hub→leaf[i] in increasing leaf order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import "fmt"

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(l *EdgeList, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		hub := l.addVertices(n)
		for i := 1; i < n; i++ {
			l.addEdge(hub, hub+i, cfg.weight())
		}

		return nil
	}
}
