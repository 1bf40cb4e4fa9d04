// SPDX-License-Identifier: MIT
// Package: primst/builder
//
// impl_random_connected.go - implementation of RandomConnected(n, extra).
//
// Model (performance fixture):
//   - Spanning part: every vertex i ≥ 1 is joined to a uniformly chosen j < i,
//     so the result is always connected.
//   - Extra part: up to `extra` further distinct pairs, sampled uniformly from
//     the pairs not yet used. The count is capped at the number of free pairs.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); extra ≥ 0 (else ErrConstructFailed).
//   - cfg.rng must be non-nil when n ≥ 2 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) worst case for the free-pair pool; Space: O(n²) for that pool.

package builder

import "fmt"

// RandomConnected returns a Constructor for a random connected graph with
// n-1 tree edges plus up to extra additional edges.
func RandomConnected(n, extra int) Constructor {
	return func(l *EdgeList, cfg builderConfig) error {
		if n < MinRandomConnectedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomConnected, n, MinRandomConnectedNodes, ErrTooFewVertices)
		}
		if extra < 0 {
			return fmt.Errorf("%s: extra=%d < 0: %w", MethodRandomConnected, extra, ErrConstructFailed)
		}
		base := l.addVertices(n)
		if n == 1 {
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomConnected, ErrNeedRandSource)
		}

		// 1) Random spanning tree; remember used pairs.
		used := make(map[[2]int]struct{}, n-1+extra)
		for i := 1; i < n; i++ {
			j := cfg.rng.Intn(i)
			used[[2]int{j, i}] = struct{}{}
			l.addEdge(base+j, base+i, cfg.weight())
		}
		if extra == 0 {
			return nil
		}

		// 2) Pool of free pairs in stable (i, j) order, then a partial shuffle.
		free := make([][2]int, 0, n*(n-1)/2-(n-1))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, ok := used[[2]int{i, j}]; !ok {
					free = append(free, [2]int{i, j})
				}
			}
		}
		k := min(extra, len(free))
		for x := 0; x < k; x++ {
			y := x + cfg.rng.Intn(len(free)-x)
			free[x], free[y] = free[y], free[x]
			l.addEdge(base+free[x][0], base+free[x][1], cfg.weight())
		}

		return nil
	}
}
