// SPDX-License-Identifier: MIT

package builder

import "fmt"

// Isolated returns a Constructor that adds n vertices with no edges.
// Combined with other constructors it yields unreachable components.
func Isolated(n int) Constructor {
	return func(l *EdgeList, _ builderConfig) error {
		if n < MinIsolatedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodIsolated, n, MinIsolatedNodes, ErrTooFewVertices)
		}
		l.addVertices(n)

		return nil
	}
}
