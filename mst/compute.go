// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"

	"github.com/katalvlaran/primst/core"
)

// Compute selects and runs an MST algorithm by name and returns tree edges
// and total weight.
//
//	– MethodPrim:    edges of the start component's tree, in increasing child id order.
//	– MethodKruskal: edges of the minimum spanning forest over all components; start is ignored.
//	– Otherwise:     ErrUnknownMethod.
//
// Note: optional scaffolding; Prim and Kruskal can be called directly.
func Compute(graph *core.Graph, method string, start int, opts ...Option) ([]core.Edge, int64, error) {
	switch method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		res, err := Prim(graph, start, opts...)
		if err != nil {
			return nil, 0, err
		}
		return res.TreeEdges(), res.TotalWeight(), nil
	default:
		return nil, 0, fmt.Errorf("method %q: %w", method, ErrUnknownMethod)
	}
}
