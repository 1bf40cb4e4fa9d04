// SPDX-License-Identifier: MIT

package mst

import (
	"context"
	"fmt"

	"github.com/katalvlaran/primst/core"
	"golang.org/x/sync/errgroup"
)

// PrimMany runs Prim independently from every vertex in starts over one shared,
// read-only graph. At most workers runs execute at once (workers <= 0 means no
// limit). Results are returned in the order of starts.
//
// The first failing run cancels ctx for the runs that have not started yet and
// its error is returned. A run never observes another run's state.
func PrimMany(ctx context.Context, graph *core.Graph, starts []int, workers int, opts ...Option) ([]*Result, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}

	grp, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		grp.SetLimit(workers)
	}

	results := make([]*Result, len(starts))
	for i, s := range starts {
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Prim(graph, s, opts...)
			if err != nil {
				return fmt.Errorf("PrimMany: start %d: %w", s, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
