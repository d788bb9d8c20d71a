// Package batch runs a fixed set of writes with bounded concurrency and
// reports once every write has finished or the first one has failed.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Run calls fn for every index in [0, n) with at most limit calls in flight.
// It returns after all calls have returned. The first error cancels the
// context passed to the remaining calls and is the error returned.
func Run(ctx context.Context, limit, n int, fn func(ctx context.Context, i int) error) error {
	if n == 0 {
		return nil
	}
	if limit < 1 {
		limit = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i)
		})
	}
	return g.Wait()
}

// Chunks splits n items into consecutive [start, end) ranges of at most size items.
func Chunks(n, size int) [][2]int {
	if size < 1 {
		size = 1
	}
	var out [][2]int
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		out = append(out, [2]int{start, end})
	}
	return out
}
