// Package parallel implements the indexed-parallel-for primitive the
// placer suspends on: the selector itself never blocks, but a single
// try_pack call fans the per-pile-item NFP construction out through
// nfp.BuildPile and waits for all of it before merging. The local
// search over an item's sampled NFP corners runs sequentially.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Policy selects whether ForEachIndexed runs concurrently or on the
// caller's goroutine in order; the placer picks Deferred when its
// config disables parallelism, so results stay reproducible in tests
// without a concurrency dependency.
type Policy int

const (
	Async Policy = iota
	Deferred
)

// ForEachIndexed calls fn(i) for i in [0, n), returning the first
// error encountered. Under Async it starts one goroutine per index via
// errgroup and cancels the context passed to the other calls on first
// error; under Deferred it runs fn in order on the caller's
// goroutine, stopping at the first error.
func ForEachIndexed(ctx context.Context, n int, policy Policy, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return nil
	}
	if policy == Deferred {
		for i := 0; i < n; i++ {
			if err := fn(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			return fn(gctx, i)
		})
	}
	return g.Wait()
}
