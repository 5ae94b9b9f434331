// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map invokes process for every item with at most workerCount calls in flight
// and returns the results in input order. A workerCount of zero or less runs
// every item at once. Map returns only after all calls have completed; one slow
// item never cancels its siblings.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) R,
) []R {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}

	g := errgroup.Group{}
	if workerCount > 0 {
		g.SetLimit(workerCount)
	}
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			results[i] = process(ctx, item)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
