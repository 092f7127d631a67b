// Package pipeline fans a batch of mapper descriptors out across a bounded
// worker pool (spec.md §5's "cooperative scheduler... bounded worker pool").
// Each mapper's resolution is an independent unit of work in principle, but
// plan.Resolver memoizes resolved plans by mapper name (so MapperDelegated
// nested mappings can find a sibling's plan) and is not safe for concurrent
// callers, so the resolve step itself is serialized behind resolveMu; the
// worker pool still bounds and parallelizes everything around it (context
// cancellation, and the rendering/writing stages a caller chains after
// Run). Results are written back by descriptor index so output order stays
// deterministic regardless of goroutine scheduling, the same discipline the
// teacher's internal/gen/toposort.go applies to its own ordering.
package pipeline

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sr9000dev/ddbmapper/internal/directive"
	"github.com/sr9000dev/ddbmapper/internal/plan"
	"github.com/sr9000dev/ddbmapper/internal/scan"
)

// DefaultConcurrency bounds the worker pool when the caller passes <= 0.
const DefaultConcurrency = 8

// Run resolves every descriptor across a pool of at most concurrency
// goroutines and returns the plans in descriptor order. A single
// descriptor's resolution never returns a Go error (plan resolution reports
// failures as diagnostics on the returned *MapperPlan, per spec.md §4.8's
// "Failure semantics" — one bad mapper does not abort the batch); the only
// error Run itself can return is ctx's cancellation.
func Run(ctx context.Context, scanner *scan.Scanner, descriptors []directive.MapperDescriptor, concurrency int) ([]*plan.MapperPlan, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	plans := make([]*plan.MapperPlan, len(descriptors))
	resolver := plan.NewResolver(scanner, descriptors)

	var resolveMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, desc := range descriptors {
		i, desc := i, desc

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			resolveMu.Lock()
			p := resolver.Resolve(desc)
			resolveMu.Unlock()

			plans[i] = p

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return plans, nil
}
