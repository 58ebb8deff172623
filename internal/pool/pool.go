// Package pool runs the per-neighbor Dijkstra tasks of one placement step
// (spec §4.F step 2, §5) across a bounded worker pool. The only concurrent
// region in the whole engine is this one: the outer scheduler is single-
// threaded, and within a single placement call the independent
// neighbor-distance computations are dispatched here and joined before the
// placement heuristic moves on to scoring (spec §5).
package pool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pool bounds concurrent task execution to a fixed number of goroutines.
type Pool struct {
	threads int
}

// New returns a Pool with the given worker budget. threads < 1 is clamped
// to 1, matching the option validation in spec §6 ("threads >= 1").
func New(threads int) *Pool {
	if threads < 1 {
		threads = 1
	}
	return &Pool{threads: threads}
}

// Run executes every task in tasks, bounded to p.threads concurrent
// goroutines, and returns the first error encountered (if any). With
// threads==1, tasks run sequentially in-order on the calling goroutine with
// no goroutine spawned at all, which is what makes the single-threaded path
// fully deterministic (spec §5): there is no task-completion-order jitter
// to begin with.
//
// Complexity: O(len(tasks)) task dispatch overhead; wall-clock determined
// by the slowest task per "wave" of p.threads concurrent slots.
func (p *Pool) Run(ctx context.Context, tasks []func() error) error {
	if len(tasks) == 0 {
		return nil
	}
	if p.threads == 1 {
		for _, task := range tasks {
			if err := task(); err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.threads)
	for _, task := range tasks {
		task := task
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return task()
		})
	}
	return g.Wait()
}
