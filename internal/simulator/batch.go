package simulator

import (
	"context"
	"fmt"

	"SignalBench/internal/model"

	"golang.org/x/sync/errgroup"
)

// Job is one independent (series, params) pair for batch simulation.
type Job struct {
	Series *model.AlignedSeries
	Params model.ExecutionParameters
}

// RunBatch simulates independent jobs concurrently with bounded parallelism.
// Each result is owned exclusively by its slot in the returned slice, so no
// synchronization beyond the group is needed. The first failing job cancels
// the rest.
func RunBatch(ctx context.Context, jobs []Job, maxConcurrent int) ([]*model.BacktestResult, error) {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	results := make([]*model.BacktestResult, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			engine, err := New(job.Params)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			result, err := engine.Run(job.Series)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
