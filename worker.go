package qsim

import (
	"context"
)

// Worker samples the jobs handed to it by the pool.
type Worker struct {
	pool *Pool
}

func (w *Worker) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-w.pool.jobs:
			job.result <- w.processJob(job)
		}
	}
}

func (w *Worker) processJob(job Job) Result {
	counts, err := SampleCounts(job.Probabilities, job.source(), job.Shots)
	w.pool.metrics.recordJob(job.Shots, err)

	return Result{
		JobID:  job.ID,
		Counts: counts,
		Err:    err,
	}
}
