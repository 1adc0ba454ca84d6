package qsim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/theapemachine/errnie"
)

/*
Pool spreads the shots of a batch run over a fixed set of workers. Runs are
independent: the only thing shared by the jobs of a run is the read-only
probability map of the circuit being sampled.
*/
type Pool struct {
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	jobs    chan Job
	workers int
	metrics *Metrics
}

// NewPool starts workers goroutines that live until ctx ends or Close is called.
func NewPool(ctx context.Context, workers int, metrics *Metrics) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	p := &Pool{
		ctx:     ctx,
		cancel:  cancel,
		jobs:    make(chan Job, workers),
		workers: workers,
		metrics: metrics,
	}

	for i := 0; i < workers; i++ {
		worker := &Worker{pool: p}
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			worker.run(ctx)
		}()
	}

	errnie.Info("NewPool - workers %d", workers)
	return p
}

/*
Run simulates circuit once and samples it shots times across the workers.
With measured qubits listed, only those are read and labels carry one
character per listed qubit, as with Marginal. Every job draws from its own stream derived from seed, and merging counts is
order independent, so the same seed always yields the same counts.
*/
func (p *Pool) Run(ctx context.Context, circuit *Circuit, shots int, seed uint64, measured ...Qubit) (Counts, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShots, shots)
	}
	if p.ctx.Err() != nil {
		return nil, ErrPoolClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	defer p.metrics.recordRun(startTime)

	pm, err := measure(circuit, measured)
	if err != nil {
		return nil, err
	}

	jobCount := min(p.workers, shots)
	results := make(chan Result, jobCount)

	for i := 0; i < jobCount; i++ {
		share := shots / jobCount
		if i < shots%jobCount {
			share++
		}

		select {
		case p.jobs <- newJob(i, share, seed, pm, results):
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-p.ctx.Done():
			return nil, ErrPoolClosed
		}
	}

	counts := make(Counts)
	for i := 0; i < jobCount; i++ {
		select {
		case result := <-results:
			if result.Err != nil {
				return nil, fmt.Errorf("job %s: %w", result.JobID, result.Err)
			}
			counts.Merge(result.Counts)
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-p.ctx.Done():
			return nil, ErrPoolClosed
		}
	}
	return counts, nil
}

func measure(circuit *Circuit, measured []Qubit) (ProbabilityMap, error) {
	if len(measured) == 0 {
		return circuit.Probabilities()
	}

	state, err := circuit.Run()
	if err != nil {
		return nil, err
	}
	return Marginal(state, measured...)
}

// Close stops the workers and waits for them to exit.
func (p *Pool) Close() {
	if p == nil {
		return
	}

	errnie.Info("Closing pool")
	p.cancel()
	p.wg.Wait()
}
