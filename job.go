package qsim

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// Job is a share of the shots of one batch run.
type Job struct {
	ID            string
	Index         int
	Shots         int
	Seed          uint64
	Probabilities ProbabilityMap
	result        chan<- Result
}

// Result carries the counts of one Job back to the run that scheduled it.
type Result struct {
	JobID  string
	Counts Counts
	Err    error
}

func newJob(index, shots int, seed uint64, pm ProbabilityMap, result chan<- Result) Job {
	return Job{
		ID:            uuid.NewString(),
		Index:         index,
		Shots:         shots,
		Seed:          seed,
		Probabilities: pm,
		result:        result,
	}
}

// source gives every job of a run its own PCG stream, keyed by job index.
func (j Job) source() Source {
	return rand.New(rand.NewPCG(j.Seed, uint64(j.Index)+1))
}
