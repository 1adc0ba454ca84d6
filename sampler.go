package qsim

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Source is the randomness a measurement draws from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic PCG source for reproducible sampling.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Counts tallies how often each label was observed over a number of shots.
type Counts map[string]int

// Shots returns the total number of observations.
func (c Counts) Shots() int {
	var total int
	for _, n := range c {
		total += n
	}
	return total
}

// Merge adds the observations of other into c.
func (c Counts) Merge(other Counts) {
	for label, n := range other {
		c[label] += n
	}
}

/*
Sample chooses one label with probability proportional to its weight. Labels
are walked in sorted order so that the same source and map always produce
the same label.
*/
func Sample(pm ProbabilityMap, src Source) (string, error) {
	labels, total, err := weights(pm)
	if err != nil {
		return "", err
	}
	return choose(pm, labels, total, src), nil
}

// SampleCounts draws shots labels from pm and tallies them.
func SampleCounts(pm ProbabilityMap, src Source, shots int) (Counts, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShots, shots)
	}

	labels, total, err := weights(pm)
	if err != nil {
		return nil, err
	}

	counts := make(Counts)
	for i := 0; i < shots; i++ {
		counts[choose(pm, labels, total, src)]++
	}
	return counts, nil
}

func weights(pm ProbabilityMap) ([]string, float64, error) {
	if len(pm) == 0 {
		return nil, 0, fmt.Errorf("%w: empty map", ErrDegenerateDistribution)
	}

	var total float64
	for label, p := range pm {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, 0, fmt.Errorf("%w: weight %v for %q", ErrDegenerateDistribution, p, label)
		}
		total += p
	}
	if total <= 0 {
		return nil, 0, fmt.Errorf("%w: all weights are zero", ErrDegenerateDistribution)
	}
	return pm.Labels(), total, nil
}

func choose(pm ProbabilityMap, labels []string, total float64, src Source) string {
	r := src.Float64() * total

	var cumulative float64
	last := ""
	for _, label := range labels {
		p := pm[label]
		if p == 0 {
			continue
		}
		cumulative += p
		last = label
		if r < cumulative {
			return label
		}
	}

	// Rounding can leave r just above the final cumulative sum.
	return last
}
