// wavefunction.go
package qsim

import (
	"fmt"
	"sort"
	"strings"
)

// Epsilon is the probability below which an outcome is dropped from a map.
const Epsilon = 1e-12

/*
ProbabilityMap maps a basis label to the probability of observing it. It is
always derived from a QuantumState and never edited in place.
*/
type ProbabilityMap map[string]float64

// Labels returns the labels of the map in ascending order.
func (pm ProbabilityMap) Labels() []string {
	labels := make([]string, 0, len(pm))
	for label := range pm {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Total returns the sum of all probabilities in the map.
func (pm ProbabilityMap) Total() float64 {
	var total float64
	for _, p := range pm {
		total += p
	}
	return total
}

/*
Probabilities derives the measurement distribution of the full register.
Outcomes with probability below Epsilon are omitted and the remaining
entries are renormalized so they still sum to 1.
*/
func Probabilities(state *QuantumState) ProbabilityMap {
	pm := make(ProbabilityMap)
	for i, amplitude := range state.Vector {
		if p := squaredMagnitude(amplitude); p >= Epsilon {
			pm[state.Label(i)] = p
		}
	}
	pm.normalize()
	return pm
}

/*
Marginal derives the distribution of measuring only the given qubits. The
label has one character per listed qubit, in the order they are listed.
*/
func Marginal(state *QuantumState, qubits ...Qubit) (ProbabilityMap, error) {
	if len(qubits) == 0 {
		return nil, fmt.Errorf("%w: no qubits to measure", ErrQubitIndexOutOfRange)
	}
	seen := make(map[Qubit]bool, len(qubits))
	for _, q := range qubits {
		if err := q.check(state.Qubits); err != nil {
			return nil, err
		}
		if seen[q] {
			return nil, fmt.Errorf("%w: q%d listed twice", ErrDuplicateQubit, q)
		}
		seen[q] = true
	}

	pm := make(ProbabilityMap)
	var label strings.Builder
	for i, amplitude := range state.Vector {
		p := squaredMagnitude(amplitude)
		if p < Epsilon {
			continue
		}

		label.Reset()
		for _, q := range qubits {
			if q.set(i) {
				label.WriteByte('1')
			} else {
				label.WriteByte('0')
			}
		}
		pm[label.String()] += p
	}
	pm.normalize()
	return pm, nil
}

/*
normalize ensures probabilities sum to 1.0
*/
func (pm ProbabilityMap) normalize() {
	total := pm.Total()
	if total > 0 {
		for label := range pm {
			pm[label] /= total
		}
	}
}
