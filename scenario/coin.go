// Package scenario composes the qsim core into the coin toss, signature and
// random number demonstrations.
package scenario

import (
	"github.com/theapemachine/qsim"
)

// Side is the face a coin lands on.
type Side string

const (
	Heads Side = "Heads"
	Tails Side = "Tails"
)

// CoinCircuit puts a single qubit into equal superposition.
func CoinCircuit() *qsim.Circuit {
	return mustCircuit(1).H(0)
}

// mustCircuit is for the fixed register sizes of the demos, which are
// always within range.
func mustCircuit(qubits int) *qsim.Circuit {
	circuit, err := qsim.NewCircuit(qubits)
	if err != nil {
		panic(err)
	}
	return circuit
}

// SideOf maps a coin label to the side it stands for.
func SideOf(label string) Side {
	if label == "0" {
		return Heads
	}
	return Tails
}

// CoinCounts relabels shot counts of CoinCircuit as Heads and Tails.
func CoinCounts(counts qsim.Counts) qsim.Counts {
	sides := make(qsim.Counts, len(counts))
	for label, n := range counts {
		sides[string(SideOf(label))] += n
	}
	return sides
}

/*
CoinToss measures CoinCircuit once. Label '0' is Heads and '1' is Tails. The
probability map is returned alongside so it can be plotted.
*/
func CoinToss(src qsim.Source) (Side, qsim.ProbabilityMap, error) {
	outcome, pm, err := CoinCircuit().Measure(src)
	if err != nil {
		return "", pm, err
	}

	return SideOf(outcome), pm, nil
}
