package scenario

import (
	"github.com/theapemachine/qsim"
)

// DefaultBits is the width of a random number when none is configured.
const DefaultBits = 8

// RNGCircuit applies a Hadamard to every one of bits qubits.
func RNGCircuit(bits int) (*qsim.Circuit, error) {
	circuit, err := qsim.NewCircuit(bits)
	if err != nil {
		return nil, err
	}

	for q := 0; q < bits; q++ {
		circuit.H(qsim.Qubit(q))
	}
	return circuit, nil
}

// RandomBits measures RNGCircuit once and returns the label as a bit string.
func RandomBits(bits int, src qsim.Source) (string, *qsim.Circuit, error) {
	circuit, err := RNGCircuit(bits)
	if err != nil {
		return "", nil, err
	}

	outcome, _, err := circuit.Measure(src)
	if err != nil {
		return "", circuit, err
	}
	return outcome, circuit, nil
}
