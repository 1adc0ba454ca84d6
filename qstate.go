package qsim

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"
)

// MaxQubits bounds the register size; the vector holds 2^n amplitudes.
const MaxQubits = 16

/*
QuantumState is the amplitude vector of an n-qubit register. Vector[i] is
the amplitude of the basis state whose label is i written in binary and
zero-padded to Qubits digits. Both fields are exported so renderers can read
the state directly.
*/
type QuantumState struct {
	Qubits int
	Vector []complex128
}

/*
NewQuantumState returns the all-zero basis state |0...0⟩ for the given
number of qubits: amplitude 1 at index 0, 0 everywhere else.
*/
func NewQuantumState(qubits int) (*QuantumState, error) {
	if err := checkQubitCount(qubits); err != nil {
		return nil, err
	}

	vector := make([]complex128, 1<<uint(qubits))
	vector[0] = 1 + 0i

	return &QuantumState{
		Qubits: qubits,
		Vector: vector,
	}, nil
}

func checkQubitCount(qubits int) error {
	if qubits <= 0 || qubits > MaxQubits {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidQubitCount, qubits, MaxQubits)
	}
	return nil
}

// Clone returns a deep copy of the state.
func (qs *QuantumState) Clone() *QuantumState {
	vector := make([]complex128, len(qs.Vector))
	copy(vector, qs.Vector)
	return &QuantumState{Qubits: qs.Qubits, Vector: vector}
}

// Norm returns the sum of squared magnitudes, which is 1 for a valid state.
func (qs *QuantumState) Norm() float64 {
	var total float64
	for _, amplitude := range qs.Vector {
		total += squaredMagnitude(amplitude)
	}
	return total
}

// Label returns the basis label of the given vector index.
func (qs *QuantumState) Label(index int) string {
	return formatLabel(index, qs.Qubits)
}

// Index parses a basis label back into its vector index.
func (qs *QuantumState) Index(label string) (int, error) {
	if len(label) != qs.Qubits || strings.Trim(label, "01") != "" {
		return 0, fmt.Errorf("%w: %q for %d qubits", ErrInvalidLabel, label, qs.Qubits)
	}

	index, err := strconv.ParseUint(label, 2, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidLabel, label, err)
	}
	return int(index), nil
}

// Amplitude returns the amplitude stored for a basis label.
func (qs *QuantumState) Amplitude(label string) (complex128, error) {
	index, err := qs.Index(label)
	if err != nil {
		return 0, err
	}
	return qs.Vector[index], nil
}

func formatLabel(index, width int) string {
	label := strconv.FormatUint(uint64(index), 2)
	if pad := width - len(label); pad > 0 {
		label = strings.Repeat("0", pad) + label
	}
	return label
}

func squaredMagnitude(amplitude complex128) float64 {
	magnitude := cmplx.Abs(amplitude)
	return magnitude * magnitude // Square of the modulus
}
