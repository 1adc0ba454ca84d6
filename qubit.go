package qsim

import (
	"fmt"
	"math"
)

// hadamardFactor is 1/√2, the entry magnitude of H = 1/√2 * [1 1; 1 -1].
var hadamardFactor = complex(1/math.Sqrt2, 0)

// Qubit is the index of a qubit within a register. Qubit q is bit q of a
// basis index, which makes it the rightmost character of a label for q = 0.
type Qubit int

func (q Qubit) mask() int {
	return 1 << uint(q)
}

func (q Qubit) set(index int) bool {
	return index&q.mask() != 0
}

func (q Qubit) check(qubits int) error {
	if q < 0 || int(q) >= qubits {
		return fmt.Errorf("%w: qubit %d, register has %d", ErrQubitIndexOutOfRange, q, qubits)
	}
	return nil
}
