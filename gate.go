package qsim

import "fmt"

// GateKind tags the operation a Gate performs.
type GateKind int

const (
	Hadamard GateKind = iota
	PauliX
	ControlledX
)

func (k GateKind) String() string {
	switch k {
	case Hadamard:
		return "h"
	case PauliX:
		return "x"
	case ControlledX:
		return "cx"
	default:
		return fmt.Sprintf("gate(%d)", int(k))
	}
}

/*
Gate is a single- or two-qubit operation. Control is only meaningful for
ControlledX.
*/
type Gate struct {
	Kind    GateKind
	Target  Qubit
	Control Qubit
}

// H returns a Hadamard gate on qubit q.
func H(q Qubit) Gate {
	return Gate{Kind: Hadamard, Target: q}
}

// X returns a Pauli-X (bit flip) gate on qubit q.
func X(q Qubit) Gate {
	return Gate{Kind: PauliX, Target: q}
}

// CX returns a controlled-X gate flipping target when control is 1.
func CX(control, target Qubit) Gate {
	return Gate{Kind: ControlledX, Control: control, Target: target}
}

func (g Gate) String() string {
	if g.Kind == ControlledX {
		return fmt.Sprintf("%s q%d, q%d", g.Kind, g.Control, g.Target)
	}
	return fmt.Sprintf("%s q%d", g.Kind, g.Target)
}

func (g Gate) validate(qubits int) error {
	switch g.Kind {
	case Hadamard, PauliX:
		return g.Target.check(qubits)
	case ControlledX:
		if err := g.Control.check(qubits); err != nil {
			return err
		}
		if err := g.Target.check(qubits); err != nil {
			return err
		}
		if g.Control == g.Target {
			return fmt.Errorf("%w: %s uses q%d as control and target", ErrInvalidGate, g, g.Target)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidGate, g.Kind)
	}
}

/*
ApplyGate returns the state obtained by applying gate to state. The input is
never modified, including when the gate is rejected.
*/
func ApplyGate(state *QuantumState, gate Gate) (*QuantumState, error) {
	if err := gate.validate(state.Qubits); err != nil {
		return nil, err
	}

	out := state.Clone()
	switch gate.Kind {
	case Hadamard:
		applyHadamard(out.Vector, gate.Target)
	case PauliX:
		applyPauliX(out.Vector, gate.Target)
	case ControlledX:
		applyControlledX(out.Vector, gate.Control, gate.Target)
	}
	return out, nil
}

// ApplyGates applies gates in order and stops at the first rejected gate.
func ApplyGates(state *QuantumState, gates ...Gate) (*QuantumState, error) {
	var err error
	for i, gate := range gates {
		if state, err = ApplyGate(state, gate); err != nil {
			return nil, fmt.Errorf("gate %d (%s): %w", i, gate, err)
		}
	}
	return state, nil
}

// applyHadamard mixes every pair of amplitudes that differ only in bit q.
func applyHadamard(vector []complex128, q Qubit) {
	bit := q.mask()
	for i := range vector {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a, b := vector[i], vector[j]
		vector[i] = (a + b) * hadamardFactor
		vector[j] = (a - b) * hadamardFactor
	}
}

func applyPauliX(vector []complex128, q Qubit) {
	bit := q.mask()
	for i := range vector {
		if i&bit == 0 {
			j := i | bit
			vector[i], vector[j] = vector[j], vector[i]
		}
	}
}

// applyControlledX swaps i and i|target for every i with the control bit set
// and the target bit clear, so each pair is swapped exactly once.
func applyControlledX(vector []complex128, control, target Qubit) {
	bit := target.mask()
	for i := range vector {
		if control.set(i) && i&bit == 0 {
			j := i | bit
			vector[i], vector[j] = vector[j], vector[i]
		}
	}
}
