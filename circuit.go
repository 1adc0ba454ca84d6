package qsim

import (
	"fmt"
	"strings"

	"github.com/theapemachine/errnie"
)

/*
Circuit is an ordered list of gates over a fixed number of qubits. Running it
always starts from the all-zero state, so a Circuit can be run any number of
times without carrying state between runs.
*/
type Circuit struct {
	Qubits int
	Gates  []Gate
}

func NewCircuit(qubits int) (*Circuit, error) {
	if err := checkQubitCount(qubits); err != nil {
		return nil, err
	}

	errnie.Info("NewCircuit - qubits %d", qubits)

	return &Circuit{
		Qubits: qubits,
		Gates:  make([]Gate, 0),
	}, nil
}

// Append adds gates to the end of the circuit. Gates are validated on Run.
func (c *Circuit) Append(gates ...Gate) *Circuit {
	c.Gates = append(c.Gates, gates...)
	return c
}

func (c *Circuit) H(q Qubit) *Circuit {
	return c.Append(H(q))
}

func (c *Circuit) X(q Qubit) *Circuit {
	return c.Append(X(q))
}

func (c *Circuit) CX(control, target Qubit) *Circuit {
	return c.Append(CX(control, target))
}

// Run simulates the circuit and returns the final state.
func (c *Circuit) Run() (*QuantumState, error) {
	state, err := NewQuantumState(c.Qubits)
	if err != nil {
		return nil, err
	}
	return ApplyGates(state, c.Gates...)
}

// Probabilities runs the circuit and returns its measurement distribution.
func (c *Circuit) Probabilities() (ProbabilityMap, error) {
	state, err := c.Run()
	if err != nil {
		return nil, err
	}
	return Probabilities(state), nil
}

// Measure runs the circuit and samples one outcome of the full register.
func (c *Circuit) Measure(src Source) (string, ProbabilityMap, error) {
	pm, err := c.Probabilities()
	if err != nil {
		return "", nil, err
	}

	outcome, err := Sample(pm, src)
	if err != nil {
		return "", pm, err
	}
	return outcome, pm, nil
}

// String lists the gates one per line, in the order they are applied.
func (c *Circuit) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "qreg q[%d]\n", c.Qubits)
	for _, gate := range c.Gates {
		b.WriteString(gate.String())
		b.WriteByte('\n')
	}
	return b.String()
}
