package scenario

import (
	"errors"
	"fmt"

	"github.com/theapemachine/qsim"
)

// ErrInvalidMessage is returned when a message is not a single '0' or '1'.
var ErrInvalidMessage = errors.New("message must be '0' or '1'")

const (
	messageQubit qsim.Qubit = 0

	// SignatureQubit is the only qubit read during verification.
	SignatureQubit qsim.Qubit = 1
)

/*
Sign builds the signature circuit for a one-bit message: the message qubit is
flipped for "1", the signature qubit is put in superposition and then
entangled with the message qubit.

This is a scripted gate sequence for demonstration. It carries no
cryptographic guarantee.
*/
func Sign(message string) (*qsim.Circuit, error) {
	if message != "0" && message != "1" {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidMessage, message)
	}

	circuit := mustCircuit(2)
	if message == "1" {
		circuit.X(messageQubit)
	}
	circuit.H(SignatureQubit).CX(messageQubit, SignatureQubit)
	return circuit, nil
}

/*
Verify runs the circuit and measures the signature qubit alone. The returned
bit is "1" when verification succeeds.
*/
func Verify(circuit *qsim.Circuit, src qsim.Source) (string, qsim.ProbabilityMap, error) {
	state, err := circuit.Run()
	if err != nil {
		return "", nil, err
	}

	pm, err := qsim.Marginal(state, SignatureQubit)
	if err != nil {
		return "", nil, err
	}

	bit, err := qsim.Sample(pm, src)
	if err != nil {
		return "", pm, err
	}
	return bit, pm, nil
}

// VerifyCounts relabels signature qubit counts as verified and failed.
func VerifyCounts(counts qsim.Counts) qsim.Counts {
	return qsim.Counts{
		"verified": counts["1"],
		"failed":   counts["0"],
	}
}
