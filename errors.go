package qsim

import "errors"

var (
	// ErrInvalidQubitCount is returned when a state or circuit is sized with
	// a non-positive qubit count, or one larger than MaxQubits.
	ErrInvalidQubitCount = errors.New("invalid qubit count")

	// ErrQubitIndexOutOfRange is returned when a gate or a measurement
	// references a qubit outside [0, n).
	ErrQubitIndexOutOfRange = errors.New("qubit index out of range")

	// ErrDegenerateDistribution is returned when a probability map has no
	// positive weight to sample from.
	ErrDegenerateDistribution = errors.New("degenerate distribution")

	ErrInvalidGate   = errors.New("invalid gate")
	ErrInvalidLabel  = errors.New("invalid basis label")
	ErrInvalidShots  = errors.New("invalid shot count")
	ErrInvalidConfig = errors.New("invalid config")
)

// ErrPoolClosed is returned by Pool.Run once the pool has been closed.
var ErrPoolClosed = errors.New("pool closed")

// ErrDuplicateQubit is returned when a measurement lists the same qubit twice.
var ErrDuplicateQubit = errors.New("duplicate qubit")
