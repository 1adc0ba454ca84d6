package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCircuit(t *testing.T) {
	Convey("Given a two qubit circuit", t, func() {
		circuit, err := NewCircuit(2)
		So(err, ShouldBeNil)
		circuit.X(0).H(1).CX(0, 1)

		Convey("Gates should be kept in the order they were added", func() {
			So(circuit.Gates, ShouldResemble, []Gate{X(0), H(1), CX(0, 1)})
			So(circuit.String(), ShouldEqual, "qreg q[2]\nx q0\nh q1\ncx q0, q1\n")
		})

		Convey("Running it twice should give the same state", func() {
			first, err := circuit.Run()
			So(err, ShouldBeNil)
			second, err := circuit.Run()
			So(err, ShouldBeNil)
			So(second.Vector, shouldApproximate, first.Vector)
		})

		Convey("Measuring should return a label of the distribution", func() {
			outcome, pm, err := circuit.Measure(NewSource(3))
			So(err, ShouldBeNil)
			So(pm, ShouldContainKey, outcome)
			So(pm.Labels(), ShouldResemble, []string{"01", "11"})
		})
	})

	Convey("Given a circuit with a gate outside the register", t, func() {
		circuit, _ := NewCircuit(1)
		circuit.H(0).X(1)

		_, err := circuit.Run()
		So(errors.Is(err, ErrQubitIndexOutOfRange), ShouldBeTrue)

		_, _, err = circuit.Measure(NewSource(1))
		So(errors.Is(err, ErrQubitIndexOutOfRange), ShouldBeTrue)
	})

	Convey("Given an invalid size", t, func() {
		_, err := NewCircuit(0)
		So(errors.Is(err, ErrInvalidQubitCount), ShouldBeTrue)
	})
}
