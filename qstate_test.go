package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantumState(t *testing.T) {
	Convey("Given a freshly initialized state", t, func() {
		Convey("It should hold 2^n amplitudes with all mass on zero", func() {
			for n := 1; n <= 8; n++ {
				state, err := NewQuantumState(n)
				So(err, ShouldBeNil)
				So(state.Vector, ShouldHaveLength, 1<<n)
				So(state.Vector[0], ShouldEqual, complex(1, 0))
				So(state.Norm(), ShouldAlmostEqual, 1.0, 1e-12)
			}
		})

		Convey("Labels should round trip through indices", func() {
			state, _ := NewQuantumState(3)
			So(state.Label(0), ShouldEqual, "000")
			So(state.Label(1), ShouldEqual, "001")
			So(state.Label(6), ShouldEqual, "110")

			for i := range state.Vector {
				index, err := state.Index(state.Label(i))
				So(err, ShouldBeNil)
				So(index, ShouldEqual, i)
			}
		})

		Convey("Malformed labels should be rejected", func() {
			state, _ := NewQuantumState(2)
			for _, label := range []string{"", "0", "012", "1a", "000"} {
				_, err := state.Index(label)
				So(errors.Is(err, ErrInvalidLabel), ShouldBeTrue)
			}
		})

		Convey("Amplitude should look up by label", func() {
			state, _ := NewQuantumState(2)
			amplitude, err := state.Amplitude("00")
			So(err, ShouldBeNil)
			So(amplitude, ShouldEqual, complex(1, 0))
		})

		Convey("Clone should not share the vector", func() {
			state, _ := NewQuantumState(1)
			clone := state.Clone()
			clone.Vector[0] = 0
			So(state.Vector[0], ShouldEqual, complex(1, 0))
		})
	})

	Convey("Given an invalid qubit count", t, func() {
		for _, n := range []int{0, -1, MaxQubits + 1} {
			state, err := NewQuantumState(n)
			So(state, ShouldBeNil)
			So(errors.Is(err, ErrInvalidQubitCount), ShouldBeTrue)
		}
	})
}
