package qsim

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPool(t *testing.T) {
	Convey("Given a pool with metrics", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		metrics := NewMetrics(prometheus.NewRegistry())
		pool := NewPool(ctx, 3, metrics)

		Reset(func() {
			pool.Close()
		})

		circuit, _ := NewCircuit(2)
		circuit.H(0).CX(0, 1)

		Convey("When running a batch of shots", func() {
			counts, err := pool.Run(ctx, circuit, 1000, 11)
			So(err, ShouldBeNil)

			Convey("Every shot should be counted", func() {
				So(counts.Shots(), ShouldEqual, 1000)
				So(testutil.ToFloat64(metrics.Shots), ShouldEqual, 1000.0)
				So(testutil.ToFloat64(metrics.Jobs.WithLabelValues("ok")), ShouldEqual, 3.0)
			})

			Convey("Only entangled outcomes should appear", func() {
				for label := range counts {
					So(label, ShouldBeIn, []string{"00", "11"})
				}
			})

			Convey("The same seed should reproduce the same counts", func() {
				again, err := pool.Run(ctx, circuit, 1000, 11)
				So(err, ShouldBeNil)
				So(again, ShouldResemble, counts)
			})
		})

		Convey("When only some qubits are measured", func() {
			signature, _ := NewCircuit(2)
			signature.X(0).H(1).CX(0, 1)

			counts, err := pool.Run(ctx, signature, 100, 3, 1)
			So(err, ShouldBeNil)
			So(counts.Shots(), ShouldEqual, 100)

			Convey("Labels should only carry the measured qubit", func() {
				for label := range counts {
					So(label, ShouldBeIn, []string{"0", "1"})
				}
				So(counts, ShouldContainKey, "0")
				So(counts, ShouldContainKey, "1")
			})

			Convey("A repeated measured qubit should be rejected", func() {
				_, err := pool.Run(ctx, signature, 100, 3, 1, 1)
				So(errors.Is(err, ErrDuplicateQubit), ShouldBeTrue)
			})
		})

		Convey("When there are fewer shots than workers", func() {
			counts, err := pool.Run(ctx, circuit, 2, 5)
			So(err, ShouldBeNil)
			So(counts.Shots(), ShouldEqual, 2)
		})

		Convey("When the shot count is invalid", func() {
			_, err := pool.Run(ctx, circuit, 0, 5)
			So(errors.Is(err, ErrInvalidShots), ShouldBeTrue)
		})

		Convey("When the circuit is invalid", func() {
			bad, _ := NewCircuit(1)
			bad.X(4)
			_, err := pool.Run(ctx, bad, 10, 5)
			So(errors.Is(err, ErrQubitIndexOutOfRange), ShouldBeTrue)
		})

		Convey("When the caller's context is already cancelled", func() {
			done, stop := context.WithCancel(ctx)
			stop()
			_, err := pool.Run(done, circuit, 10, 5)
			So(err, ShouldNotBeNil)
		})

		Convey("When the pool is closed", func() {
			pool.Close()
			_, err := pool.Run(ctx, circuit, 10, 5)
			So(errors.Is(err, ErrPoolClosed), ShouldBeTrue)
		})
	})
}
