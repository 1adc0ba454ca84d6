package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestConfig(t *testing.T) {
	Convey("Given an empty viper instance", t, func() {
		config, err := LoadConfig(viper.New())

		Convey("It should load the defaults", func() {
			So(err, ShouldBeNil)
			So(config, ShouldResemble, NewConfig())
		})
	})

	Convey("Given explicit settings", t, func() {
		v := viper.New()
		v.Set("scenario", "RNG")
		v.Set("bits", 3)
		v.Set("seed", 99)
		v.Set("shots", 64)

		config, err := LoadConfig(v)
		So(err, ShouldBeNil)
		So(config.Scenario, ShouldEqual, ScenarioRNG)
		So(config.Bits, ShouldEqual, 3)
		So(config.Seed, ShouldEqual, uint64(99))
		So(config.Shots, ShouldEqual, 64)
	})

	Convey("Given environment overrides", t, func() {
		t.Setenv("QSIM_SCENARIO", "signature")
		t.Setenv("QSIM_MESSAGE", "0")

		config, err := LoadConfig(viper.New())
		So(err, ShouldBeNil)
		So(config.Scenario, ShouldEqual, ScenarioSignature)
		So(config.Message, ShouldEqual, "0")
	})

	Convey("Given invalid settings", t, func() {
		for key, value := range map[string]any{
			"scenario": "teleport",
			"bits":     0,
			"shots":    -1,
			"workers":  0,
		} {
			v := viper.New()
			v.Set(key, value)

			_, err := LoadConfig(v)
			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
		}
	})
}
