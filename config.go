package qsim

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Scenario names accepted by Config.Scenario.
const (
	ScenarioCoin      = "coin"
	ScenarioSignature = "signature"
	ScenarioRNG       = "rng"
)

type Config struct {
	Scenario string
	Bits     int
	Message  string
	Seed     uint64
	Shots    int
	Workers  int
	Verbose  bool
	Dump     bool
}

func NewConfig() *Config {
	return &Config{
		Scenario: ScenarioCoin,
		Bits:     8,
		Message:  "1",
		Shots:    1,
		Workers:  4,
	}
}

// SetDefaults registers the NewConfig values on v.
func SetDefaults(v *viper.Viper) {
	defaults := NewConfig()
	v.SetDefault("scenario", defaults.Scenario)
	v.SetDefault("bits", defaults.Bits)
	v.SetDefault("message", defaults.Message)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("shots", defaults.Shots)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("dump", defaults.Dump)
}

/*
LoadConfig reads a Config out of v. Environment variables prefixed with
QSIM_ override defaults, and anything bound on v (flags, a config file)
overrides those in viper's usual order.
*/
func LoadConfig(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("qsim")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	config := &Config{
		Scenario: strings.ToLower(v.GetString("scenario")),
		Bits:     v.GetInt("bits"),
		Message:  v.GetString("message"),
		Seed:     v.GetUint64("seed"),
		Shots:    v.GetInt("shots"),
		Workers:  v.GetInt("workers"),
		Verbose:  v.GetBool("verbose"),
		Dump:     v.GetBool("dump"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (config *Config) Validate() error {
	switch config.Scenario {
	case ScenarioCoin, ScenarioSignature, ScenarioRNG:
	default:
		return fmt.Errorf("%w: unknown scenario %q", ErrInvalidConfig, config.Scenario)
	}

	if config.Bits <= 0 || config.Bits > MaxQubits {
		return fmt.Errorf("%w: bits must be within 1..%d, got %d", ErrInvalidConfig, MaxQubits, config.Bits)
	}
	if config.Shots <= 0 {
		return fmt.Errorf("%w: shots must be positive, got %d", ErrInvalidConfig, config.Shots)
	}
	if config.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, config.Workers)
	}
	return nil
}
