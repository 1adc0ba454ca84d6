package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/theapemachine/qsim"
	"github.com/theapemachine/qsim/render"
	"github.com/theapemachine/qsim/scenario"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "qsim",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, logger *log.Logger) error {
	fs := pflag.NewFlagSet("qsim", pflag.ContinueOnError)
	fs.String("scenario", qsim.ScenarioCoin, "demo to run: coin, signature or rng")
	fs.Int("bits", scenario.DefaultBits, "number of qubits for the rng scenario")
	fs.String("message", "1", "message bit for the signature scenario")
	fs.Uint64("seed", 0, "seed for reproducible sampling (0 draws one)")
	fs.Int("shots", 1, "number of measurements; more than one uses the worker pool")
	fs.Int("workers", 4, "worker goroutines for batch sampling")
	fs.Bool("dump", false, "dump the raw amplitude vector")
	fs.Bool("verbose", false, "enable debug logging")
	configFile := fs.String("config", "", "optional config file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading %s: %w", *configFile, err)
		}
	}

	config, err := qsim.LoadConfig(v)
	if err != nil {
		return err
	}

	if config.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if config.Seed == 0 {
		config.Seed = uint64(time.Now().UnixNano())
	}
	logger.Debug("config loaded", "scenario", config.Scenario, "seed", config.Seed, "shots", config.Shots)

	circuit, err := buildCircuit(config)
	if err != nil {
		return err
	}
	render.Circuit(out, circuit)

	if config.Dump {
		state, err := circuit.Run()
		if err != nil {
			return err
		}
		spew.Fdump(out, state.Vector)
		render.State(out, "Quantum state before measurement", state)
	}

	if config.Shots > 1 {
		return runBatch(ctx, config, circuit, out, logger)
	}

	src := qsim.NewSource(config.Seed)
	switch config.Scenario {
	case qsim.ScenarioCoin:
		side, pm, err := scenario.CoinToss(src)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "The coin landed on: %s\n", side)
		render.Histogram(out, "Measurement probabilities", pm)

	case qsim.ScenarioSignature:
		bit, pm, err := scenario.Verify(circuit, src)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Message: %s\nVerification result: %s\n", config.Message, bit)
		if bit == "1" {
			fmt.Fprintln(out, "Signature verified successfully!")
		} else {
			fmt.Fprintln(out, "Verification failed!")
		}
		render.Histogram(out, "Signature qubit probabilities", pm)

	case qsim.ScenarioRNG:
		number, _, err := scenario.RandomBits(config.Bits, src)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Generated %d-bit quantum random number: %s\n", config.Bits, number)
	}
	return nil
}

func buildCircuit(config *qsim.Config) (*qsim.Circuit, error) {
	switch config.Scenario {
	case qsim.ScenarioSignature:
		return scenario.Sign(config.Message)
	case qsim.ScenarioRNG:
		return scenario.RNGCircuit(config.Bits)
	default:
		return scenario.CoinCircuit(), nil
	}
}

func runBatch(ctx context.Context, config *qsim.Config, circuit *qsim.Circuit, out io.Writer, logger *log.Logger) error {
	registry := prometheus.NewRegistry()
	metrics := qsim.NewMetrics(registry)

	pool := qsim.NewPool(ctx, config.Workers, metrics)
	defer pool.Close()

	var measured []qsim.Qubit
	if config.Scenario == qsim.ScenarioSignature {
		measured = append(measured, scenario.SignatureQubit)
	}

	counts, err := pool.Run(ctx, circuit, config.Shots, config.Seed, measured...)
	if err != nil {
		return err
	}

	switch config.Scenario {
	case qsim.ScenarioCoin:
		counts = scenario.CoinCounts(counts)
	case qsim.ScenarioSignature:
		counts = scenario.VerifyCounts(counts)
	}

	families, err := registry.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			if counter := metric.GetCounter(); counter != nil {
				logger.Debug("metric", "name", family.GetName(), "value", counter.GetValue())
			}
		}
	}

	render.Counts(out, fmt.Sprintf("%d shots of %s", config.Shots, config.Scenario), counts)
	return nil
}
