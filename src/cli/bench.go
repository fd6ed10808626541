// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bytes"
	"fmt"

	"github.com/H0llyW00dzZ/mockzmq/src/bench"
	"github.com/H0llyW00dzZ/mockzmq/src/config"
	"github.com/H0llyW00dzZ/mockzmq/src/logger"
	"github.com/spf13/cobra"
)

// benchFlags holds the bench subcommand's flag values.
type benchFlags struct {
	configPath    string
	sizes         []int
	scenarios     []string
	backends      []string
	threads       int
	warmup        int
	iterations    int
	iterationTime string
	format        string
	logFormat     string
	output        string
}

func newBenchCommand(log logger.Logger) *cobra.Command {
	var f benchFlags

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure the cost of moving buffers to and from the stub",
		Long: `Bench runs every selected scenario on every selected backend and buffer size,
verifies each case once against the reference stub, then times it with warmup
and measurement iterations of fixed wall time.

Settings come from --config (or $` + config.EnvConfigFile + `), and flags given on
the command line override the file. Progress is logged to stderr and the
report goes to OUTPUT_FILE or stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, &f, log)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "JSON or YAML configuration file")
	fl.IntSliceVar(&f.sizes, "sizes", nil, "buffer sizes in bytes (default from config)")
	fl.StringSliceVarP(&f.scenarios, "scenario", "s", nil, "scenario names or groups (send, recv, transform, baseline, alloc, copy, transfer)")
	fl.StringSliceVarP(&f.backends, "backend", "b", nil, "backends to run (go, cgo; default: all available)")
	fl.IntVarP(&f.threads, "threads", "t", config.DefaultThreads, "goroutines per case")
	fl.IntVar(&f.warmup, "warmup", config.DefaultWarmupIterations, "untimed warmup iterations")
	fl.IntVar(&f.iterations, "iterations", config.DefaultMeasurementIterations, "timed measurement iterations")
	fl.StringVar(&f.iterationTime, "iteration-time", config.DefaultIterationTime, "wall time of one iteration")
	fl.StringVarP(&f.format, "format", "f", config.DefaultFormat, "report format (table, json, yaml)")
	fl.StringVar(&f.logFormat, "log-format", config.DefaultLogFormat, "progress log format (text, json)")
	fl.StringVarP(&f.output, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	return cmd
}

// benchConfig loads the configuration file and applies the flags that were
// set explicitly.
func benchConfig(cmd *cobra.Command, f *benchFlags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("sizes") {
		cfg.Bench.Sizes = f.sizes
	}
	if fl.Changed("scenario") {
		cfg.Bench.Scenarios = f.scenarios
	}
	if fl.Changed("backend") {
		cfg.Bench.Backends = f.backends
	}
	if fl.Changed("threads") {
		cfg.Bench.Threads = f.threads
	}
	if fl.Changed("warmup") {
		cfg.Bench.WarmupIterations = f.warmup
	}
	if fl.Changed("iterations") {
		cfg.Bench.MeasurementIterations = f.iterations
	}
	if fl.Changed("iteration-time") {
		cfg.Bench.IterationTime = f.iterationTime
	}
	if fl.Changed("format") {
		cfg.Output.Format = f.format
	}
	if fl.Changed("log-format") {
		cfg.Output.Log = f.logFormat
	}

	switch {
	case !reportFormats[cfg.Output.Format]:
		return nil, fmt.Errorf("%w: report format %q (want table, json or yaml)", ErrUnknownFormat, cfg.Output.Format)
	case cfg.Output.Log != "text" && cfg.Output.Log != "json":
		return nil, fmt.Errorf("%w: log format %q (want text or json)", ErrUnknownFormat, cfg.Output.Log)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

var reportFormats = map[string]bool{"table": true, "json": true, "yaml": true}

// progressLogger returns the logger bench progress goes to. Progress always
// goes to stderr so the report can be piped from stdout.
func progressLogger(cmd *cobra.Command, format string, log logger.Logger) (logger.Logger, error) {
	switch format {
	case "json":
		return logger.NewJSONLogger(cmd.ErrOrStderr(), false), nil
	case "text":
		if log == nil {
			log = logger.NewCLILogger()
		}
		log.SetOutput(cmd.ErrOrStderr())
		return log, nil
	default:
		return nil, fmt.Errorf("%w: log format %q", ErrUnknownFormat, format)
	}
}

func writeReport(r *bench.Report, format string, buf *bytes.Buffer) error {
	switch format {
	case "table":
		return r.WriteTable(buf)
	case "json":
		return r.WriteJSON(buf)
	case "yaml":
		return r.WriteYAML(buf)
	default:
		return fmt.Errorf("%w: report format %q", ErrUnknownFormat, format)
	}
}

func runBench(cmd *cobra.Command, f *benchFlags, log logger.Logger) error {
	cfg, err := benchConfig(cmd, f)
	if err != nil {
		return err
	}

	progress, err := progressLogger(cmd, cfg.Output.Log, log)
	if err != nil {
		return err
	}

	d, err := cfg.IterationDuration()
	if err != nil {
		return err
	}
	opts := bench.Options{
		Threads:       cfg.Bench.Threads,
		Warmup:        cfg.Bench.WarmupIterations,
		Measurement:   cfg.Bench.MeasurementIterations,
		IterationTime: d,
	}

	plan, err := bench.NewPlan(cfg.Bench.Scenarios, cfg.Bench.Backends, cfg.Bench.Sizes)
	if err != nil {
		return err
	}

	runner, err := bench.NewRunner(opts, progress)
	if err != nil {
		return err
	}

	OperationPerformed = true
	progress.Printf("running %d cases", plan.Total())

	report, err := runner.Run(cmd.Context(), plan)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := writeReport(report, cfg.Output.Format, &buf); err != nil {
		return err
	}
	if err := writeOutput(cmd, f.output, buf.Bytes()); err != nil {
		return err
	}

	OperationPerformedSuccessfully = true
	return nil
}
