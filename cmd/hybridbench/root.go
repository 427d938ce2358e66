package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/hybridvec/internal/bench"
)

type rootFlags struct {
	config     string
	vectors    int
	dim        int
	iterations int
	runs       int
	seed       int64
	workers    int
	padding    string
	bits       int
	out        string
	logFormat  string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	def := bench.DefaultConfig()
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "hybridbench",
		Short: "Benchmark hybrid quantized distances against raw float64",
		Long: `Generate random vectors, encode them as hybrid vectors and compare the
Euclidean distance over every consecutive pair with the raw float64 result.

Each run times Iterations passes for both representations and records the
speedup and the relative error of the summed distances.

Examples:
  hybridbench                               # reference parameters
  hybridbench --runs 10 --dim 1024          # quick run
  hybridbench --config bench.yaml --bits 16 # YAML config, 16-bit codes`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "YAML config file; flags override its values")
	fl.IntVarP(&f.vectors, "vectors", "n", def.NumVectors, "Number of vectors")
	fl.IntVarP(&f.dim, "dim", "d", def.Dimension, "Vector dimension")
	fl.IntVarP(&f.iterations, "iterations", "i", def.Iterations, "Distance passes per run")
	fl.IntVarP(&f.runs, "runs", "r", def.Runs, "Number of timed runs")
	fl.Int64Var(&f.seed, "seed", def.Seed, "Random seed (0 picks one from the clock)")
	fl.IntVarP(&f.workers, "workers", "w", def.Workers, "Goroutines per distance pass")
	fl.StringVar(&f.padding, "padding", def.Padding, "Padding rule: even or legacy")
	fl.IntVar(&f.bits, "bits", def.CodeBits, "Code width of the quantized half: 8 or 16")
	fl.StringVarP(&f.out, "out", "o", def.OutputDir, "Directory for CSV output (empty disables it)")
	fl.StringVar(&f.logFormat, "log-format", "text", "Log format: text or json")
	fl.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	return cmd
}

func runBench(cmd *cobra.Command, f *rootFlags) error {
	cfg := bench.DefaultConfig()
	if f.config != "" {
		loaded, err := bench.LoadConfig(f.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyFlags(cmd, f, &cfg)

	logger, err := newLogger(f.logFormat, f.logLevel)
	if err != nil {
		return err
	}

	runner, err := bench.NewRunner(cfg,
		bench.WithLogger(logger),
		bench.WithMetricsCollector(&bench.BasicMetricsCollector{}),
	)
	if err != nil {
		return err
	}

	rep, runErr := runner.Run(cmd.Context())
	if rep == nil {
		return runErr
	}

	if err := rep.WriteSummary(cmd.OutOrStdout()); err != nil {
		return err
	}
	if cfg.OutputDir != "" && len(rep.Runs) > 0 {
		if err := rep.WriteCSV(cfg.OutputDir); err != nil {
			return err
		}
	}
	return runErr
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cmd *cobra.Command, f *rootFlags, cfg *bench.Config) {
	changed := cmd.Flags().Changed
	if changed("vectors") {
		cfg.NumVectors = f.vectors
	}
	if changed("dim") {
		cfg.Dimension = f.dim
	}
	if changed("iterations") {
		cfg.Iterations = f.iterations
	}
	if changed("runs") {
		cfg.Runs = f.runs
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
	if changed("padding") {
		cfg.Padding = f.padding
	}
	if changed("bits") {
		cfg.CodeBits = f.bits
	}
	if changed("out") {
		cfg.OutputDir = f.out
	}
}

func newLogger(format, level string) (*bench.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch strings.ToLower(format) {
	case "text", "":
		return bench.NewTextLogger(lvl), nil
	case "json":
		return bench.NewJSONLogger(lvl), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
