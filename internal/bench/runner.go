package bench

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hybridvec"
	"github.com/hupe1980/hybridvec/distance"
	"github.com/hupe1980/hybridvec/internal/simd"
	"github.com/hupe1980/hybridvec/testutil"
)

// pairSet computes the Euclidean distance between vector i and i+1.
type pairSet interface {
	Len() int
	Distance(i int) (float64, error)
	SizeBytes() int
}

type hybridPairs[Q hybridvec.Code] struct {
	vecs []*hybridvec.Vector[float64, Q]
}

func buildHybrid[Q hybridvec.Code](raw [][]float64, p hybridvec.Padding) (*hybridPairs[Q], error) {
	out := &hybridPairs[Q]{vecs: make([]*hybridvec.Vector[float64, Q], len(raw))}
	for i, in := range raw {
		v, err := hybridvec.New[float64, Q](in, hybridvec.WithPadding(p))
		if err != nil {
			return nil, fmt.Errorf("encode vector %d: %w", i, err)
		}
		out.vecs[i] = v
	}
	return out, nil
}

func (h *hybridPairs[Q]) Len() int { return len(h.vecs) }

func (h *hybridPairs[Q]) Distance(i int) (float64, error) {
	return hybridvec.Distance(h.vecs[i], h.vecs[i+1])
}

func (h *hybridPairs[Q]) SizeBytes() int {
	var n int
	for _, v := range h.vecs {
		n += v.SizeBytes()
	}
	return n
}

type rawPairs [][]float64

func (r rawPairs) Len() int { return len(r) }

func (r rawPairs) Distance(i int) (float64, error) {
	return distance.L2(r[i], r[i+1]), nil
}

func (r rawPairs) SizeBytes() int {
	var n int
	for _, v := range r {
		n += 8 * len(v)
	}
	return n
}

// Runner executes a benchmark session.
type Runner struct {
	cfg     Config
	logger  *Logger
	metrics MetricsCollector
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. Nil keeps the no-op logger.
func WithLogger(l *Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetricsCollector sets the metrics sink. Nil keeps the no-op collector.
func WithMetricsCollector(m MetricsCollector) RunnerOption {
	return func(r *Runner) {
		if m != nil {
			r.metrics = m
		}
	}
}

// NewRunner validates cfg and returns a Runner.
func NewRunner(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		cfg:     cfg,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run generates the vectors, encodes them and times cfg.Runs runs.
//
// Cancellation is checked between runs and between passes; on cancellation
// the partial report is returned together with the context error.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	cfg := r.cfg
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	raw := rawPairs(testutil.NewRNG(seed).UniformVectors(cfg.NumVectors, cfg.Dimension, cfg.Min, cfg.Max))

	var (
		hybrid pairSet
		err    error
	)
	switch cfg.CodeBits {
	case 16:
		hybrid, err = buildHybrid[uint16](raw, cfg.padding())
	default:
		hybrid, err = buildHybrid[uint8](raw, cfg.padding())
	}
	if err != nil {
		return nil, err
	}
	built := time.Since(start)
	r.metrics.RecordBuild(cfg.NumVectors, built)
	r.logger.LogSetup(ctx, cfg, seed, built)

	rep := &Report{
		Config:      cfg,
		Seed:        seed,
		ISA:         simd.ActiveISA().String(),
		RawBytes:    raw.SizeBytes(),
		HybridBytes: hybrid.SizeBytes(),
		Runs:        make([]RunResult, 0, cfg.Runs),
	}

	for run := 1; run <= cfg.Runs; run++ {
		if err := ctx.Err(); err != nil {
			rep.summarize()
			r.logger.LogSummary(ctx, rep, err)
			return rep, err
		}

		res, err := r.runOnce(ctx, run, hybrid, raw)
		if err != nil {
			rep.summarize()
			r.logger.LogSummary(ctx, rep, err)
			return rep, err
		}
		rep.Runs = append(rep.Runs, res)
		r.metrics.RecordRun(run, res.HybridTime, res.RawTime, res.RelativeError)
		r.logger.LogRun(ctx, res, cfg.Runs)
	}

	rep.summarize()
	r.logger.LogSummary(ctx, rep, nil)
	return rep, nil
}

func (r *Runner) runOnce(ctx context.Context, run int, hybrid, raw pairSet) (RunResult, error) {
	hybridTotal, hybridTime, err := r.timePasses(ctx, hybrid)
	if err != nil {
		return RunResult{}, err
	}
	rawTotal, rawTime, err := r.timePasses(ctx, raw)
	if err != nil {
		return RunResult{}, err
	}

	res := RunResult{
		Run:         run,
		HybridTime:  hybridTime,
		RawTime:     rawTime,
		HybridTotal: hybridTotal,
		RawTotal:    rawTotal,
	}
	if hybridTime > 0 {
		res.Speedup = float64(rawTime) / float64(hybridTime)
	}
	if rawTotal != 0 {
		res.RelativeError = math.Abs(hybridTotal-rawTotal) / rawTotal
	}
	return res, nil
}

// timePasses runs cfg.Iterations passes over all consecutive pairs and
// returns the summed distance and the elapsed wall time.
func (r *Runner) timePasses(ctx context.Context, ps pairSet) (float64, time.Duration, error) {
	var total float64
	start := time.Now()
	for it := 0; it < r.cfg.Iterations; it++ {
		s, err := sumPass(ctx, ps, r.cfg.Workers)
		if err != nil {
			return 0, 0, err
		}
		total += s
	}
	return total, time.Since(start), nil
}

// sumPass sums Distance(i) for every consecutive pair. Work is split into
// contiguous chunks, one per worker, and partial sums are added in chunk
// order so the result does not depend on scheduling.
func sumPass(ctx context.Context, ps pairSet, workers int) (float64, error) {
	pairs := ps.Len() - 1
	if pairs <= 0 {
		return 0, nil
	}
	workers = max(1, min(workers, pairs))

	if workers == 1 {
		return sumRange(ps, 0, pairs)
	}

	partial := make([]float64, workers)
	chunk := (pairs + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, pairs)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := sumRange(ps, lo, hi)
			if err != nil {
				return err
			}
			partial[w] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total float64
	for _, s := range partial {
		total += s
	}
	return total, nil
}

func sumRange(ps pairSet, lo, hi int) (float64, error) {
	var s float64
	for i := lo; i < hi; i++ {
		d, err := ps.Distance(i)
		if err != nil {
			return 0, fmt.Errorf("pair %d: %w", i, err)
		}
		s += d
	}
	return s, nil
}
