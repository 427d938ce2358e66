package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hupe1980/hybridvec/internal/conv"
)

const (
	ResultsFile = "speedup_results.csv"
	StatsFile   = "speedup_stats.csv"
)

// RunResult is the measurement of a single run.
type RunResult struct {
	Run           int
	Speedup       float64
	RelativeError float64
	HybridTime    time.Duration
	RawTime       time.Duration
	HybridTotal   float64
	RawTotal      float64
}

// Report is the outcome of a benchmark session.
type Report struct {
	Config      Config
	Seed        int64
	ISA         string
	RawBytes    int
	HybridBytes int
	Runs        []RunResult

	Speedup Summary
	Error   Summary
}

func (r *Report) summarize() {
	speedups := make([]float64, len(r.Runs))
	errs := make([]float64, len(r.Runs))
	for i, run := range r.Runs {
		speedups[i] = run.Speedup
		errs[i] = run.RelativeError
	}
	r.Speedup = Summarize(speedups)
	r.Error = Summarize(errs)
}

// WriteCSV writes ResultsFile and StatsFile into dir, creating it if needed.
func (r *Report) WriteCSV(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := writeFile(filepath.Join(dir, ResultsFile), r.WriteResults); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, StatsFile), r.WriteStats)
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return fn(f)
}

// WriteResults writes one "run,speedup,relative_error" row per run.
func (r *Report) WriteResults(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"run", "speedup", "relative_error"}); err != nil {
		return err
	}
	for _, run := range r.Runs {
		if err := cw.Write([]string{
			strconv.Itoa(run.Run),
			formatFloat(run.Speedup),
			formatFloat(run.RelativeError),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteStats writes the "metric,value" summary table.
func (r *Report) WriteStats(w io.Writer) error {
	rows := [][]string{
		{"metric", "value"},
		{"avg_speedup", formatFloat(r.Speedup.Mean)},
		{"min_speedup", formatFloat(r.Speedup.Min)},
		{"max_speedup", formatFloat(r.Speedup.Max)},
		{"std_speedup", formatFloat(r.Speedup.StdDev)},
		{"avg_error", formatFloat(r.Error.Mean)},
		{"min_error", formatFloat(r.Error.Min)},
		{"max_error", formatFloat(r.Error.Max)},
		{"std_error", formatFloat(r.Error.StdDev)},
		{"num_runs", strconv.Itoa(len(r.Runs))},
	}
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteSummary prints the human-readable results block.
func (r *Report) WriteSummary(w io.Writer) error {
	raw, err := conv.IntToUint64(r.RawBytes)
	if err != nil {
		return err
	}
	hybrid, err := conv.IntToUint64(r.HybridBytes)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, `=== FINAL RESULTS ===
Vector size: %d
Number of vectors: %d
Iterations: %d
Number of runs: %d
Kernels: %s
Memory: raw %s, hybrid %s
Average speedup: %.4fx
Min speedup: %.4fx
Max speedup: %.4fx
Average relative error: %g%%
Min relative error: %g%%
Max relative error: %g%%
`,
		r.Config.Dimension,
		r.Config.NumVectors,
		r.Config.Iterations,
		len(r.Runs),
		r.ISA,
		humanize.IBytes(raw), humanize.IBytes(hybrid),
		r.Speedup.Mean, r.Speedup.Min, r.Speedup.Max,
		r.Error.Mean*100, r.Error.Min*100, r.Error.Max*100,
	)
	return err
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
