package bench

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting benchmark metrics.
// Implement this interface to export runs to a monitoring system.
type MetricsCollector interface {
	// RecordBuild is called once after all hybrid vectors are encoded.
	RecordBuild(count int, duration time.Duration)

	// RecordRun is called after each run with the timings of both passes
	// and the relative error of the hybrid distance sum.
	RecordRun(run int, hybrid, raw time.Duration, relErr float64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration)                       {}
func (NoopMetricsCollector) RecordRun(int, time.Duration, time.Duration, float64) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	BuildCount       atomic.Int64
	BuildTotalNanos  atomic.Int64
	RunCount         atomic.Int64
	HybridTotalNanos atomic.Int64
	RawTotalNanos    atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(count int, duration time.Duration) {
	b.BuildCount.Add(int64(count))
	b.BuildTotalNanos.Add(duration.Nanoseconds())
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(_ int, hybrid, raw time.Duration, _ float64) {
	b.RunCount.Add(1)
	b.HybridTotalNanos.Add(hybrid.Nanoseconds())
	b.RawTotalNanos.Add(raw.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	runs := b.RunCount.Load()
	s := BasicMetricsStats{
		BuildCount: b.BuildCount.Load(),
		RunCount:   runs,
	}
	if runs > 0 {
		s.HybridAvgNanos = b.HybridTotalNanos.Load() / runs
		s.RawAvgNanos = b.RawTotalNanos.Load() / runs
	}
	if s.BuildCount > 0 {
		s.BuildAvgNanos = b.BuildTotalNanos.Load() / s.BuildCount
	}
	return s
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount     int64
	BuildAvgNanos  int64
	RunCount       int64
	HybridAvgNanos int64
	RawAvgNanos    int64
}
