package bench

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with benchmark-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithRun adds a run field to the logger.
func (l *Logger) WithRun(run int) *Logger {
	return &Logger{
		Logger: l.Logger.With("run", run),
	}
}

// LogSetup logs vector generation and encoding.
func (l *Logger) LogSetup(ctx context.Context, cfg Config, seed int64, elapsed time.Duration) {
	l.InfoContext(ctx, "vectors prepared",
		"vectors", cfg.NumVectors,
		"dimension", cfg.Dimension,
		"code_bits", cfg.CodeBits,
		"padding", cfg.Padding,
		"workers", cfg.Workers,
		"seed", seed,
		"elapsed", elapsed,
	)
}

// LogRun logs a single completed run.
func (l *Logger) LogRun(ctx context.Context, r RunResult, total int) {
	l.DebugContext(ctx, "run completed",
		"run", r.Run,
		"of", total,
		"speedup", r.Speedup,
		"relative_error", r.RelativeError,
		"hybrid", r.HybridTime,
		"raw", r.RawTime,
	)
}

// LogSummary logs the aggregated statistics of a session.
func (l *Logger) LogSummary(ctx context.Context, rep *Report, err error) {
	if err != nil {
		l.ErrorContext(ctx, "benchmark failed",
			"completed_runs", len(rep.Runs),
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "benchmark completed",
		"runs", len(rep.Runs),
		"avg_speedup", rep.Speedup.Mean,
		"avg_error", rep.Error.Mean,
	)
}
