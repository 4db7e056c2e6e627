package kmeans2d

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kmeans2d-specific context.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithParallelism adds a parallelism field to the logger.
func (l *Logger) WithParallelism(parallelism int) *Logger {
	return &Logger{
		Logger: l.Logger.With("parallelism", parallelism),
	}
}

// LogIteration logs one pass of the convergence loop.
func (l *Logger) LogIteration(ctx context.Context, iteration int, change float64) {
	l.DebugContext(ctx, "iteration completed",
		"iteration", iteration,
		"change", change,
	)
}

// LogConverged logs loop termination.
func (l *Logger) LogConverged(ctx context.Context, iterations int, change float64) {
	l.InfoContext(ctx, "clustering converged",
		"iterations", iterations,
		"change", change,
	)
}

// LogNotConverged logs an iteration-cap stop.
func (l *Logger) LogNotConverged(ctx context.Context, iterations int, change float64) {
	l.WarnContext(ctx, "clustering stopped before convergence",
		"iterations", iterations,
		"change", change,
	)
}
