package utils

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the field names used across reslib
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler, a text handler to stderr if nil
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

// NewTextLogger creates a Logger that writes human-readable text at or above level
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that writes JSON records at or above level
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger discards everything
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(1000), // Unreachable level
		})),
	}
}

// WithName tags every record with the component that logs it
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// LogSpline logs the outcome of building one spline
func (l *Logger) LogSpline(name, splineType string, samples int, err error) {
	if err != nil {
		l.Error("spline construction failed",
			"name", name,
			"type", splineType,
			"error", err,
		)
	} else {
		l.Info("spline constructed",
			"name", name,
			"type", splineType,
			"samples", samples,
		)
	}
}

// LogCompaction logs a builder commit
func (l *Logger) LogCompaction(rows, nonzeros, merged int, err error) {
	if err != nil {
		l.Error("csr compaction failed",
			"error", err,
		)
	} else {
		l.Debug("csr compaction completed",
			"rows", rows,
			"nonzeros", nonzeros,
			"merged", merged,
		)
	}
}
