package advkit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with advkit-specific context.
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
	return NewLogger(slog.DiscardHandler)
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithClasses adds a num_classes field to the logger.
func (l *Logger) WithClasses(numClasses int) *Logger {
	return &Logger{
		Logger: l.Logger.With("num_classes", numClasses),
	}
}

// LogPairs logs a pair generation.
func (l *Logger) LogPairs(ctx context.Context, samples, positives, negatives int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "pair generation failed",
			"samples", samples,
			"error", err,
		)
		return
	}

	// A sample without a negative partner means its chosen class was empty.
	if missing := samples - negatives; missing > 0 {
		l.DebugContext(ctx, "pairs generated with missing negatives",
			"samples", samples,
			"positives", positives,
			"negatives", negatives,
			"missing", missing,
		)
		return
	}
	l.DebugContext(ctx, "pairs generated",
		"samples", samples,
		"positives", positives,
		"negatives", negatives,
	)
}

// LogTargets logs a random target draw.
func (l *Logger) LogTargets(ctx context.Context, count int, mode string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "target generation failed",
			"count", count,
			"mode", mode,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "targets generated",
			"count", count,
			"mode", mode,
		)
	}
}

// LogManifest logs a manifest save or load.
func (l *Logger) LogManifest(ctx context.Context, op, name string, pairs int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "manifest "+op+" failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "manifest "+op,
			"name", name,
			"pairs", pairs,
		)
	}
}
