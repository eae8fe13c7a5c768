package advkit

import (
	"log/slog"

	"github.com/hupe1980/advkit/labels"
)

// RNG is the random source consumed by a Kit. *math/rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

type options struct {
	seed             *int64
	rng              RNG
	targetMode       labels.TargetMode
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Kit.
type Option func(*options)

// WithSeed seeds the Kit's random source. The seed is recorded in saved
// manifests.
//
// WithSeed and WithRand are mutually exclusive; the last one wins.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = &seed
		o.rng = nil
	}
}

// WithRand supplies the random source directly. Manifests saved by the Kit
// then carry no seed.
func WithRand(rng RNG) Option {
	return func(o *options) {
		o.rng = rng
		o.seed = nil
	}
}

// WithTargetMode selects how RandomTargets draws wrong classes.
// Defaults to labels.PerSample.
func WithTargetMode(mode labels.TargetMode) Option {
	return func(o *options) {
		o.targetMode = mode
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &advkit.BasicMetricsCollector{}
//	kit := advkit.New(advkit.WithMetricsCollector(metrics))
//	// ... use kit ...
//	stats := metrics.GetStats()
//	fmt.Printf("Pairs: %d, Avg latency: %dns\n", stats.PairPositives+stats.PairNegatives, stats.PairAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := advkit.NewJSONLogger(slog.LevelInfo)
//	kit := advkit.New(advkit.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}
