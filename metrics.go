package advkit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    pairCounter   prometheus.Counter
//	    pairHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordPairs(samples, positives, negatives int, d time.Duration, err error) {
//	    p.pairCounter.Add(float64(positives + negatives))
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordPairs is called after each pair generation.
	// samples is the number of input samples, positives and negatives the
	// number of pairs produced, err is nil if successful.
	RecordPairs(samples, positives, negatives int, duration time.Duration, err error)

	// RecordTargets is called after each random target draw.
	RecordTargets(count int, duration time.Duration, err error)

	// RecordManifest is called after each manifest save or load.
	// bytes is the stored payload size (0 on load or failure).
	RecordManifest(bytes int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPairs(int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordTargets(int, time.Duration, error)         {}
func (NoopMetricsCollector) RecordManifest(int, time.Duration, error)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PairCalls          atomic.Int64
	PairErrors         atomic.Int64
	PairSamples        atomic.Int64
	PairPositives      atomic.Int64
	PairNegatives      atomic.Int64
	PairTotalNanos     atomic.Int64
	TargetCalls        atomic.Int64
	TargetErrors       atomic.Int64
	TargetCount        atomic.Int64
	ManifestCalls      atomic.Int64
	ManifestErrors     atomic.Int64
	ManifestBytes      atomic.Int64
	ManifestTotalNanos atomic.Int64
}

// RecordPairs implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPairs(samples, positives, negatives int, duration time.Duration, err error) {
	b.PairCalls.Add(1)
	b.PairTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PairErrors.Add(1)
		return
	}
	b.PairSamples.Add(int64(samples))
	b.PairPositives.Add(int64(positives))
	b.PairNegatives.Add(int64(negatives))
}

// RecordTargets implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTargets(count int, duration time.Duration, err error) {
	b.TargetCalls.Add(1)
	if err != nil {
		b.TargetErrors.Add(1)
		return
	}
	b.TargetCount.Add(int64(count))
}

// RecordManifest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordManifest(bytes int, duration time.Duration, err error) {
	b.ManifestCalls.Add(1)
	b.ManifestTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ManifestErrors.Add(1)
		return
	}
	b.ManifestBytes.Add(int64(bytes))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PairCalls:        b.PairCalls.Load(),
		PairErrors:       b.PairErrors.Load(),
		PairSamples:      b.PairSamples.Load(),
		PairPositives:    b.PairPositives.Load(),
		PairNegatives:    b.PairNegatives.Load(),
		PairAvgNanos:     avg(b.PairTotalNanos.Load(), b.PairCalls.Load()),
		TargetCalls:      b.TargetCalls.Load(),
		TargetErrors:     b.TargetErrors.Load(),
		TargetCount:      b.TargetCount.Load(),
		ManifestCalls:    b.ManifestCalls.Load(),
		ManifestErrors:   b.ManifestErrors.Load(),
		ManifestBytes:    b.ManifestBytes.Load(),
		ManifestAvgNanos: avg(b.ManifestTotalNanos.Load(), b.ManifestCalls.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PairCalls        int64
	PairErrors       int64
	PairSamples      int64
	PairPositives    int64
	PairNegatives    int64
	PairAvgNanos     int64
	TargetCalls      int64
	TargetErrors     int64
	TargetCount      int64
	ManifestCalls    int64
	ManifestErrors   int64
	ManifestBytes    int64
	ManifestAvgNanos int64
}
