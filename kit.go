package advkit

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/hupe1980/advkit/labels"
	"github.com/hupe1980/advkit/manifest"
	"github.com/hupe1980/advkit/pairs"
)

// Kit bundles a random source with logging and metrics.
//
// A Kit is safe for concurrent use; calls are serialised on its random
// source. Results are reproducible only for a fixed call order.
type Kit struct {
	mu      sync.Mutex
	rng     RNG
	seed    *int64
	drawn   bool
	mode    labels.TargetMode
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Kit. Without WithSeed or WithRand the source is seeded from
// the current time and the seed is still reported by Seed.
func New(optFns ...Option) *Kit {
	opts := options{targetMode: labels.PerSample}
	for _, fn := range optFns {
		fn(&opts)
	}

	k := &Kit{
		rng:     opts.rng,
		seed:    opts.seed,
		mode:    opts.targetMode,
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}
	if k.rng == nil {
		if k.seed == nil {
			seed := time.Now().UnixNano()
			k.seed = &seed
		}
		k.rng = rand.New(rand.NewSource(*k.seed))
	}
	if k.logger == nil {
		k.logger = NoopLogger()
	}
	if k.metrics == nil {
		k.metrics = NoopMetricsCollector{}
	}
	return k
}

// Seed returns the seed of the Kit's random source. ok is false when the
// source was supplied through WithRand.
func (k *Kit) Seed() (seed int64, ok bool) {
	if k.seed == nil {
		return 0, false
	}
	return *k.seed, true
}

// TargetMode returns the configured target mode.
func (k *Kit) TargetMode() labels.TargetMode { return k.mode }

// Logger returns the Kit's logger.
func (k *Kit) Logger() *Logger { return k.logger }

// GeneratePairs builds one positive and, where possible, one negative pair
// for every sample. See pairs.Generate.
func GeneratePairs[S any](ctx context.Context, k *Kit, samples []S, labelIDs []int, numClasses int, pos, neg float64) (*pairs.Set[S], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	k.mu.Lock()
	set, err := pairs.Generate(k.rng, samples, labelIDs, numClasses, pos, neg)
	k.drawn = k.drawn || err == nil
	k.mu.Unlock()

	if err != nil {
		k.recordPairs(ctx, numClasses, len(samples), 0, 0, err, time.Since(start))
		return nil, translateError(err)
	}
	k.recordPairs(ctx, numClasses, len(samples), set.Positives, set.Negatives, nil, time.Since(start))
	return set, nil
}

// GeneratePairIndices is GeneratePairs over sample positions.
func (k *Kit) GeneratePairIndices(ctx context.Context, labelIDs []int, numClasses int, pos, neg float64) (*pairs.IndexSet, error) {
	set, _, err := k.generateIndices(ctx, labelIDs, numClasses, pos, neg, false)
	return set, err
}

// generateIndices draws an index pair set. With reproducible set, it also
// returns the seed that regenerates exactly this set, if one exists.
func (k *Kit) generateIndices(ctx context.Context, labelIDs []int, numClasses int, pos, neg float64, reproducible bool) (*pairs.IndexSet, *int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	start := time.Now()
	k.mu.Lock()
	rng, seed := k.rng, (*int64)(nil)
	err := pairs.Validate(labelIDs, numClasses)
	if err == nil && reproducible {
		rng, seed = k.reproducibleSource()
	}
	var set *pairs.IndexSet
	if err == nil {
		set, err = pairs.GenerateIndices(rng, labelIDs, numClasses, pos, neg)
	}
	k.drawn = k.drawn || err == nil
	k.mu.Unlock()

	if err != nil {
		k.recordPairs(ctx, numClasses, len(labelIDs), 0, 0, err, time.Since(start))
		return nil, nil, translateError(err)
	}
	k.recordPairs(ctx, numClasses, len(labelIDs), set.Positives, set.Negatives, nil, time.Since(start))
	return set, seed, nil
}

// reproducibleSource returns a source together with the seed that
// recreates its sequence. Before the first draw that is the Kit's own
// source and seed. Afterwards a child seed is drawn from the Kit's source.
// Sources supplied through WithRand have no seed. k.mu must be held.
func (k *Kit) reproducibleSource() (RNG, *int64) {
	if k.seed == nil {
		return k.rng, nil
	}
	if !k.drawn {
		seed := *k.seed
		return k.rng, &seed
	}
	seed := int64(k.rng.Intn(math.MaxInt))
	return rand.New(rand.NewSource(seed)), &seed
}

func (k *Kit) recordPairs(ctx context.Context, numClasses, samples, positives, negatives int, err error, d time.Duration) {
	k.logger.WithClasses(numClasses).LogPairs(ctx, samples, positives, negatives, err)
	k.metrics.RecordPairs(samples, positives, negatives, d, err)
}

// RandomTargetIDs draws a class different from each sample's true class,
// using the Kit's target mode.
func (k *Kit) RandomTargetIDs(ctx context.Context, in labels.Input, numClasses int) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	k.mu.Lock()
	ids, err := labels.RandomTargetIDs(k.rng, in, numClasses, k.mode)
	k.drawn = k.drawn || err == nil
	k.mu.Unlock()

	k.logger.WithClasses(numClasses).LogTargets(ctx, in.Len(), k.mode.String(), err)
	k.metrics.RecordTargets(len(ids), time.Since(start), err)
	if err != nil {
		return nil, translateError(err)
	}
	return ids, nil
}

// RandomTargets is RandomTargetIDs returned as a one-hot matrix.
func (k *Kit) RandomTargets(ctx context.Context, in labels.Input, numClasses int) (labels.Matrix, error) {
	ids, err := k.RandomTargetIDs(ctx, in, numClasses)
	if err != nil {
		return labels.Matrix{}, err
	}
	return labels.ToCategorical(ids, numClasses)
}

// LabelConf returns the per-row maximum confidence and its class.
func (k *Kit) LabelConf(scores labels.Matrix) (confs []float64, ids []int, err error) {
	confs, ids, err = labels.LabelConf(scores)
	return confs, ids, translateError(err)
}

// LabelsFromConfidences marks the maximal entries of each row, splitting
// ties evenly.
func (k *Kit) LabelsFromConfidences(preds labels.Matrix) (labels.Matrix, error) {
	m, err := labels.FromConfidences(preds)
	return m, translateError(err)
}

// SavePairManifest generates index pairs for labelIDs and saves them as
// a manifest named name.
//
// The recorded seed regenerates the stored pairs with
// pairs.GenerateIndices(rand.New(rand.NewSource(seed)), ...). It is the
// Kit's seed when the manifest holds the Kit's first draws, and a seed
// drawn from the Kit's source otherwise. A Kit built with WithRand records
// no seed.
func (k *Kit) SavePairManifest(ctx context.Context, store *manifest.Store, name string, labelIDs []int, numClasses int, pos, neg float64, opts ...manifest.Option) (*manifest.Manifest, manifest.Header, error) {
	set, seed, err := k.generateIndices(ctx, labelIDs, numClasses, pos, neg, true)
	if err != nil {
		return nil, manifest.Header{}, err
	}

	m := manifest.FromIndexSet(set, len(labelIDs), numClasses, pos, neg)
	m.Seed = seed

	start := time.Now()
	h, err := store.Save(ctx, name, m, opts...)
	k.logger.LogManifest(ctx, "saved", name, m.Len(), err)
	k.metrics.RecordManifest(int(h.Length), time.Since(start), err)
	if err != nil {
		return nil, h, translateError(err)
	}
	return m, h, nil
}

// LoadPairManifest loads a manifest saved by SavePairManifest.
func (k *Kit) LoadPairManifest(ctx context.Context, store *manifest.Store, name string) (*manifest.Manifest, manifest.Header, error) {
	start := time.Now()
	m, h, err := store.Load(ctx, name)
	if err == nil {
		if verr := m.Validate(); verr != nil {
			err = fmt.Errorf("load manifest %q: %w", name, verr)
		}
	}

	n := 0
	if m != nil {
		n = m.Len()
	}
	k.logger.LogManifest(ctx, "loaded", name, n, err)
	k.metrics.RecordManifest(0, time.Since(start), err)
	if err != nil {
		return nil, h, translateError(err)
	}
	return m, h, nil
}
