// Package advkit provides training-data utilities for metric learning and
// adversarial robustness experiments.
//
// # Pair Sampling
//
// The pairs package builds labeled positive/negative pairs for siamese and
// contrastive training. For every sample it draws one partner from the same
// class (score pos) and, when the other class is non-empty, one partner from
// a uniformly chosen different class (score neg):
//
//	kit := advkit.New(advkit.WithSeed(42))
//	set, err := advkit.GeneratePairs(ctx, kit, images, labels, 10, 1, -1)
//
// # Label Utilities
//
// The labels package converts between class ids and one-hot matrices, draws
// random wrong-class targets and reads confidences:
//
//	targets, err := kit.RandomTargets(ctx, labels.Scalar(ids), 10)
//	confs, ids, err := kit.LabelConf(predictions)
//
// # Reproducibility
//
// Every random operation takes an explicit random source. A Kit owns one,
// seeded through WithSeed or supplied through WithRand, and serialises
// access to it. Identical seeds and call orders give identical results.
//
// Pair sets can be persisted as compressed, checksummed manifests on any
// blobstore.BlobStore (local disk, MinIO, S3):
//
//	store := manifest.NewStore(blobstore.NewLocalStore("./runs"))
//	m, _, err := kit.SavePairManifest(ctx, store, "mnist-train", labels, 10, 1, -1)
//
// # Observability
//
// WithLogger attaches a structured slog-based Logger and
// WithMetricsCollector a MetricsCollector. Both default to no-ops.
package advkit
