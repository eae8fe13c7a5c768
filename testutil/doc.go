// Package testutil provides testing utilities for advkit.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded and scripted random sources, labeled dataset builders
// and confidence-matrix generators.
//
// # Random Sources
//
//	rng := testutil.NewRNG(seed)           // reproducible, safe for concurrent use
//	script := testutil.NewScriptedRNG(0, 1) // returns fixed draws in order
//
// # Datasets
//
//	samples, labels := testutil.InterleavedDataset([]int{3, 0, 2})
package testutil
