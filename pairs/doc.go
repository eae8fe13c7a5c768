// Package pairs builds positive and negative sample pairs for similarity
// (metric) learning.
//
// For every dataset position the sampler emits one positive pair with a
// random member of the same class and, when the randomly chosen partner
// class is non-empty, one negative pair with a random member of that class:
//
//	rng := rand.New(rand.NewSource(42))
//	set, err := pairs.Generate(rng, samples, labels, 10, 1, 0)
//
// Pairs are emitted in class order, then in member (dataset position) order,
// and each positive pair precedes the negative pair of the same anchor.
// The generator is always passed explicitly; identical seeds and inputs
// produce identical sets.
//
// A generator is a single-owner resource. Do not share one between
// goroutines without external synchronization.
package pairs
