package pairs

import "fmt"

// RNG is the random source used for sampling. *math/rand.Rand satisfies it.
type RNG interface {
	// Intn returns a uniformly distributed integer in [0, n). n > 0.
	Intn(n int) int
}

// IndexPair is a pair expressed as dataset positions.
type IndexPair struct {
	First  int `json:"first"`
	Second int `json:"second"`
}

// IndexSet is a generated pair set in position form.
//
// Pairs and Scores are index-aligned.
type IndexSet struct {
	Pairs     []IndexPair
	Scores    []float64
	Positives int
	Negatives int
}

// Len returns the number of pairs.
func (s *IndexSet) Len() int { return len(s.Pairs) }

// Pair is a pair of samples together with their dataset positions.
//
// When S is a slice or pointer type the samples alias the caller's data.
type Pair[S any] struct {
	First       S
	Second      S
	FirstIndex  int
	SecondIndex int
}

// Set is a generated pair set holding sample values.
//
// Pairs and Scores are index-aligned.
type Set[S any] struct {
	Pairs     []Pair[S]
	Scores    []float64
	Positives int
	Negatives int
}

// Len returns the number of pairs.
func (s *Set[S]) Len() int { return len(s.Pairs) }

// Generate builds one positive pair per sample and, when the drawn partner
// class has members, one negative pair per sample.
//
// See GenerateIndices for the sampling procedure and the validated
// preconditions.
func Generate[S any](rng RNG, samples []S, labels []int, numClasses int, pos, neg float64) (*Set[S], error) {
	if len(samples) != len(labels) {
		return nil, &ErrLengthMismatch{Samples: len(samples), Labels: len(labels)}
	}

	idx, err := GenerateIndices(rng, labels, numClasses, pos, neg)
	if err != nil {
		return nil, err
	}

	set := &Set[S]{
		Pairs:     make([]Pair[S], len(idx.Pairs)),
		Scores:    idx.Scores,
		Positives: idx.Positives,
		Negatives: idx.Negatives,
	}
	for i, p := range idx.Pairs {
		set.Pairs[i] = Pair[S]{
			First:       samples[p.First],
			Second:      samples[p.Second],
			FirstIndex:  p.First,
			SecondIndex: p.Second,
		}
	}
	return set, nil
}

// Validate reports whether labels and numClasses are accepted by
// GenerateIndices, without drawing.
func Validate(labels []int, numClasses int) error {
	if numClasses <= 1 {
		return &ErrInvalidNumClasses{NumClasses: numClasses}
	}
	return checkLabels(labels, numClasses)
}

// GenerateIndices is Generate over positions only.
//
// For each class c in 0..numClasses-1 and each member position in ascending
// order, it draws in this order:
//
//  1. j in [0, n_c): the positive partner is the j-th member of c
//     (self-pairing allowed);
//  2. r in [1, numClasses): the partner class is d = (c + r) mod numClasses;
//  3. if n_d > 0, j in [0, n_d): the negative partner is the j-th member of d.
//
// numClasses must be at least 2 and every label must lie in [0, numClasses).
// Validation happens before the first draw, so no generator state is
// consumed on error.
func GenerateIndices(rng RNG, labels []int, numClasses int, pos, neg float64) (*IndexSet, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidArgument)
	}
	if numClasses <= 1 {
		return nil, &ErrInvalidNumClasses{NumClasses: numClasses}
	}

	ci, err := NewClassIndex(labels, numClasses)
	if err != nil {
		return nil, err
	}

	set := &IndexSet{
		Pairs:  make([]IndexPair, 0, 2*len(labels)),
		Scores: make([]float64, 0, 2*len(labels)),
	}

	for c := 0; c < numClasses; c++ {
		nc := ci.Len(c)
		for anchor := range ci.Members(c) {
			j := rng.Intn(nc)
			set.Pairs = append(set.Pairs, IndexPair{First: anchor, Second: ci.At(c, j)})
			set.Scores = append(set.Scores, pos)
			set.Positives++

			d := (c + 1 + rng.Intn(numClasses-1)) % numClasses
			nd := ci.Len(d)
			if nd == 0 {
				continue
			}
			j = rng.Intn(nd)
			set.Pairs = append(set.Pairs, IndexPair{First: anchor, Second: ci.At(d, j)})
			set.Scores = append(set.Scores, neg)
			set.Negatives++
		}
	}

	return set, nil
}
