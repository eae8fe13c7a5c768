package testutil

import (
	"fmt"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Labels returns n labels drawn uniformly from [0, numClasses).
func (r *RNG) Labels(n, numClasses int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(numClasses)
	}
	return out
}

// Confidences returns a rows x cols row-major matrix of values in [0, 1).
// Each row is normalised to sum to one.
func (r *RNG) Confidences(rows, cols int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, rows*cols)
	for i := range rows {
		row := data[i*cols : (i+1)*cols]
		var sum float64
		for j := range row {
			row[j] = r.rand.Float64() + 1e-9
			sum += row[j]
		}
		for j := range row {
			row[j] /= sum
		}
	}
	return data
}

// ScriptedRNG replays a fixed sequence of draws.
//
// Intn panics when the script is exhausted or when the next value is not in
// [0, n), so a test fails loudly if the code under test draws in an
// unexpected order.
type ScriptedRNG struct {
	values []int
	pos    int
	calls  []int
}

// NewScriptedRNG returns a ScriptedRNG replaying values in order.
func NewScriptedRNG(values ...int) *ScriptedRNG {
	return &ScriptedRNG{values: values}
}

// Intn returns the next scripted value.
func (s *ScriptedRNG) Intn(n int) int {
	if s.pos >= len(s.values) {
		panic(fmt.Sprintf("testutil: scripted rng exhausted after %d draws (next bound %d)", s.pos, n))
	}
	v := s.values[s.pos]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("testutil: scripted draw %d is %d, outside [0, %d)", s.pos, v, n))
	}
	s.pos++
	s.calls = append(s.calls, n)
	return v
}

// Bounds returns the n argument of every Intn call so far.
func (s *ScriptedRNG) Bounds() []int {
	return s.calls
}

// Remaining returns the number of unused scripted values.
func (s *ScriptedRNG) Remaining() int {
	return len(s.values) - s.pos
}

// InterleavedDataset builds samples and labels where class c has
// classSizes[c] members. Classes are interleaved round-robin so members of
// one class are not contiguous. Sample names are "c<class>-<k>".
func InterleavedDataset(classSizes []int) ([]string, []int) {
	var (
		samples []string
		labels  []int
	)
	remaining := append([]int(nil), classSizes...)
	taken := make([]int, len(classSizes))
	for {
		progressed := false
		for c := range remaining {
			if remaining[c] == 0 {
				continue
			}
			samples = append(samples, fmt.Sprintf("c%d-%d", c, taken[c]))
			labels = append(labels, c)
			taken[c]++
			remaining[c]--
			progressed = true
		}
		if !progressed {
			return samples, labels
		}
	}
}

// LabelOf returns a lookup from sample value to label.
func LabelOf[S comparable](samples []S, labels []int) map[S]int {
	m := make(map[S]int, len(samples))
	for i, s := range samples {
		m[s] = labels[i]
	}
	return m
}
