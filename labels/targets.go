package labels

import "fmt"

// RNG is the random source used for target selection. *math/rand.Rand
// satisfies it.
type RNG interface {
	Intn(n int) int
}

// TargetMode selects how random targets are drawn.
type TargetMode uint8

const (
	// PerSample draws an independent target for every sample.
	PerSample TargetMode = iota
	// PerClass draws one target per class id 0..numClasses-1, in order, and
	// assigns it to every sample of that class. A draw is made for every
	// class, present or not, so outputs match the legacy tool for the same
	// draw sequence.
	PerClass
)

func (m TargetMode) String() string {
	switch m {
	case PerSample:
		return "per-sample"
	case PerClass:
		return "per-class"
	default:
		return fmt.Sprintf("TargetMode(%d)", uint8(m))
	}
}

// ParseTargetMode parses the String form of a TargetMode.
func ParseTargetMode(s string) (TargetMode, error) {
	switch s {
	case "per-sample", "":
		return PerSample, nil
	case "per-class", "legacy":
		return PerClass, nil
	default:
		return 0, fmt.Errorf("%w: unknown target mode %q", ErrInvalidArgument, s)
	}
}

// RandomTargetIDs returns, for every sample, a class id different from its
// true class.
func RandomTargetIDs(rng RNG, in Input, numClasses int, mode TargetMode) ([]int, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidArgument)
	}
	if numClasses < 2 {
		return nil, fmt.Errorf("%w: random targets need at least 2 classes, got %d", ErrInvalidArgument, numClasses)
	}
	ids, err := in.IDs()
	if err != nil {
		return nil, err
	}
	if err := checkRange(ids, numClasses); err != nil {
		return nil, err
	}

	out := make([]int, len(ids))
	switch mode {
	case PerSample:
		for i, c := range ids {
			out[i] = otherClass(rng, c, numClasses)
		}
	case PerClass:
		shared := make([]int, numClasses)
		for c := range shared {
			shared[c] = otherClass(rng, c, numClasses)
		}
		for i, c := range ids {
			out[i] = shared[c]
		}
	default:
		return nil, fmt.Errorf("%w: unknown target mode %d", ErrInvalidArgument, mode)
	}
	return out, nil
}

// RandomTargets is RandomTargetIDs encoded as a one-hot matrix.
func RandomTargets(rng RNG, in Input, numClasses int, mode TargetMode) (Matrix, error) {
	ids, err := RandomTargetIDs(rng, in, numClasses, mode)
	if err != nil {
		return Matrix{}, err
	}
	return ToCategorical(ids, numClasses)
}

// otherClass draws uniformly from [0, numClasses) \ {c}.
func otherClass(rng RNG, c, numClasses int) int {
	t := rng.Intn(numClasses - 1)
	if t >= c {
		t++
	}
	return t
}
