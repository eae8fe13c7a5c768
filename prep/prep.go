// Package prep scales raw pixel data and encodes labels for training.
package prep

import (
	"fmt"

	"github.com/hupe1980/advkit/internal/errs"
	"github.com/hupe1980/advkit/labels"
)

// ErrInvalidArgument is returned (wrapped) for every rejected input.
var ErrInvalidArgument = errs.ErrInvalidArgument

// DefaultMaxValue is the maximum raw value of 8-bit pixel data.
const DefaultMaxValue = 255

// Number is the set of raw element types Scale accepts.
type Number interface {
	~uint8 | ~uint16 | ~uint32 | ~int | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Scale divides every element by maxValue.
// For values in [0, maxValue] the result lies in [0, 1].
func Scale[T Number](x []T, maxValue float64) ([]float32, error) {
	if maxValue <= 0 {
		return nil, fmt.Errorf("%w: max value must be positive, got %v", ErrInvalidArgument, maxValue)
	}
	out := make([]float32, len(x))
	for i, v := range x {
		out[i] = float32(float64(v) / maxValue)
	}
	return out, nil
}

// Preprocess scales x and one-hot encodes ids with numClasses columns.
func Preprocess[T Number](x []T, ids []int, numClasses int, maxValue float64) ([]float32, labels.Matrix, error) {
	scaled, err := Scale(x, maxValue)
	if err != nil {
		return nil, labels.Matrix{}, err
	}
	y, err := labels.ToCategorical(ids, numClasses)
	if err != nil {
		return nil, labels.Matrix{}, err
	}
	return scaled, y, nil
}
