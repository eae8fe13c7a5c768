package prep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale(t *testing.T) {
	out, err := Scale([]uint8{0, 51, 255}, DefaultMaxValue)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{0, 0.2, 1}, out, 1e-6)

	out, err = Scale([]float64{-2, 4}, 4)
	require.NoError(t, err)
	assert.Equal(t, []float32{-0.5, 1}, out)

	_, err = Scale([]int{1}, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPreprocess(t *testing.T) {
	x, y, err := Preprocess([]uint8{255, 0, 0, 255}, []int{1, 0}, 2, DefaultMaxValue)
	require.NoError(t, err)

	assert.Equal(t, []float32{1, 0, 0, 1}, x)
	assert.Equal(t, [][]float64{{0, 1}, {1, 0}}, y.ToRows())

	_, _, err = Preprocess([]uint8{1}, []int{5}, 2, DefaultMaxValue)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
