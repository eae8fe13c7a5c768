package pairs

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassIndex(t *testing.T) {
	ci, err := NewClassIndex([]int{2, 0, 2, 2, 0}, 4)
	require.NoError(t, err)

	assert.Equal(t, 4, ci.NumClasses())
	assert.Equal(t, 5, ci.Size())
	assert.Equal(t, 2, ci.Len(0))
	assert.Equal(t, 0, ci.Len(1))
	assert.Equal(t, 3, ci.Len(2))
	assert.Equal(t, 2, ci.NonEmpty())

	assert.Equal(t, []int{1, 4}, slices.Collect(ci.Members(0)))
	assert.Equal(t, []int{0, 2, 3}, slices.Collect(ci.Members(2)))
	assert.Empty(t, slices.Collect(ci.Members(1)))

	assert.Equal(t, 0, ci.At(2, 0))
	assert.Equal(t, 3, ci.At(2, 2))
	assert.Equal(t, 4, ci.At(0, 1))

	assert.True(t, ci.Contains(2, 3))
	assert.False(t, ci.Contains(0, 3))
	assert.False(t, ci.Contains(0, -1))

	assert.Panics(t, func() { ci.At(1, 0) })
}

func TestClassIndex_Errors(t *testing.T) {
	tests := []struct {
		name       string
		labels     []int
		numClasses int
	}{
		{name: "ZeroClasses", labels: []int{0}, numClasses: 0},
		{name: "NegativeClasses", labels: nil, numClasses: -3},
		{name: "LabelTooLarge", labels: []int{0, 3}, numClasses: 3},
		{name: "NegativeLabel", labels: []int{-1}, numClasses: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClassIndex(tt.labels, tt.numClasses)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestClassIndex_Empty(t *testing.T) {
	ci, err := NewClassIndex(nil, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, ci.Size())
	assert.Equal(t, 0, ci.NonEmpty())
}
