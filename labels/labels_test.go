package labels

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/hupe1980/advkit/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	assert.Equal(t, 3, m.Rows)
	assert.Equal(t, 2, m.Cols)
	assert.Equal(t, 4.0, m.At(1, 1))
	assert.Equal(t, []float64{5, 6}, m.Row(2))

	m.Set(0, 1, 9)
	assert.Equal(t, [][]float64{{1, 9}, {3, 4}, {5, 6}}, m.ToRows())

	_, err = FromRows([][]float64{{1}, {2, 3}})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	empty, err := FromRows(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows)
}

func TestToCategorical(t *testing.T) {
	m, err := ToCategorical([]int{2, 0, 1}, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}, m.ToRows())
	assert.Equal(t, []int{2, 0, 1}, Argmax(m))

	_, err = ToCategorical([]int{3}, 3)
	var oor *ErrLabelOutOfRange
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, 3, oor.Label)

	_, err = ToCategorical([]int{0}, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestInput(t *testing.T) {
	s := Scalar([]int{1, 0})
	assert.Equal(t, KindScalar, s.Kind())
	assert.Equal(t, 2, s.Len())
	ids, err := s.IDs()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, ids)

	m, _ := FromRows([][]float64{{0, 0, 1}, {0.2, 0.7, 0.1}})
	oh := OneHot(m)
	assert.Equal(t, KindOneHot, oh.Kind())
	assert.Equal(t, "one-hot", oh.Kind().String())
	assert.Equal(t, 2, oh.Len())
	ids, err = oh.IDs()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, ids)

	_, err = OneHot(Matrix{Rows: 2, Cols: 2, Data: []float64{1}}).IDs()
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRandomTargetIDs_PerSample(t *testing.T) {
	rng := testutil.NewScriptedRNG(0, 0, 1, 1)

	out, err := RandomTargetIDs(rng, Scalar([]int{2, 0, 2, 1}), 3, PerSample)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 2}, out)
	assert.Equal(t, []int{2, 2, 2, 2}, rng.Bounds())
}

func TestRandomTargetIDs_PerClass(t *testing.T) {
	rng := testutil.NewScriptedRNG(1, 0, 1)

	out, err := RandomTargetIDs(rng, Scalar([]int{2, 0, 2, 1}), 3, PerClass)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1, 0}, out)
	assert.Equal(t, 0, rng.Remaining())
}

func TestRandomTargets_NeverTrueClass(t *testing.T) {
	data := testutil.NewRNG(7)
	ids := data.Labels(1000, 10)
	truth, err := ToCategorical(ids, 10)
	require.NoError(t, err)

	for _, mode := range []TargetMode{PerSample, PerClass} {
		t.Run(mode.String(), func(t *testing.T) {
			m, err := RandomTargets(rand.New(rand.NewSource(1)), OneHot(truth), 10, mode)
			require.NoError(t, err)
			require.Equal(t, 1000, m.Rows)
			require.Equal(t, 10, m.Cols)

			targets := Argmax(m)
			for i, target := range targets {
				assert.NotEqual(t, ids[i], target)
			}

			if mode == PerClass {
				byClass := map[int]int{}
				for i, target := range targets {
					if prev, ok := byClass[ids[i]]; ok {
						assert.Equal(t, prev, target)
					}
					byClass[ids[i]] = target
				}
			}
		})
	}
}

func TestRandomTargetIDs_Errors(t *testing.T) {
	rng := testutil.NewScriptedRNG()

	_, err := RandomTargetIDs(rng, Scalar([]int{0}), 1, PerSample)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = RandomTargetIDs(rng, Scalar([]int{0, 4}), 3, PerSample)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = RandomTargetIDs(rng, Scalar([]int{0}), 3, TargetMode(9))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = RandomTargetIDs(nil, Scalar([]int{0}), 3, PerSample)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Empty(t, rng.Bounds())
}

func TestParseTargetMode(t *testing.T) {
	m, err := ParseTargetMode("legacy")
	require.NoError(t, err)
	assert.Equal(t, PerClass, m)

	m, err = ParseTargetMode("")
	require.NoError(t, err)
	assert.Equal(t, PerSample, m)

	_, err = ParseTargetMode("other")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLabelConf(t *testing.T) {
	m, _ := FromRows([][]float64{
		{0.1, 0.7, 0.2},
		{0.5, 0.5, 0.0},
		{0.0, 0.0, 0.9},
	})

	confs, ids, err := LabelConf(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.7, 0.5, 0.9}, confs)
	assert.Equal(t, []int{1, 0, 2}, ids)

	_, _, err = LabelConf(Matrix{Rows: 2, Cols: 0})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFromConfidences(t *testing.T) {
	m, _ := FromRows([][]float64{
		{0.1, 0.7, 0.2},
		{0.4, 0.4, 0.2},
		{0.3, 0.3, 0.3},
	})

	out, err := FromConfidences(m)
	require.NoError(t, err)
	want := [][]float64{
		{0, 1, 0},
		{0.5, 0.5, 0},
		{1.0 / 3, 1.0 / 3, 1.0 / 3},
	}
	for i, row := range out.ToRows() {
		assert.InDeltaSlice(t, want[i], row, 1e-12)
	}

	ind, err := MaxIndicator(m)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1, 0}, {1, 1, 0}, {1, 1, 1}}, ind.ToRows())
}

func TestFromConfidences_BadShape(t *testing.T) {
	bad := Matrix{Rows: 2, Cols: 2, Data: []float64{1}}

	_, err := FromConfidences(bad)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	var se *ErrShape
	assert.ErrorAs(t, err, &se)

	_, err = MaxIndicator(bad)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = MaxIndicator(Matrix{Rows: -1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFromConfidences_RowsSumToOne(t *testing.T) {
	data := testutil.NewRNG(3).Confidences(50, 6)
	out, err := FromConfidences(Matrix{Rows: 50, Cols: 6, Data: data})
	require.NoError(t, err)

	for i := 0; i < out.Rows; i++ {
		var sum float64
		for _, v := range out.Row(i) {
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-12)
	}
}
