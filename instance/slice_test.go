package instance

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gotsinstance/timeseries"
)

func newTestInstance(t *testing.T) *Instance {
	t.Helper()
	inst, err := NewClassified([][]float64{{1, 2, 3}, {10, 20, 30}}, 1, []string{"a", "b"})
	require.NoError(t, err)
	return inst
}

func assertSameLabelling(t *testing.T, want, got *Instance) {
	t.Helper()
	assert.Equal(t, want.LabelIndex(), got.LabelIndex())
	assert.Equal(t, want.ClassLabels(), got.ClassLabels())
	if math.IsNaN(want.TargetValue()) {
		assert.True(t, math.IsNaN(got.TargetValue()))
	} else {
		assert.Equal(t, want.TargetValue(), got.TargetValue())
	}
}

func TestVSliceAt(t *testing.T) {
	inst := newTestInstance(t)

	row, err := inst.VSliceAt(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 20}, row)

	// matches direct access on every dimension
	for i := range inst.MaxLength() {
		row, err := inst.VSliceAt(i)
		require.NoError(t, err)
		for d := range inst.NumDimensions() {
			s, err := inst.Get(d)
			require.NoError(t, err)
			v, err := s.At(i)
			require.NoError(t, err)
			assert.Equal(t, v, row[d])
		}
	}

	_, err = inst.VSliceAt(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = inst.VSliceAt(-1)
	assert.ErrorIs(t, err, timeseries.ErrIndexOutOfRange)
}

func TestVSliceValues(t *testing.T) {
	inst := newTestInstance(t)

	got, err := inst.VSliceValues([]int{2, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 1, 1}, {30, 10, 10}}, got)

	_, err = inst.VSliceValues([]int{0, 7})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestVSliceSeries(t *testing.T) {
	base := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	stamps := []time.Time{base, base.Add(time.Minute), base.Add(2 * time.Minute)}
	a, err := timeseries.NewWithTimestamps(stamps, []float64{1, 2, 3}, timeseries.WithName("x"))
	require.NoError(t, err)
	b := timeseries.New([]float64{4, 5, 6})

	inst, err := New(FromSeries(a, b), Unlabelled())
	require.NoError(t, err)

	got, err := inst.VSliceSeries([]int{1, 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []float64{2, 3}, got[0].ToSlice())
	assert.Equal(t, stamps[1:], got[0].Timestamps())
	assert.Equal(t, "x", got[0].Name())
	assert.Equal(t, []float64{5, 6}, got[1].ToSlice())

	_, err = inst.VSliceSeries([]int{3})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestVSlice(t *testing.T) {
	inst := newTestInstance(t)

	sub, err := inst.VSlice(2, 0)
	require.NoError(t, err)
	assert.NotSame(t, inst, sub)
	assert.Equal(t, [][]float64{{3, 1}, {30, 10}}, sub.ToValueArray())
	assertSameLabelling(t, inst, sub)

	_, err = inst.VSlice(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	// source untouched
	assert.Equal(t, [][]float64{{1, 2, 3}, {10, 20, 30}}, inst.ToValueArray())
}

func TestVSliceUnequalLength(t *testing.T) {
	inst, err := NewRegressed([][]float64{{1, 2, 3}, {4}}, 0.5)
	require.NoError(t, err)

	_, err = inst.VSliceAt(0)
	assert.NoError(t, err)

	_, err = inst.VSliceAt(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange, "shorter dimension cannot supply index 1")
}

func TestTransposedValues(t *testing.T) {
	inst, err := NewUnlabelled([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	got, err := inst.TransposedValues()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 3}, {2, 4}}, got)

	wide, err := NewUnlabelled([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	got, err = wide.TransposedValues()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, got)
}

func TestTransposedValuesUnequalLength(t *testing.T) {
	inst, err := NewUnlabelled([][]float64{{1, 2, 3}, {4, 5}})
	require.NoError(t, err)

	got, err := inst.TransposedValues()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Nil(t, got)
}

func TestHSliceValuesAt(t *testing.T) {
	inst := newTestInstance(t)

	got, err := inst.HSliceValuesAt(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, got)

	got[0] = 100
	again, err := inst.HSliceValuesAt(1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, again[0])

	_, err = inst.HSliceValuesAt(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = inst.HSliceValuesAt(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestHSliceValues(t *testing.T) {
	inst := newTestInstance(t)

	tests := []struct {
		name string
		dims []int
		want [][]float64
	}{
		{"reversed", []int{1, 0}, [][]float64{{10, 20, 30}, {1, 2, 3}}},
		{"duplicated", []int{0, 0}, [][]float64{{1, 2, 3}, {1, 2, 3}}},
		{"single", []int{1}, [][]float64{{10, 20, 30}}},
		{"none", []int{}, [][]float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := inst.HSliceValues(tt.dims)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := inst.HSliceValues([]int{0, 3})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestHSliceSeries(t *testing.T) {
	a := timeseries.New([]float64{1, 2}, timeseries.WithName("a"))
	b := timeseries.New([]float64{3}, timeseries.WithName("b"))
	inst, err := New(FromSeries(a, b), Regressed(1.5))
	require.NoError(t, err)

	got, err := inst.HSliceSeries([]int{1, 0, 1})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].Name())
	assert.Equal(t, "a", got[1].Name())
	assert.Equal(t, []float64{3}, got[2].ToSlice())
	assert.NotSame(t, b, got[0])

	one, err := inst.HSliceSeriesAt(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, one.ToSlice())

	_, err = inst.HSliceSeries([]int{2})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestHSlice(t *testing.T) {
	inst := newTestInstance(t)

	swapped, err := inst.HSlice(1, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{10, 20, 30}, {1, 2, 3}}, swapped.ToValueArray())
	assertSameLabelling(t, inst, swapped)

	doubled, err := inst.HSlice(0, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}, {1, 2, 3}}, doubled.ToValueArray())

	_, err = inst.HSlice(4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = inst.HSlice()
	assert.ErrorIs(t, err, ErrInvariantViolation, "an instance needs at least one dimension")
}

func TestSlicesPreserveLabelling(t *testing.T) {
	unlabelled, err := NewUnlabelled([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	regressed, err := NewRegressed([][]float64{{1, 2}, {3, 4}}, -2.75)
	require.NoError(t, err)
	classified, err := NewClassified([][]float64{{1, 2}, {3, 4}}, 2, []string{"x", "y", "z"})
	require.NoError(t, err)

	for _, src := range []*Instance{unlabelled, regressed, classified} {
		v, err := src.VSlice(1)
		require.NoError(t, err)
		assertSameLabelling(t, src, v)

		h, err := src.HSlice(1)
		require.NoError(t, err)
		assertSameLabelling(t, src, h)
	}
}

func TestSliceDoesNotAliasSource(t *testing.T) {
	data := [][]float64{{1, 2}}
	inst, err := NewUnlabelled(data)
	require.NoError(t, err)

	sub, err := inst.HSlice(0)
	require.NoError(t, err)

	data[0][0] = 100
	got, err := sub.HSliceValuesAt(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, got)
	assert.Equal(t, [][]float64{{1, 2}}, inst.ToValueArray())
}
