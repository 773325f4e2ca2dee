package instance

import (
	"fmt"

	"github.com/sartorproj/gotsinstance/timeseries"
)

// VSliceAt returns the value at timestamp index from every dimension, in
// dimension order.
func (inst *Instance) VSliceAt(index int) ([]float64, error) {
	out := make([]float64, len(inst.dimensions))
	for i, d := range inst.dimensions {
		v, err := d.At(index)
		if err != nil {
			return nil, fmt.Errorf("vertical slice of dimension %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// VSliceValues returns, for every dimension, the values at the given
// timestamp indexes. Order and repeats in indexes are preserved.
func (inst *Instance) VSliceValues(indexes []int) ([][]float64, error) {
	out := make([][]float64, len(inst.dimensions))
	for i, d := range inst.dimensions {
		vals, err := d.Gather(indexes)
		if err != nil {
			return nil, fmt.Errorf("vertical slice of dimension %d: %w", i, err)
		}
		out[i] = vals
	}
	return out, nil
}

// VSliceSeries is VSliceValues returning series, which keep the names and
// timestamps of their source dimensions.
func (inst *Instance) VSliceSeries(indexes []int) ([]*timeseries.Series, error) {
	out := make([]*timeseries.Series, len(inst.dimensions))
	for i, d := range inst.dimensions {
		s, err := d.Select(indexes)
		if err != nil {
			return nil, fmt.Errorf("vertical slice of dimension %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

// VSlice returns a new instance holding only the given timestamp indexes of
// every dimension. Label index, target value and class labels are kept.
func (inst *Instance) VSlice(indexes ...int) (*Instance, error) {
	values, err := inst.VSliceValues(indexes)
	if err != nil {
		return nil, err
	}
	return derive(values, inst)
}

// TransposedValues returns the values indexed by timestamp first: row i is
// VSliceAt(i) for i in [0, MaxLength()). Instances whose dimensions differ in
// length fail with ErrIndexOutOfRange from the first dimension too short to
// supply a row.
func (inst *Instance) TransposedValues() ([][]float64, error) {
	out := make([][]float64, inst.maxLength)
	for i := range inst.maxLength {
		row, err := inst.VSliceAt(i)
		if err != nil {
			return nil, fmt.Errorf("transpose: %w", err)
		}
		out[i] = row
	}
	return out, nil
}
