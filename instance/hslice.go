package instance

import (
	"fmt"

	"github.com/sartorproj/gotsinstance/timeseries"
)

func (inst *Instance) dimension(dim int) (*timeseries.Series, error) {
	if dim < 0 || dim >= len(inst.dimensions) {
		return nil, fmt.Errorf("dimension %d of %d: %w", dim, len(inst.dimensions), ErrIndexOutOfRange)
	}
	return inst.dimensions[dim], nil
}

// HSliceValuesAt returns a copy of every value of dimension dim.
func (inst *Instance) HSliceValuesAt(dim int) ([]float64, error) {
	d, err := inst.dimension(dim)
	if err != nil {
		return nil, err
	}
	return d.ToSlice(), nil
}

// HSliceSeriesAt returns a copy of dimension dim.
func (inst *Instance) HSliceSeriesAt(dim int) (*timeseries.Series, error) {
	d, err := inst.dimension(dim)
	if err != nil {
		return nil, err
	}
	return d.Copy(), nil
}

// HSliceValues returns copies of the values of the given dimensions, in the
// order given. A dimension may be listed more than once.
func (inst *Instance) HSliceValues(dims []int) ([][]float64, error) {
	out := make([][]float64, len(dims))
	for i, dim := range dims {
		vals, err := inst.HSliceValuesAt(dim)
		if err != nil {
			return nil, err
		}
		out[i] = vals
	}
	return out, nil
}

// HSliceSeries is HSliceValues returning series copies.
func (inst *Instance) HSliceSeries(dims []int) ([]*timeseries.Series, error) {
	out := make([]*timeseries.Series, len(dims))
	for i, dim := range dims {
		s, err := inst.HSliceSeriesAt(dim)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// HSlice returns a new instance made of the given dimensions, in the order
// given. Label index, target value and class labels are kept.
func (inst *Instance) HSlice(dims ...int) (*Instance, error) {
	values, err := inst.HSliceValues(dims)
	if err != nil {
		return nil, err
	}
	return derive(values, inst)
}
