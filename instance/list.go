package instance

import (
	"fmt"
	"iter"

	"github.com/sartorproj/gotsinstance/timeseries"
)

// List is a read-only, index addressable sequence of dimensions.
type List interface {
	Len() int
	Get(i int) (*timeseries.Series, error)
	All() iter.Seq2[int, *timeseries.Series]
}

// MutableList adds the mutation entry points of a general list. Instance
// satisfies it only so that mutation attempts fail loudly with
// ErrUnsupportedOperation.
type MutableList interface {
	List
	Insert(i int, s *timeseries.Series) error
	Replace(i int, s *timeseries.Series) (*timeseries.Series, error)
	Clear() error
	Remove(i int) (*timeseries.Series, error)
}

var _ MutableList = (*Instance)(nil)

// Len returns the number of dimensions.
func (inst *Instance) Len() int {
	return len(inst.dimensions)
}

// Get returns a copy of dimension i.
func (inst *Instance) Get(i int) (*timeseries.Series, error) {
	return inst.HSliceSeriesAt(i)
}

// All iterates over copies of the dimensions in order.
func (inst *Instance) All() iter.Seq2[int, *timeseries.Series] {
	return func(yield func(int, *timeseries.Series) bool) {
		for i, d := range inst.dimensions {
			if !yield(i, d.Copy()) {
				return
			}
		}
	}
}

// Insert always fails with ErrUnsupportedOperation.
func (inst *Instance) Insert(i int, _ *timeseries.Series) error {
	return fmt.Errorf("Insert(%d): %w", i, ErrUnsupportedOperation)
}

// Replace always fails with ErrUnsupportedOperation.
func (inst *Instance) Replace(i int, _ *timeseries.Series) (*timeseries.Series, error) {
	return nil, fmt.Errorf("Replace(%d): %w", i, ErrUnsupportedOperation)
}

// Clear always fails with ErrUnsupportedOperation.
func (inst *Instance) Clear() error {
	return fmt.Errorf("Clear: %w", ErrUnsupportedOperation)
}

// Remove always fails with ErrUnsupportedOperation.
func (inst *Instance) Remove(i int) (*timeseries.Series, error) {
	return nil, fmt.Errorf("Remove(%d): %w", i, ErrUnsupportedOperation)
}
