// Package instance provides Instance, a single time series sample with one
// or more dimensions and an optional class label or regression target.
//
// Dimensions may differ in length and may contain NaN values. Metadata
// describing this is computed once at construction.
//
// # Constructing an Instance
//
// Raw arrays, one row per dimension:
//
//	inst, err := instance.NewUnlabelled([][]float64{{1, 2, 3}, {10, 20, 30}})
//
// A classification instance; the target value becomes the label index:
//
//	inst, err := instance.NewClassified(data, 1, []string{"walk", "run"})
//
// A regression instance:
//
//	inst, err := instance.NewRegressed(data, 42.5)
//
// The general form takes a Source tagged with its shape and a Label:
//
//	inst, err := instance.New(instance.FromSeries(a, b), instance.Classified(0, labels))
//
// Series passed through FromSeries or FromSequences are used without copying;
// a Series cannot change after construction.
// Inconsistent label information fails with ErrInvariantViolation, and a
// fractional label index given as float64 fails with ErrInvalidArgument.
//
// # Slicing
//
// A vertical slice gathers timestamp indexes across every dimension:
//
//	row, err := inst.VSliceAt(1)          // []float64{2, 20}
//	sub, err := inst.VSlice(2, 0, 0)      // new *Instance
//
// A horizontal slice selects whole dimensions:
//
//	swapped, err := inst.HSlice(1, 0)     // new *Instance
//
// Slices are new instances. They keep the label index, target value and
// class labels of their source.
//
// # Immutability
//
// Instance implements MutableList, but Insert, Replace, Clear and Remove
// always return ErrUnsupportedOperation. Every accessor that returns values
// or series returns a copy.
package instance
