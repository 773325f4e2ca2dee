// Package gotsinstance models a single time series sample for classification
// and regression.
//
// A sample (an instance) has one or more dimensions, which may differ in
// length and may contain missing (NaN) observations. It carries a class label,
// a regression target, or neither.
//
// # Quick Start
//
// Build a classified, multivariate instance and slice it:
//
//	inst, err := instance.NewClassified(
//	    [][]float64{{1, 2, 3}, {10, 20, 30}},
//	    1, []string{"walk", "run"},
//	)
//	row, err := inst.VSliceAt(1)   // [2 20]
//	sub, err := inst.HSlice(1, 0)  // dimensions swapped, label kept
//
// # Packages
//
// The library is organized into the following packages:
//
//   - instance: the Instance type, its validation, metadata and slicing
//   - timeseries: the Series type holding one dimension
//
// The demo directory holds a small command that builds sample instances and
// writes a JSON report of their metadata and slices.
package gotsinstance
