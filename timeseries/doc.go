// Package timeseries provides the Series type, one dimension of a time
// series instance.
//
// # Creating a Series
//
// Create a series from a slice. The values are copied:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// Attach timestamps when they are known:
//
//	series, err := timeseries.NewWithTimestamps(stamps, values)
//
// # Access
//
// Index access is bounds checked and fails with ErrIndexOutOfRange:
//
//	v, err := series.At(3)
//
// Iterate over all values:
//
//	for i, v := range series.All() {
//	    ...
//	}
//
// # Selecting by index
//
// Gather values at arbitrary indexes, keeping order and repeats:
//
//	vals, err := series.Gather([]int{4, 0, 0})  // array form
//	sub, err := series.Select([]int{4, 0, 0})   // Series form
//
// # Copying
//
// ToSlice and Copy never share storage with the receiver:
//
//	raw := series.ToSlice()
//	clone := series.Copy()
package timeseries
