package timeseries

import "errors"

var (
	// ErrIndexOutOfRange is returned when a value index is outside [0, Len()).
	ErrIndexOutOfRange = errors.New("timeseries: index out of range")

	// ErrLengthMismatch is returned when timestamps and values differ in length.
	ErrLengthMismatch = errors.New("timeseries: timestamps and values must have the same length")
)
