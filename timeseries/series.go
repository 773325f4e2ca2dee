// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"
	"time"
)

// Series represents a single dimension of observations with optional timestamps.
// A Series is immutable: its storage is private and every accessor returning
// a slice returns a copy.
type Series struct {
	timestamps []time.Time
	values     []float64
	name       string
}

// Option configures a Series at construction.
type Option func(*Series)

// WithName sets the name of the series.
func WithName(name string) Option {
	return func(s *Series) {
		s.name = name
	}
}

// New creates a new series from values. The values are copied.
func New(values []float64, opts ...Option) *Series {
	v := make([]float64, len(values))
	copy(v, values)
	return build(nil, v, opts)
}

// NewWithTimestamps creates a series with explicit timestamps. Both slices are copied.
func NewWithTimestamps(timestamps []time.Time, values []float64, opts ...Option) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, fmt.Errorf("%w: %d timestamps, %d values", ErrLengthMismatch, len(timestamps), len(values))
	}
	ts := make([]time.Time, len(timestamps))
	copy(ts, timestamps)
	v := make([]float64, len(values))
	copy(v, values)
	return build(ts, v, opts), nil
}

// build takes ownership of timestamps and values.
func build(timestamps []time.Time, values []float64, opts []Option) *Series {
	s := &Series{timestamps: timestamps, values: values}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.values)
}

// Name returns the name of the series, empty if unnamed.
func (s *Series) Name() string {
	return s.name
}

// Timestamps returns a copy of the timestamps, nil if the series has none.
func (s *Series) Timestamps() []time.Time {
	if s.timestamps == nil {
		return nil
	}
	out := make([]time.Time, len(s.timestamps))
	copy(out, s.timestamps)
	return out
}

// hasTimestamps reports whether every value carries a timestamp.
func (s *Series) hasTimestamps() bool {
	return len(s.timestamps) > 0 && len(s.timestamps) == len(s.values)
}

// At returns the value at index i.
func (s *Series) At(i int) (float64, error) {
	if i < 0 || i >= len(s.values) {
		return math.NaN(), fmt.Errorf("Series.At(%d) with length %d: %w", i, len(s.values), ErrIndexOutOfRange)
	}
	return s.values[i], nil
}

// ToSlice returns a copy of the values.
func (s *Series) ToSlice() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// All iterates over index/value pairs in order.
func (s *Series) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, v := range s.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// HasNaN reports whether any value is NaN.
func (s *Series) HasNaN() bool {
	for _, v := range s.All() {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// Gather returns the values at the given indexes, in the order given.
// Repeated and unordered indexes are allowed.
func (s *Series) Gather(indexes []int) ([]float64, error) {
	out := make([]float64, len(indexes))
	for k, i := range indexes {
		v, err := s.At(i)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// Select returns a new series holding the values at the given indexes.
// Timestamps follow their values when the series has them.
func (s *Series) Select(indexes []int) (*Series, error) {
	values, err := s.Gather(indexes)
	if err != nil {
		return nil, err
	}

	var timestamps []time.Time
	if s.hasTimestamps() {
		timestamps = make([]time.Time, len(indexes))
		for k, i := range indexes {
			timestamps[k] = s.timestamps[i]
		}
	}

	return build(timestamps, values, []Option{WithName(s.name)}), nil
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	return build(s.Timestamps(), s.ToSlice(), []Option{WithName(s.name)})
}

// String renders the values as a comma separated list, prefixed by the name if set.
func (s *Series) String() string {
	var sb strings.Builder
	if s.name != "" {
		sb.WriteString(s.name)
		sb.WriteString(": ")
	}
	for i, v := range s.values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return sb.String()
}
