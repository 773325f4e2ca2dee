package instance

import "github.com/sartorproj/gotsinstance/timeseries"

// Shape tags the form in which raw dimension data is handed to New.
type Shape int

const (
	// ShapeArrays is one []float64 per dimension. Rows may differ in length.
	ShapeArrays Shape = iota
	// ShapeSequences is one Sequence per dimension, possibly already a Series.
	ShapeSequences
	// ShapeSeries is one pre-built *timeseries.Series per dimension.
	ShapeSeries
)

func (s Shape) String() string {
	switch s {
	case ShapeArrays:
		return "arrays"
	case ShapeSequences:
		return "sequences"
	case ShapeSeries:
		return "series"
	default:
		return "unknown"
	}
}

// Sequence is any ordered run of values that can become a dimension.
// *timeseries.Series and Values satisfy it.
type Sequence interface {
	Len() int
	ToSlice() []float64
}

// Values adapts a plain slice to Sequence.
type Values []float64

// Len returns the number of values.
func (v Values) Len() int { return len(v) }

// ToSlice returns a copy of the values.
func (v Values) ToSlice() []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

// Source is raw dimension data tagged with its Shape. The zero Source holds
// no dimensions and is rejected by New.
type Source struct {
	shape     Shape
	arrays    [][]float64
	sequences []Sequence
	series    []*timeseries.Series
}

// FromArrays wraps raw per-dimension arrays. Each row is copied into a new
// series during construction.
func FromArrays(data [][]float64) Source {
	return Source{shape: ShapeArrays, arrays: data}
}

// FromSequences wraps mixed per-dimension sequences. Elements that are
// already *timeseries.Series are used as-is, the rest are copied.
func FromSequences(seqs ...Sequence) Source {
	return Source{shape: ShapeSequences, sequences: seqs}
}

// FromSeries wraps pre-built series, which are used as-is. Series are
// immutable, so sharing them with the caller is safe.
func FromSeries(series ...*timeseries.Series) Source {
	return Source{shape: ShapeSeries, series: series}
}

// Shape reports the input shape of the source.
func (s Source) Shape() Shape {
	return s.shape
}

// dimensions converts the source into series. A nil result means the source
// carried no dimension list at all.
func (s Source) dimensions() []*timeseries.Series {
	switch s.shape {
	case ShapeArrays:
		if s.arrays == nil {
			return nil
		}
		out := make([]*timeseries.Series, len(s.arrays))
		for i, row := range s.arrays {
			out[i] = timeseries.New(row)
		}
		return out
	case ShapeSequences:
		if s.sequences == nil {
			return nil
		}
		out := make([]*timeseries.Series, len(s.sequences))
		for i, seq := range s.sequences {
			out[i] = asSeries(seq)
		}
		return out
	case ShapeSeries:
		if s.series == nil {
			return nil
		}
		out := make([]*timeseries.Series, len(s.series))
		copy(out, s.series)
		return out
	default:
		return nil
	}
}

// asSeries returns seq itself when it is already a series, otherwise a new
// series holding a copy of its values. A nil sequence yields nil.
func asSeries(seq Sequence) *timeseries.Series {
	switch v := seq.(type) {
	case nil:
		return nil
	case *timeseries.Series:
		return v
	case Values:
		return timeseries.New(v)
	default:
		// ToSlice may share the sequence's storage; New copies it.
		return timeseries.New(v.ToSlice())
	}
}
