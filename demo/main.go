// Package main demonstrates construction, metadata and slicing of time
// series instances.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gotsinstance/instance"
	"github.com/sartorproj/gotsinstance/timeseries"
)

// Sample defines one instance to build and inspect
type Sample struct {
	Name        string      // Display name
	Description string      // Brief description
	Data        [][]float64 // One row per dimension
	Names       []string    // Dimension names (optional)
	Mode        string      // "unlabelled", "regression" or "classification"
	Target      float64     // Regression target
	LabelIndex  float64     // Classification label index, must be whole
	ClassLabels []string    // Classification labels
	VIndexes    []int       // Timestamp indexes for the vertical slice
	HDims       []int       // Dimension indexes for the horizontal slice
}

// SliceResult holds the values of one slice for JSON export
type SliceResult struct {
	Indexes []int        `json:"indexes"`
	Values  [][]*float64 `json:"values,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// SampleResult holds the inspection results for one sample
type SampleResult struct {
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Dimensions     int          `json:"dimensions"`
	LabelIndex     int          `json:"label_index"`
	ClassLabel     string       `json:"class_label,omitempty"`
	Target         *float64     `json:"target,omitempty"`
	Multivariate   bool         `json:"multivariate"`
	EqualLength    bool         `json:"equal_length"`
	MinLength      int          `json:"min_length"`
	MaxLength      int          `json:"max_length"`
	HasMissing     bool         `json:"has_missing"`
	EquallySpaced  bool         `json:"equally_spaced"`
	VSlice         SliceResult  `json:"vslice"`
	HSlice         SliceResult  `json:"hslice"`
	Transposed     [][]*float64 `json:"transposed,omitempty"`
	TransposeError string       `json:"transpose_error,omitempty"`
}

// OutputData holds all results
type OutputData struct {
	Samples []SampleResult `json:"samples"`
}

type options struct {
	output   string
	logLevel string
}

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "demo",
		Short:         "Build sample time series instances and report their metadata and slices",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), logger, opts)
		},
	}
	cmd.Flags().StringVar(&opts.output, "output", "instance_results.json", "JSON report path, empty to skip the export")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	return cmd
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func defaultSamples() []Sample {
	nan := math.NaN()
	return []Sample{
		{
			Name: "Univariate", Description: "Single channel, no label",
			Data: [][]float64{{1, 2, 3, 4, 5}}, Mode: "unlabelled",
			VIndexes: []int{4, 0, 0}, HDims: []int{0, 0},
		},
		{
			Name: "Accelerometer", Description: "Three equal length channels, classified",
			Data:  [][]float64{{0.1, 0.3, 0.2, 0.4}, {1.1, 1.0, 0.9, 1.2}, {9.8, 9.7, 9.9, 9.8}},
			Names: []string{"x", "y", "z"}, Mode: "classification",
			LabelIndex: 1, ClassLabels: []string{"walk", "run", "sit"},
			VIndexes: []int{1, 3}, HDims: []int{2, 0},
		},
		{
			Name: "Sensor Gaps", Description: "Unequal length channels with missing values, regression target",
			Data:  [][]float64{{20.5, nan, 21.0, 21.4}, {55, 54}},
			Names: []string{"temp", "humidity"}, Mode: "regression", Target: 3.75,
			VIndexes: []int{0, 1}, HDims: []int{1},
		},
		{
			Name: "Fractional Label", Description: "Classification with a non-integral label index",
			Data: [][]float64{{1, 2}}, Mode: "classification",
			LabelIndex: 0.5, ClassLabels: []string{"a", "b"},
		},
	}
}

func run(out io.Writer, logger *slog.Logger, opts *options) error {
	fmt.Fprintln(out, strings.Repeat("=", 80))
	fmt.Fprintln(out, "Time Series Instance Demonstration")
	fmt.Fprintln(out, strings.Repeat("=", 80))

	samples := defaultSamples()
	output := OutputData{Samples: []SampleResult{}}

	for i, s := range samples {
		fmt.Fprintf(out, "\n%s\n[%d/%d] %s\n%s\n", strings.Repeat("=", 80), i+1, len(samples), s.Name, strings.Repeat("=", 80))

		result, err := analyze(out, s)
		if err != nil {
			logger.Warn("sample rejected", "sample", s.Name, "error", err)
			continue
		}
		logger.Debug("sample analyzed", "sample", s.Name, "dimensions", result.Dimensions)
		output.Samples = append(output.Samples, *result)
	}

	if opts.output == "" {
		return nil
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	logger.Info("report exported", "path", opts.output, "samples", len(output.Samples))
	return nil
}

// build constructs the instance described by a sample
func build(s Sample) (*instance.Instance, error) {
	var label instance.Label
	switch s.Mode {
	case "unlabelled":
		label = instance.Unlabelled()
	case "regression":
		label = instance.Regressed(s.Target)
	case "classification":
		l, err := instance.ClassifiedFloat(s.LabelIndex, s.ClassLabels)
		if err != nil {
			return nil, err
		}
		label = l
	default:
		return nil, fmt.Errorf("unknown label mode %q", s.Mode)
	}

	if len(s.Names) == 0 {
		return instance.New(instance.FromArrays(s.Data), label)
	}

	series := make([]*timeseries.Series, len(s.Data))
	for i, row := range s.Data {
		var opts []timeseries.Option
		if i < len(s.Names) {
			opts = append(opts, timeseries.WithName(s.Names[i]))
		}
		series[i] = timeseries.New(row, opts...)
	}
	return instance.New(instance.FromSeries(series...), label)
}

// analyze builds a sample and collects its metadata and slices
func analyze(out io.Writer, s Sample) (*SampleResult, error) {
	inst, err := build(s)
	if err != nil {
		fmt.Fprintf(out, "   Error building: %v\n", err)
		return nil, err
	}
	fmt.Fprintln(out, inst)

	result := &SampleResult{
		Name:          s.Name,
		Description:   s.Description,
		Dimensions:    inst.NumDimensions(),
		LabelIndex:    inst.LabelIndex(),
		Target:        nullable(inst.TargetValue()),
		Multivariate:  inst.IsMultivariate(),
		EqualLength:   inst.IsEqualLength(),
		MinLength:     inst.MinLength(),
		MaxLength:     inst.MaxLength(),
		HasMissing:    inst.HasMissing(),
		EquallySpaced: inst.IsEquallySpaced(),
	}
	if label, ok := inst.ClassLabel(); ok {
		result.ClassLabel = label
	}
	fmt.Fprintf(out, "   Lengths: %d..%d, multivariate=%v, missing=%v\n",
		result.MinLength, result.MaxLength, result.Multivariate, result.HasMissing)

	result.VSlice = sliceResult(s.VIndexes, inst.VSlice)
	result.HSlice = sliceResult(s.HDims, inst.HSlice)

	transposed, err := inst.TransposedValues()
	switch {
	case errors.Is(err, instance.ErrIndexOutOfRange):
		fmt.Fprintln(out, "   Transpose unavailable: dimensions differ in length")
		result.TransposeError = err.Error()
	case err != nil:
		return nil, err
	default:
		result.Transposed = nullableRows(transposed)
	}

	return result, nil
}

func sliceResult(indexes []int, slice func(...int) (*instance.Instance, error)) SliceResult {
	r := SliceResult{Indexes: indexes}
	if len(indexes) == 0 {
		return r
	}
	sub, err := slice(indexes...)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Values = nullableRows(sub.ToValueArray())
	return r
}

// nullable maps NaN to nil so the value survives JSON encoding
func nullable(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func nullableRows(rows [][]float64) [][]*float64 {
	out := make([][]*float64, len(rows))
	for i, row := range rows {
		out[i] = make([]*float64, len(row))
		for j, v := range row {
			out[i][j] = nullable(v)
		}
	}
	return out
}
