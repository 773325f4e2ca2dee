package instance

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sartorproj/gotsinstance/timeseries"
)

// Instance is one time series sample: one or more dimensions plus either a
// class label, a regression target, or neither.
//
// An Instance is immutable. Metadata is computed once by New and every
// accessor returning series or values returns a copy, so an Instance is safe
// for concurrent reads.
type Instance struct {
	dimensions  []*timeseries.Series
	labelIndex  int
	targetValue float64
	classLabels []string

	isMultivariate  bool
	isEquallySpaced bool
	hasMissing      bool
	isEqualLength   bool
	minLength       int
	maxLength       int
}

// New builds an instance from src and label and validates it.
// Any inconsistency fails with an error wrapping ErrInvariantViolation and
// a nil instance.
func New(src Source, label Label) (*Instance, error) {
	inst := &Instance{
		dimensions:  src.dimensions(),
		labelIndex:  label.index,
		targetValue: label.target,
		classLabels: label.classLabels,
	}
	if err := inst.init(); err != nil {
		return nil, err
	}
	return inst, nil
}

// NewUnlabelled builds an instance with no label and no target from raw data.
func NewUnlabelled(data [][]float64) (*Instance, error) {
	return New(FromArrays(data), Unlabelled())
}

// NewRegressed builds a regression instance from raw data.
func NewRegressed(data [][]float64, target float64) (*Instance, error) {
	return New(FromArrays(data), Regressed(target))
}

// NewClassified builds a classification instance from raw data.
func NewClassified(data [][]float64, labelIndex int, classLabels []string) (*Instance, error) {
	return New(FromArrays(data), Classified(labelIndex, classLabels))
}

// NewClassifiedFloat is NewClassified for label indexes held as float64.
// A non-integral index fails with ErrInvalidArgument.
func NewClassifiedFloat(data [][]float64, labelIndex float64, classLabels []string) (*Instance, error) {
	label, err := ClassifiedFloat(labelIndex, classLabels)
	if err != nil {
		return nil, err
	}
	return New(FromArrays(data), label)
}

// derive builds an instance from freshly sliced values, carrying over the
// label index, target value and class labels of src unchanged.
func derive(values [][]float64, src *Instance) (*Instance, error) {
	inst := &Instance{
		dimensions:  FromArrays(values).dimensions(),
		labelIndex:  src.labelIndex,
		targetValue: src.targetValue,
		classLabels: slices.Clone(src.classLabels),
	}
	if err := inst.init(); err != nil {
		return nil, err
	}
	return inst, nil
}

// init validates the instance and computes its metadata.
func (inst *Instance) init() error {
	if err := inst.validate(); err != nil {
		return err
	}
	return inst.computeMetadata()
}

func (inst *Instance) validate() error {
	if inst.dimensions == nil {
		return fmt.Errorf("%w: no series dimensions", ErrInvariantViolation)
	}
	if len(inst.dimensions) == 0 {
		return fmt.Errorf("%w: zero series dimensions", ErrInvariantViolation)
	}
	for i, d := range inst.dimensions {
		if d == nil {
			return fmt.Errorf("%w: dimension %d is nil", ErrInvariantViolation, i)
		}
	}

	// class labels are always set, even to an empty slice for regression
	if inst.classLabels == nil {
		return fmt.Errorf("%w: no class labels", ErrInvariantViolation)
	}

	if len(inst.classLabels) == 0 {
		if inst.labelIndex != NoLabel {
			return fmt.Errorf("%w: no class labels but label index not %d: %d",
				ErrInvariantViolation, NoLabel, inst.labelIndex)
		}
		return nil
	}

	// classification: the target mirrors the label index
	if float64(inst.labelIndex) != inst.targetValue {
		return fmt.Errorf("%w: label index (%d) and target value (%v) mismatch",
			ErrInvariantViolation, inst.labelIndex, inst.targetValue)
	}
	// NoLabel marks an unlabelled instance of a classification problem
	if inst.labelIndex < NoLabel || inst.labelIndex >= len(inst.classLabels) {
		return fmt.Errorf("%w: label index %d outside %d class labels",
			ErrInvariantViolation, inst.labelIndex, len(inst.classLabels))
	}
	return nil
}

// String renders the dimension count and label index, then one line per
// dimension.
func (inst *Instance) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Num Dimensions: %d Class Label Index: %d", len(inst.dimensions), inst.labelIndex)
	for _, d := range inst.dimensions {
		sb.WriteByte('\n')
		sb.WriteString(d.String())
	}
	return sb.String()
}
