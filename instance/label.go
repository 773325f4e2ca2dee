package instance

import (
	"fmt"
	"math"
)

// NoLabel is the label index of unlabelled and regression instances.
const NoLabel = -1

// Label carries the label index, target value and class labels an instance
// is built with. Use Unlabelled, Classified, ClassifiedFloat or Regressed.
type Label struct {
	index       int
	target      float64
	classLabels []string
}

// Unlabelled returns a label with no class and no regression target.
func Unlabelled() Label {
	return Regressed(math.NaN())
}

// Regressed returns a regression label with the given target value.
func Regressed(target float64) Label {
	return Label{index: NoLabel, target: target, classLabels: []string{}}
}

// Classified returns a classification label. The target value is set to the
// label index.
func Classified(index int, classLabels []string) Label {
	labels := classLabels
	if labels != nil {
		labels = make([]string, len(classLabels))
		copy(labels, classLabels)
	}
	return Label{index: index, target: float64(index), classLabels: labels}
}

// ClassifiedFloat is Classified for label indexes held as float64.
// It fails with ErrInvalidArgument when index is not a whole number.
func ClassifiedFloat(index float64, classLabels []string) (Label, error) {
	i, err := DiscretiseLabelIndex(index)
	if err != nil {
		return Label{}, err
	}
	return Classified(i, classLabels), nil
}

// DiscretiseLabelIndex converts a float64 label index to an int, failing if
// the conversion would lose information (2.0 -> 2, 2.5 -> error).
func DiscretiseLabelIndex(index float64) (int, error) {
	// NaN fails the Trunc comparison; the bounds keep int() in its defined range.
	if index != math.Trunc(index) || index < float64(math.MinInt) || index >= -float64(math.MinInt) {
		return 0, fmt.Errorf("%w: cannot discretise label index %v to an int", ErrInvalidArgument, index)
	}
	return int(index), nil
}
