package instance

import "slices"

// NumDimensions returns the number of dimensions.
func (inst *Instance) NumDimensions() int {
	return len(inst.dimensions)
}

// LabelIndex returns the class label index, or NoLabel.
func (inst *Instance) LabelIndex() int {
	return inst.labelIndex
}

// ClassLabel returns the name of the instance's class. ok is false for
// unlabelled and regression instances.
func (inst *Instance) ClassLabel() (label string, ok bool) {
	if inst.labelIndex < 0 || inst.labelIndex >= len(inst.classLabels) {
		return "", false
	}
	return inst.classLabels[inst.labelIndex], true
}

// ClassLabels returns a copy of the class labels. It is empty, not nil, when
// the instance carries no classification information.
func (inst *Instance) ClassLabels() []string {
	return slices.Clone(inst.classLabels)
}

// TargetValue returns the regression target. For classification instances
// it equals the label index; otherwise it may be NaN.
func (inst *Instance) TargetValue() float64 {
	return inst.targetValue
}

// ToValueArray returns a copy of every dimension's values.
func (inst *Instance) ToValueArray() [][]float64 {
	out := make([][]float64, len(inst.dimensions))
	for i, d := range inst.dimensions {
		out[i] = d.ToSlice()
	}
	return out
}
