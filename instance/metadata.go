package instance

import "github.com/sartorproj/gotsinstance/timeseries"

// equallySpacedNotComputed is the value of IsEquallySpaced for every
// instance. Timestamp spacing is not inspected.
// TODO: derive from Series.Timestamps once spacing tolerance is decided.
const equallySpacedNotComputed = false

func (inst *Instance) computeMetadata() error {
	inst.isMultivariate = len(inst.dimensions) > 1

	minLen, maxLen, err := lengthBounds(inst.dimensions)
	if err != nil {
		return err
	}
	inst.minLength = minLen
	inst.maxLength = maxLen
	inst.isEqualLength = minLen == maxLen

	inst.hasMissing = false
	for _, d := range inst.dimensions {
		if d.HasNaN() {
			inst.hasMissing = true
			break
		}
	}

	inst.isEquallySpaced = equallySpacedNotComputed
	return nil
}

func lengthBounds(dims []*timeseries.Series) (minLen, maxLen int, err error) {
	if len(dims) == 0 {
		return 0, 0, errEmptyDimensions
	}
	minLen = dims[0].Len()
	maxLen = minLen
	for _, d := range dims[1:] {
		n := d.Len()
		minLen = min(minLen, n)
		maxLen = max(maxLen, n)
	}
	return minLen, maxLen, nil
}

// IsMultivariate reports whether the instance has more than one dimension.
func (inst *Instance) IsMultivariate() bool { return inst.isMultivariate }

// IsEquallySpaced is always false: timestamp spacing is not computed.
func (inst *Instance) IsEquallySpaced() bool { return inst.isEquallySpaced }

// HasMissing reports whether any value in any dimension is NaN.
func (inst *Instance) HasMissing() bool { return inst.hasMissing }

// IsEqualLength reports whether every dimension has the same length.
func (inst *Instance) IsEqualLength() bool { return inst.isEqualLength }

// MinLength returns the length of the shortest dimension.
func (inst *Instance) MinLength() int { return inst.minLength }

// MaxLength returns the length of the longest dimension.
func (inst *Instance) MaxLength() int { return inst.maxLength }
