package instance

import (
	"errors"

	"github.com/sartorproj/gotsinstance/timeseries"
)

// Every message is prefixed with "instance: ". Constructors and slicing
// operations wrap these with fmt.Errorf("...: %w", ErrX) for context;
// callers match with errors.Is.
var (
	// ErrInvalidArgument is returned when an argument cannot be used as given,
	// e.g. a floating point label index that is not a whole number.
	ErrInvalidArgument = errors.New("instance: invalid argument")

	// ErrInvariantViolation is returned by constructors when the supplied
	// dimensions or label information are inconsistent. No instance is
	// returned alongside it.
	ErrInvariantViolation = errors.New("instance: invariant violation")

	// ErrUnsupportedOperation is returned by every mutating method of the
	// collection surface. Instances are immutable.
	ErrUnsupportedOperation = errors.New("instance: not mutable")

	// ErrIndexOutOfRange is the series sentinel, re-exported so callers of
	// this package need not import timeseries to match it.
	ErrIndexOutOfRange = timeseries.ErrIndexOutOfRange
)

// errEmptyDimensions guards the length bound computation. Validation rejects
// empty dimension lists first, so reaching it is a bug in this package.
var errEmptyDimensions = errors.New("instance: internal: length bounds over zero dimensions")
