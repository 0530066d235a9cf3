package curves

import (
	"errors"
	"fmt"
)

// ErrDegenerateInput matches every *DegenerateInputError via errors.Is.
var ErrDegenerateInput = errors.New("degenerate input")

// Reason classifies why a group-law formula is undefined for its inputs.
type Reason int

const (
	// ReasonEqualX: addition of two points sharing an x-coordinate.
	ReasonEqualX Reason = iota + 1
	// ReasonZeroY: doubling of a point of order 2.
	ReasonZeroY
	// ReasonInfinity: the point at infinity has no affine coordinates.
	ReasonInfinity
	// ReasonNotInvertible: the denominator shares a factor with the modulus.
	ReasonNotInvertible
)

func (r Reason) String() string {
	switch r {
	case ReasonEqualX:
		return "equal x-coordinates"
	case ReasonZeroY:
		return "zero y-coordinate"
	case ReasonInfinity:
		return "point at infinity"
	case ReasonNotInvertible:
		return "denominator not invertible"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// DegenerateInputError reports inputs for which the affine formulas have no
// defined result. It is a programming error at the call site, never a
// transient condition.
type DegenerateInputError struct {
	Op     string
	Reason Reason
	Err    error
}

func (e *DegenerateInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: degenerate input: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: degenerate input: %s", e.Op, e.Reason)
}

func (e *DegenerateInputError) Unwrap() error {
	return e.Err
}

func (e *DegenerateInputError) Is(target error) bool {
	return target == ErrDegenerateInput
}

func degenerate(op string, reason Reason, err error) *DegenerateInputError {
	return &DegenerateInputError{
		Op:     op,
		Reason: reason,
		Err:    err,
	}
}
