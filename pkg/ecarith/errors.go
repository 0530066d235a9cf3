package ecarith

import (
	"github.com/smallyu/go-ecarith/internal/crypto/curves"
	"github.com/smallyu/go-ecarith/internal/crypto/field"
)

// DegenerateInputError reports inputs for which the group-law formulas are
// undefined: equal x-coordinates in PointAdd, a zero y-coordinate in
// PointDouble, the point at infinity, or a denominator sharing a factor with
// the modulus.
type DegenerateInputError = curves.DegenerateInputError

// Reason classifies a DegenerateInputError.
type Reason = curves.Reason

const (
	ReasonEqualX        = curves.ReasonEqualX
	ReasonZeroY         = curves.ReasonZeroY
	ReasonInfinity      = curves.ReasonInfinity
	ReasonNotInvertible = curves.ReasonNotInvertible
)

// Common errors returned by the arithmetic.
var (
	ErrDegenerateInput = curves.ErrDegenerateInput
	ErrNotInvertible   = field.ErrNotInvertible
	ErrInvalidModulus  = field.ErrInvalidModulus
	ErrInvalidParams   = curves.ErrInvalidParams
)
