// Package ecarith exposes affine short-Weierstrass arithmetic: modular
// inversion, point addition and point doubling over a prime field.
//
// The functions are pure and safe for concurrent use. Points are not checked
// against the curve equation.
package ecarith

import (
	"math/big"

	"github.com/smallyu/go-ecarith/internal/crypto/curves"
	"github.com/smallyu/go-ecarith/internal/crypto/field"
)

type (
	// Point is an affine curve point or the point at infinity.
	Point = curves.Point

	// Params holds immutable curve constants.
	Params = curves.Params

	// Curve evaluates the complete group law for one curve.
	Curve = curves.Curve
)

// NewPoint returns the finite point (x, y).
func NewPoint(x, y *big.Int) Point {
	return curves.NewPoint(x, y)
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return curves.Infinity()
}

// ModInverse returns inv in [0, m-1] with a*inv ≡ 1 (mod m).
func ModInverse(a, m *big.Int) (*big.Int, error) {
	return field.Inverse(a, m)
}

// PointAdd returns a + b for finite points with distinct x-coordinates
// modulo p.
func PointAdd(p *big.Int, a, b Point) (Point, error) {
	return curves.PointAdd(p, a, b)
}

// PointDouble returns 2·pt on the curve with linear coefficient aCoeff
// modulo p. pt must have a non-zero y-coordinate.
func PointDouble(p, aCoeff *big.Int, pt Point) (Point, error) {
	return curves.PointDouble(p, aCoeff, pt)
}

// NewCurve returns a Curve for params. params must come from CurveByName or
// NewParams; the zero Params is rejected with ErrInvalidParams.
func NewCurve(params *Params) (*Curve, error) {
	return curves.New(params)
}

// CurveByName returns the parameters of a preset curve.
func CurveByName(name string) (*Params, error) {
	return curves.ByName(name)
}
