package curves

import (
	"fmt"
	"math/big"
)

// Point is an affine curve point or the point at infinity.
// The zero value is the point at infinity.
type Point struct {
	x, y   *big.Int
	finite bool
}

// NewPoint returns the finite point (x, y). The coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x:      new(big.Int).Set(x),
		y:      new(big.Int).Set(y),
		finite: true,
	}
}

// Infinity returns the identity element of the group.
func Infinity() Point {
	return Point{}
}

func (p Point) IsInfinity() bool {
	return !p.finite
}

// X returns a copy of the x-coordinate, or nil for the point at infinity.
func (p Point) X() *big.Int {
	return copyInt(p.x)
}

// Y returns a copy of the y-coordinate, or nil for the point at infinity.
func (p Point) Y() *big.Int {
	return copyInt(p.y)
}

// Coordinates returns copies of both coordinates.
func (p Point) Coordinates() (x, y *big.Int) {
	return p.X(), p.Y()
}

// Equal compares coordinates exactly, without reduction.
func (p Point) Equal(q Point) bool {
	if p.finite != q.finite {
		return false
	}
	if !p.finite {
		return true
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if !p.finite {
		return "infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
