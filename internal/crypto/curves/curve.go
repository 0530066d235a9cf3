package curves

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecarith/internal/crypto/field"
)

// Curve evaluates the complete group law for one set of curve parameters.
// It is safe for concurrent use.
type Curve struct {
	params *Params
	p, a   *big.Int
}

// New returns a Curve for params, which must come from NewParams or one of
// the presets. The zero Params is rejected with ErrInvalidParams.
func New(params *Params) (*Curve, error) {
	if params == nil || params.p == nil || params.a == nil {
		return nil, fmt.Errorf("%w: modulus and linear coefficient are required", ErrInvalidParams)
	}
	return &Curve{
		params: params,
		p:      params.P(),
		a:      params.A(),
	}, nil
}

// NewSecp256k1 returns a Curve over secp256k1.
func NewSecp256k1() *Curve {
	params := Secp256k1()
	return &Curve{params: params, p: params.P(), a: params.A()}
}

func (c *Curve) Params() *Params {
	return c.params
}

// Generator returns the base point of the curve, or infinity when the
// parameters carry none.
func (c *Curve) Generator() Point {
	return c.params.Generator()
}

// Add returns p1 + p2. Unlike PointAdd it accepts every pair of curve
// points: infinity is the identity, equal points are doubled and vertically
// opposite points sum to infinity.
func (c *Curve) Add(p1, p2 Point) Point {
	switch {
	case p1.IsInfinity():
		return c.reduce(p2)
	case p2.IsInfinity():
		return c.reduce(p1)
	}

	if field.Equal(p1.x, p2.x, c.p) {
		if field.Equal(p1.y, p2.y, c.p) {
			return c.Double(p1)
		}
		return Infinity()
	}
	return must(PointAdd(c.p, p1, p2))
}

// Double returns 2·pt. Points of order 2 double to infinity.
func (c *Curve) Double(pt Point) Point {
	if pt.IsInfinity() || field.IsZero(pt.y, c.p) {
		return Infinity()
	}
	return must(PointDouble(c.p, c.a, pt))
}

// Neg returns -pt.
func (c *Curve) Neg(pt Point) Point {
	if pt.IsInfinity() {
		return Infinity()
	}
	y := field.Reduce(new(big.Int).Neg(pt.y), c.p)
	return Point{x: field.Reduce(pt.x, c.p), y: y, finite: true}
}

// ScalarMult returns k·pt by left-to-right double-and-add. When the curve
// order is known k is reduced by it first; negative k multiplies -pt.
func (c *Curve) ScalarMult(pt Point, k *big.Int) Point {
	k = new(big.Int).Set(k)
	if n := c.params.n; n != nil {
		k.Mod(k, n)
	}
	if k.Sign() < 0 {
		k.Neg(k)
		pt = c.Neg(pt)
	}

	acc := Infinity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = c.Double(acc)
		if k.Bit(i) == 1 {
			acc = c.Add(acc, pt)
		}
	}
	return acc
}

// ScalarBaseMult returns k·G.
func (c *Curve) ScalarBaseMult(k *big.Int) Point {
	return c.ScalarMult(c.Generator(), k)
}

func (c *Curve) reduce(pt Point) Point {
	if pt.IsInfinity() {
		return pt
	}
	return Point{x: field.Reduce(pt.x, c.p), y: field.Reduce(pt.y, c.p), finite: true}
}

// must unwraps results that cannot fail: the modulus is prime and the
// degenerate denominators were dispatched before calling the formulas.
func must(pt Point, err error) Point {
	if err != nil {
		panic(fmt.Sprintf("curves: unreachable: %v", err))
	}
	return pt
}
