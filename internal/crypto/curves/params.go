package curves

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidParams is returned by NewParams for unusable curve constants.
	ErrInvalidParams = errors.New("invalid curve parameters")
)

// Params holds the constants of a curve y² = x³ + a·x + b (mod p).
// A Params value is immutable: accessors return copies.
type Params struct {
	name    string
	p       *big.Int // field modulus
	a       *big.Int // linear coefficient
	b       *big.Int // constant term, only used by callers that validate points
	gx, gy  *big.Int // generator, optional
	n       *big.Int // order of the generator, optional
	bitSize int
}

// ParamOption sets an optional curve constant.
type ParamOption func(*Params)

// WithGenerator sets the base point.
func WithGenerator(gx, gy *big.Int) ParamOption {
	return func(p *Params) {
		p.gx = copyInt(gx)
		p.gy = copyInt(gy)
	}
}

// WithOrder sets the order of the base point.
func WithOrder(n *big.Int) ParamOption {
	return func(p *Params) {
		p.n = copyInt(n)
	}
}

// NewParams builds curve parameters from the modulus and the coefficients.
// p must be an odd prime greater than 3 and a, b must lie in [0, p-1].
func NewParams(name string, p, a, b *big.Int, opts ...ParamOption) (*Params, error) {
	if p == nil || a == nil || b == nil {
		return nil, fmt.Errorf("%w: modulus and coefficients are required", ErrInvalidParams)
	}
	if p.Cmp(big.NewInt(3)) <= 0 || !p.ProbablyPrime(20) {
		return nil, fmt.Errorf("%w: modulus %s is not a prime greater than 3", ErrInvalidParams, p)
	}

	params := &Params{
		name:    name,
		p:       new(big.Int).Set(p),
		a:       new(big.Int).Set(a),
		b:       new(big.Int).Set(b),
		bitSize: p.BitLen(),
	}
	for _, opt := range opts {
		opt(params)
	}

	if !params.inField(params.a) || !params.inField(params.b) {
		return nil, fmt.Errorf("%w: coefficients must lie in [0, p-1]", ErrInvalidParams)
	}
	if (params.gx == nil) != (params.gy == nil) {
		return nil, fmt.Errorf("%w: generator needs both coordinates", ErrInvalidParams)
	}
	if params.gx != nil && (!params.inField(params.gx) || !params.inField(params.gy)) {
		return nil, fmt.Errorf("%w: generator coordinates must lie in [0, p-1]", ErrInvalidParams)
	}
	if params.n != nil && params.n.Sign() <= 0 {
		return nil, fmt.Errorf("%w: order must be positive", ErrInvalidParams)
	}
	return params, nil
}

func (p *Params) inField(x *big.Int) bool {
	return x.Sign() >= 0 && x.Cmp(p.p) < 0
}

func (p *Params) Name() string { return p.name }

// P returns the field modulus.
func (p *Params) P() *big.Int { return copyInt(p.p) }

// A returns the linear coefficient.
func (p *Params) A() *big.Int { return copyInt(p.a) }

// B returns the constant term.
func (p *Params) B() *big.Int { return copyInt(p.b) }

// N returns the generator order, or nil when unknown.
func (p *Params) N() *big.Int { return copyInt(p.n) }

func (p *Params) BitSize() int { return p.bitSize }

// Generator returns the base point, or the point at infinity when the
// parameters carry no generator.
func (p *Params) Generator() Point {
	if p.gx == nil {
		return Infinity()
	}
	return NewPoint(p.gx, p.gy)
}

// HasGenerator reports whether a base point was configured.
func (p *Params) HasGenerator() bool { return p.gx != nil }

func (p *Params) String() string {
	return fmt.Sprintf("%s (%d-bit, a=%s)", p.name, p.bitSize, p.a)
}

func copyInt(x *big.Int) *big.Int {
	if x == nil {
		return nil
	}
	return new(big.Int).Set(x)
}
