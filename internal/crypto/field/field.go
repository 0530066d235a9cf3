// Package field implements the prime-field helpers shared by the curve
// arithmetic: modular inversion and sign normalization of residues.
package field

import (
	"errors"
	"math/big"
)

var (
	// ErrNotInvertible is returned when the input shares a factor with the
	// modulus (for a prime modulus: the input is a multiple of it).
	ErrNotInvertible = errors.New("element is not invertible")

	// ErrInvalidModulus is returned for a nil modulus or one smaller than 2.
	ErrInvalidModulus = errors.New("invalid modulus")
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Inverse returns the unique inv in [0, m-1] with a*inv ≡ 1 (mod m),
// computed with the iterative extended Euclidean algorithm.
//
// a may be negative or larger than m; it is reduced into [0, m-1] first.
// Neither argument is modified.
func Inverse(a, m *big.Int) (*big.Int, error) {
	if m == nil || m.Cmp(two) < 0 {
		return nil, ErrInvalidModulus
	}
	if a == nil {
		return nil, ErrNotInvertible
	}

	r := new(big.Int).Mod(a, m)
	if r.Sign() == 0 {
		return nil, ErrNotInvertible
	}

	// Only the coefficient of a is tracked; the one for m is never needed.
	u, v := r, new(big.Int).Set(m)
	x0, inv := new(big.Int), big.NewInt(1)
	q := new(big.Int)
	for u.Cmp(one) > 0 {
		if v.Sign() == 0 {
			// u is gcd(a, m) > 1
			return nil, ErrNotInvertible
		}
		q.Quo(u, v)
		inv.Sub(inv, q.Mul(q, x0))
		u.Rem(u, v)
		u, v = v, u
		x0, inv = inv, x0
	}

	// |inv| < m, so one add is enough.
	if inv.Sign() < 0 {
		inv.Add(inv, m)
	}
	return inv, nil
}

// Normalize maps a truncated remainder x in (-p, p) into [0, p-1] by adding
// p once when x is negative. Values already in range are returned unchanged
// (as a copy).
func Normalize(x, p *big.Int) *big.Int {
	z := new(big.Int).Set(x)
	if z.Sign() < 0 {
		z.Add(z, p)
	}
	return z
}

// Reduce returns x mod p in [0, p-1]. It takes the truncated remainder and
// then normalizes its sign, which is how the curve formulas reduce.
func Reduce(x, p *big.Int) *big.Int {
	z := new(big.Int).Rem(x, p)
	if z.Sign() < 0 {
		z.Add(z, p)
	}
	return z
}

// Equal reports whether x ≡ y (mod p).
func Equal(x, y, p *big.Int) bool {
	d := new(big.Int).Sub(x, y)
	return d.Rem(d, p).Sign() == 0
}

// IsZero reports whether x ≡ 0 (mod p).
func IsZero(x, p *big.Int) bool {
	return new(big.Int).Rem(x, p).Sign() == 0
}
