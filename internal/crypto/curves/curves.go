// Package curves implements affine point arithmetic on short-Weierstrass
// curves y² = x³ + a·x + b over a prime field.
//
// PointAdd and PointDouble are the raw chord and tangent formulas. They take
// the field modulus (and the linear coefficient) explicitly and report
// degenerate inputs with a *DegenerateInputError. Curve layers the complete
// group law on top of them, including the point at infinity, and scalar
// multiplication.
//
// Points are not validated against the curve equation; callers must supply
// points that lie on the curve.
package curves

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	NameSecp256k1 = "secp256k1"
	NameP256      = "P-256"
)

// Secp256k1 returns the parameters of secp256k1 (a = 0, b = 7).
func Secp256k1() *Params {
	cp := secp256k1.S256().Params()
	return fromStdParams(NameSecp256k1, cp, new(big.Int))
}

// P256 returns the parameters of NIST P-256 (a = -3).
func P256() *Params {
	cp := elliptic.P256().Params()
	a := new(big.Int).Sub(cp.P, big.NewInt(3))
	return fromStdParams(NameP256, cp, a)
}

func fromStdParams(name string, cp *elliptic.CurveParams, a *big.Int) *Params {
	return &Params{
		name:    name,
		p:       new(big.Int).Set(cp.P),
		a:       a,
		b:       new(big.Int).Set(cp.B),
		gx:      new(big.Int).Set(cp.Gx),
		gy:      new(big.Int).Set(cp.Gy),
		n:       new(big.Int).Set(cp.N),
		bitSize: cp.BitSize,
	}
}

// ByName returns the preset parameters matching name (case-insensitive).
func ByName(name string) (*Params, error) {
	switch strings.ToLower(name) {
	case "secp256k1":
		return Secp256k1(), nil
	case "p-256", "p256", "secp256r1", "prime256v1":
		return P256(), nil
	default:
		return nil, fmt.Errorf("unsupported curve: %s", name)
	}
}

// SupportedCurves lists the preset names understood by ByName.
func SupportedCurves() []string {
	return []string{NameSecp256k1, NameP256}
}
