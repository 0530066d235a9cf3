package ecarith

import (
	"errors"
	"math/big"
	"testing"
)

func TestPublicAPI(t *testing.T) {
	params, err := CurveByName("secp256k1")
	if err != nil {
		t.Fatalf("CurveByName: %v", err)
	}
	c, err := NewCurve(params)
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}
	p := params.P()
	g := params.Generator()

	g2, err := PointDouble(p, params.A(), g)
	if err != nil {
		t.Fatalf("PointDouble: %v", err)
	}
	g3, err := PointAdd(p, g, g2)
	if err != nil {
		t.Fatalf("PointAdd: %v", err)
	}
	if want := c.ScalarBaseMult(big.NewInt(3)); !g3.Equal(want) {
		t.Errorf("3G mismatch: got %s, want %s", g3, want)
	}

	inv, err := ModInverse(big.NewInt(3), big.NewInt(7))
	if err != nil {
		t.Fatalf("ModInverse: %v", err)
	}
	if inv.Int64() != 5 {
		t.Errorf("expected 5, got %s", inv)
	}
}

func TestPublicErrors(t *testing.T) {
	params, _ := CurveByName("secp256k1")
	g := params.Generator()

	_, err := PointAdd(params.P(), g, g)
	var derr *DegenerateInputError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DegenerateInputError, got %v", err)
	}
	if derr.Reason != ReasonEqualX {
		t.Errorf("expected %s, got %s", ReasonEqualX, derr.Reason)
	}
	if !errors.Is(err, ErrDegenerateInput) || !errors.Is(err, ErrNotInvertible) {
		t.Errorf("error chain incomplete: %v", err)
	}

	if _, err := PointDouble(params.P(), params.A(), Infinity()); !errors.Is(err, ErrDegenerateInput) {
		t.Errorf("expected degenerate input for infinity, got %v", err)
	}

	if _, err := ModInverse(big.NewInt(3), big.NewInt(0)); !errors.Is(err, ErrInvalidModulus) {
		t.Errorf("expected invalid modulus, got %v", err)
	}
}

func TestNewPointCopies(t *testing.T) {
	x, y := big.NewInt(1), big.NewInt(2)
	pt := NewPoint(x, y)
	x.SetInt64(9)
	if pt.X().Int64() != 1 {
		t.Errorf("point aliased caller's integer")
	}
}

func TestNewCurveRejectsZeroParams(t *testing.T) {
	if _, err := NewCurve(new(Params)); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("expected invalid params, got %v", err)
	}
}
