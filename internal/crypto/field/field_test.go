package field

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secp256k1P, _ = new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007908834671663", 10)

func TestInverseSmall(t *testing.T) {
	m := big.NewInt(7)
	want := map[int64]int64{1: 1, 2: 4, 3: 5, 4: 2, 5: 3, 6: 6}
	for a, inv := range want {
		got, err := Inverse(big.NewInt(a), m)
		require.NoError(t, err)
		assert.Equal(t, inv, got.Int64(), "inverse of %d mod 7", a)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	for i := 0; i < 64; i++ {
		a, err := rand.Int(rand.Reader, secp256k1P)
		require.NoError(t, err)
		if a.Sign() == 0 {
			continue
		}

		inv, err := Inverse(a, secp256k1P)
		require.NoError(t, err)
		assert.True(t, inv.Sign() >= 0 && inv.Cmp(secp256k1P) < 0)

		prod := new(big.Int).Mul(a, inv)
		prod.Mod(prod, secp256k1P)
		assert.Equal(t, int64(1), prod.Int64())

		// matches the standard library
		assert.Equal(t, 0, inv.Cmp(new(big.Int).ModInverse(a, secp256k1P)))
	}
}

func TestInverseNegativeAndUnreduced(t *testing.T) {
	m := big.NewInt(97)

	neg, err := Inverse(big.NewInt(-5), m)
	require.NoError(t, err)
	pos, err := Inverse(big.NewInt(92), m)
	require.NoError(t, err)
	assert.Zero(t, pos.Cmp(neg))

	big1, err := Inverse(big.NewInt(5+97*3), m)
	require.NoError(t, err)
	small, err := Inverse(big.NewInt(5), m)
	require.NoError(t, err)
	assert.Zero(t, small.Cmp(big1))
}

func TestInverseDoesNotMutate(t *testing.T) {
	a := big.NewInt(-12)
	m := big.NewInt(101)
	_, err := Inverse(a, m)
	require.NoError(t, err)
	assert.Equal(t, int64(-12), a.Int64())
	assert.Equal(t, int64(101), m.Int64())
}

func TestInverseErrors(t *testing.T) {
	_, err := Inverse(big.NewInt(0), big.NewInt(7))
	assert.ErrorIs(t, err, ErrNotInvertible)

	_, err = Inverse(big.NewInt(14), big.NewInt(7))
	assert.ErrorIs(t, err, ErrNotInvertible)

	_, err = Inverse(new(big.Int).Set(secp256k1P), secp256k1P)
	assert.ErrorIs(t, err, ErrNotInvertible)

	// composite modulus sharing a factor with the input
	_, err = Inverse(big.NewInt(6), big.NewInt(15))
	assert.ErrorIs(t, err, ErrNotInvertible)

	_, err = Inverse(big.NewInt(3), big.NewInt(1))
	assert.ErrorIs(t, err, ErrInvalidModulus)

	_, err = Inverse(big.NewInt(3), nil)
	assert.ErrorIs(t, err, ErrInvalidModulus)
}

func TestInverseCompositeCoprime(t *testing.T) {
	inv, err := Inverse(big.NewInt(7), big.NewInt(15))
	require.NoError(t, err)
	assert.Equal(t, int64(13), inv.Int64())
}

func TestNormalize(t *testing.T) {
	p := big.NewInt(97)

	assert.Equal(t, int64(90), Normalize(big.NewInt(-7), p).Int64())
	assert.Equal(t, int64(0), Normalize(big.NewInt(0), p).Int64())
	assert.Equal(t, int64(96), Normalize(big.NewInt(96), p).Int64())
	assert.Equal(t, int64(1), Normalize(big.NewInt(-96), p).Int64())

	// idempotent on normalized values
	for i := int64(-96); i < 97; i++ {
		once := Normalize(big.NewInt(i), p)
		twice := Normalize(once, p)
		assert.Zero(t, once.Cmp(twice))
	}
}

func TestReduce(t *testing.T) {
	p := big.NewInt(97)
	for _, tc := range []struct{ in, want int64 }{
		{0, 0},
		{97, 0},
		{-97, 0},
		{98, 1},
		{-1, 96},
		{-195, 96},
		{1000, 1000 % 97},
	} {
		assert.Equal(t, tc.want, Reduce(big.NewInt(tc.in), p).Int64(), "reduce %d", tc.in)
	}
}

func TestEqualAndIsZero(t *testing.T) {
	p := big.NewInt(13)
	assert.True(t, Equal(big.NewInt(1), big.NewInt(14), p))
	assert.True(t, Equal(big.NewInt(-1), big.NewInt(12), p))
	assert.False(t, Equal(big.NewInt(2), big.NewInt(3), p))
	assert.True(t, IsZero(big.NewInt(-26), p))
	assert.False(t, IsZero(big.NewInt(5), p))
}
