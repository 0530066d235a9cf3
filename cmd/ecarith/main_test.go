package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	g2 = "89565891926547004231252920425935692360644145829622209833684329913297188986597,12158399299693830322967808612713398636155367887041628176798871954788371653930"
	g3 = "112711660439710606056748659173929673102114977341539408544630613555209775888121,25583027980570883691656905877401976406448868254816295069919888960541586679410"
	g4 = "103388573995635080359749164254216598308788835304023601477803095234286494993683,37057141145242123013015316630864329550140216928701153669873286428255828810018"

	gCompressed = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestAddAndDouble(t *testing.T) {
	out, err := run(t, "add", "g", g2)
	require.NoError(t, err)
	assert.Equal(t, g3, out)

	out, err = run(t, "double", "--strict", g2)
	require.NoError(t, err)
	assert.Equal(t, g4, out)

	out, err = run(t, "add", gCompressed, "g")
	require.NoError(t, err)
	assert.Equal(t, g2, out)

	_, err = run(t, "add", "--strict", "g", "g")
	assert.ErrorContains(t, err, "degenerate input")

	out, err = run(t, "double", "inf")
	require.NoError(t, err)
	assert.Equal(t, "infinity", out)
}

func TestInverseAndMul(t *testing.T) {
	out, err := run(t, "inverse", "3", "7")
	require.NoError(t, err)
	assert.Equal(t, "5", out)

	_, err = run(t, "inverse", "0")
	assert.Error(t, err)

	out, err = run(t, "mul", "4")
	require.NoError(t, err)
	assert.Equal(t, g4, out)

	out, err = run(t, "mul", "2", g2)
	require.NoError(t, err)
	assert.Equal(t, g4, out)
}

func TestVerify(t *testing.T) {
	out, err := run(t, "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "15 checks passed on secp256k1")

	out, err = run(t, "--curve", "P-256", "verify", "--multiples", "16")
	require.NoError(t, err)
	assert.Contains(t, out, "checks passed on P-256")
}

func TestBadInput(t *testing.T) {
	_, err := run(t, "add", "1,x", "g")
	assert.ErrorContains(t, err, "y")

	_, err = run(t, "--curve", "P-256", "add", gCompressed, "g")
	assert.ErrorContains(t, err, "want x,y")

	_, err = run(t, "--curve", "nope", "mul", "1")
	assert.ErrorContains(t, err, "unsupported curve")

	_, err = run(t, "--log-level", "loud", "mul", "1")
	assert.Error(t, err)
}
