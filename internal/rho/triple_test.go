package rho

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"ecrho/ec"
)

func fixtureGroup(t *testing.T) group {
	t.Helper()
	curve, err := ec.NewCurve(big.NewInt(263), big.NewInt(2), big.NewInt(3))
	require.NoError(t, err)
	p := ec.Point{X: big.NewInt(0), Y: big.NewInt(23)}
	require.True(t, curve.OnCurve(p), "fixture base point must be on curve")
	return group{curve: curve, fn: ec.NewModulus(big.NewInt(135)), p: p, q: p}
}

func TestGroupAddPreservesWitness(t *testing.T) {
	g := fixtureGroup(t)
	x, err := g.generate()
	require.NoError(t, err)
	y, err := g.generate()
	require.NoError(t, err)

	sum, err := g.add(x, y)
	require.NoError(t, err)
	require.True(t, g.isValid(sum), "sum of two valid triples must itself satisfy R = a*P + b*Q")
}

func TestGroupDoublePreservesWitness(t *testing.T) {
	g := fixtureGroup(t)
	x, err := g.generate()
	require.NoError(t, err)

	dbl, err := g.double(x)
	require.NoError(t, err)
	require.True(t, g.isValid(dbl))
	require.Equal(t, 0, g.fn.Sub(dbl.A, g.fn.Add(x.A, x.A)).Sign())
}

func TestNegationMapCanonicalisesAndPreservesWitness(t *testing.T) {
	g := fixtureGroup(t)
	x, err := g.generate()
	require.NoError(t, err)

	canon, applied := g.negationMap(x)
	require.True(t, g.isValid(canon), "negation-mapped triple must still satisfy R = a*P + b*Q")

	// Applying the map again must be a no-op: canon is already canonical.
	again, appliedAgain := g.negationMap(canon)
	require.False(t, appliedAgain)
	require.True(t, g.curve.Equal(again.R, canon.R))

	if applied {
		require.NotEqual(t, 0, g.curve.Negate(x.R).Y.Cmp(x.R.Y))
	}
}

func TestCompareOrdersByPointOnly(t *testing.T) {
	g := fixtureGroup(t)
	x, err := g.generate()
	require.NoError(t, err)

	shifted := x
	shifted.A = g.fn.Add(x.A, big.NewInt(1))
	require.Equal(t, compare(x, shifted), 0, "compare must ignore the witness and key only on R")
}

func TestCopyTripleDeepCopies(t *testing.T) {
	g := fixtureGroup(t)
	x, err := g.generate()
	require.NoError(t, err)

	cp := copyTriple(x)
	cp.A.Add(cp.A, big.NewInt(1))
	require.NotEqual(t, 0, x.A.Cmp(cp.A), "mutating the copy must not affect the original")
}
