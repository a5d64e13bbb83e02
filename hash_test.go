package ari_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtnma/ari"
	"github.com/dtnma/ari/artype"
)

func TestHashDeterministic(t *testing.T) {
	a := ari.NewLiteral(ari.Int64Literal(42))
	require.Equal(t, ari.Hash(a), ari.Hash(a))
}

// TestHashEqualImpliesEqualHash is the module's Invariant 2 check: any two
// structurally Equal ARIs, including AM containers built with entries in
// different orders, hash identically.
func TestHashEqualImpliesEqualHash(t *testing.T) {
	k1 := ari.NewLiteral(ari.Int64Literal(1))
	k2 := ari.NewLiteral(ari.Int64Literal(2))
	v1 := ari.NewLiteral(ari.BoolLiteral(true))
	v2 := ari.NewLiteral(ari.Float64Literal(math.NaN()))

	am1, err := ari.ContainerLiteral(artype.AM, ari.NewAM([]ari.AMEntry{{Key: k1, Value: v1}, {Key: k2, Value: v2}}))
	require.NoError(t, err)
	am2, err := ari.ContainerLiteral(artype.AM, ari.NewAM([]ari.AMEntry{{Key: k2, Value: v2}, {Key: k1, Value: v1}}))
	require.NoError(t, err)

	a, b := ari.NewLiteral(am1), ari.NewLiteral(am2)
	require.True(t, ari.Equal(a, b))
	require.Equal(t, ari.Hash(a), ari.Hash(b))
}

func TestHashNaNCanonicalizesBitPattern(t *testing.T) {
	a := ari.NewLiteral(ari.Float64Literal(math.NaN()))
	b := ari.NewLiteral(ari.Float64Literal(math.Float64frombits(0x7FF0000000000001)))

	require.True(t, ari.Equal(a, b))
	require.Equal(t, ari.Hash(a), ari.Hash(b))
}

func TestHashDistinguishesDifferentValues(t *testing.T) {
	a := ari.NewLiteral(ari.Int64Literal(1))
	b := ari.NewLiteral(ari.Int64Literal(2))
	require.NotEqual(t, ari.Hash(a), ari.Hash(b))
}
