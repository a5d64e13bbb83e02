package ari_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtnma/ari"
	"github.com/dtnma/ari/artype"
)

func TestEqualFloatNaNRule(t *testing.T) {
	a := ari.NewLiteral(ari.Float64Literal(math.NaN()))
	b := ari.NewLiteral(ari.Float64Literal(math.NaN()))
	require.True(t, ari.Equal(a, b))
}

func TestEqualUndefinedSelf(t *testing.T) {
	u := ari.NewLiteral(ari.Undefined())
	require.True(t, ari.Equal(u, u))
}

func TestEqualAMIsOrderIndependent(t *testing.T) {
	k1 := ari.NewLiteral(ari.Int64Literal(1))
	k2 := ari.NewLiteral(ari.Int64Literal(2))
	v1 := ari.NewLiteral(ari.BoolLiteral(true))
	v2 := ari.NewLiteral(ari.BoolLiteral(false))

	am1, err := ari.ContainerLiteral(artype.AM, ari.NewAM([]ari.AMEntry{{Key: k1, Value: v1}, {Key: k2, Value: v2}}))
	require.NoError(t, err)
	am2, err := ari.ContainerLiteral(artype.AM, ari.NewAM([]ari.AMEntry{{Key: k2, Value: v2}, {Key: k1, Value: v1}}))
	require.NoError(t, err)

	require.True(t, ari.Equal(ari.NewLiteral(am1), ari.NewLiteral(am2)))
}

func TestEqualAMDetectsValueMismatch(t *testing.T) {
	k1 := ari.NewLiteral(ari.Int64Literal(1))
	am1, err := ari.ContainerLiteral(artype.AM, ari.NewAM([]ari.AMEntry{{Key: k1, Value: ari.NewLiteral(ari.BoolLiteral(true))}}))
	require.NoError(t, err)
	am2, err := ari.ContainerLiteral(artype.AM, ari.NewAM([]ari.AMEntry{{Key: k1, Value: ari.NewLiteral(ari.BoolLiteral(false))}}))
	require.NoError(t, err)

	require.False(t, ari.Equal(ari.NewLiteral(am1), ari.NewLiteral(am2)))
}

func TestEqualACIsOrderSensitive(t *testing.T) {
	one := ari.NewLiteral(ari.Int64Literal(1))
	two := ari.NewLiteral(ari.Int64Literal(2))

	ac1, err := ari.ContainerLiteral(artype.AC, ari.NewAC([]ari.ARI{one, two}))
	require.NoError(t, err)
	ac2, err := ari.ContainerLiteral(artype.AC, ari.NewAC([]ari.ARI{two, one}))
	require.NoError(t, err)

	require.False(t, ari.Equal(ari.NewLiteral(ac1), ari.NewLiteral(ac2)))
}

func TestEqualReferenceComparesPathAndParams(t *testing.T) {
	p := ari.ObjPath{NsID: ari.TextSeg("ns"), HasARIType: true, ARIType: artype.Ctrl, ObjID: ari.IntSeg(1)}
	a := ari.NewReference(ari.NewReferenceValue(p, ari.NoParams()))
	b := ari.NewReference(ari.NewReferenceValue(p, ari.ACParams([]ari.ARI{ari.NewLiteral(ari.Int64Literal(1))})))

	require.False(t, ari.Equal(a, b))
}
