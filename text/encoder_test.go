package text_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtnma/ari"
	"github.com/dtnma/ari/aritime"
	"github.com/dtnma/ari/artype"
	"github.com/dtnma/ari/text"
)

func mustLit(t *testing.T, l ari.Literal, err error) ari.ARI {
	t.Helper()
	require.NoError(t, err)

	return ari.NewLiteral(l)
}

func TestEncodeEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name string
		ari  ari.ARI
		want string
	}{
		{
			name: "null literal no tag",
			ari:  ari.NewLiteral(ari.NullLiteral()),
			want: "ari:null",
		},
		{
			name: "tagged int64",
			ari:  mustLit(t, ari.Int64Literal(-42).WithType(artype.Int)),
			want: "ari:/INT/-42",
		},
		{
			name: "tagged identity tstr",
			ari:  mustLit(t, ari.TextLiteral("hello").WithType(artype.TextStr)),
			want: "ari:/TEXTSTR/hello",
		},
		{
			name: "tagged non-identity tstr",
			ari:  mustLit(t, ari.TextLiteral("hi there").WithType(artype.TextStr)),
			want: "ari:/TEXTSTR/%22hi%20there%22",
		},
		{
			name: "tagged bstr base16",
			ari:  mustLit(t, ari.ByteLiteral([]byte{0x68, 0x69}, false).WithType(artype.ByteStr)),
			want: "ari:/BYTESTR/h'6869'",
		},
		{
			name: "tagged ac",
			ari: func() ari.ARI {
				items := []ari.ARI{
					ari.NewLiteral(ari.Int64Literal(1)),
					ari.NewLiteral(ari.Int64Literal(2)),
					ari.NewLiteral(ari.Int64Literal(3)),
				}
				lit, err := ari.ContainerLiteral(artype.AC, ari.NewAC(items))
				require.NoError(t, err)

				return ari.NewLiteral(lit)
			}(),
			want: "ari:/AC/(1,2,3)",
		},
		{
			name: "tagged tp zero",
			ari:  mustLit(t, ari.TimespecLiteral(aritime.Timespec{}).WithType(artype.TP)),
			want: "ari:/TP/20000101T000000Z",
		},
		{
			name: "tagged td",
			ari: mustLit(t, ari.TimespecLiteral(aritime.Timespec{Seconds: 3661, Nanos: 500_000_000}).
				WithType(artype.TD)),
			want: "ari:/TD/PT1H1M1.5S",
		},
		{
			name: "reference with ari type",
			ari: ari.NewReference(ari.NewReferenceValue(
				ari.ObjPath{
					NsID:       ari.TextSeg("ns1"),
					HasARIType: true,
					ARIType:    artype.Ctrl,
					ObjID:      ari.IntSeg(7),
				},
				ari.NoParams(),
			)),
			want: "ari://ns1/CTRL/7",
		},
		{
			name: "tagged nan",
			ari:  mustLit(t, ari.Float64Literal(math.NaN()).WithType(artype.Real64)),
			want: "ari:/REAL64/NaN",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := text.Encode(tc.ari)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	a := mustLit(t, ari.TextLiteral("hi there").WithType(artype.TextStr))

	first, err := text.Encode(a)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := text.Encode(a)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestEncodeSchemePrefixModes(t *testing.T) {
	ac := func() ari.ARI {
		items := []ari.ARI{
			mustLit(t, ari.TextLiteral("hello").WithType(artype.TextStr)),
			mustLit(t, ari.Int64Literal(5).WithType(artype.Int)),
		}
		lit, err := ari.ContainerLiteral(artype.AC, ari.NewAC(items))
		require.NoError(t, err)

		return ari.NewLiteral(lit)
	}()

	none, err := text.Encode(ac, text.WithSchemePrefix(text.SchemeNone))
	require.NoError(t, err)
	require.Equal(t, "/AC/(/TEXTSTR/hello,/INT/5)", none)

	first, err := text.Encode(ac, text.WithSchemePrefix(text.SchemeFirst))
	require.NoError(t, err)
	require.Equal(t, "ari:/AC/(/TEXTSTR/hello,/INT/5)", first)

	all, err := text.Encode(ac, text.WithSchemePrefix(text.SchemeAll))
	require.NoError(t, err)
	require.Equal(t, "ari:/AC/(ari:/TEXTSTR/hello,ari:/INT/5)", all)
}

func TestEncodeAMIsOrderedDeterministically(t *testing.T) {
	entries := []ari.AMEntry{
		{Key: mustLit(t, ari.Int64Literal(2).WithType(artype.Int)), Value: ari.NewLiteral(ari.BoolLiteral(true))},
		{Key: mustLit(t, ari.Int64Literal(1).WithType(artype.Int)), Value: ari.NewLiteral(ari.BoolLiteral(false))},
	}
	lit, err := ari.ContainerLiteral(artype.AM, ari.NewAM(entries))
	require.NoError(t, err)
	a := ari.NewLiteral(lit)

	first, err := text.Encode(a)
	require.NoError(t, err)
	second, err := text.Encode(a)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestEncodeTBLZeroColumns(t *testing.T) {
	lit, err := ari.ContainerLiteral(artype.TBL, ari.NewTBL(0, nil))
	require.NoError(t, err)

	got, err := text.Encode(ari.NewLiteral(lit))
	require.NoError(t, err)
	require.Equal(t, "ari:/TBL/c=0;", got)
}

func TestEncodeEXECSETAndRPTSETHeadersSuppressScheme(t *testing.T) {
	nonce := mustLit(t, ari.Int64Literal(99).WithType(artype.Int))
	target := mustLit(t, ari.TextLiteral("do-thing").WithType(artype.TextStr))
	execLit, err := ari.ContainerLiteral(artype.EXECSET, ari.NewEXECSET(nonce, []ari.ARI{target}))
	require.NoError(t, err)

	got, err := text.Encode(ari.NewLiteral(execLit))
	require.NoError(t, err)
	require.Equal(t, "ari:/EXECSET/n=/INT/99;(/TEXTSTR/do-thing)", got)

	reltime := mustLit(t, ari.TimespecLiteral(aritime.Timespec{Seconds: 1}).WithType(artype.TD))
	source := mustLit(t, ari.TextLiteral("src").WithType(artype.TextStr))
	item := ari.NewLiteral(ari.Int64Literal(1))
	reftime := mustLit(t, ari.TimespecLiteral(aritime.Timespec{}).WithType(artype.TP))

	rptLit, err := ari.ContainerLiteral(artype.RPTSET, ari.NewRPTSET(nonce, reftime, []ari.Report{
		{Reltime: reltime, Source: source, Items: []ari.ARI{item}},
	}))
	require.NoError(t, err)

	gotRpt, err := text.Encode(ari.NewLiteral(rptLit))
	require.NoError(t, err)
	require.Equal(t,
		"ari:/RPTSET/n=/INT/99;r=/TP/20000101T000000Z;(t=/TD/PT1S;s=/TEXTSTR/src;(1))",
		gotRpt,
	)
}

func TestARIStringUsesRegisteredEncoder(t *testing.T) {
	a := ari.NewLiteral(ari.NullLiteral())
	require.Equal(t, "ari:null", a.String())
}

func TestEncodeBstrForms(t *testing.T) {
	data := []byte("hi")

	base64, err := text.Encode(
		mustLit(t, ari.ByteLiteral(data, false).WithType(artype.ByteStr)),
		text.WithBstrForm(text.BstrBase64URL),
	)
	require.NoError(t, err)
	require.Equal(t, "ari:/BYTESTR/b64'aGk='", base64)

	raw, err := text.Encode(
		mustLit(t, ari.ByteLiteral(data, false).WithType(artype.ByteStr)),
		text.WithBstrForm(text.BstrRaw),
	)
	require.NoError(t, err)
	require.Equal(t, "ari:/BYTESTR/'hi'", raw)

	invalidUTF8 := []byte{0xff, 0xfe}
	rawFallback, err := text.Encode(
		mustLit(t, ari.ByteLiteral(invalidUTF8, false).WithType(artype.ByteStr)),
		text.WithBstrForm(text.BstrRaw),
	)
	require.NoError(t, err)
	require.Equal(t, "ari:/BYTESTR/h'FFFE'", rawFallback)
}

func TestEncodeIntBaseOptions(t *testing.T) {
	lit := mustLit(t, ari.Int64Literal(10).WithType(artype.Int))

	hex, err := text.Encode(lit, text.WithIntBase(16))
	require.NoError(t, err)
	require.Equal(t, "ari:/INT/0xA", hex)

	bin, err := text.Encode(lit, text.WithIntBase(2))
	require.NoError(t, err)
	require.Equal(t, "ari:/INT/0b1010", bin)
}
