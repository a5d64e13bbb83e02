package aricodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlashEscapeUnescape_RoundTrip(t *testing.T) {
	cases := []string{
		"",
		"plain text",
		`has "double" and 'single' quotes`,
		"tab\tnewline\nreturn\rbackspace\bformfeed\f",
		"backslash\\end",
		"emoji \U0001F600 and math \U0001D400",
		string(rune(0x10FFFF)),
		string(rune(0x10000)),
	}

	for _, quote := range []byte{'"', '\''} {
		for _, tc := range cases {
			escaped := SlashEscape(tc, quote)
			back, err := SlashUnescape(escaped)
			require.NoError(t, err)
			require.Equal(t, tc, back)
		}
	}
}

func TestSlashEscape_SurrogatePairBoundaries(t *testing.T) {
	got := SlashEscape(string(rune(0x10000)), '"')
	require.Equal(t, "\\uD800\\uDC00", got)

	got = SlashEscape(string(rune(0x10FFFF)), '"')
	require.Equal(t, "\\uDBFF\\uDFFF", got)
}

func TestSlashUnescape_Malformed(t *testing.T) {
	_, err := SlashUnescape(`bad\`)
	require.Error(t, err)

	_, err = SlashUnescape(`\uD800`) // high surrogate with no continuation
	require.Error(t, err)

	_, err = SlashUnescape(`\uD800A`) // high surrogate followed by non-low-surrogate
	require.Error(t, err)

	_, err = SlashUnescape(`\uZZZZ`)
	require.Error(t, err)
}

func TestSlashUnescape_OtherCharPassthrough(t *testing.T) {
	got, err := SlashUnescape(`\X`)
	require.NoError(t, err)
	require.Equal(t, "X", got)
}
