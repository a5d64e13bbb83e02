package aritime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUTCTime_RoundTrip(t *testing.T) {
	cases := []Timespec{
		{Seconds: 0, Nanos: 0},
		{Seconds: 3661, Nanos: 500000000},
		{Seconds: 86400 * 400, Nanos: 0},
	}

	for _, sep := range []bool{true, false} {
		for _, ts := range cases {
			enc := UTCTimeEncode(ts, sep)
			dec, err := UTCTimeDecode(enc)
			require.NoError(t, err)
			require.Equal(t, ts, dec)
		}
	}
}

func TestUTCTimeEncode_Epoch(t *testing.T) {
	require.Equal(t, "20000101T000000Z", UTCTimeEncode(Timespec{}, false))
	require.Equal(t, "2000-01-01T00:00:00Z", UTCTimeEncode(Timespec{}, true))
}

func TestUTCTimeDecode_StripsSeparatorsAnywhere(t *testing.T) {
	ts, err := UTCTimeDecode("2000-01:01T00-00-00Z")
	require.NoError(t, err)
	require.Equal(t, Timespec{}, ts)
}

func TestUTCTimeDecode_MissingZ(t *testing.T) {
	_, err := UTCTimeDecode("20000101T000000")
	require.Error(t, err)
}

func TestUTCTimeDecode_Malformed(t *testing.T) {
	_, err := UTCTimeDecode("not-a-time Z")
	require.Error(t, err)
}
