package aritime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dtnma/ari/errs"
)

// DecFracEncode renders ts as "<seconds>[.<nanos>]", stripping trailing
// zeros from the fractional part and omitting it entirely when Nanos is 0.
func DecFracEncode(ts Timespec) string {
	if ts.Nanos == 0 {
		return strconv.FormatInt(ts.Seconds, 10)
	}

	frac := fmt.Sprintf("%09d", ts.Nanos)
	frac = strings.TrimRight(frac, "0")

	return strconv.FormatInt(ts.Seconds, 10) + "." + frac
}

// DecFracDecode parses "<seconds>[.<digits>]" where digits is at most nine
// characters; fewer than nine digits are right-padded with zeros to
// nanosecond precision. More than nine digits is ErrOverflow.
func DecFracDecode(s string) (Timespec, error) {
	secPart, fracPart, hasFrac := strings.Cut(s, ".")

	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return Timespec{}, fmt.Errorf("%w: invalid seconds %q: %v", errs.ErrMalformed, secPart, err)
	}

	if !hasFrac {
		return Timespec{Seconds: sec}, nil
	}

	if fracPart == "" {
		return Timespec{}, fmt.Errorf("%w: empty fractional part in %q", errs.ErrMalformed, s)
	}
	if len(fracPart) > 9 {
		return Timespec{}, fmt.Errorf("%w: %d fractional digits exceeds nanosecond precision", errs.ErrOverflow, len(fracPart))
	}

	for _, c := range fracPart {
		if c < '0' || c > '9' {
			return Timespec{}, fmt.Errorf("%w: non-digit %q in fractional part", errs.ErrMalformed, c)
		}
	}

	padded := fracPart + strings.Repeat("0", 9-len(fracPart))
	nanos, err := strconv.ParseUint(padded, 10, 32)
	if err != nil {
		return Timespec{}, fmt.Errorf("%w: %v", errs.ErrMalformed, err)
	}

	return Timespec{Seconds: sec, Nanos: uint32(nanos)}, nil
}
