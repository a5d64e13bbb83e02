package aritime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dtnma/ari/errs"
)

// TimePeriodEncode renders a Timespec as an ISO 8601 duration: an optional
// '-' sign, 'P', an optional "<d>D", mandatory 'T', then any of "<h>H",
// "<m>M", "<s>[.frac]S" that are non-zero. A zero duration is the canonical
// "PT0S".
func TimePeriodEncode(ts Timespec) string {
	neg := ts.Seconds < 0
	secs := ts.Seconds
	if neg {
		secs = -secs
	}

	days := secs / 86400
	rem := secs % 86400
	hours := rem / 3600
	rem %= 3600
	minutes := rem / 60
	seconds := rem % 60

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteByte('P')
	if days > 0 {
		fmt.Fprintf(&sb, "%dD", days)
	}
	sb.WriteByte('T')

	if hours > 0 {
		fmt.Fprintf(&sb, "%dH", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&sb, "%dM", minutes)
	}

	if seconds > 0 || ts.Nanos > 0 || (days == 0 && hours == 0 && minutes == 0) {
		if ts.Nanos == 0 {
			fmt.Fprintf(&sb, "%dS", seconds)
		} else {
			frac := fmt.Sprintf("%09d", ts.Nanos)
			frac = strings.TrimRight(frac, "0")
			fmt.Fprintf(&sb, "%d.%sS", seconds, frac)
		}
	}

	return sb.String()
}

// TimePeriodDecode is the inverse of TimePeriodEncode. It accepts an
// optional leading '+'/'-' sign; unit letters D, H, M, S must appear in
// that order (each optional except the mandatory P/T skeleton), and any
// present unit must carry an integer (optionally fractional for S).
// Trailing bytes after the final unit are ErrSurplus.
func TimePeriodDecode(s string) (Timespec, error) {
	orig := s
	neg := false
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		neg = s[0] == '-'
		s = s[1:]
	}

	if !strings.HasPrefix(s, "P") {
		return Timespec{}, fmt.Errorf("%w: missing leading P in %q", errs.ErrMalformed, orig)
	}
	s = s[1:]

	var days, hours, minutes int64
	var seconds int64
	var nanos uint32

	dayStr, afterDay, hasDay := cutUnit(s, 'D')
	if hasDay {
		v, err := strconv.ParseInt(dayStr, 10, 64)
		if err != nil {
			return Timespec{}, fmt.Errorf("%w: invalid day count %q", errs.ErrMalformed, dayStr)
		}
		days = v
		s = afterDay
	}

	if !strings.HasPrefix(s, "T") {
		return Timespec{}, fmt.Errorf("%w: missing T designator in %q", errs.ErrMalformed, orig)
	}
	s = s[1:]

	hourStr, afterHour, hasHour := cutUnit(s, 'H')
	if hasHour {
		v, err := strconv.ParseInt(hourStr, 10, 64)
		if err != nil {
			return Timespec{}, fmt.Errorf("%w: invalid hour count %q", errs.ErrMalformed, hourStr)
		}
		hours = v
		s = afterHour
	}

	minStr, afterMin, hasMin := cutUnit(s, 'M')
	if hasMin {
		v, err := strconv.ParseInt(minStr, 10, 64)
		if err != nil {
			return Timespec{}, fmt.Errorf("%w: invalid minute count %q", errs.ErrMalformed, minStr)
		}
		minutes = v
		s = afterMin
	}

	secStr, afterSec, hasSec := cutUnit(s, 'S')
	if hasSec {
		intPart, fracPart, hasFrac := strings.Cut(secStr, ".")
		v, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return Timespec{}, fmt.Errorf("%w: invalid second count %q", errs.ErrMalformed, intPart)
		}
		seconds = v

		if hasFrac {
			if fracPart == "" || len(fracPart) > 9 {
				return Timespec{}, fmt.Errorf("%w: invalid fractional seconds %q", errs.ErrMalformed, fracPart)
			}
			for _, c := range fracPart {
				if c < '0' || c > '9' {
					return Timespec{}, fmt.Errorf("%w: non-digit %q in fractional seconds", errs.ErrMalformed, c)
				}
			}
			padded := fracPart + strings.Repeat("0", 9-len(fracPart))
			n, convErr := strconv.ParseUint(padded, 10, 32)
			if convErr != nil {
				return Timespec{}, fmt.Errorf("%w: %v", errs.ErrMalformed, convErr)
			}
			nanos = uint32(n)
		}
		s = afterSec
	}

	if s != "" {
		return Timespec{}, fmt.Errorf("%w: trailing bytes %q after duration", errs.ErrSurplus, s)
	}

	total := days*86400 + hours*3600 + minutes*60 + seconds
	if neg {
		total = -total
	}

	return Timespec{Seconds: total, Nanos: nanos}, nil
}

// cutUnit looks for a run of digits (and at most one '.') immediately
// followed by the unit letter at the start of s. It returns the digits,
// the remainder of s after the unit letter, and whether the unit was
// present at all.
func cutUnit(s string, unit byte) (digits, rest string, ok bool) {
	i := 0
	for i < len(s) && (s[i] == '.' || (s[i] >= '0' && s[i] <= '9')) {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != unit {
		return "", s, false
	}

	return s[:i], s[i+1:], true
}
