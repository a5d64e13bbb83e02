package aritime

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dtnma/ari/errs"
)

// UTCTimeEncode renders ts (seconds relative to the DTN epoch) as an ISO
// 8601 UTC timestamp. When sep is true, '-' and ':' separators are emitted
// between date and time fields; when false the compact "YYYYMMDDTHHMMSSZ"
// form is used. The encoder never emits a local offset; the trailing
// designator is always 'Z'.
func UTCTimeEncode(ts Timespec, sep bool) string {
	unix := DTNEpochUnix + ts.Seconds
	tm := time.Unix(unix, 0).UTC()

	var sb strings.Builder
	if sep {
		fmt.Fprintf(&sb, "%04d-%02d-%02dT%02d:%02d:%02d",
			tm.Year(), tm.Month(), tm.Day(), tm.Hour(), tm.Minute(), tm.Second())
	} else {
		fmt.Fprintf(&sb, "%04d%02d%02dT%02d%02d%02d",
			tm.Year(), tm.Month(), tm.Day(), tm.Hour(), tm.Minute(), tm.Second())
	}

	if ts.Nanos != 0 {
		frac := fmt.Sprintf("%09d", ts.Nanos)
		frac = strings.TrimRight(frac, "0")
		sb.WriteByte('.')
		sb.WriteString(frac)
	}

	sb.WriteByte('Z')

	return sb.String()
}

// UTCTimeDecode is the inverse of UTCTimeEncode. It strips '-' and ':'
// wherever they occur in the date/time portion before parsing, so both the
// separated and compact forms (and any ad hoc mixture) are accepted.
func UTCTimeDecode(s string) (Timespec, error) {
	if !strings.HasSuffix(s, "Z") {
		return Timespec{}, fmt.Errorf("%w: missing trailing Z in %q", errs.ErrMalformed, s)
	}
	body := s[:len(s)-1]

	datePart, timePart, ok := strings.Cut(body, "T")
	if !ok {
		return Timespec{}, fmt.Errorf("%w: missing date/time separator T in %q", errs.ErrMalformed, s)
	}

	datePart = stripSeparators(datePart)
	timePart, fracPart, hasFrac := strings.Cut(timePart, ".")
	timePart = stripSeparators(timePart)

	if len(datePart) != 8 {
		return Timespec{}, fmt.Errorf("%w: expected 8-digit date, got %q", errs.ErrMalformed, datePart)
	}
	if len(timePart) != 6 {
		return Timespec{}, fmt.Errorf("%w: expected 6-digit time, got %q", errs.ErrMalformed, timePart)
	}

	year, err := strconv.Atoi(datePart[0:4])
	if err != nil {
		return Timespec{}, fmt.Errorf("%w: invalid year in %q", errs.ErrMalformed, s)
	}
	month, err := strconv.Atoi(datePart[4:6])
	if err != nil {
		return Timespec{}, fmt.Errorf("%w: invalid month in %q", errs.ErrMalformed, s)
	}
	day, err := strconv.Atoi(datePart[6:8])
	if err != nil {
		return Timespec{}, fmt.Errorf("%w: invalid day in %q", errs.ErrMalformed, s)
	}
	hour, err := strconv.Atoi(timePart[0:2])
	if err != nil {
		return Timespec{}, fmt.Errorf("%w: invalid hour in %q", errs.ErrMalformed, s)
	}
	minute, err := strconv.Atoi(timePart[2:4])
	if err != nil {
		return Timespec{}, fmt.Errorf("%w: invalid minute in %q", errs.ErrMalformed, s)
	}
	second, err := strconv.Atoi(timePart[4:6])
	if err != nil {
		return Timespec{}, fmt.Errorf("%w: invalid second in %q", errs.ErrMalformed, s)
	}

	var nanos uint32
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
		v, convErr := strconv.ParseUint(padded, 10, 32)
		if convErr != nil {
			return Timespec{}, fmt.Errorf("%w: %v", errs.ErrMalformed, convErr)
		}
		nanos = uint32(v)
	}

	tm := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)

	return Timespec{Seconds: tm.Unix() - DTNEpochUnix, Nanos: nanos}, nil
}

func stripSeparators(s string) string {
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, ":", "")

	return s
}
