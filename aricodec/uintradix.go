package aricodec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dtnma/ari/errs"
)

// UintEncode renders v in the requested base: 2 as "0b<digits>", 10 as pure
// decimal, 16 as "0x<UPPERCASE>". Any other base is ErrUnsupported.
func UintEncode(v uint64, base int) (string, error) {
	switch base {
	case 2:
		return "0b" + strconv.FormatUint(v, 2), nil
	case 10:
		return strconv.FormatUint(v, 10), nil
	case 16:
		return "0x" + strings.ToUpper(strconv.FormatUint(v, 16)), nil
	default:
		return "", fmt.Errorf("%w: unsupported integer base %d", errs.ErrUnsupported, base)
	}
}

// IntEncode renders a signed value by emitting '-' followed by the unsigned
// encoding of its absolute value, in the requested base.
func IntEncode(v int64, base int) (string, error) {
	if v >= 0 {
		return UintEncode(uint64(v), base)
	}

	// Use the two's-complement trick to negate math.MinInt64 safely.
	mag := uint64(-(v + 1)) + 1

	enc, err := UintEncode(mag, base)
	if err != nil {
		return "", err
	}

	return "-" + enc, nil
}

// UintDecode auto-detects the base: a "0b" prefix selects binary (only '0'
// and '1' allowed after it); otherwise it follows C strtoull base-0 rules
// via strconv.ParseUint(s, 0, 64), which accepts decimal, a leading-zero
// octal form, and "0x"/"0X" hex.
func UintDecode(s string) (uint64, error) {
	if strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B") {
		digits := s[2:]
		if digits == "" {
			return 0, fmt.Errorf("%w: empty binary literal %q", errs.ErrMalformed, s)
		}
		for _, c := range digits {
			if c != '0' && c != '1' {
				return 0, fmt.Errorf("%w: invalid binary digit %q in %q", errs.ErrMalformed, c, s)
			}
		}

		v, err := strconv.ParseUint(digits, 2, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", errs.ErrOverflow, err)
		}

		return v, nil
	}

	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrMalformed, err)
	}

	return v, nil
}

// IntDecode parses an optionally '-'-prefixed magnitude using UintDecode's
// auto-detected base.
func IntDecode(s string) (int64, error) {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	mag, err := UintDecode(s)
	if err != nil {
		return 0, err
	}

	if neg {
		if mag > 1<<63 {
			return 0, fmt.Errorf("%w: magnitude %d too large to negate into int64", errs.ErrOverflow, mag)
		}

		return -int64(mag), nil //nolint:gosec // mag<=1<<63 wraps to math.MinInt64 exactly when mag==1<<63
	}

	if mag > 1<<63-1 {
		return 0, fmt.Errorf("%w: magnitude %d too large for int64", errs.ErrOverflow, mag)
	}

	return int64(mag), nil
}
