package aricodec

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dtnma/ari/errs"
)

// FloatEncode formats v per form, one of 'f', 'g', 'e', 'a'. NaN and the
// infinities are rendered as the literal tokens "NaN", "+Infinity" and
// "-Infinity" regardless of form.
func FloatEncode(v float64, form byte) (string, error) {
	switch {
	case math.IsNaN(v):
		return "NaN", nil
	case math.IsInf(v, 1):
		return "+Infinity", nil
	case math.IsInf(v, -1):
		return "-Infinity", nil
	}

	switch form {
	case 'f', 'g', 'e':
		return strconv.FormatFloat(v, form, -1, 64), nil
	case 'a':
		return strconv.FormatFloat(v, 'x', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: unknown float format %q", errs.ErrUnsupported, form)
	}
}
