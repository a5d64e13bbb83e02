package aricodec

import (
	"fmt"

	"github.com/dtnma/ari/errs"
)

const lowerHex = "0123456789abcdef"

// Base16Encode renders data as two hex digits per byte, in the requested
// case.
func Base16Encode(data []byte, upper bool) string {
	alphabet := lowerHex
	if upper {
		alphabet = upperHex
	}

	out := make([]byte, len(data)*2)
	for i, b := range data {
		out[i*2] = alphabet[b>>4]
		out[i*2+1] = alphabet[b&0x0f]
	}

	return string(out)
}

// Base16Decode is the inverse of Base16Encode. It requires an even-length
// input drawn from [0-9A-Fa-f]; anything else is MALFORMED.
func Base16Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: base16 string has odd length %d", errs.ErrMalformed, len(s))
	}

	out := make([]byte, len(s)/2)
	for i := 0; i < len(out); i++ {
		hi, ok1 := hexVal(s[i*2])
		lo, ok2 := hexVal(s[i*2+1])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: non-hex byte at offset %d", errs.ErrMalformed, i*2)
		}
		out[i] = hi<<4 | lo
	}

	return out, nil
}
