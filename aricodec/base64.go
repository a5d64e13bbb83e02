package aricodec

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dtnma/ari/errs"
)

// Base64Encode renders data using the standard (padded) RFC 4648 alphabet
// when url is false, or the URL-safe alphabet when url is true. Output is
// always padded to a multiple of 4 with '='.
func Base64Encode(data []byte, url bool) string {
	if url {
		return base64.URLEncoding.EncodeToString(data)
	}

	return base64.StdEncoding.EncodeToString(data)
}

// Base64Decode accepts either the standard or URL-safe alphabet and treats
// the first run of '=' as end-of-data. Any non-'=' byte found after that
// padding run yields ErrSurplus.
func Base64Decode(s string) ([]byte, error) {
	body, rest := splitAtPadding(s)
	if i := strings.IndexFunc(rest, func(r rune) bool { return r != '=' }); i >= 0 {
		return nil, fmt.Errorf("%w: non-padding byte after padding run at offset %d", errs.ErrSurplus, len(body)+i)
	}

	enc := base64.RawStdEncoding
	if strings.ContainsAny(body, "-_") {
		enc = base64.RawURLEncoding
	}

	data, err := enc.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformed, err)
	}

	return data, nil
}

// splitAtPadding splits s at the first '=' byte, returning the data prefix
// and everything from that '=' onward (the padding run plus any surplus).
func splitAtPadding(s string) (body, rest string) {
	if i := strings.IndexByte(s, '='); i >= 0 {
		return s[:i], s[i:]
	}

	return s, ""
}
