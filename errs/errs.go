// Package errs defines the sentinel errors shared by every codec in the
// ari module. Callers compare against these with errors.Is; concrete
// errors returned by the module wrap one of these with fmt.Errorf("%w: ...", ...)
// to add positional or value context without losing the sentinel.
package errs

import "errors"

var (
	// ErrNullArg is returned when a required argument is missing, e.g. a nil
	// container handle where a literal's tag demands one.
	ErrNullArg = errors.New("ari: required argument is nil")

	// ErrMalformed is returned when a sub-codec encounters a syntactic
	// violation: bad hex digits, an odd-length base16 string, a missing
	// timezone designator, an unexpected character, and the like.
	ErrMalformed = errors.New("ari: malformed input")

	// ErrSurplus is returned when trailing bytes remain after a complete
	// token has already been consumed.
	ErrSurplus = errors.New("ari: surplus bytes after token")

	// ErrOverflow is returned when a numeric quantity exceeds the range the
	// target representation can hold, e.g. more than nine subsecond digits.
	ErrOverflow = errors.New("ari: value out of range")

	// ErrUnsupported is returned for a recognized-but-unhandled request: an
	// unknown float format letter, an ARI type with no encoding rule, etc.
	ErrUnsupported = errors.New("ari: unsupported option or type")
)
