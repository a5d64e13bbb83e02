package ari

import (
	"fmt"

	"github.com/dtnma/ari/aritime"
	"github.com/dtnma/ari/artype"
	"github.com/dtnma/ari/errs"
)

// PrimType is the primitive shape of a Literal's value.
type PrimType uint8

const (
	PrimUndefined PrimType = iota
	PrimNull
	PrimBool
	PrimUint64
	PrimInt64
	PrimFloat64
	PrimTStr
	PrimBStr
	PrimTimespec
	PrimOther
)

// Literal carries a primitive value and, optionally, an explicit ARI type
// tag naming one of the IANA-registered literal or managed-object types.
type Literal struct {
	PrimType PrimType

	Bool bool
	U64  uint64
	I64  int64
	F64  float64

	// Bytes backs TSTR and BSTR. NulSentinel records a trailing NUL present
	// in the original encoding that is ignored in length accounting
	// (spec.md §4.A, text_is_identity).
	Bytes       []byte
	NulSentinel bool

	Time aritime.Timespec

	// Container backs the AC/AM/TBL/EXECSET/RPTSET tags; nil otherwise.
	Container *Container

	HasARIType bool
	ARIType    artype.Type
}

// Undefined returns the UNDEFINED literal, which matches only itself.
func Undefined() Literal { return Literal{PrimType: PrimUndefined} }

// NullLiteral returns the untagged NULL literal.
func NullLiteral() Literal { return Literal{PrimType: PrimNull} }

// BoolLiteral returns an untagged BOOL literal.
func BoolLiteral(v bool) Literal { return Literal{PrimType: PrimBool, Bool: v} }

// Uint64Literal returns an untagged UINT64 literal.
func Uint64Literal(v uint64) Literal { return Literal{PrimType: PrimUint64, U64: v} }

// Int64Literal returns an untagged INT64 literal.
func Int64Literal(v int64) Literal { return Literal{PrimType: PrimInt64, I64: v} }

// Float64Literal returns an untagged FLOAT64 literal.
func Float64Literal(v float64) Literal { return Literal{PrimType: PrimFloat64, F64: v} }

// TextLiteral returns an untagged TSTR literal.
func TextLiteral(s string) Literal { return Literal{PrimType: PrimTStr, Bytes: []byte(s)} }

// ByteLiteral returns an untagged BSTR literal. nulSentinel records whether
// the original bytes carried a trailing NUL that must be ignored for
// length-sensitive operations.
func ByteLiteral(b []byte, nulSentinel bool) Literal {
	return Literal{PrimType: PrimBStr, Bytes: b, NulSentinel: nulSentinel}
}

// TimespecLiteral returns an untagged TIMESPEC literal.
func TimespecLiteral(ts aritime.Timespec) Literal {
	return Literal{PrimType: PrimTimespec, Time: ts}
}

// WithType returns l with an explicit ARI type tag attached, validating the
// TP/TD/container invariants from spec.md §3.
func (l Literal) WithType(t artype.Type) (Literal, error) {
	l.HasARIType = true
	l.ARIType = t

	switch t {
	case artype.TP, artype.TD:
		if l.PrimType != PrimTimespec {
			return Literal{}, fmt.Errorf("%w: %s requires a TIMESPEC value", errs.ErrMalformed, t)
		}
	case artype.AC, artype.AM, artype.TBL, artype.EXECSET, artype.RPTSET:
		if l.Container == nil {
			return Literal{}, fmt.Errorf("%w: %s requires a container value", errs.ErrMalformed, t)
		}
		if !containerKindMatches(t, l.Container.Kind) {
			return Literal{}, fmt.Errorf("%w: container kind does not match tag %s", errs.ErrMalformed, t)
		}
	}

	return l, nil
}

func containerKindMatches(t artype.Type, k ContainerKind) bool {
	switch t {
	case artype.AC:
		return k == ContainerAC
	case artype.AM:
		return k == ContainerAM
	case artype.TBL:
		return k == ContainerTBL
	case artype.EXECSET:
		return k == ContainerEXECSET
	case artype.RPTSET:
		return k == ContainerRPTSET
	default:
		return false
	}
}

// ContainerLiteral builds a tagged literal directly from a container and its
// corresponding ARI type, validating the tag/container-kind pairing.
func ContainerLiteral(t artype.Type, c *Container) (Literal, error) {
	if c == nil {
		return Literal{}, fmt.Errorf("%w: nil container for %s", errs.ErrNullArg, t)
	}

	l := Literal{PrimType: PrimOther, Container: c}

	return l.WithType(t)
}
