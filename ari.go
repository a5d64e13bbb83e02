package ari

// Kind distinguishes the two ARI variants.
type Kind uint8

const (
	KindLiteral Kind = iota
	KindReference
)

// ARI is a typed value (Literal) or a typed object reference (Reference).
// The zero value is the untagged UNDEFINED literal.
type ARI struct {
	kind Kind
	lit  Literal
	ref  Reference
}

// NewLiteral wraps l as a literal ARI.
func NewLiteral(l Literal) ARI {
	return ARI{kind: KindLiteral, lit: l}
}

// NewReference wraps r as a reference ARI.
func NewReference(r Reference) ARI {
	return ARI{kind: KindReference, ref: r}
}

// Kind reports whether a is a literal or a reference.
func (a ARI) Kind() Kind { return a.kind }

// IsLiteral reports whether a holds a literal.
func (a ARI) IsLiteral() bool { return a.kind == KindLiteral }

// IsReference reports whether a holds a reference.
func (a ARI) IsReference() bool { return a.kind == KindReference }

// AsLiteral returns a's Literal and true, or the zero Literal and false if
// a is a reference.
func (a ARI) AsLiteral() (Literal, bool) {
	if a.kind != KindLiteral {
		return Literal{}, false
	}

	return a.lit, true
}

// AsReference returns a's Reference and true, or the zero Reference and
// false if a is a literal.
func (a ARI) AsReference() (Reference, bool) {
	if a.kind != KindReference {
		return Reference{}, false
	}

	return a.ref, true
}

// encodeFn is set by the text package's init, breaking the import cycle
// that would otherwise exist between ari (the value model) and text (the
// codec that depends on it). See RegisterEncoder.
var encodeFn func(ARI) (string, error)

// RegisterEncoder installs the function String uses to render an ARI. It is
// called once, from the text package's init, and is not part of the public
// contract callers should invoke directly.
func RegisterEncoder(fn func(ARI) (string, error)) {
	encodeFn = fn
}

// String renders a using the registered encoder's default options. It
// exists for fmt/debugging convenience; callers that need control over
// rendering options should use the text package's Encode directly.
func (a ARI) String() string {
	if encodeFn == nil {
		return "<ari: encoder not loaded>"
	}

	s, err := encodeFn(a)
	if err != nil {
		return "<invalid ari>"
	}

	return s
}
