package artype

import "strings"

// Type is an ARI type code, covering both primitive literal types and
// managed-object reference types (spec.md §3).
type Type uint8

const (
	Undefined Type = iota
	Null
	Bool
	Byte
	Int
	Uint
	Vast
	Uvast
	Real32
	Real64
	TextStr
	ByteStr
	TP
	TD
	Label
	CBOR
	ARIType
	AC
	AM
	TBL
	EXECSET
	RPTSET
	Object
	Ident
	Const
	Ctrl
	Literal
)

var names = [...]string{
	Undefined: "UNDEFINED",
	Null:      "NULL",
	Bool:      "BOOL",
	Byte:      "BYTE",
	Int:       "INT",
	Uint:      "UINT",
	Vast:      "VAST",
	Uvast:     "UVAST",
	Real32:    "REAL32",
	Real64:    "REAL64",
	TextStr:   "TEXTSTR",
	ByteStr:   "BYTESTR",
	TP:        "TP",
	TD:        "TD",
	Label:     "LABEL",
	CBOR:      "CBOR",
	ARIType:   "ARITYPE",
	AC:        "AC",
	AM:        "AM",
	TBL:       "TBL",
	EXECSET:   "EXECSET",
	RPTSET:    "RPTSET",
	Object:    "OBJECT",
	Ident:     "IDENT",
	Const:     "CONST",
	Ctrl:      "CTRL",
	Literal:   "LITERAL",
}

// byName is built once, eagerly, by the package init function; a linear
// scan over names would be equally correct since the table never changes
// after package init.
var byName map[string]Type

func init() {
	byName = make(map[string]Type, len(names))
	for code, name := range names {
		byName[name] = Type(code)
	}
}

// String returns the canonical uppercase name for t, or "" if t is not a
// registered type code.
func (t Type) String() string {
	if int(t) >= len(names) {
		return ""
	}

	return names[t]
}

// Name returns the canonical name for t and whether t is registered.
func Name(t Type) (string, bool) {
	s := t.String()
	return s, s != ""
}

// FromName looks up the type code for name, matched case-insensitively
// against the canonical registry.
func FromName(name string) (Type, bool) {
	t, ok := byName[strings.ToUpper(name)]
	return t, ok
}
