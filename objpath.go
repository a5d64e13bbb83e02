package ari

import "github.com/dtnma/ari/artype"

// ObjPath names a managed object: a namespace, a type (either the raw
// TypeID segment or, when HasARIType is set, the authoritative ARIType),
// and an object identifier within that type.
type ObjPath struct {
	NsID       IdSeg
	TypeID     IdSeg
	ObjID      IdSeg
	HasARIType bool
	ARIType    artype.Type
}

// typeEqual compares the type-naming position of two paths, preferring
// ARIType when both sides have it tagged and falling back to TypeID
// otherwise.
func (p ObjPath) typeEqual(o ObjPath) bool {
	if p.HasARIType && o.HasARIType {
		return p.ARIType == o.ARIType
	}

	return p.TypeID.Equal(o.TypeID)
}

// Equal reports whether p and o name the same object path.
func (p ObjPath) Equal(o ObjPath) bool {
	return p.NsID.Equal(o.NsID) && p.typeEqual(o) && p.ObjID.Equal(o.ObjID)
}
