package ari

import (
	"github.com/dtnma/ari/internal/hash"
)

// Hash computes a structural hash of a such that Equal(a, b) implies
// Hash(a) == Hash(b) (spec.md §8 invariant 2), using the same xxHash64
// accumulator the teacher uses for its own identifier hashing
// (internal/hash), generalized here to a streaming Digest fed in tree
// order.
func Hash(a ARI) uint64 {
	d := hash.New()
	hashARI(d, a)

	return d.Sum64()
}

func hashARI(d *hash.Digest, a ARI) {
	d.WriteByte(byte(a.kind))

	if a.kind == KindReference {
		ref, _ := a.AsReference()
		hashReference(d, ref)

		return
	}

	lit, _ := a.AsLiteral()
	hashLiteral(d, lit)
}

func hashIdSeg(d *hash.Digest, s IdSeg) {
	d.WriteByte(byte(s.Form))

	switch s.Form {
	case IdSegText:
		d.WriteString(s.Text)
	case IdSegInt:
		d.WriteInt64(s.Int)
	}
}

func hashObjPath(d *hash.Digest, p ObjPath) {
	hashIdSeg(d, p.NsID)

	if p.HasARIType {
		d.WriteByte(byte(p.ARIType))
	} else {
		hashIdSeg(d, p.TypeID)
	}

	hashIdSeg(d, p.ObjID)
}

func hashReference(d *hash.Digest, r Reference) {
	hashObjPath(d, r.Path)
	hashParams(d, r.Params)
}

func hashParams(d *hash.Digest, p Params) {
	d.WriteByte(byte(p.State))

	switch p.State {
	case ParamsAC:
		hashACItems(d, p.AC)
	case ParamsAM:
		hashAMUnordered(d, p.AM)
	}
}

func hashLiteral(d *hash.Digest, l Literal) {
	d.WriteBool(l.HasARIType)

	if l.HasARIType {
		d.WriteByte(byte(l.ARIType))
	}

	if l.Container != nil {
		if l.Container.Kind == ContainerTBL {
			d.WriteUint64(uint64(l.Container.Ncols))
		}
		hashContainer(d, l.Container)

		return
	}

	d.WriteByte(byte(l.PrimType))

	switch l.PrimType {
	case PrimBool:
		d.WriteBool(l.Bool)
	case PrimUint64:
		d.WriteUint64(l.U64)
	case PrimInt64:
		d.WriteInt64(l.I64)
	case PrimFloat64:
		d.WriteFloat64(l.F64)
	case PrimTStr, PrimBStr:
		d.WriteBytes(l.Bytes)
	case PrimTimespec:
		d.WriteInt64(l.Time.Seconds)
		d.WriteUint64(uint64(l.Time.Nanos))
	}
}

func hashContainer(d *hash.Digest, c *Container) {
	switch c.Kind {
	case ContainerAC:
		hashACItems(d, c.Items)
	case ContainerAM:
		hashAMUnordered(d, c.Entries)
	case ContainerTBL:
		hashACItems(d, c.Cells)
	case ContainerEXECSET:
		hashARI(d, c.Nonce)
		hashACItems(d, c.Items)
	case ContainerRPTSET:
		hashARI(d, c.Nonce)
		hashARI(d, c.Reftime)
		for _, r := range c.Reports {
			hashARI(d, r.Reltime)
			hashARI(d, r.Source)
			hashACItems(d, r.Items)
		}
	}
}

func hashACItems(d *hash.Digest, items []ARI) {
	d.WriteUint64(uint64(len(items)))
	for _, it := range items {
		hashARI(d, it)
	}
}

// hashAMUnordered folds an AM's entries order-independently by summing
// each entry's individual digest, since AM equality is unordered (the
// encoder's own deterministic ordering, by contrast, is purely a
// presentation concern handled in Container.SortedEntries).
func hashAMUnordered(d *hash.Digest, entries []AMEntry) {
	d.WriteUint64(uint64(len(entries)))

	var acc uint64
	for _, e := range entries {
		ed := hash.New()
		hashARI(ed, e.Key)
		hashARI(ed, e.Value)
		acc += ed.Sum64()
	}

	d.WriteUint64(acc)
}
