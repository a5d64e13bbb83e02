package ari

import "math"

// Equal reports whether a and b denote the same ARI value, per the
// structural rules of spec.md §4.F: references compare path and
// parameters; literals compare the type tag (when present) and the
// primitive value, with NaN equal to NaN and containers compared
// recursively by their own per-kind rule.
func Equal(a, b ARI) bool {
	if a.kind != b.kind {
		return false
	}

	if a.kind == KindReference {
		ra, _ := a.AsReference()
		rb, _ := b.AsReference()

		return equalReference(ra, rb)
	}

	la, _ := a.AsLiteral()
	lb, _ := b.AsLiteral()

	return equalLiteral(la, lb)
}

func equalReference(a, b Reference) bool {
	return a.Path.Equal(b.Path) && equalParams(a.Params, b.Params)
}

func equalParams(a, b Params) bool {
	if a.State != b.State {
		return false
	}

	switch a.State {
	case ParamsAC:
		return equalACItems(a.AC, b.AC)
	case ParamsAM:
		return equalAMUnordered(a.AM, b.AM)
	default:
		return true
	}
}

func equalLiteral(a, b Literal) bool {
	if a.HasARIType != b.HasARIType {
		return false
	}

	if a.HasARIType {
		if a.ARIType != b.ARIType {
			return false
		}
		if a.Container != nil || b.Container != nil {
			if a.Container == nil || b.Container == nil {
				return false
			}

			return equalContainer(a.Container, b.Container)
		}
	}

	if a.PrimType != b.PrimType {
		return false
	}

	return equalPrimitive(a, b)
}

func equalPrimitive(a, b Literal) bool {
	switch a.PrimType {
	case PrimUndefined, PrimNull:
		return true
	case PrimBool:
		return a.Bool == b.Bool
	case PrimUint64:
		return a.U64 == b.U64
	case PrimInt64:
		return a.I64 == b.I64
	case PrimFloat64:
		if math.IsNaN(a.F64) && math.IsNaN(b.F64) {
			return true
		}

		return a.F64 == b.F64
	case PrimTStr, PrimBStr:
		return string(a.Bytes) == string(b.Bytes)
	case PrimTimespec:
		return a.Time == b.Time
	default:
		return true
	}
}

func equalContainer(a, b *Container) bool {
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case ContainerAC:
		return equalACItems(a.Items, b.Items)
	case ContainerAM:
		return equalAMUnordered(a.Entries, b.Entries)
	case ContainerTBL:
		return a.Ncols == b.Ncols && equalACItems(a.Cells, b.Cells)
	case ContainerEXECSET:
		return Equal(a.Nonce, b.Nonce) && equalACItems(a.Items, b.Items)
	case ContainerRPTSET:
		return Equal(a.Nonce, b.Nonce) && Equal(a.Reftime, b.Reftime) && equalReports(a.Reports, b.Reports)
	default:
		return true
	}
}

func equalACItems(a, b []ARI) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}

func equalReports(a, b []Report) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i].Reltime, b[i].Reltime) || !Equal(a[i].Source, b[i].Source) || !equalACItems(a[i].Items, b[i].Items) {
			return false
		}
	}

	return true
}

// equalAMUnordered compares two AM entry lists as mappings: same key set
// under Equal, same value under Equal for each key.
func equalAMUnordered(a, b []AMEntry) bool {
	if len(a) != len(b) {
		return false
	}

	used := make([]bool, len(b))
	for _, ea := range a {
		found := false
		for j, eb := range b {
			if used[j] {
				continue
			}
			if Equal(ea.Key, eb.Key) {
				if !Equal(ea.Value, eb.Value) {
					return false
				}
				used[j] = true
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
