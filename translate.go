package ari

// Translator is a mirror-shaped map over an ARI tree: it produces an output
// ARI from an input ARI, node by node. Any callback left nil falls back to
// the default behavior named in its doc comment, so a zero-value Translator
// performs a structural deep copy.
type Translator struct {
	// MapLit transforms a literal node. It receives the literal after its
	// Bytes have been copied and its Container (if any) rebuilt; the default
	// returns that copy unchanged.
	MapLit func(ctx VisitContext, lit Literal) Literal

	// MapObjPath transforms a reference's object path. The default copies
	// it by value.
	MapObjPath func(ctx VisitContext, path ObjPath) ObjPath

	// MapPrimBytes transforms the raw byte payload of a TSTR/BSTR literal
	// during the default literal copy, letting a caller intercept string
	// data without overriding MapLit entirely. The default copies the
	// slice.
	MapPrimBytes func(ctx VisitContext, b []byte) []byte
}

// Translate runs t over root, recursing structurally the same way Walk
// does, and returns the newly built output tree.
func Translate(root ARI, t *Translator) ARI {
	return translateARI(VisitContext{}, root, t)
}

func translateARI(ctx VisitContext, node ARI, t *Translator) ARI {
	if node.IsReference() {
		ref, _ := node.AsReference()
		return NewReference(translateReference(ctx, ref, t))
	}

	lit, _ := node.AsLiteral()

	return NewLiteral(translateLiteral(ctx, lit, t))
}

func translateReference(ctx VisitContext, ref Reference, t *Translator) Reference {
	path := ref.Path
	if t.MapObjPath != nil {
		path = t.MapObjPath(ctx, ref.Path)
	}

	childCtx := VisitContext{Depth: ctx.Depth + 1}

	return Reference{Path: path, Params: translateParams(childCtx, ref.Params, t)}
}

func translateParams(ctx VisitContext, p Params, t *Translator) Params {
	switch p.State {
	case ParamsAC:
		return ACParams(translateACItems(ctx, p.AC, t))
	case ParamsAM:
		return AMParams(translateAMEntries(ctx, p.AM, t))
	default:
		return NoParams()
	}
}

func translateLiteral(ctx VisitContext, lit Literal, t *Translator) Literal {
	out := lit
	if lit.Bytes != nil {
		if t.MapPrimBytes != nil {
			out.Bytes = t.MapPrimBytes(ctx, lit.Bytes)
		} else {
			out.Bytes = append([]byte(nil), lit.Bytes...)
		}
	}

	if lit.HasARIType && lit.Container != nil {
		childCtx := VisitContext{Depth: ctx.Depth + 1}
		out.Container = translateContainer(childCtx, lit.Container, t)
	}

	if t.MapLit != nil {
		return t.MapLit(ctx, out)
	}

	return out
}

func translateContainer(ctx VisitContext, c *Container, t *Translator) *Container {
	out := &Container{Kind: c.Kind, Ncols: c.Ncols}

	switch c.Kind {
	case ContainerAC:
		out.Items = translateACItems(ctx, c.Items, t)
	case ContainerAM:
		out.Entries = translateAMEntries(ctx, c.Entries, t)
	case ContainerTBL:
		out.Cells = translateACItems(ctx, c.Cells, t)
	case ContainerEXECSET:
		out.Nonce = translateARI(ctx, c.Nonce, t)
		out.Items = translateACItems(ctx, c.Items, t)
	case ContainerRPTSET:
		out.Nonce = translateARI(ctx, c.Nonce, t)
		out.Reftime = translateARI(ctx, c.Reftime, t)
		out.Reports = translateReports(ctx, c.Reports, t)
	}

	return out
}

func translateACItems(ctx VisitContext, items []ARI, t *Translator) []ARI {
	if items == nil {
		return nil
	}

	out := make([]ARI, len(items))
	for i, it := range items {
		out[i] = translateARI(ctx, it, t)
	}

	return out
}

func translateAMEntries(ctx VisitContext, entries []AMEntry, t *Translator) []AMEntry {
	if entries == nil {
		return nil
	}

	out := make([]AMEntry, len(entries))
	for i, e := range entries {
		keyCtx := ctx
		keyCtx.IsMapKey = true
		valCtx := ctx
		valCtx.IsMapKey = false

		out[i] = AMEntry{
			Key:   translateARI(keyCtx, e.Key, t),
			Value: translateARI(valCtx, e.Value, t),
		}
	}

	return out
}

func translateReports(ctx VisitContext, reports []Report, t *Translator) []Report {
	if reports == nil {
		return nil
	}

	out := make([]Report, len(reports))
	for i, r := range reports {
		out[i] = Report{
			Reltime: translateARI(ctx, r.Reltime, t),
			Source:  translateARI(ctx, r.Source, t),
			Items:   translateACItems(ctx, r.Items, t),
		}
	}

	return out
}
