package ari

// VisitContext carries the traversal state threaded to each visitor
// callback: the parent node (nil at the root), whether the current node is
// being visited as an AM key, and the current depth (incremented on entry
// to any AC/AM/TBL/EXECSET/RPTSET parameter or container level). Translate
// fills in only IsMapKey and Depth; its callbacks always see a nil Parent.
type VisitContext struct {
	Parent   *ARI
	IsMapKey bool
	Depth    int
}

// Visitor receives pre-order callbacks from Walk. Any callback may return a
// non-zero code to abort the traversal; the first non-zero code returned by
// any callback is the one Walk returns.
type Visitor interface {
	VisitARI(ctx VisitContext, node ARI) int
	VisitRef(ctx VisitContext, ref Reference) int
	VisitLit(ctx VisitContext, lit Literal) int
	VisitObjPath(ctx VisitContext, path ObjPath) int
}

// Walk performs a pre-order traversal of root. At each node it invokes, in
// order: VisitARI, then VisitRef or VisitLit depending on the variant, then
// for a reference VisitObjPath followed by recursion into the parameter
// container, or for a literal (when it carries an explicit ARI type tag)
// recursion into its contained AC/AM/TBL/EXECSET/RPTSET.
func Walk(root ARI, v Visitor) int {
	return walkARI(VisitContext{}, root, v)
}

func walkARI(ctx VisitContext, node ARI, v Visitor) int {
	if code := v.VisitARI(ctx, node); code != 0 {
		return code
	}

	if node.IsReference() {
		ref, _ := node.AsReference()
		return walkReference(ctx, &node, ref, v)
	}

	lit, _ := node.AsLiteral()

	return walkLiteral(ctx, &node, lit, v)
}

func walkReference(ctx VisitContext, parent *ARI, ref Reference, v Visitor) int {
	if code := v.VisitRef(ctx, ref); code != 0 {
		return code
	}
	if code := v.VisitObjPath(ctx, ref.Path); code != 0 {
		return code
	}

	return walkParams(ctx, parent, ref.Params, v)
}

func walkParams(ctx VisitContext, parent *ARI, p Params, v Visitor) int {
	childCtx := VisitContext{Parent: parent, Depth: ctx.Depth + 1}

	switch p.State {
	case ParamsAC:
		return walkACItems(childCtx, p.AC, v)
	case ParamsAM:
		return walkAMEntries(childCtx, p.AM, v)
	default:
		return 0
	}
}

func walkLiteral(ctx VisitContext, parent *ARI, lit Literal, v Visitor) int {
	if code := v.VisitLit(ctx, lit); code != 0 {
		return code
	}

	if !lit.HasARIType || lit.Container == nil {
		return 0
	}

	childCtx := VisitContext{Parent: parent, Depth: ctx.Depth + 1}

	switch lit.Container.Kind {
	case ContainerAC:
		return walkACItems(childCtx, lit.Container.Items, v)
	case ContainerAM:
		return walkAMEntries(childCtx, lit.Container.Entries, v)
	case ContainerTBL:
		return walkACItems(childCtx, lit.Container.Cells, v)
	case ContainerEXECSET:
		if code := walkARI(childCtx, lit.Container.Nonce, v); code != 0 {
			return code
		}

		return walkACItems(childCtx, lit.Container.Items, v)
	case ContainerRPTSET:
		return walkRPTSET(childCtx, lit.Container, v)
	default:
		return 0
	}
}

func walkACItems(ctx VisitContext, items []ARI, v Visitor) int {
	for i := range items {
		if code := walkARI(ctx, items[i], v); code != 0 {
			return code
		}
	}

	return 0
}

func walkAMEntries(ctx VisitContext, entries []AMEntry, v Visitor) int {
	for i := range entries {
		keyCtx := ctx
		keyCtx.IsMapKey = true
		if code := walkARI(keyCtx, entries[i].Key, v); code != 0 {
			return code
		}

		valCtx := ctx
		valCtx.IsMapKey = false
		if code := walkARI(valCtx, entries[i].Value, v); code != 0 {
			return code
		}
	}

	return 0
}

func walkRPTSET(ctx VisitContext, c *Container, v Visitor) int {
	if code := walkARI(ctx, c.Nonce, v); code != 0 {
		return code
	}
	if code := walkARI(ctx, c.Reftime, v); code != 0 {
		return code
	}

	for i := range c.Reports {
		r := c.Reports[i]
		if code := walkARI(ctx, r.Reltime, v); code != 0 {
			return code
		}
		if code := walkARI(ctx, r.Source, v); code != 0 {
			return code
		}
		if code := walkACItems(ctx, r.Items, v); code != 0 {
			return code
		}
	}

	return 0
}
