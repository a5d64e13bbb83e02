package text

import (
	"strconv"
	"unicode/utf8"

	"github.com/dtnma/ari"
	"github.com/dtnma/ari/aricodec"
	"github.com/dtnma/ari/aritime"
	"github.com/dtnma/ari/artype"
	"github.com/dtnma/ari/internal/pool"
)

// textSafe is the additional safe-byte set draft-ietf-dtn-ari-00 §4.1 adds
// on top of the RFC 3986 unreserved set for quoted TSTR and BSTR tokens.
const textSafe = "!'+:@"

func init() {
	ari.RegisterEncoder(func(a ari.ARI) (string, error) {
		return Encode(a)
	})
}

// Encode renders a as canonical ARI text under opts (defaults if none are
// given).
func Encode(a ari.ARI, opts ...Option) (string, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return "", err
	}

	bb := pool.Get()
	defer pool.Put(bb)

	e := &encoder{buf: bb}
	if err := e.encodeValue(ctx{opts: o, depth: 0}, a); err != nil {
		return "", err
	}

	out := bb.String()
	if o.Debug != nil {
		o.Debug("encode", "text", out)
	}

	return out, nil
}

// ctx is the explicit options+depth record threaded through recursive
// encode calls; the encoder itself holds only the shared output buffer.
type ctx struct {
	opts  *Options
	depth int
}

func (c ctx) nested() ctx { return ctx{opts: c.opts, depth: c.depth + 1} }

// header returns the context used for execset/rptset header fields (n=,
// r=, t=, s=), the "saved-options trick": scheme_prefix forced to NONE for
// the duration of that one sub-value, everything else unchanged.
func (c ctx) header() ctx { return ctx{opts: c.opts.withScheme(SchemeNone), depth: c.depth} }

type encoder struct {
	buf *pool.ByteBuffer
}

func (e *encoder) str(s string) { _, _ = e.buf.WriteString(s) }
func (e *encoder) b(c byte)     { _ = e.buf.WriteByte(c) }

func (e *encoder) encodeValue(c ctx, a ari.ARI) error {
	if e.showScheme(c) {
		e.str("ari:")
	}

	if ref, ok := a.AsReference(); ok {
		return e.encodeReference(c, ref)
	}

	lit, _ := a.AsLiteral()

	return e.encodeLiteral(c, lit)
}

func (e *encoder) showScheme(c ctx) bool {
	switch c.opts.SchemePrefix {
	case SchemeAll:
		return true
	case SchemeFirst:
		return c.depth == 0
	default:
		return false
	}
}

func (e *encoder) encodeReference(c ctx, ref ari.Reference) error {
	if err := e.encodePath(c, ref.Path); err != nil {
		return err
	}

	return e.encodeParams(c, ref.Params)
}

func (e *encoder) encodePath(c ctx, p ari.ObjPath) error {
	e.str("//")

	ns, err := e.idSegText(p.NsID)
	if err != nil {
		return err
	}
	e.str(ns)

	if !p.HasARIType && p.TypeID.Form == ari.IdSegNull {
		return nil
	}

	e.b('/')

	typ, err := e.pathTypeText(c, p)
	if err != nil {
		return err
	}
	e.str(typ)

	e.b('/')

	obj, err := e.idSegText(p.ObjID)
	if err != nil {
		return err
	}
	e.str(obj)

	return nil
}

func (e *encoder) idSegText(s ari.IdSeg) (string, error) {
	switch s.Form {
	case ari.IdSegNull:
		return "", nil
	case ari.IdSegText:
		return s.Text, nil
	case ari.IdSegInt:
		return strconv.FormatInt(s.Int, 10), nil
	default:
		return "", unsupportedPrim(int(s.Form))
	}
}

func (e *encoder) pathTypeText(c ctx, p ari.ObjPath) (string, error) {
	if !p.HasARIType {
		return e.idSegText(p.TypeID)
	}

	switch c.opts.ShowARIType {
	case ShowInt:
		return strconv.Itoa(int(p.ARIType)), nil
	case ShowOrig:
		switch p.TypeID.Form {
		case ari.IdSegText:
			return p.TypeID.Text, nil
		case ari.IdSegInt:
			return strconv.FormatInt(p.TypeID.Int, 10), nil
		default:
			return e.typeName(p.ARIType)
		}
	default:
		return e.typeName(p.ARIType)
	}
}

func (e *encoder) typeName(t artype.Type) (string, error) {
	name, ok := artype.Name(t)
	if !ok {
		return "", unsupportedType(t)
	}

	return name, nil
}

func (e *encoder) encodeParams(c ctx, p ari.Params) error {
	switch p.State {
	case ari.ParamsNone:
		return nil
	case ari.ParamsAC:
		return e.encodeACList(c.nested(), p.AC)
	case ari.ParamsAM:
		return e.encodeAMList(c.nested(), p.SortedAM())
	default:
		return unsupportedPrim(int(p.State))
	}
}

func (e *encoder) encodeLiteral(c ctx, lit ari.Literal) error {
	if !lit.HasARIType {
		return e.encodePrimitive(c, lit)
	}

	name, err := e.literalTypeName(c, lit.ARIType)
	if err != nil {
		return err
	}

	e.b('/')
	e.str(name)
	e.b('/')

	switch lit.ARIType {
	case artype.TP:
		return e.encodeTP(c, lit.Time)
	case artype.TD:
		return e.encodeTD(c, lit.Time)
	case artype.AC, artype.AM, artype.TBL, artype.EXECSET, artype.RPTSET:
		return e.encodeContainer(c, lit.Container)
	default:
		return e.encodePrimitive(c, lit)
	}
}

// literalTypeName applies the show_ari_type policy to a literal's own tag.
// ORIG has no originally-decoded idseg to fall back to for a literal (only
// references carry one), so it behaves like TEXT here.
func (e *encoder) literalTypeName(c ctx, t artype.Type) (string, error) {
	if c.opts.ShowARIType == ShowInt {
		return strconv.Itoa(int(t)), nil
	}

	return e.typeName(t)
}

func (e *encoder) encodeTP(c ctx, ts aritime.Timespec) error {
	if c.opts.TimeText {
		e.str(aritime.UTCTimeEncode(ts, false))
		return nil
	}

	e.str(aritime.DecFracEncode(ts))

	return nil
}

func (e *encoder) encodeTD(c ctx, ts aritime.Timespec) error {
	if c.opts.TimeText {
		e.str(aritime.TimePeriodEncode(ts))
		return nil
	}

	e.str(aritime.DecFracEncode(ts))

	return nil
}

func (e *encoder) encodeContainer(c ctx, cont *ari.Container) error {
	child := c.nested()

	switch cont.Kind {
	case ari.ContainerAC:
		return e.encodeACList(child, cont.Items)
	case ari.ContainerAM:
		return e.encodeAMList(child, cont.SortedEntries())
	case ari.ContainerTBL:
		return e.encodeTBL(child, cont)
	case ari.ContainerEXECSET:
		return e.encodeEXECSET(child, cont)
	case ari.ContainerRPTSET:
		return e.encodeRPTSET(child, cont)
	default:
		return unsupportedPrim(int(cont.Kind))
	}
}

func (e *encoder) encodeACList(c ctx, items []ari.ARI) error {
	e.b('(')
	for i, it := range items {
		if i > 0 {
			e.b(',')
		}
		if err := e.encodeValue(c, it); err != nil {
			return err
		}
	}
	e.b(')')

	return nil
}

func (e *encoder) encodeAMList(c ctx, entries []ari.AMEntry) error {
	e.b('(')
	for i, ent := range entries {
		if i > 0 {
			e.b(',')
		}
		if err := e.encodeValue(c, ent.Key); err != nil {
			return err
		}
		e.b('=')
		if err := e.encodeValue(c, ent.Value); err != nil {
			return err
		}
	}
	e.b(')')

	return nil
}

func (e *encoder) encodeTBL(c ctx, cont *ari.Container) error {
	e.str("c=")
	e.str(strconv.Itoa(cont.Ncols))
	e.b(';')

	if cont.Ncols == 0 {
		return nil
	}

	for _, row := range cont.Rows() {
		e.b('(')
		for i, cell := range row {
			if i > 0 {
				e.b(',')
			}
			if err := e.encodeValue(c, cell); err != nil {
				return err
			}
		}
		e.b(')')
	}

	return nil
}

func (e *encoder) encodeEXECSET(c ctx, cont *ari.Container) error {
	e.str("n=")
	if err := e.encodeValue(c.header(), cont.Nonce); err != nil {
		return err
	}
	e.b(';')

	return e.encodeACList(c, cont.Items)
}

func (e *encoder) encodeRPTSET(c ctx, cont *ari.Container) error {
	e.str("n=")
	if err := e.encodeValue(c.header(), cont.Nonce); err != nil {
		return err
	}
	e.str(";r=")
	if err := e.encodeValue(c.header(), cont.Reftime); err != nil {
		return err
	}
	e.b(';')

	for _, rep := range cont.Reports {
		e.b('(')
		e.str("t=")
		if err := e.encodeValue(c.header(), rep.Reltime); err != nil {
			return err
		}
		e.str(";s=")
		if err := e.encodeValue(c.header(), rep.Source); err != nil {
			return err
		}
		e.b(';')
		if err := e.encodeACList(c, rep.Items); err != nil {
			return err
		}
		e.b(')')
	}

	return nil
}

func (e *encoder) encodePrimitive(c ctx, lit ari.Literal) error {
	switch lit.PrimType {
	case ari.PrimUndefined:
		e.str("undefined")
		return nil
	case ari.PrimNull:
		e.str("null")
		return nil
	case ari.PrimBool:
		if lit.Bool {
			e.str("true")
		} else {
			e.str("false")
		}
		return nil
	case ari.PrimUint64:
		s, err := aricodec.UintEncode(lit.U64, c.opts.IntBase)
		if err != nil {
			return err
		}
		e.str(s)
		return nil
	case ari.PrimInt64:
		s, err := aricodec.IntEncode(lit.I64, c.opts.IntBase)
		if err != nil {
			return err
		}
		e.str(s)
		return nil
	case ari.PrimFloat64:
		s, err := aricodec.FloatEncode(lit.F64, c.opts.FloatForm)
		if err != nil {
			return err
		}
		e.str(s)
		return nil
	case ari.PrimTStr:
		return e.encodeTStr(c, lit.Bytes)
	case ari.PrimBStr:
		return e.encodeBStr(c, lit.Bytes)
	case ari.PrimTimespec:
		e.str(aritime.DecFracEncode(lit.Time))
		return nil
	default:
		return unsupportedPrim(int(lit.PrimType))
	}
}

func (e *encoder) encodeTStr(c ctx, data []byte) error {
	if c.opts.TextIdentity && aricodec.IsIdentity(data) {
		_, _ = e.buf.Write(data)
		return nil
	}

	escaped := aricodec.SlashEscape(string(data), '"')
	token := "\"" + escaped + "\""
	e.str(aricodec.PercentEncode([]byte(token), textSafe))

	return nil
}

func (e *encoder) encodeBStr(c ctx, data []byte) error {
	switch c.opts.BstrForm {
	case BstrBase16:
		e.str("h'")
		e.str(aricodec.Base16Encode(data, true))
		e.b('\'')
		return nil
	case BstrBase64URL:
		e.str("b64'")
		e.str(aricodec.Base64Encode(data, true))
		e.b('\'')
		return nil
	case BstrRaw:
		if !utf8.Valid(data) {
			e.str("h'")
			e.str(aricodec.Base16Encode(data, true))
			e.b('\'')
			return nil
		}

		escaped := aricodec.SlashEscape(string(data), '\'')
		token := "'" + escaped + "'"
		e.str(aricodec.PercentEncode([]byte(token), textSafe))
		return nil
	default:
		return unsupportedPrim(int(c.opts.BstrForm))
	}
}
