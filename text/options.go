package text

import (
	"github.com/dtnma/ari/internal/options"
)

// SchemePrefixMode controls where the "ari:" scheme prefix is emitted.
type SchemePrefixMode uint8

const (
	SchemeFirst SchemePrefixMode = iota // emit only at outermost depth (default)
	SchemeNone                          // suppress always
	SchemeAll                           // emit at every nested ARI
)

// ShowARITypeMode controls how a type-name position is rendered.
type ShowARITypeMode uint8

const (
	ShowText ShowARITypeMode = iota // always canonical name (default)
	ShowInt                         // always decimal enumeration
	ShowOrig                        // render as originally decoded (TEXT/INT), else TEXT
)

// BstrForm controls how a BSTR literal's bytes are rendered.
type BstrForm uint8

const (
	BstrBase16 BstrForm = iota // h'<UPPERCASE-BASE16>' (default)
	BstrRaw                    // 'slash-escaped' when valid UTF-8, else h'<BASE16>'
	BstrBase64URL              // b64'<BASE64URL>'
)

// DebugSink receives a best-effort trace of values as they're encoded. It
// never affects the produced output; a nil sink (the default) disables
// tracing entirely.
type DebugSink func(event string, kv ...any)

// Options configures Encode. The zero value is not valid; build one with
// NewOptions and the With... functional options below.
type Options struct {
	SchemePrefix SchemePrefixMode
	ShowARIType  ShowARITypeMode
	IntBase      int
	FloatForm    byte
	TextIdentity bool
	BstrForm     BstrForm
	TimeText     bool
	Debug        DebugSink
}

// NewOptions returns the default Options record (spec.md §6's "default"
// column), with opts applied on top.
func NewOptions(opts ...Option) (*Options, error) {
	o := &Options{
		SchemePrefix: SchemeFirst,
		ShowARIType:  ShowText,
		IntBase:      10,
		FloatForm:    'g',
		TextIdentity: true,
		BstrForm:     BstrBase16,
		TimeText:     true,
	}

	if err := options.Apply(o, opts...); err != nil {
		return nil, err
	}

	return o, nil
}

// Option is a functional option over an Options record.
type Option = options.Option[*Options]

// WithSchemePrefix overrides SchemePrefix.
func WithSchemePrefix(m SchemePrefixMode) Option {
	return options.NoError(func(o *Options) { o.SchemePrefix = m })
}

// WithShowARIType overrides ShowARIType.
func WithShowARIType(m ShowARITypeMode) Option {
	return options.NoError(func(o *Options) { o.ShowARIType = m })
}

// WithIntBase overrides IntBase. Valid values are 2, 10, 16; an invalid
// value is rejected when the option is applied.
func WithIntBase(base int) Option {
	return options.New(func(o *Options) error {
		switch base {
		case 2, 10, 16:
			o.IntBase = base
			return nil
		default:
			return unsupportedBase(base)
		}
	})
}

// WithFloatForm overrides FloatForm. Valid values are 'f', 'g', 'e', 'a'.
func WithFloatForm(form byte) Option {
	return options.New(func(o *Options) error {
		switch form {
		case 'f', 'g', 'e', 'a':
			o.FloatForm = form
			return nil
		default:
			return unsupportedFloatForm(form)
		}
	})
}

// WithTextIdentity overrides TextIdentity.
func WithTextIdentity(enabled bool) Option {
	return options.NoError(func(o *Options) { o.TextIdentity = enabled })
}

// WithBstrForm overrides BstrForm.
func WithBstrForm(f BstrForm) Option {
	return options.NoError(func(o *Options) { o.BstrForm = f })
}

// WithTimeText overrides TimeText.
func WithTimeText(enabled bool) Option {
	return options.NoError(func(o *Options) { o.TimeText = enabled })
}

// WithDebugSink installs a best-effort trace callback.
func WithDebugSink(sink DebugSink) Option {
	return options.NoError(func(o *Options) { o.Debug = sink })
}

// withScheme returns a shallow copy of o with SchemePrefix set to m. The
// encoder calls it with SchemeNone for header fields like n=, r=, t=, s=
// (the "saved-options trick" spec.md §9 describes): build a sub-encoder
// from a saved-and-overridden Options value rather than mutating ambient
// state.
func (o *Options) withScheme(m SchemePrefixMode) *Options {
	clone := *o
	clone.SchemePrefix = m

	return &clone
}
