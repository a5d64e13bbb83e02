// Command aritext builds a handful of illustrative ARI values and prints
// their canonical text form, demonstrating the effect of the integer base,
// float form, byte-string form and scheme-prefix options.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/dtnma/ari"
	"github.com/dtnma/ari/aritime"
	"github.com/dtnma/ari/artype"
	"github.com/dtnma/ari/text"
)

func main() {
	intBase := flag.Int("int-base", 10, "integer radix: 2, 10, or 16")
	floatForm := flag.String("float-form", "g", "float format letter: f, g, e, or a")
	bstrForm := flag.String("bstr-form", "base16", "bstr rendering: raw, base16, or base64url")
	scheme := flag.String("scheme-prefix", "first", "scheme prefix mode: none, first, or all")
	flag.Parse()

	opts, err := buildOptions(*intBase, *floatForm, *bstrForm, *scheme)
	if err != nil {
		log.Fatal(err)
	}

	values, err := samples()
	if err != nil {
		log.Fatal(err)
	}

	for _, sample := range values {
		out, err := text.Encode(sample, opts...)
		if err != nil {
			log.Fatalf("encode: %v", err)
		}
		fmt.Println(out)
	}
}

func buildOptions(intBase int, floatForm, bstrForm, scheme string) ([]text.Option, error) {
	opts := []text.Option{text.WithIntBase(intBase)}

	if len(floatForm) != 1 {
		return nil, fmt.Errorf("float-form must be a single letter, got %q", floatForm)
	}
	opts = append(opts, text.WithFloatForm(floatForm[0]))

	switch bstrForm {
	case "raw":
		opts = append(opts, text.WithBstrForm(text.BstrRaw))
	case "base16":
		opts = append(opts, text.WithBstrForm(text.BstrBase16))
	case "base64url":
		opts = append(opts, text.WithBstrForm(text.BstrBase64URL))
	default:
		return nil, fmt.Errorf("unknown bstr-form %q", bstrForm)
	}

	switch scheme {
	case "none":
		opts = append(opts, text.WithSchemePrefix(text.SchemeNone))
	case "first":
		opts = append(opts, text.WithSchemePrefix(text.SchemeFirst))
	case "all":
		opts = append(opts, text.WithSchemePrefix(text.SchemeAll))
	default:
		return nil, fmt.Errorf("unknown scheme-prefix %q", scheme)
	}

	return opts, nil
}

func samples() ([]ari.ARI, error) {
	intLit, err := ari.Int64Literal(-42).WithType(artype.Int)
	if err != nil {
		return nil, err
	}

	textLit, err := ari.TextLiteral("hi there").WithType(artype.TextStr)
	if err != nil {
		return nil, err
	}

	tpLit, err := ari.TimespecLiteral(aritime.Timespec{}).WithType(artype.TP)
	if err != nil {
		return nil, err
	}

	acItems := []ari.ARI{
		ari.NewLiteral(ari.Int64Literal(1)),
		ari.NewLiteral(ari.Int64Literal(2)),
		ari.NewLiteral(ari.Int64Literal(3)),
	}
	acLit, err := ari.ContainerLiteral(artype.AC, ari.NewAC(acItems))
	if err != nil {
		return nil, err
	}

	ref := ari.NewReference(ari.NewReferenceValue(
		ari.ObjPath{
			NsID:       ari.TextSeg("ns1"),
			HasARIType: true,
			ARIType:    artype.Ctrl,
			ObjID:      ari.IntSeg(7),
		},
		ari.NoParams(),
	))

	return []ari.ARI{
		ari.NewLiteral(ari.NullLiteral()),
		ari.NewLiteral(intLit),
		ari.NewLiteral(textLit),
		ari.NewLiteral(tpLit),
		ari.NewLiteral(acLit),
		ref,
	}, nil
}
