package text

import (
	"fmt"

	"github.com/dtnma/ari/errs"
)

func unsupportedBase(base int) error {
	return fmt.Errorf("%w: unsupported integer base %d", errs.ErrUnsupported, base)
}

func unsupportedFloatForm(form byte) error {
	return fmt.Errorf("%w: unsupported float format %q", errs.ErrUnsupported, form)
}

func unsupportedType(t fmt.Stringer) error {
	return fmt.Errorf("%w: ARI type %s has no text encoding rule", errs.ErrUnsupported, t)
}

func unsupportedPrim(kind int) error {
	return fmt.Errorf("%w: primitive kind %d has no text encoding rule", errs.ErrUnsupported, kind)
}
