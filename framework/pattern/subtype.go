package pattern

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/retro-framework/go-unify/framework/unify"
)

// Subtype requires the focus to be an instance of the type the
// descriptor names (as judged by the accessor) and passes the focus
// through unchanged. It guards, it does not navigate.
func Subtype(descriptor interface{}) unify.Pattern {
	return subtype{descriptor}
}

type subtype struct {
	descriptor interface{}
}

func (st subtype) Match(ctx context.Context, scope unify.Scope, focus interface{}, next unify.Continuation) error {
	ok, err := scope.Accessor.IsInstanceOf(focus, st.descriptor)
	if err != nil {
		return errors.Wrapf(err, "checking instance of %v", st.descriptor)
	}
	if !ok {
		return nil
	}
	return next(ctx, focus)
}

func (st subtype) String() string { return fmt.Sprintf("<Subtype %v>", st.descriptor) }
