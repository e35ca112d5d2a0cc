package pattern

import (
	"context"
	"fmt"
	"reflect"

	"golang.org/x/xerrors"

	"github.com/retro-framework/go-unify/framework/unify"
)

// Bind captures the focus into v for the lifetime of the current
// alternative: v is readable inside the continuation and restored to
// its prior state (through the trail) as soon as the alternative has
// been consumed or abandoned. The focus passes through unchanged.
//
// Against a variable that is already bound, by an enclosing
// alternative or an enclosing unification call, Bind acts as an
// equality guard instead: the branch succeeds only if the focus equals
// the held value. That is what makes the same variable appearing twice
// in one pattern mean "these two places hold the same value".
func Bind(v *unify.Variable) unify.Pattern {
	return bind{v}
}

type bind struct {
	v *unify.Variable
}

func (b bind) Match(ctx context.Context, scope unify.Scope, focus interface{}, next unify.Continuation) error {
	if b.v == nil {
		return xerrors.New("pattern: Bind given a nil variable")
	}
	if b.v.Bound() {
		held, err := b.v.Value()
		if err != nil {
			return err
		}
		if !reflect.DeepEqual(held, focus) {
			return nil
		}
		return next(ctx, focus)
	}
	mark := scope.Trail.Bind(b.v, focus)
	defer scope.Trail.UnwindTo(mark)
	return next(ctx, focus)
}

func (b bind) String() string { return fmt.Sprintf("<Bind %s>", b.v) }
