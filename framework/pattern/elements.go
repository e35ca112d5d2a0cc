package pattern

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/xerrors"

	"github.com/retro-framework/go-unify/framework/unify"
)

// Each navigates into every element of a collection focus in order,
// matching the inner patterns against each one; an element the inner
// patterns don't fit is skipped. Zero matching elements is fine, it
// just contributes zero alternatives. The accessor must be able to
// enumerate elements; a focus which isn't a collection at all is an
// ordinary non-match.
func Each(inner ...unify.Pattern) unify.Pattern {
	return elements{once: false, inner: Seq(inner...)}
}

// First is Each cut after the first element that matched: later
// elements are not visited at all, so it yields the alternatives of at
// most one element.
func First(inner ...unify.Pattern) unify.Pattern {
	return elements{once: true, inner: Seq(inner...)}
}

type elements struct {
	once  bool
	inner unify.Pattern
}

func (e elements) Match(ctx context.Context, scope unify.Scope, focus interface{}, next unify.Continuation) error {
	lister, ok := scope.Accessor.(unify.ElementLister)
	if !ok {
		return xerrors.Errorf("accessor %T can't enumerate collection elements", scope.Accessor)
	}
	elems, ok, err := lister.Elements(focus)
	if err != nil {
		return errors.Wrap(err, "enumerating elements")
	}
	if !ok {
		return nil
	}
	for _, elem := range elems {
		var matched bool
		err := e.inner.Match(ctx, scope, elem, func(ctx context.Context, derived interface{}) error {
			matched = true
			return next(ctx, derived)
		})
		if err != nil {
			return err
		}
		if e.once && matched {
			return nil
		}
	}
	return nil
}

func (e elements) String() string {
	if e.once {
		return fmt.Sprintf("<First %s>", e.inner)
	}
	return fmt.Sprintf("<Each %s>", e.inner)
}
