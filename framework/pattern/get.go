package pattern

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/xerrors"

	"github.com/retro-framework/go-unify/framework/unify"
)

// Get computes a derived focus with fn and navigates into it. fn
// reporting false (value not extractable from this focus) is an
// ordinary non-match. Attribute is the accessor-driven special case of
// this.
func Get(fn func(interface{}) (interface{}, bool)) unify.Pattern {
	return get{fn}
}

type get struct {
	fn func(interface{}) (interface{}, bool)
}

func (g get) Match(ctx context.Context, _ unify.Scope, focus interface{}, next unify.Continuation) error {
	if g.fn == nil {
		return xerrors.New("pattern: Get given a nil extractor")
	}
	value, ok := g.fn(focus)
	if !ok {
		return nil
	}
	return next(ctx, value)
}

func (g get) String() string { return "<Get>" }

// Index navigates into element i of an indexable focus. A focus that
// isn't indexable, or an i out of range, is an ordinary non-match. The
// accessor must support positional indexing.
func Index(i int) unify.Pattern {
	return index{i}
}

type index struct {
	i int
}

func (ix index) Match(ctx context.Context, scope unify.Scope, focus interface{}, next unify.Continuation) error {
	ixer, ok := scope.Accessor.(unify.Indexer)
	if !ok {
		return xerrors.Errorf("accessor %T can't index into objects", scope.Accessor)
	}
	value, ok, err := ixer.Index(focus, ix.i)
	if err != nil {
		return errors.Wrapf(err, "indexing element %d", ix.i)
	}
	if !ok {
		return nil
	}
	return next(ctx, value)
}

func (ix index) String() string { return fmt.Sprintf("<Index %d>", ix.i) }
