package pattern

import (
	"context"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/zyedidia/glob"
	"golang.org/x/xerrors"

	"github.com/retro-framework/go-unify/framework/unify"
)

// Attribute requires the focus to have the named attribute and
// navigates into its value: the continuation (and any inner patterns
// given) run against the attribute's value, not the original focus.
// A focus lacking the attribute is an ordinary non-match.
func Attribute(name string, inner ...unify.Pattern) unify.Pattern {
	if len(inner) == 0 {
		return attribute{name}
	}
	return Seq(append([]unify.Pattern{attribute{name}}, inner...)...)
}

type attribute struct {
	name string
}

func (a attribute) Match(ctx context.Context, scope unify.Scope, focus interface{}, next unify.Continuation) error {
	value, ok, err := scope.Accessor.Attribute(focus, a.name)
	if err != nil {
		return errors.Wrapf(err, "reading attribute %q", a.name)
	}
	if !ok {
		return nil
	}
	return next(ctx, value)
}

func (a attribute) String() string { return fmt.Sprintf("<Attribute %s>", a.name) }

// AttributeGlob navigates into every attribute whose name matches the
// given shell glob, in sorted name order, one alternative per
// attribute. The accessor must be able to list attribute names.
func AttributeGlob(pattern string) unify.Pattern {
	g, _ := glob.Compile(pattern)
	return attributeGlob{g, pattern}
}

// TODO: test me one way or another (can't rely on upstream lib globbing without local tests)
type attributeGlob struct {
	g   *glob.Glob
	src string
}

func (ag attributeGlob) Match(ctx context.Context, scope unify.Scope, focus interface{}, next unify.Continuation) error {
	if ag.g == nil {
		return xerrors.Errorf("has no glob, possibly the pattern %q would not compile", ag.src)
	}
	lister, ok := scope.Accessor.(unify.AttributeLister)
	if !ok {
		return xerrors.Errorf("accessor %T can't list attribute names", scope.Accessor)
	}
	names, err := lister.AttributeNames(focus)
	if err != nil {
		return errors.Wrap(err, "listing attribute names")
	}
	sort.Strings(names)
	for _, name := range names {
		if !ag.g.MatchString(name) {
			continue
		}
		value, ok, err := scope.Accessor.Attribute(focus, name)
		if err != nil {
			return errors.Wrapf(err, "reading attribute %q", name)
		}
		if !ok {
			continue
		}
		if err := next(ctx, value); err != nil {
			return err
		}
	}
	return nil
}

func (ag attributeGlob) String() string { return fmt.Sprintf("<AttributeGlob %s>", ag.src) }
