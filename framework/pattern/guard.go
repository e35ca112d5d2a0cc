package pattern

import (
	"context"
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"github.com/zyedidia/glob"
	"golang.org/x/xerrors"

	"github.com/retro-framework/go-unify/framework/unify"
)

// Constant succeeds only when the focus equals the given value
// (reflect.DeepEqual), passing it through unchanged.
func Constant(value interface{}) unify.Pattern {
	return constant{value}
}

type constant struct {
	value interface{}
}

func (c constant) Match(ctx context.Context, _ unify.Scope, focus interface{}, next unify.Continuation) error {
	if !reflect.DeepEqual(c.value, focus) {
		return nil
	}
	return next(ctx, focus)
}

func (c constant) String() string { return fmt.Sprintf("<Constant %v>", c.value) }

// Guard succeeds when the matcher reports a match, passing the focus
// through unchanged. A matcher error aborts the search.
func Guard(m unify.Matcher) unify.Pattern {
	return guard{m}
}

type guard struct {
	m unify.Matcher
}

func (g guard) Match(ctx context.Context, _ unify.Scope, focus interface{}, next unify.Continuation) error {
	if g.m == nil {
		return xerrors.New("pattern: Guard given a nil matcher")
	}
	ok, err := g.m.DoesMatch(focus)
	if err != nil {
		return errors.Wrap(err, "guard matcher")
	}
	if !ok {
		return nil
	}
	return next(ctx, focus)
}

func (g guard) String() string { return fmt.Sprintf("<Guard %v>", g.m) }

// If adapts a plain predicate func to a Guard.
func If(pred func(interface{}) bool) unify.Pattern {
	return Guard(predicateMatcher(pred))
}

type predicateMatcher func(interface{}) bool

func (p predicateMatcher) DoesMatch(i interface{}) (bool, error) {
	if p == nil {
		return false, xerrors.New("nil predicate")
	}
	return p(i), nil
}

func (p predicateMatcher) String() string { return "<If>" }

// Glob succeeds when the focus is a string (or Stringer) matching the
// given shell glob. A non-string focus is an ordinary non-match.
func Glob(pattern string) unify.Pattern {
	g, _ := glob.Compile(pattern)
	return Guard(globMatcher{g, pattern})
}

type globMatcher struct {
	g   *glob.Glob
	src string
}

func (gm globMatcher) DoesMatch(i interface{}) (bool, error) {
	if gm.g == nil {
		return false, xerrors.New("has no glob, possibly the pattern would not compile")
	}
	switch m := i.(type) {
	case string:
		return gm.g.Match([]byte(m)), nil
	case fmt.Stringer:
		return gm.g.Match([]byte(m.String())), nil
	default:
		return false, nil
	}
}

func (gm globMatcher) String() string { return fmt.Sprintf("<Glob %s>", gm.src) }
