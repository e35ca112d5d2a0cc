package engine

import (
	"context"
	"fmt"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/retro-framework/go-unify/framework/unify"
)

type Error struct {
	Op  string
	Err error
	Msg string
}

func (e Error) Error() string {
	return fmt.Sprintf("engine: op: %q err: %q msg: %q", e.Op, e.Err, e.Msg)
}

// MatchFunc is invoked once per alternative, while that alternative's
// bindings are live. It receives no result value on purpose: matches
// are observed by reading the Variables the pattern bound, which is
// what keeps pattern definition decoupled from result interpretation.
//
// Returning unify.Stop ends the enumeration early and Unify reports
// success; any other non-nil error aborts the search and is returned.
type MatchFunc func(ctx context.Context) error

func New(acc unify.Accessor) Unifier {
	return Unifier{acc}
}

// Unifier drives pattern trees against object graphs through an
// Accessor. The zero value is not usable, construct with New.
type Unifier struct {
	accessor unify.Accessor
}

// Unify enumerates every way pattern can succeed against object,
// calling onMatch once per alternative. It returns only once the tree
// is exhausted (or onMatch asked to stop). Whatever happens, every
// variable the call bound is restored to its pre-call state before
// Unify returns; variables bound by an enclosing, still-active Unify
// keep their outer bindings.
//
// Exhausting the search without a single match is success with zero
// onMatch calls, not an error. Errors from the accessor, from reading
// unbound variables and from malformed patterns abort the search
// immediately.
func (u Unifier) Unify(ctx context.Context, pattern unify.Pattern, object interface{}, onMatch MatchFunc) error {

	spnUnify, ctx := opentracing.StartSpanFromContext(ctx, "unifier.Unify")
	defer spnUnify.Finish()

	if u.accessor == nil {
		return Error{"check-accessor", errors.New("accessor not defined, please check config"), "no way to read the object graph"}
	}
	if pattern == nil {
		return Error{"check-pattern", errors.New("pattern not defined"), "nothing to match against"}
	}
	spnUnify.SetTag("pattern", fmt.Sprintf("%s", pattern))

	var (
		scope   = unify.Scope{Accessor: u.accessor, Trail: unify.NewTrail()}
		matches int
	)
	err := pattern.Match(ctx, scope, object, func(ctx context.Context, _ interface{}) error {
		matches++
		if onMatch == nil {
			return nil
		}
		return onMatch(ctx)
	})
	spnUnify.LogKV("matches", matches)

	if err == unify.Stop || errors.Cause(err) == unify.Stop {
		err = nil
	}
	if err != nil {
		spnUnify.LogKV("event", "error", "error.object", err)
		return errors.Wrap(err, "unification aborted")
	}
	if outstanding := scope.Trail.Len(); outstanding != 0 {
		return Error{"check-trail", fmt.Errorf("%d binding records left on the trail", outstanding), "a pattern failed to unwind its bindings"}
	}
	return nil
}

// Matches runs Unify with a counting callback and reports how many
// alternatives the pattern produced against the object.
func (u Unifier) Matches(ctx context.Context, pattern unify.Pattern, object interface{}) (int, error) {
	var n int
	err := u.Unify(ctx, pattern, object, func(context.Context) error {
		n++
		return nil
	})
	return n, err
}
