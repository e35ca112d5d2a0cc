package pattern

import (
	"context"
	"fmt"

	"github.com/retro-framework/go-unify/framework/unify"
)

// Seq chains patterns sequentially: each member matches against the
// focus produced by the one before it, so navigating members
// (Attribute, Index, Get) move the focus along and guards (Subtype,
// Bind, Constant) pass it through. Bindings made by earlier members
// stay live while later members and the continuation run.
//
// Seq folds right-associatively; with no arguments it is Anything.
func Seq(ps ...unify.Pattern) unify.Pattern {
	switch len(ps) {
	case 0:
		return Anything()
	case 1:
		return ps[0]
	}
	return seq{ps[0], Seq(ps[1:]...)}
}

type seq struct {
	left, right unify.Pattern
}

func (sq seq) Match(ctx context.Context, scope unify.Scope, focus interface{}, next unify.Continuation) error {
	return sq.left.Match(ctx, scope, focus, func(ctx context.Context, derived interface{}) error {
		return sq.right.Match(ctx, scope, derived, next)
	})
}

func (sq seq) String() string { return fmt.Sprintf("<%s ** %s>", sq.left, sq.right) }

// Or alternates: it yields every alternative of each member in turn,
// all against the same original focus. Bindings made by one branch are
// fully unwound before the following branch is explored.
//
// With no arguments Or is Nothing.
func Or(ps ...unify.Pattern) unify.Pattern {
	switch len(ps) {
	case 0:
		return Nothing()
	case 1:
		return ps[0]
	}
	return or{ps[0], Or(ps[1:]...)}
}

type or struct {
	left, right unify.Pattern
}

func (o or) Match(ctx context.Context, scope unify.Scope, focus interface{}, next unify.Continuation) error {
	if err := o.left.Match(ctx, scope, focus, next); err != nil {
		return err
	}
	return o.right.Match(ctx, scope, focus, next)
}

func (o or) String() string { return fmt.Sprintf("<%s | %s>", o.left, o.right) }

// And matches every member against the same focus, left to right, with
// earlier members' bindings live while later ones run. The sequence
// continues from the last member's result, so a trailing navigator
// still moves the focus but the members before it do not.
func And(ps ...unify.Pattern) unify.Pattern {
	switch len(ps) {
	case 0:
		return Anything()
	case 1:
		return ps[0]
	}
	return and{ps[0], And(ps[1:]...)}
}

type and struct {
	left, right unify.Pattern
}

func (a and) Match(ctx context.Context, scope unify.Scope, focus interface{}, next unify.Continuation) error {
	return a.left.Match(ctx, scope, focus, func(ctx context.Context, _ interface{}) error {
		return a.right.Match(ctx, scope, focus, next)
	})
}

func (a and) String() string { return fmt.Sprintf("<%s and %s>", a.left, a.right) }
