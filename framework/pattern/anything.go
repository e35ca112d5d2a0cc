package pattern

import (
	"context"

	"github.com/retro-framework/go-unify/framework/unify"
)

// Anything matches any focus and passes it through unchanged, binding
// nothing. It is the identity of Seq.
func Anything() unify.Pattern {
	return anything{}
}

type anything struct{}

func (anything) Match(ctx context.Context, _ unify.Scope, focus interface{}, next unify.Continuation) error {
	return next(ctx, focus)
}

func (anything) String() string { return "<Anything>" }

// Nothing matches no focus at all, it contributes zero alternatives
// wherever it appears. It is the identity of Or.
func Nothing() unify.Pattern {
	return nothing{}
}

type nothing struct{}

func (nothing) Match(context.Context, unify.Scope, interface{}, unify.Continuation) error {
	return nil
}

func (nothing) String() string { return "<Nothing>" }
