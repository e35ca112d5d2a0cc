package unify

import "golang.org/x/xerrors"

// Stop may be returned from a Continuation to end the enumeration
// early. It travels back through the pattern tree like any error, so
// every binding is still unwound, but the engine reports the
// unification as having finished cleanly.
var Stop = xerrors.New("unify: stop")

// ErrUnbound is returned by Variable.Value when no binding is active.
var ErrUnbound = xerrors.New("unify: variable is unbound")
