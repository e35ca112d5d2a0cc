package unify

import "context"

// Pattern is one node of an immutable matching tree. Match enumerates
// every way the node can succeed against the given focus, depth-first
// and left-to-right, calling next once per alternative with the focus
// that alternative produced.
//
// Bindings made while producing an alternative are live for exactly
// the duration of the next call chain and must be unwound through the
// scope's Trail before the following alternative is produced, and on
// the way out when next returns an error (abandoned enumeration).
//
// A focus which simply doesn't fit the node (attribute absent, type
// mismatch, guard false) contributes zero alternatives and is not an
// error. A non-nil error return means the whole search is aborted.
type Pattern interface {
	Match(ctx context.Context, scope Scope, focus interface{}, next Continuation) error
}
