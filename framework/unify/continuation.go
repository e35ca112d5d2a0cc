package unify

import "context"

// Continuation is called once per alternative a Pattern produces, with
// the focus that alternative carries forward. Variables bound along
// the successful path are readable until it returns.
//
// Returning Stop (or any other non-nil error) abandons the rest of the
// enumeration; the error travels back up through the pattern tree so
// every node can unwind the bindings it made.
type Continuation func(ctx context.Context, focus interface{}) error
