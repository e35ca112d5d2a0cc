// Package unify holds the contracts shared by the pattern, engine and
// accessor packages: the Pattern matching protocol, the Variable cells
// that capture sub-values of a matched object graph, and the Trail
// which records bindings so they can be undone on backtrack.
//
// Pattern trees are built with the constructors in the pattern package
// and driven against an object by the engine package. Objects are
// never inspected directly, only through an Accessor.
package unify
