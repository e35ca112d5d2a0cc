package unify

// Scope carries the per-call collaborators a Pattern needs while
// matching: the Accessor it reads the object graph through and the
// Trail it records bindings on. A Scope belongs to exactly one
// top-level unification call and must not be shared between
// concurrently running ones.
type Scope struct {
	Accessor Accessor
	Trail    *Trail
}
