package unify

// Matcher is a generic yes/no matcher used by guard patterns. A false
// result fails the current branch silently; an error aborts the whole
// search.
type Matcher interface {
	DoesMatch(interface{}) (bool, error)
}
