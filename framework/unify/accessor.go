package unify

// Accessor is the only way the matching core sees host objects. It
// answers "does this object have attribute X, and what is its value"
// and "is this object an instance of T". How lookup works (reflection,
// field tables, a database) is entirely the accessor's business.
//
// Attribute folds presence and value into one call: ok reports whether
// the attribute exists, and value is only meaningful when it does. An
// absent attribute is an ordinary non-match, not an error; err is
// reserved for the accessor itself malfunctioning and aborts the
// search.
type Accessor interface {
	Attribute(object interface{}, name string) (value interface{}, ok bool, err error)
	IsInstanceOf(object interface{}, descriptor interface{}) (bool, error)
}

// AttributeLister is optionally implementable by Accessors which can
// enumerate an object's attribute names. Names must come back sorted
// so enumeration order stays deterministic. Patterns that need the
// capability (attribute globbing) treat its absence as a
// configuration error.
type AttributeLister interface {
	AttributeNames(object interface{}) ([]string, error)
}

// Indexer is optionally implementable by Accessors whose objects can
// be indexed positionally. ok reports whether object is indexable and
// i in range; both misses are ordinary non-matches.
type Indexer interface {
	Index(object interface{}, i int) (value interface{}, ok bool, err error)
}

// ElementLister is optionally implementable by Accessors whose objects
// can be enumerated as collections. ok reports whether object is a
// collection at all; an empty collection is (true, empty, nil).
type ElementLister interface {
	Elements(object interface{}) (elements []interface{}, ok bool, err error)
}
