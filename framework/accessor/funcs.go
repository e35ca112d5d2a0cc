package accessor

import "github.com/pkg/errors"

// Funcs adapts plain functions to the accessor contract, which is
// handy in tests and for callers whose object graphs live behind an
// API rather than in memory. A nil AttributeFn or IsInstanceOfFn is a
// configuration error surfaced on first use.
type Funcs struct {
	AttributeFn    func(object interface{}, name string) (interface{}, bool, error)
	IsInstanceOfFn func(object interface{}, descriptor interface{}) (bool, error)
}

func (f Funcs) Attribute(object interface{}, name string) (interface{}, bool, error) {
	if f.AttributeFn == nil {
		return nil, false, errors.New("accessor: no AttributeFn configured")
	}
	return f.AttributeFn(object, name)
}

func (f Funcs) IsInstanceOf(object interface{}, descriptor interface{}) (bool, error) {
	if f.IsInstanceOfFn == nil {
		return false, errors.New("accessor: no IsInstanceOfFn configured")
	}
	return f.IsInstanceOfFn(object, descriptor)
}
