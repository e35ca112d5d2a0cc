package unify

import (
	"fmt"
	"sync/atomic"
)

var variableIDs uint64

// NewVariable returns a fresh, unbound variable cell. Variables have
// identity independent of any pattern tree and may be reused across
// any number of unification calls; each call's bindings are cleaned up
// when it finishes.
func NewVariable() *Variable {
	return &Variable{id: atomic.AddUint64(&variableIDs, 1)}
}

// Variable is a binding slot written to by the Bind pattern through
// the Trail and read back inside a match continuation. There is no
// public way to mutate one, only matching binds it.
type Variable struct {
	id    uint64
	bound bool
	value interface{}
}

// Bound reports whether the variable currently holds a value.
func (v *Variable) Bound() bool { return v.bound }

// Value returns the currently bound value. Reading an unbound variable
// is a programming error, not a silent default, and returns
// ErrUnbound. It is only meaningful inside (or downstream of) the
// match continuation that observed the binding.
func (v *Variable) Value() (interface{}, error) {
	if !v.bound {
		return nil, ErrUnbound
	}
	return v.value, nil
}

func (v *Variable) String() string {
	if v == nil {
		return "<Variable nil>"
	}
	if v.bound {
		return fmt.Sprintf("<Bound Variable #%d = %v>", v.id, v.value)
	}
	return fmt.Sprintf("<Unbound Variable #%d>", v.id)
}
