package unify

import (
	"github.com/golang-collections/collections/stack"
)

// NewTrail returns an empty trail. The engine makes one per top-level
// unification call; it lives exactly as long as that call.
func NewTrail() *Trail {
	return &Trail{}
}

// Trail is the undo log of variable bindings. Every binding made while
// descending into an alternative pushes a record of the variable's
// previous state; unwinding pops records in strict LIFO order so that
// after the top-level call returns every variable it touched is back
// in its pre-call state. Nested unification calls over the same
// variables work as long as they keep the same LIFO discipline.
type Trail struct {
	s stack.Stack
}

// Mark is a position on the trail, taken before binding and passed to
// UnwindTo when the alternative it belongs to has been exhausted.
type Mark int

type bindRecord struct {
	v         *Variable
	wasBound  bool
	prevValue interface{}
}

func (tr *Trail) Len() int {
	return tr.s.Len()
}

func (tr *Trail) Mark() Mark {
	return Mark(tr.s.Len())
}

// Bind records v's current state and rebinds it to value, returning
// the mark taken just before the record was pushed.
func (tr *Trail) Bind(v *Variable, value interface{}) Mark {
	m := tr.Mark()
	tr.s.Push(bindRecord{v: v, wasBound: v.bound, prevValue: v.value})
	v.bound = true
	v.value = value
	return m
}

// UnwindTo pops records until the trail is back at mark, restoring
// each variable to the state it had before the corresponding Bind.
func (tr *Trail) UnwindTo(m Mark) {
	for tr.s.Len() > int(m) {
		rec := tr.s.Pop().(bindRecord)
		rec.v.bound = rec.wasBound
		rec.v.value = rec.prevValue
	}
}
