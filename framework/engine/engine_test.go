package engine

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/retro-framework/go-unify/framework/accessor"
	"github.com/retro-framework/go-unify/framework/pattern"
	test "github.com/retro-framework/go-unify/framework/test_helper"
	"github.com/retro-framework/go-unify/framework/unify"
)

type Simple struct {
	Foo int
}

type Sophisticated struct {
	Foo int
	Bar Simple
}

func Test_Unifier_Unify(t *testing.T) {
	h := test.H(t)

	var (
		ctx = context.Background()
		u   = New(accessor.Reflect{})
		s   = Sophisticated{Foo: 23, Bar: Simple{Foo: 42}}
	)

	t.Run("a fully navigating pattern matches exactly once with the leaf value bound", func(t *testing.T) {
		// Arrange
		var (
			v  = unify.NewVariable()
			p1 = pattern.Seq(
				pattern.Subtype(Sophisticated{}),
				pattern.Attribute("bar"),
				pattern.Attribute("foo"),
				pattern.Bind(v),
			)
		)

		// Act
		seen := bindingsOf(t, u, p1, s, v)

		// Assert
		h.Eql(seen, []interface{}{42})
		h.BoolEql(v.Bound(), false)
	})

	t.Run("alternation yields both branches in order against the original object", func(t *testing.T) {
		var (
			v  = unify.NewVariable()
			p1 = pattern.Seq(
				pattern.Subtype(Sophisticated{}),
				pattern.Attribute("bar"),
				pattern.Attribute("foo"),
				pattern.Bind(v),
			)
			p2 = pattern.Or(p1, pattern.Seq(pattern.Attribute("foo"), pattern.Bind(v)))
		)
		h.Eql(bindingsOf(t, u, p2, s, v), []interface{}{42, 23})
	})

	t.Run("a subtype mismatch at the root matches zero times", func(t *testing.T) {
		n, err := u.Matches(ctx, pattern.Subtype(Simple{}), s)
		h.NoErr(err)
		h.IntEql(n, 0)
	})

	t.Run("anything matches exactly once regardless of the object's shape", func(t *testing.T) {
		for _, object := range []interface{}{s, 42, "42", nil, []int{1, 2, 3}} {
			n, err := u.Matches(ctx, pattern.Anything(), object)
			h.NoErr(err)
			h.IntEql(n, 1)
		}
	})

	t.Run("an absent attribute matches zero times", func(t *testing.T) {
		n, err := u.Matches(ctx, pattern.Attribute("missing"), s)
		h.NoErr(err)
		h.IntEql(n, 0)
	})

	t.Run("two runs over the same pattern and object see the same bindings in the same order", func(t *testing.T) {
		var (
			v = unify.NewVariable()
			p = pattern.Or(
				pattern.Seq(pattern.Attribute("bar"), pattern.Attribute("foo"), pattern.Bind(v)),
				pattern.Seq(pattern.Attribute("foo"), pattern.Bind(v)),
			)
		)
		first := bindingsOf(t, u, p, s, v)
		second := bindingsOf(t, u, p, s, v)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("expected deterministic enumeration, got diff:\n%s", diff)
		}
	})

	t.Run("every variable is restored once the call returns", func(t *testing.T) {
		var (
			v1 = unify.NewVariable()
			v2 = unify.NewVariable()
			p  = pattern.Or(
				pattern.Seq(pattern.Bind(v1), pattern.Attribute("foo"), pattern.Bind(v2)),
				pattern.Bind(v2),
			)
		)
		err := u.Unify(ctx, p, s, nil)
		h.NoErr(err)
		h.BoolEql(v1.Bound(), false)
		h.BoolEql(v2.Bound(), false)
	})
}

func Test_Unifier_EarlyStop(t *testing.T) {
	h := test.H(t)

	var (
		ctx = context.Background()
		u   = New(accessor.Reflect{})
	)

	t.Run("returning Stop ends the enumeration cleanly", func(t *testing.T) {
		// Arrange
		var (
			v = unify.NewVariable()
			p = pattern.Or(pattern.Bind(v), pattern.Bind(v))
			n int
		)

		// Act
		err := u.Unify(ctx, p, 42, func(context.Context) error {
			n++
			return unify.Stop
		})

		// Assert
		h.NoErr(err)
		h.IntEql(n, 1)
		h.BoolEql(v.Bound(), false)
	})

	t.Run("any other callback error aborts the search and surfaces", func(t *testing.T) {
		var (
			boom = errors.New("boom")
			p    = pattern.Or(pattern.Anything(), pattern.Anything())
			n    int
		)
		err := u.Unify(ctx, p, 42, func(context.Context) error {
			n++
			return boom
		})
		if errors.Cause(err) != boom {
			t.Fatalf("expected the callback error to surface, got %v", err)
		}
		h.IntEql(n, 1)
	})
}

func Test_Unifier_Nesting(t *testing.T) {
	h := test.H(t)

	var (
		ctx = context.Background()
		u   = New(accessor.Reflect{})
	)

	t.Run("an inner call over a bound variable guards on equality and leaves the outer binding intact", func(t *testing.T) {
		var v = unify.NewVariable()
		err := u.Unify(ctx, pattern.Bind(v), 42, func(context.Context) error {
			matchesEqual, err := u.Matches(ctx, pattern.Bind(v), 42)
			h.NoErr(err)
			h.IntEql(matchesEqual, 1)

			matchesOther, err := u.Matches(ctx, pattern.Bind(v), 21)
			h.NoErr(err)
			h.IntEql(matchesOther, 0)

			value, err := v.Value()
			h.NoErr(err)
			h.Eql(value, 42)
			return nil
		})
		h.NoErr(err)
		h.BoolEql(v.Bound(), false)
	})
}

func Test_Unifier_Errors(t *testing.T) {
	h := test.H(t)

	var ctx = context.Background()

	t.Run("an accessor malfunction aborts the whole search", func(t *testing.T) {
		// Arrange
		var (
			broken = accessor.Funcs{
				AttributeFn: func(interface{}, string) (interface{}, bool, error) {
					return nil, false, errors.New("backend unreachable")
				},
				IsInstanceOfFn: func(interface{}, interface{}) (bool, error) {
					return true, nil
				},
			}
			u = New(broken)
			n int
		)

		// Act
		err := u.Unify(ctx, pattern.Attribute("foo"), struct{}{}, func(context.Context) error {
			n++
			return nil
		})

		// Assert
		if err == nil {
			t.Fatal("expected the accessor error to abort the search")
		}
		h.IntEql(n, 0)
	})

	t.Run("a nil pattern is a configuration error", func(t *testing.T) {
		err := New(accessor.Reflect{}).Unify(ctx, nil, 42, nil)
		if err == nil {
			t.Fatal("expected an error for a nil pattern")
		}
	})

	t.Run("a missing accessor is a configuration error", func(t *testing.T) {
		err := Unifier{}.Unify(ctx, pattern.Anything(), 42, nil)
		if err == nil {
			t.Fatal("expected an error for a missing accessor")
		}
	})

	t.Run("a malformed pattern node is not retried as a non-match", func(t *testing.T) {
		err := New(accessor.Reflect{}).Unify(ctx, pattern.Bind(nil), 42, nil)
		if err == nil {
			t.Fatal("expected an error for a malformed pattern")
		}
	})
}

// bindingsOf runs one unification and gathers v's value at every
// match, asserting the post-call cleanup invariant along the way.
func bindingsOf(t *testing.T, u Unifier, p unify.Pattern, object interface{}, v *unify.Variable) []interface{} {
	t.Helper()
	var seen []interface{}
	err := u.Unify(context.Background(), p, object, func(context.Context) error {
		value, err := v.Value()
		if err != nil {
			t.Fatalf("expected variable to be readable at the callback, got %q", err)
		}
		seen = append(seen, value)
		return nil
	})
	if err != nil {
		t.Fatalf("expected no error from unify, got %q", err)
	}
	if v.Bound() {
		t.Fatal("expected variable to be unbound after unify returned")
	}
	return seen
}
