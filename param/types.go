// SPDX-License-Identifier: MIT
// Package: paramgrid/param
//
// types.go — parameter kinds and constructors.
//
// Contract:
//   • A Param is immutable once built; Fixed values are copied on construction.
//   • Constructors VALIDATE and PANIC on meaningless input (empty name, nil fn).
//   • Nothing is evaluated at construction time; Dependent functions run only
//     when the engine reaches them.

package param

import (
	"fmt"
	"iter"
)

// Kind tags the value source of a Param.
type Kind int

const (
	// Fixed is a finite, ordered collection supplied up front.
	Fixed Kind = iota
	// Iterable is a caller-supplied iter.Seq, ranged from the start every time.
	Iterable
	// Dependent is a function of the Result built so far on the current branch.
	Dependent
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Iterable:
		return "iterable"
	case Dependent:
		return "dependent"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Param is one named parameter and the source of its candidate values.
// The zero Param is not usable; build one with Values, Of, Seq, Func, Derive or Try.
type Param struct {
	name   string
	kind   Kind
	values []any                              // Fixed
	seq    iter.Seq[any]                      // Iterable
	fn     func(Result) iter.Seq2[any, error] // Dependent
}

// Name returns the parameter name.
func (p Param) Name() string { return p.name }

// Kind reports how the parameter produces its values.
func (p Param) Kind() Kind { return p.kind }

// String renders the parameter as name(kind), plus the value count for Fixed.
func (p Param) String() string {
	if p.kind == Fixed {
		return fmt.Sprintf("%s(%s, %d values)", p.name, p.kind, len(p.values))
	}

	return fmt.Sprintf("%s(%s)", p.name, p.kind)
}

// Values declares a Fixed parameter. An empty list is allowed: the parameter
// is then skipped on every branch and never appears in a Result.
// Complexity: O(len(vs)) to copy the values.
func Values(name string, vs ...any) Param {
	mustName("Values", name)
	cp := make([]any, len(vs))
	copy(cp, vs)

	return Param{name: name, kind: Fixed, values: cp}
}

// Of is Values for a homogeneous list of T.
func Of[T any](name string, vs ...T) Param {
	mustName("Of", name)
	cp := make([]any, len(vs))
	for i, v := range vs {
		cp[i] = v
	}

	return Param{name: name, kind: Fixed, values: cp}
}

// Seq declares a parameter backed by an iterator. The iterator is ranged
// from the start each time a branch reaches the parameter, so it must be
// re-iterable; an infinite iterator yields an infinite, still ordered walk.
func Seq(name string, seq iter.Seq[any]) Param {
	mustName("Seq", name)
	if seq == nil {
		panic(fmt.Sprintf("param: Seq(%q, nil)", name))
	}

	return Param{name: name, kind: Iterable, seq: seq}
}

// Func declares a Dependent parameter. fn receives the bindings made so far on
// the current branch and is called once per branch that reaches the parameter.
// A nil returned sequence counts as empty.
func Func(name string, fn func(Result) iter.Seq[any]) Param {
	mustName("Func", name)
	if fn == nil {
		panic(fmt.Sprintf("param: Func(%q, nil)", name))
	}

	return Param{name: name, kind: Dependent, fn: func(r Result) iter.Seq2[any, error] {
		seq := fn(r)

		return func(yield func(any, error) bool) {
			if seq == nil {
				return
			}
			for v := range seq {
				if !yield(v, nil) {
					return
				}
			}
		}
	}}
}

// Derive declares a Dependent parameter whose function returns a slice.
func Derive[T any](name string, fn func(Result) []T) Param {
	mustName("Derive", name)
	if fn == nil {
		panic(fmt.Sprintf("param: Derive(%q, nil)", name))
	}

	return Param{name: name, kind: Dependent, fn: func(r Result) iter.Seq2[any, error] {
		vs := fn(r)

		return func(yield func(any, error) bool) {
			for _, v := range vs {
				if !yield(v, nil) {
					return
				}
			}
		}
	}}
}

// Try declares a fallible Dependent parameter. A non-nil error yielded by the
// returned sequence ends the walk; values yielded alongside an error are ignored.
func Try(name string, fn func(Result) iter.Seq2[any, error]) Param {
	mustName("Try", name)
	if fn == nil {
		panic(fmt.Sprintf("param: Try(%q, nil)", name))
	}

	return Param{name: name, kind: Dependent, fn: fn}
}

// mustName panics on the empty name: such a parameter could never be looked up.
func mustName(ctor, name string) {
	if name == "" {
		panic(fmt.Sprintf("param: %s(\"\")", ctor))
	}
}
