// SPDX-License-Identifier: MIT
// Package: paramgrid/param
//
// result.go — immutable ordered name→value mapping.
//
// Representation:
//   • A Result is a pointer to the newest binding; each binding links to the
//     one made before it. With allocates exactly one link and never touches the
//     receiver, so branches that share a prefix share its memory.
//   • Names are unique along a chain: the engine binds each parameter at most
//     once per branch. With on an existing name shadows the older binding.

package param

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

// binding is one link of a Result chain.
type binding struct {
	parent *binding
	name   string
	value  any
	depth  int // number of links up to and including this one
}

// Result maps parameter names to the values chosen for them, in declaration
// order. The zero value is the empty Result. Results are safe to retain and to
// share between goroutines: nothing mutates them after creation.
type Result struct {
	head *binding
}

// With returns a copy of r extended by name=v. r is not modified.
// Complexity: O(1) time and space.
func (r Result) With(name string, v any) Result {
	depth := 1
	if r.head != nil {
		depth = r.head.depth + 1
	}

	return Result{head: &binding{parent: r.head, name: name, value: v, depth: depth}}
}

// Get returns the value bound to name.
// Complexity: O(n) in the number of bindings.
func (r Result) Get(name string) (any, bool) {
	for b := r.head; b != nil; b = b.parent {
		if b.name == name {
			return b.value, true
		}
	}

	return nil, false
}

// Has reports whether name is bound.
func (r Result) Has(name string) bool {
	_, ok := r.Get(name)

	return ok
}

// Len returns the number of distinct bound names.
func (r Result) Len() int {
	return len(r.Keys())
}

// Keys returns the bound names in the order they were bound.
func (r Result) Keys() []string {
	if r.head == nil {
		return nil
	}
	keys := make([]string, 0, r.head.depth)
	for name := range r.All() {
		keys = append(keys, name)
	}

	return keys
}

// All yields name/value pairs in binding order. A shadowed name is reported
// once, at its first position, with its newest value.
func (r Result) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if r.head == nil {
			return
		}
		chain := make([]*binding, r.head.depth)
		for b := r.head; b != nil; b = b.parent {
			chain[b.depth-1] = b
		}
		seen := make(map[string]bool, len(chain))
		for _, b := range chain {
			if seen[b.name] {
				continue
			}
			seen[b.name] = true
			v, _ := r.Get(b.name)
			if !yield(b.name, v) {
				return
			}
		}
	}
}

// Map copies r into a plain map. Order is lost.
func (r Result) Map() map[string]any {
	m := make(map[string]any)
	for name, v := range r.All() {
		m[name] = v
	}

	return m
}

// Equal reports whether r and o bind the same names in the same order to
// deeply equal values.
func (r Result) Equal(o Result) bool {
	next, stop := iter.Pull2(o.All())
	defer stop()
	for name, v := range r.All() {
		oname, ov, ok := next()
		if !ok || oname != name || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	_, _, more := next()

	return !more
}

// String renders r as {name: value, ...} in binding order.
func (r Result) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for name, v := range r.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%s: %v", name, v)
	}
	sb.WriteByte('}')

	return sb.String()
}

// Lookup returns the value bound to name as a T. ok is false when name is
// unbound or holds a value of another type.
func Lookup[T any](r Result, name string) (T, bool) {
	var zero T
	v, found := r.Get(name)
	if !found {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}

	return t, true
}
