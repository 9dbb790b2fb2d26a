// SPDX-License-Identifier: MIT
// Package: paramgrid/param
//
// set.go — immutable ordered collection of Params.
//
// Overlay rule (deterministic, documented):
//   • With(ps...) appends each p in argument order.
//   • A p whose name is already present removes the older entry first, so the
//     newer definition lands at the END of the order (fresh override).
//   • The same rule applies to duplicates inside one With call.
//   • The receiver is never touched; every Set owns its backing slice.

package param

import "iter"

// Set is an ordered list of uniquely named Params. The zero Set is empty.
type Set struct {
	params []Param
}

// NewSet returns a Set holding ps, overlaid in order.
func NewSet(ps ...Param) Set {
	return Set{}.With(ps...)
}

// With returns a new Set with ps overlaid on s. See the file header for the
// collision rule.
// Complexity: O((len(s)+len(ps)) · len(ps)) worst case; specs are few.
func (s Set) With(ps ...Param) Set {
	out := make([]Param, len(s.params), len(s.params)+len(ps))
	copy(out, s.params)
	for _, p := range ps {
		if p.name == "" {
			// zero Param: not constructible through the public API.
			continue
		}
		for i := range out {
			if out[i].name == p.name {
				out = append(out[:i], out[i+1:]...)
				break
			}
		}
		out = append(out, p)
	}

	return Set{params: out}
}

// Len returns the number of parameters.
func (s Set) Len() int { return len(s.params) }

// At returns the i-th parameter in declaration order.
func (s Set) At(i int) Param { return s.params[i] }

// Get returns the parameter named name.
func (s Set) Get(name string) (Param, bool) {
	for _, p := range s.params {
		if p.name == name {
			return p, true
		}
	}

	return Param{}, false
}

// Names returns the parameter names in declaration order.
func (s Set) Names() []string {
	names := make([]string, len(s.params))
	for i, p := range s.params {
		names[i] = p.name
	}

	return names
}

// Params returns a copy of the parameters in declaration order.
func (s Set) Params() []Param {
	out := make([]Param, len(s.params))
	copy(out, s.params)

	return out
}

// All yields index/parameter pairs in declaration order.
func (s Set) All() iter.Seq2[int, Param] {
	return func(yield func(int, Param) bool) {
		for i, p := range s.params {
			if !yield(i, p) {
				return
			}
		}
	}
}
