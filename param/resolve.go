// SPDX-License-Identifier: MIT
// Package: paramgrid/param
//
// resolve.go — Param + partial Result → candidate values.

package param

import "iter"

// Resolve returns the candidate values of p for the bindings in partial.
//
// Every range over the returned sequence starts from scratch: Fixed values are
// re-read from the first element, an Iterable source is ranged again, and a
// Dependent function is called again with partial. Nothing is cached between
// ranges, so the engine, which ranges once per branch, calls each Dependent
// function exactly once per branch that reaches it.
//
// A failure reported by a Try producer is yielded once as (nil, err) with err
// wrapping ErrProducer and the cause; the sequence then ends.
func Resolve(p Param, partial Result) iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		switch p.kind {
		case Fixed:
			for _, v := range p.values {
				if !yield(v, nil) {
					return
				}
			}
		case Iterable:
			for v := range p.seq {
				if !yield(v, nil) {
					return
				}
			}
		case Dependent:
			seq := p.fn(partial)
			if seq == nil {
				return
			}
			for v, err := range seq {
				if err != nil {
					yield(nil, &producerError{name: p.name, cause: err})
					return
				}
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}
