// SPDX-License-Identifier: MIT
// Package: paramgrid/builder
//
// sequence.go — single-use lazy sequence of combinations.
//
// Lifecycle:
//   • Fresh: nothing computed yet.
//   • Running: the first range over All drives the walk, one combination per
//     loop iteration.
//   • Done: the loop finished, broke out, or the walk failed. Later ranges
//     yield nothing; Err keeps reporting the failure, if any.
//
// A Sequence is not safe for concurrent use.

package builder

import (
	"iter"

	"github.com/katalvlaran/paramgrid/param"
)

// Sequence is the lazy output of Builder.Build.
type Sequence struct {
	walk    iter.Seq2[param.Result, error]
	started bool
	err     error
}

// All returns the combinations. Only the first range over it (across all
// iterators returned by All) produces values. Stopping the loop early is
// always safe and ends the Sequence.
func (s *Sequence) All() iter.Seq[param.Result] {
	return func(yield func(param.Result) bool) {
		if s.started {
			return
		}
		s.started = true
		for r, err := range s.walk {
			if err != nil {
				s.err = err
				return
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Err returns the failure that ended the walk, or nil.
func (s *Sequence) Err() error { return s.err }

// Collect drains the Sequence. On failure it returns the results produced
// before the failure together with the error.
func (s *Sequence) Collect() ([]param.Result, error) {
	if s.started {
		return nil, ErrSequenceConsumed
	}
	var out []param.Result
	for r := range s.All() {
		out = append(out, r)
	}

	return out, s.err
}

// Count drains the Sequence and returns how many combinations it produced.
func (s *Sequence) Count() (int, error) {
	if s.started {
		return 0, ErrSequenceConsumed
	}
	n := 0
	for range s.All() {
		n++
	}

	return n, s.err
}
