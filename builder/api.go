// SPDX-License-Identifier: MIT
// Package: paramgrid/builder
//
// api.go — Builder: New / Add / Build.
//
// Design contract:
//   • A Builder owns an immutable param.Set; Add returns a new Builder.
//   • Build never evaluates anything; it wraps combine.Walk in a Sequence.
//   • A nil *Builder behaves as an empty Builder.

package builder

import (
	"github.com/katalvlaran/paramgrid/combine"
	"github.com/katalvlaran/paramgrid/param"
)

// Builder accumulates parameter declarations. Builders are values in spirit:
// safe to keep, share and branch from.
type Builder struct {
	set param.Set
}

// New returns a Builder seeded with ps in the order given. With no arguments
// the Builder is empty and builds an empty Sequence.
// Complexity: O(len(ps)²) worst case for collision checks.
func New(ps ...param.Param) *Builder {
	return &Builder{set: param.NewSet(ps...)}
}

// Add returns a new Builder whose parameters are b's overlaid with ps.
// Parameters with new names are appended in argument order; a parameter whose
// name already exists replaces the old one and moves to the end.
// b itself is never modified.
func (b *Builder) Add(ps ...param.Param) *Builder {
	return &Builder{set: b.params().With(ps...)}
}

// Build returns a fresh Sequence over the current parameters. Each call starts
// a new walk from scratch; earlier Sequences are unaffected.
func (b *Builder) Build(opts ...combine.Option) *Sequence {
	return &Sequence{walk: combine.Walk(b.params(), opts...)}
}

// Len returns the number of declared parameters.
func (b *Builder) Len() int { return b.params().Len() }

// Names returns the declared parameter names in declaration order.
func (b *Builder) Names() []string { return b.params().Names() }

// Params returns the declared parameters as an immutable set.
func (b *Builder) Params() param.Set { return b.params() }

func (b *Builder) params() param.Set {
	if b == nil {
		return param.Set{}
	}

	return b.set
}
