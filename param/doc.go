// SPDX-License-Identifier: MIT

// Package param declares the named parameters that paramgrid combines, the
// ordered results the combination engine builds from them, and the resolver
// that turns a parameter into a sequence of candidate values.
//
// A parameter is one of:
//
//   - Fixed:     a finite, ordered collection of values (Values, Of).
//   - Iterable:  a re-iterable iter.Seq ranged afresh each time (Seq).
//   - Dependent: a function of the values already chosen for the parameters
//     declared before it (Func, Derive, Try).
//
// Results are immutable. Result.With returns a new Result that shares its
// prefix with the receiver, so sibling branches of the enumeration never see
// each other's bindings.
//
// Preconditions:
//
//   - The sequence handed to Seq must be re-iterable. A single-use sequence
//     (one backed by a channel, a reader, or iter.Pull) is drained by the
//     first branch; every later branch sees it empty and skips the parameter.
//   - A Dependent function must build a fresh sequence on every call. It is
//     called once per branch that reaches it and its output is never cached.
//
// Constructors panic on an empty name or a nil function: those are
// programming errors. Resolution itself never panics on its own account;
// producer failures come back through Try as errors wrapped with ErrProducer.
package param
