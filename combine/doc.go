// SPDX-License-Identifier: MIT

// Package combine implements the combination engine: a lazy depth-first walk
// over an ordered param.Set that yields one param.Result per combination.
//
// Algorithm, at parameter index i with partial result R:
//
//  1. i == len(set): yield R (the only base case that emits output).
//  2. Resolve the i-th parameter against R.
//  3. For each candidate v, recurse at i+1 with R.With(name, v).
//  4. If there was no candidate, recurse at i+1 with R unchanged, once.
//     The parameter contributes no key and no branching factor.
//
// An empty set yields nothing at all, not a single empty Result.
//
// Ordering: results come out in odometer order. The first declared parameter
// varies slowest, the last declared one fastest.
//
// Laziness and cancellation:
//
//   - Nothing is computed until the consumer ranges over the sequence, and
//     work stops as soon as the loop body returns or breaks.
//   - WithContext adds an explicit cancellation point before every resolution
//     and before every yielded combination.
//
// Complexity:
//
//   - Time:   O(Π |values_i| · n) for n parameters, plus producer cost.
//   - Memory: O(n) links per live branch; completed Results share prefixes.
//
// Options:
//
//   - WithContext(ctx)     aborts the walk with ctx.Err() once ctx is done.
//   - WithLogger(l)        debug trace of resolutions, skips and yields.
//   - WithOnResolve(fn)    hook before each resolution; error aborts.
//   - WithOnEmpty(fn)      hook when a parameter resolves empty.
//
// Errors:
//
//   - param.ErrProducer    a Try producer failed (cause wrapped).
//   - ErrHookAborted       WithOnResolve returned an error (cause wrapped).
//   - context.Canceled / context.DeadlineExceeded from WithContext.
package combine
