// Package builder is the public entry point of paramgrid: an immutable
// accumulator of named parameters that produces every combination of them as
// a lazy, single-use Sequence.
//
// The package offers the following key components:
//
//   - Builder:
//     – New(ps...):      seed a Builder with zero or more parameters.
//     – Add(ps...):      derive a new Builder; the receiver is untouched.
//     – Build(opts...):  start a fresh walk over the current parameters.
//   - Sequence:
//     – All():           range over the combinations (first range only).
//     – Err():           the failure that ended the walk, if any.
//     – Collect/Count:   drain helpers.
//
// Guarantees:
//
//   - Immutability: Builders derived from a common ancestor never interfere.
//   - Name collisions resolve as "last write wins"; the newer parameter moves
//     to the end of the declaration order.
//   - Nothing is evaluated by New, Add or Build. Producers run only while the
//     consumer ranges over Sequence.All, and stop when the loop stops.
//   - Ordering is odometer-like: first declared parameter varies slowest.
//
// Example:
//
//	b := builder.New(
//		param.Values("color", "red", "blue"),
//		param.Values("size", "small", "large"),
//	)
//	for r := range b.Build().All() {
//		fmt.Println(r) // {color: red, size: small} ...
//	}
package builder
