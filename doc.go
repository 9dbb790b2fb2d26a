// Package paramgrid enumerates every combination of a set of named
// parameters, lazily and in a fixed order. It is meant for building
// structured test fixtures and exhaustive input sets.
//
// A parameter is either a fixed collection of values or a function of the
// values already chosen for the parameters declared before it. Combinations
// come out one at a time as ordered name→value results; nothing is computed
// until the consumer asks for the next one.
//
// Under the hood, everything is organized under four subpackages:
//
//	param/    — Param declarations, immutable Result and Set, the resolver
//	combine/  — the depth-first combination engine (Walk) and its options
//	builder/  — immutable Builder (New/Add/Build) and single-use Sequence
//	fixture/  — YAML parameter tables in, YAML combinations out
//
// Quick example:
//
//	b := builder.New(
//		param.Values("color", "red", "blue"),
//		param.Values("size", "small", "large"),
//	)
//	for r := range b.Build().All() {
//		fmt.Println(r)
//	}
//
// prints
//
//	{color: red, size: small}
//	{color: red, size: large}
//	{color: blue, size: small}
//	{color: blue, size: large}
//
//	go get github.com/katalvlaran/paramgrid
package paramgrid
