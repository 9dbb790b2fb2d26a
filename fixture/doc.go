// SPDX-License-Identifier: MIT

// Package fixture reads parameter declarations from YAML and writes
// combinations back out as YAML, keeping key order in both directions.
//
// Input is a single mapping of parameter name to a list of values:
//
//	color: [red, blue]
//	size: []        # empty: skipped on every branch
//	variant: A      # a lone scalar is a one-element list
//
// Each entry becomes a Fixed param in document order. A null value is an
// empty list. A name defined twice is rejected with ErrDuplicateName. A
// nested mapping as a value is rejected with ErrNotSequence; mappings inside a
// list are ordinary values and decode to map[string]any.
//
// Output is a YAML list of mappings, one per combination, each listing its
// keys in declaration order. Items are written as they are pulled, so Dump
// also works on an infinite sequence and runs until the writer fails.
package fixture
