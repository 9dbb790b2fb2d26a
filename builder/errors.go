// SPDX-License-Identifier: MIT
// Package: paramgrid/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Walk failures (param.ErrProducer, combine.ErrHookAborted, context
//     errors) pass through Sequence.Err unchanged; branch with errors.Is.
//   • The sentinels below describe misuse of a Sequence itself.

package builder

import "errors"

// ErrSequenceConsumed is returned by Collect and Count when the Sequence has
// already been ranged over. Build a new Sequence to walk again.
var ErrSequenceConsumed = errors.New("builder: sequence already consumed")
