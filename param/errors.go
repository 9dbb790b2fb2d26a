// SPDX-License-Identifier: MIT
// Package: paramgrid/param
//
// errors.go — sentinel errors for the param package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Producer failures keep the original cause reachable through %w.

package param

import (
	"errors"
	"fmt"
)

// ErrProducer marks a failure raised by a Try producer while computing or
// iterating its candidate values. The original cause stays reachable:
// errors.Is(err, ErrProducer) and errors.Is(err, cause) both hold.
var ErrProducer = errors.New("param: producer failed")

// producerError ties a failing parameter to the cause reported by its producer.
type producerError struct {
	name  string
	cause error
}

func (e *producerError) Error() string {
	return fmt.Sprintf("param %q: producer failed: %v", e.name, e.cause)
}

// Unwrap exposes both the sentinel and the cause to errors.Is / errors.As.
func (e *producerError) Unwrap() []error {
	return []error{ErrProducer, e.cause}
}
