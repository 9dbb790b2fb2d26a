// SPDX-License-Identifier: MIT

package fixture

import "errors"

var (
	// ErrNotMapping indicates the YAML document is not a mapping of names to values.
	ErrNotMapping = errors.New("fixture: document must be a mapping")
	// ErrNotSequence indicates a parameter value is a mapping instead of a list or scalar.
	ErrNotSequence = errors.New("fixture: parameter value must be a list or a scalar")
	// ErrBadName indicates a parameter name that is empty or not a scalar.
	ErrBadName = errors.New("fixture: parameter name must be a non-empty scalar")
	// ErrDuplicateName indicates the same parameter name appears twice in one document.
	ErrDuplicateName = errors.New("fixture: duplicate parameter name")
)
