// SPDX-License-Identifier: MIT
// Package: flowmatch/match
//
// errors.go: sentinel errors for match extraction.

package match

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput indicates a nil network, flow or builder.
	ErrNilInput = errors.New("match: nil input")

	// ErrShapeMismatch indicates a flow whose node count or endpoints differ
	// from the network it is read against.
	ErrShapeMismatch = errors.New("match: flow does not fit network")

	// ErrInconsistentFlow indicates a flow matrix that does not describe a
	// matching: a saturated left entity without exactly one partner, or a
	// match count different from the max-flow value.
	ErrInconsistentFlow = errors.New("match: inconsistent flow")
)

// matchErrorf prefixes err with the operation name.
func matchErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
