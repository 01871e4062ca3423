// SPDX-License-Identifier: MIT
// Package: flowmatch/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables and two structured types are exposed.
//   • Callers use errors.Is(err, ErrX) / errors.As(err, *ParseError).
//   • Context is attached with %w at the call site, never baked into sentinels.

package builder

import (
	"errors"
	"fmt"
)

// ErrEmptyLabel indicates a blank left label passed to Add or read from input.
var ErrEmptyLabel = errors.New("builder: empty label")

// ErrMalformedLine indicates input that does not follow the
// "<left>><right1,right2,...>" line format or the YAML mapping shape.
var ErrMalformedLine = errors.New("builder: malformed input")

// ErrUnreadableInput indicates the input source could not be opened or read.
var ErrUnreadableInput = errors.New("builder: unreadable input")

// ParseError pinpoints malformed input. Line is 1-based.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// builderErrorf prefixes err with the method name.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
