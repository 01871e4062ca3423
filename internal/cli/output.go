// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flowmatch/builder"
	"github.com/katalvlaran/flowmatch/flow"
	"github.com/katalvlaran/flowmatch/match"
)

// Exit codes for the flowmatch command.
const (
	ExitSuccess      = 0 // matching printed, or usage shown
	ExitFailure      = 1 // relation or network rejected
	ExitCommandError = 2 // bad flags, unreadable input or broken config
)

// ExitError carries the process exit code for a failed flowmatch run next
// to the reason it failed. main prints Error() and exits with Code.
type ExitError struct {
	Code    int    // ExitFailure for a bad relation or network, ExitCommandError otherwise
	Message string // what flowmatch was doing, e.g. "cannot read input"
	Err     error  // cause from builder, flow or match; may be nil
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError reports a command failure that has no underlying cause, such
// as a rejected --format value.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches code and message to a failure from the solving
// pipeline or from flag and config handling.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode is the status main exits with: ExitSuccess for nil, the code
// of the first ExitError in err's chain, and ExitFailure for anything else.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		return ExitFailure
	}
	return exitErr.Code
}

// classify maps a solving error to an ExitError.
func classify(err error) *ExitError {
	switch {
	case errors.Is(err, builder.ErrUnreadableInput):
		return WrapExitError(ExitCommandError, "cannot read input", err)
	case errors.Is(err, builder.ErrMalformedLine),
		errors.Is(err, builder.ErrEmptyLabel):
		return WrapExitError(ExitFailure, "invalid relation", err)
	case errors.Is(err, flow.ErrInvalidNetwork):
		return WrapExitError(ExitFailure, "invalid network", err)
	case errors.Is(err, match.ErrInconsistentFlow):
		return WrapExitError(ExitFailure, "inconsistent result", err)
	default:
		return WrapExitError(ExitFailure, "matching failed", err)
	}
}
