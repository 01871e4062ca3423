package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/flowmatch/builder"
	"github.com/katalvlaran/flowmatch/flow"
	"github.com/katalvlaran/flowmatch/match"
)

func TestExitError(t *testing.T) {
	base := errors.New("boom")
	e := WrapExitError(ExitCommandError, "cannot read input", base)
	assert.Equal(t, "cannot read input: boom", e.Error())
	assert.ErrorIs(t, e, base)
	assert.Equal(t, "plain", NewExitError(ExitFailure, "plain").Error())
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("other")))
	assert.Equal(t, ExitCommandError, GetExitCode(fmt.Errorf("wrapped: %w", NewExitError(ExitCommandError, "x"))))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: missing", builder.ErrUnreadableInput), ExitCommandError},
		{&builder.ParseError{Line: 1, Text: "x", Err: builder.ErrMalformedLine}, ExitFailure},
		{&builder.ParseError{Line: 2, Text: ">X", Err: builder.ErrEmptyLabel}, ExitFailure},
		{fmt.Errorf("%w: %w", flow.ErrInvalidNetwork, flow.ErrSourceIsSink), ExitFailure},
		{match.ErrInconsistentFlow, ExitFailure},
		{errors.New("unexpected"), ExitFailure},
	}
	for _, tc := range cases {
		got := classify(tc.err)
		assert.Equal(t, tc.code, got.Code, tc.err.Error())
		assert.ErrorIs(t, got, tc.err)
	}
}
