// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrInvalidNetwork is the parent of every construction-time rejection.
// All validation sentinels below wrap it, so errors.Is(err, ErrInvalidNetwork)
// answers "was the input rejected before any computation?".
var ErrInvalidNetwork = errors.New("flow: invalid network")

// Validation sentinels. Each wraps ErrInvalidNetwork.
var (
	// ErrNilGraph is returned for a nil or zero-sized capacity matrix.
	ErrNilGraph = fmt.Errorf("%w: nil or empty capacity matrix", ErrInvalidNetwork)

	// ErrNonSquare is returned when any row length differs from the row count.
	ErrNonSquare = fmt.Errorf("%w: capacity matrix is not square", ErrInvalidNetwork)

	// ErrSourceOutOfRange is returned when source ∉ [0, N).
	ErrSourceOutOfRange = fmt.Errorf("%w: source index out of range", ErrInvalidNetwork)

	// ErrSinkOutOfRange is returned when sink ∉ [0, N).
	ErrSinkOutOfRange = fmt.Errorf("%w: sink index out of range", ErrInvalidNetwork)

	// ErrSourceIsSink is returned when source == sink.
	ErrSourceIsSink = fmt.Errorf("%w: source equals sink", ErrInvalidNetwork)

	// ErrNegativeCapacity is carried by a CapacityError for c[i][j] < 0.
	ErrNegativeCapacity = fmt.Errorf("%w: negative capacity", ErrInvalidNetwork)

	// ErrAntiparallel is carried by a CapacityError when both c[i][j] > 0 and c[j][i] > 0.
	ErrAntiparallel = fmt.Errorf("%w: antiparallel capacities", ErrInvalidNetwork)
)

// ErrEmptyPath is returned by Path.Bottleneck for a path with no edges.
var ErrEmptyPath = errors.New("flow: empty path")

// CapacityError reports the offending cell of a rejected capacity matrix.
// Err is ErrNegativeCapacity or ErrAntiparallel.
type CapacityError struct {
	From, To int
	Cap      int64
	Err      error
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("flow: capacity %d on edge %d→%d: %v", e.Cap, e.From, e.To, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e CapacityError) Unwrap() error { return e.Err }

// flowErrorf prefixes err with the method name.
func flowErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// Option configures a Flow via functional arguments.
type Option func(*Options)

// Options holds the engine's tunables.
type Options struct {
	// Observer receives trace events during the computation.
	// Never nil after option resolution.
	Observer Observer
}

// DefaultOptions returns Options with a no-op observer.
func DefaultOptions() Options {
	return Options{Observer: NopObserver{}}
}

// WithObserver installs o as the trace observer. A nil o is ignored.
func WithObserver(o Observer) Option {
	return func(opts *Options) {
		if o != nil {
			opts.Observer = o
		}
	}
}

// WithLogger traces the computation to l at debug level.
// It is shorthand for WithObserver(NewZapObserver(l)).
func WithLogger(l *zap.Logger) Option {
	return WithObserver(NewZapObserver(l))
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
