// SPDX-License-Identifier: MIT

package flow

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/flowmatch/matrix"
)

// Observer receives trace events from a running computation.
// Slices passed to an Observer are owned by the engine and valid only for the
// duration of the call; copy them to retain.
type Observer interface {
	// OnStart fires once, after validation, before the first search.
	OnStart(nodes, source, sink int)

	// OnSearch fires after every breadth-first search with the discovery
	// order and the parent table (noParent == -1 for undiscovered nodes).
	OnSearch(order, parents []int)

	// OnAugment fires after flow and residual have been updated along path,
	// with both matrices in their updated state.
	OnAugment(path Path, bottleneck int64, flow, residual *matrix.Dense)

	// OnFinish fires once with the final value.
	OnFinish(maxFlow int64, augmentations int)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) OnStart(int, int, int) {}
func (NopObserver) OnSearch([]int, []int) {}
func (NopObserver) OnAugment(Path, int64, *matrix.Dense, *matrix.Dense) {}
func (NopObserver) OnFinish(int64, int) {}

var _ Observer = NopObserver{}

// ZapObserver writes each event as a structured debug record.
type ZapObserver struct {
	log *zap.Logger
}

var _ Observer = (*ZapObserver)(nil)

// NewZapObserver returns an observer logging to l; nil l yields a no-op logger.
func NewZapObserver(l *zap.Logger) *ZapObserver {
	if l == nil {
		l = zap.NewNop()
	}

	return &ZapObserver{log: l.Named("flow")}
}

func (o *ZapObserver) OnStart(nodes, source, sink int) {
	o.log.Debug("max-flow computation started",
		zap.Int("nodes", nodes),
		zap.Int("source", source),
		zap.Int("sink", sink))
}

func (o *ZapObserver) OnSearch(order, parents []int) {
	o.log.Debug("breadth-first search",
		zap.Ints("queue", order),
		zap.Ints("parents", parents))
}

// OnAugment renders both matrices before returning; the engine keeps
// mutating them after the call.
func (o *ZapObserver) OnAugment(path Path, bottleneck int64, flow, residual *matrix.Dense) {
	ce := o.log.Check(zap.DebugLevel, "augmenting path")
	if ce == nil {
		return
	}
	ce.Write(
		zap.String("path", path.String()),
		zap.Int64("bottleneck", bottleneck),
		zap.String("flow", flow.String()),
		zap.String("residual", residual.String()))
}

func (o *ZapObserver) OnFinish(maxFlow int64, augmentations int) {
	o.log.Debug("max-flow computation finished",
		zap.Int64("max_flow", maxFlow),
		zap.Int("augmentations", augmentations))
}
