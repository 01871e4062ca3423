// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"

	"github.com/katalvlaran/flowmatch/matrix"
)

// Flow is the result of one maximum-flow computation over a dense capacity
// matrix. It owns its capacity, flow and residual matrices exclusively;
// independent instances share nothing and may run on separate goroutines.
type Flow struct {
	capacity *matrix.Dense
	source   int
	sink     int

	flow     *matrix.Dense
	residual *matrix.Dense

	maxFlow       int64
	augmentations int

	observer Observer
}

// New validates graph and computes its maximum flow from source to sink
// using Edmonds–Karp (BFS shortest augmenting paths). The call blocks until
// the computation is finished.
//
// Errors (all wrap ErrInvalidNetwork; nothing is computed):
//   - ErrNilGraph, ErrNonSquare
//   - ErrSourceOutOfRange, ErrSinkOutOfRange, ErrSourceIsSink
//   - CapacityError wrapping ErrNegativeCapacity or ErrAntiparallel
//
// graph is copied; later mutation by the caller does not affect the result.
//
// Complexity: O(V · E²) in general; with unit capacities on a bipartite
// reduction at most min(P, J) augmentations, each O(V²) on the dense matrix.
func New(graph [][]int64, source, sink int, opts ...Option) (*Flow, error) {
	const method = "New"
	if len(graph) == 0 {
		return nil, flowErrorf(method, ErrNilGraph)
	}
	if err := checkEndpoints(len(graph), source, sink); err != nil {
		return nil, flowErrorf(method, err)
	}
	if err := checkRows(graph); err != nil {
		return nil, flowErrorf(method, err)
	}
	capacity, err := matrix.FromRows(graph)
	if err != nil {
		return nil, flowErrorf(method, err)
	}

	return run(method, capacity, source, sink, opts)
}

// NewFromMatrix is New for a capacity matrix already held as *matrix.Dense.
// capacity is cloned.
func NewFromMatrix(capacity *matrix.Dense, source, sink int, opts ...Option) (*Flow, error) {
	const method = "NewFromMatrix"
	if err := matrix.ValidateNotNil(capacity); err != nil {
		return nil, flowErrorf(method, fmt.Errorf("%w: %v", ErrNilGraph, err))
	}
	if err := checkEndpoints(capacity.Rows(), source, sink); err != nil {
		return nil, flowErrorf(method, err)
	}
	if err := matrix.ValidateSquare(capacity); err != nil {
		return nil, flowErrorf(method, fmt.Errorf("%w: %v", ErrNonSquare, err))
	}

	return run(method, capacity.Clone(), source, sink, opts)
}

// run finishes validation and drives the computation.
func run(method string, capacity *matrix.Dense, source, sink int, opts []Option) (*Flow, error) {
	if err := checkCapacities(capacity); err != nil {
		return nil, flowErrorf(method, err)
	}
	o := gatherOptions(opts)
	f := &Flow{
		capacity: capacity,
		source:   source,
		sink:     sink,
		observer: o.Observer,
	}
	if err := f.computeMaxFlow(); err != nil {
		return nil, flowErrorf(method, err)
	}

	return f, nil
}

// FlowGraph returns a copy of the final flow matrix.
func (f *Flow) FlowGraph() [][]int64 { return f.flow.ToRows() }

// FlowMatrix returns a copy of the final flow matrix as a Dense.
func (f *Flow) FlowMatrix() *matrix.Dense { return f.flow.Clone() }

// FlowAt returns the flow on edge (i, j).
func (f *Flow) FlowAt(i, j int) (int64, error) { return f.flow.At(i, j) }

// MaxFlow returns the maximum-flow value.
func (f *Flow) MaxFlow() int64 { return f.maxFlow }

// Augmentations returns how many augmenting paths were applied.
func (f *Flow) Augmentations() int { return f.augmentations }

// Size returns the node count N.
func (f *Flow) Size() int { return f.capacity.Rows() }

// Source returns the source index.
func (f *Flow) Source() int { return f.source }

// Sink returns the sink index.
func (f *Flow) Sink() int { return f.sink }

// computeMaxFlow runs the augmenting-path loop.
// Steps:
//  1. flow := 0, residual := copy(capacity).
//  2. Repeat: BFS for a path; stop when the sink is unreachable;
//     bottleneck := min residual on path; update flow then residual.
//  3. maxFlow := Σ_i flow[i][sink].
//
// The residual is dropped after the loop; only flow and maxFlow are kept.
func (f *Flow) computeMaxFlow() error {
	n := f.capacity.Rows()
	var err error
	if f.flow, err = matrix.NewSquare(n); err != nil {
		return err
	}
	f.residual = f.capacity.Clone()
	f.observer.OnStart(n, f.source, f.sink)

	for path := f.findPath(); path != nil; path = f.findPath() {
		bottleneck, err := path.Bottleneck(f.residual)
		if err != nil {
			return err
		}
		if err = f.updateFlow(path, bottleneck); err != nil {
			return err
		}
		if err = f.updateResidual(path, bottleneck); err != nil {
			return err
		}
		f.augmentations++
		f.observer.OnAugment(path, bottleneck, f.flow, f.residual)
	}
	f.residual = nil

	if f.maxFlow, err = f.flow.ColSum(f.sink); err != nil {
		return err
	}
	f.observer.OnFinish(f.maxFlow, f.augmentations)

	return nil
}

// findPath runs a breadth-first search from source over edges with strictly
// positive residual capacity. Neighbors are scanned in ascending index order;
// the source and any node already holding a parent are never revisited, so
// the path found is a shortest one by edge count. Returns nil when the sink
// is unreachable.
// Complexity: O(V²) on the dense residual.
func (f *Flow) findPath() Path {
	n := f.residual.Rows()
	parents := make([]int, n)
	for i := range parents {
		parents[i] = noParent
	}
	queue := make([]int, 1, n)
	queue[0] = f.source

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for v, c := range f.residual.RowView(u) {
			if v != f.source && parents[v] == noParent && c > 0 {
				parents[v] = u
				queue = append(queue, v)
			}
		}
	}
	f.observer.OnSearch(queue, parents)

	if parents[f.sink] == noParent {
		return nil
	}

	return pathFromParents(parents, f.source, f.sink)
}

// updateFlow pushes bottleneck units along path. An edge present in the
// capacity matrix gains flow; any other edge is a cancellation of flow on
// its reverse original edge.
func (f *Flow) updateFlow(path Path, bottleneck int64) error {
	for _, e := range path {
		c, err := f.capacity.At(e.From, e.To)
		if err != nil {
			return err
		}
		if c != 0 {
			err = f.flow.Add(e.From, e.To, bottleneck)
		} else {
			err = f.flow.Add(e.To, e.From, -bottleneck)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// updateResidual moves bottleneck units of residual capacity from every path
// edge onto its mirror.
func (f *Flow) updateResidual(path Path, bottleneck int64) error {
	for _, e := range path {
		if err := f.residual.Add(e.From, e.To, -bottleneck); err != nil {
			return err
		}
		if err := f.residual.Add(e.To, e.From, bottleneck); err != nil {
			return err
		}
	}

	return nil
}
