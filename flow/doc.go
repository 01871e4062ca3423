// Package flow computes single-commodity maximum flow on a dense capacity
// matrix with the Edmonds–Karp specialization of Ford–Fulkerson.
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths
//     over the residual matrix; neighbors are scanned in ascending index order.
//   - Time:   O(V · E²) worst case; a unit-capacity bipartite reduction
//     terminates after at most min(P, J) augmentations.
//   - Memory: O(V²) for the capacity, flow and residual matrices.
//
// # Network model
//
// Nodes are the integers [0, N). A capacity c[i][j] > 0 is a directed edge
// i→j. The engine rejects, before computing anything:
//
//	– a nil/empty or non-square matrix              (ErrNilGraph, ErrNonSquare)
//	– out-of-range or equal source and sink         (ErrSourceOutOfRange, ErrSinkOutOfRange, ErrSourceIsSink)
//	– any negative capacity                         (CapacityError{Err: ErrNegativeCapacity})
//	– any pair with capacity in both directions     (CapacityError{Err: ErrAntiparallel})
//
// Every rejection wraps ErrInvalidNetwork.
//
// # API
//
//	f, err := flow.New(capacity, source, sink)
//	f.MaxFlow()    // int64
//	f.FlowGraph()  // [][]int64, same shape as capacity
//
// New blocks until the flow is maximal. The flow matrix satisfies
// 0 ≤ flow[i][j] ≤ c[i][j] on every original edge and conserves flow at
// every node other than source and sink.
//
// # Tracing
//
// Options attach an Observer that receives OnStart, OnSearch, OnAugment and
// OnFinish events. OnAugment also carries the updated flow and residual
// matrices. WithLogger routes every event to a *zap.Logger at debug level:
//
//	f, err := flow.New(capacity, 0, n-1, flow.WithLogger(log))
package flow
