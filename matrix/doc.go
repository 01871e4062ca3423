// Package matrix provides the dense, row-major int64 matrix that backs the
// capacity, flow and residual state of a flow network.
//
// A network of N nodes is held as an N×N Dense. Memory is O(N²) and every
// element access is O(1), which is the right trade-off for the small and
// moderate node counts produced by bipartite reductions.
//
// Checked accessors (At, Set, Add) return ErrOutOfRange rather than panic.
// Hot loops that already know their indices are valid read whole rows via
// RowView, which aliases the backing storage.
package matrix
