// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/flowmatch/matrix"
)

// Edge is a directed residual edge From→To.
type Edge struct {
	From, To int
}

// String renders the edge as "u-->v".
func (e Edge) String() string {
	return strconv.Itoa(e.From) + "-->" + strconv.Itoa(e.To)
}

// Path is an augmenting path: edges ordered from source to sink, each edge's
// To equal to the next edge's From. Paths are transient; the engine builds a
// fresh one per iteration and drops it after augmentation.
type Path []Edge

// Len returns the number of edges on the path.
func (p Path) Len() int { return len(p) }

// Nodes returns the visited node sequence (Len()+1 entries), or nil for an empty path.
func (p Path) Nodes() []int {
	if len(p) == 0 {
		return nil
	}
	nodes := make([]int, 0, len(p)+1)
	nodes = append(nodes, p[0].From)
	for _, e := range p {
		nodes = append(nodes, e.To)
	}

	return nodes
}

// String renders the node sequence as "0->2->5".
func (p Path) String() string {
	nodes := p.Nodes()
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, "->")
}

// Bottleneck returns the minimum residual capacity over the path's edges.
// Errors: ErrEmptyPath, or matrix.ErrOutOfRange for an edge outside residual.
// Complexity: O(Len()).
func (p Path) Bottleneck(residual *matrix.Dense) (int64, error) {
	if len(p) == 0 {
		return 0, ErrEmptyPath
	}
	minCap := int64(math.MaxInt64)
	for _, e := range p {
		c, err := residual.At(e.From, e.To)
		if err != nil {
			return 0, fmt.Errorf("Bottleneck: edge %v: %w", e, err)
		}
		if c < minCap {
			minCap = c
		}
	}

	return minCap, nil
}

// noParent marks an undiscovered node in the BFS parent table.
const noParent = -1

// pathFromParents walks parent pointers back from sink to source and
// returns the edges in source→sink order. The caller guarantees that
// parents[sink] != noParent.
func pathFromParents(parents []int, source, sink int) Path {
	var rev Path
	for v := sink; v != source; v = parents[v] {
		rev = append(rev, Edge{From: parents[v], To: v})
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
