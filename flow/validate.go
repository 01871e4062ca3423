// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"

	"github.com/katalvlaran/flowmatch/matrix"
)

// checkEndpoints validates source and sink against node count n.
func checkEndpoints(n, source, sink int) error {
	if source < 0 || source >= n {
		return fmt.Errorf("source=%d, nodes=%d: %w", source, n, ErrSourceOutOfRange)
	}
	if sink < 0 || sink >= n {
		return fmt.Errorf("sink=%d, nodes=%d: %w", sink, n, ErrSinkOutOfRange)
	}
	if sink == source {
		return fmt.Errorf("source=sink=%d: %w", source, ErrSourceIsSink)
	}

	return nil
}

// checkRows validates that graph is non-empty and square.
func checkRows(graph [][]int64) error {
	if len(graph) == 0 {
		return ErrNilGraph
	}
	for i, row := range graph {
		if len(row) != len(graph) {
			return fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), len(graph), ErrNonSquare)
		}
	}

	return nil
}

// checkCapacities scans the square matrix c in row-major order and rejects
// the first negative cell or antiparallel pair.
// Complexity: O(N²).
func checkCapacities(c *matrix.Dense) error {
	n := c.Rows()
	for i := 0; i < n; i++ {
		row := c.RowView(i)
		for j, cij := range row {
			if cij < 0 {
				return CapacityError{From: i, To: j, Cap: cij, Err: ErrNegativeCapacity}
			}
			if cij > 0 && c.RowView(j)[i] > 0 {
				return CapacityError{From: i, To: j, Cap: cij, Err: ErrAntiparallel}
			}
		}
	}

	return nil
}
