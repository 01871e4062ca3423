// SPDX-License-Identifier: MIT
// Package: flowmatch/match
//
// extract.go: recover the matching from a solved network.
//
// Complexity: O(P·J) over the flow matrix.

package match

import (
	"fmt"

	"github.com/katalvlaran/flowmatch/builder"
	"github.com/katalvlaran/flowmatch/flow"
)

const methodExtract = "Extract"

// Extract reads the matching from f, which must have been computed on net.
//
// Errors:
//   - ErrNilInput if net or f is nil.
//   - ErrShapeMismatch if f was not computed on a network of net's shape.
//   - ErrInconsistentFlow if the flow does not describe a matching.
func Extract(net *builder.Network, f *flow.Flow) (*Answer, error) {
	if net == nil || f == nil {
		return nil, matchErrorf(methodExtract, ErrNilInput)
	}
	if f.Size() != net.Size() || f.Source() != net.Source() || f.Sink() != net.Sink() {
		return nil, matchErrorf(methodExtract, fmt.Errorf("%w: flow has %d nodes, network %d",
			ErrShapeMismatch, f.Size(), net.Size()))
	}

	fg := f.FlowGraph()
	src := net.Source()
	ans := newAnswer(f.MaxFlow())

	for i := 1; i <= net.LeftCount(); i++ {
		if fg[src][i] != 1 {
			continue
		}
		left, _ := net.LeftLabel(i)

		partner := -1
		for j, v := range fg[i] {
			if v != 1 || !net.IsRight(j) {
				continue
			}
			if partner != -1 {
				return nil, matchErrorf(methodExtract, fmt.Errorf("%w: %s has several partners", ErrInconsistentFlow, left))
			}
			partner = j
		}
		if partner == -1 {
			return nil, matchErrorf(methodExtract, fmt.Errorf("%w: %s carries flow but has no partner", ErrInconsistentFlow, left))
		}

		right, _ := net.RightLabel(partner)
		ans.put(left, right)
	}

	if int64(ans.Len()) != ans.MaxFlow() {
		return nil, matchErrorf(methodExtract, fmt.Errorf("%w: %d matches for max flow %d",
			ErrInconsistentFlow, ans.Len(), ans.MaxFlow()))
	}

	return ans, nil
}
