// SPDX-License-Identifier: MIT
// Package: flowmatch/builder
//
// network.go: NetworkBuilder (eligibility relation) and Network (capacity
// matrix plus label↔node mappings).
//
// Contract:
//   • Node 0 is the super-source, node N-1 the super-sink.
//   • Left entities occupy nodes 1..P in first-seen order.
//   • Right entities occupy nodes P+1..P+J in first-seen order across all
//     Add calls.
//   • Edges: source→left, left→eligible right, right→sink, all capacity 1.
//
// Complexity:
//   • Add: O(len(rights)) amortized.
//   • Build: O(N²) for the dense matrix plus O(P+J+E) edge placement.
//
// Determinism:
//   • Node numbering depends only on the order of Add calls and of rights
//     within each call.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/flowmatch/matrix"
)

const (
	methodAdd   = "Add"
	methodBuild = "Build"

	// unitCapacity bounds every entity to at most one match.
	unitCapacity int64 = 1

	// sourceNode is the fixed super-source index.
	sourceNode = 0
)

// NetworkBuilder accumulates an eligibility relation. Each builder owns its
// label mappings; two builders never share state.
type NetworkBuilder struct {
	leftLabels []string          // position → left label, first-seen order
	leftPos    map[string]int    // left label → position in leftLabels
	eligible   [][]string        // position → eligible right labels, first-seen order
	seen       []map[string]bool // position → set of eligible right labels

	rightLabels []string       // position → right label, first-seen order
	rightPos    map[string]int // right label → position in rightLabels
}

// NewNetworkBuilder returns an empty builder.
func NewNetworkBuilder() *NetworkBuilder {
	return &NetworkBuilder{
		leftPos:  make(map[string]int),
		rightPos: make(map[string]int),
	}
}

// Add registers left and the right entities it is eligible for. Labels are
// trimmed of surrounding whitespace; empty right labels are skipped. Adding
// an already-known left label merges the new rights into its set.
//
// Errors: ErrEmptyLabel for a blank left label.
func (b *NetworkBuilder) Add(left string, rights ...string) error {
	left = strings.TrimSpace(left)
	if left == "" {
		return builderErrorf(methodAdd, ErrEmptyLabel)
	}

	pos, ok := b.leftPos[left]
	if !ok {
		pos = len(b.leftLabels)
		b.leftPos[left] = pos
		b.leftLabels = append(b.leftLabels, left)
		b.eligible = append(b.eligible, nil)
		b.seen = append(b.seen, make(map[string]bool))
	}

	for _, r := range rights {
		r = strings.TrimSpace(r)
		if r == "" || b.seen[pos][r] {
			continue
		}
		b.seen[pos][r] = true
		b.eligible[pos] = append(b.eligible[pos], r)
		if _, known := b.rightPos[r]; !known {
			b.rightPos[r] = len(b.rightLabels)
			b.rightLabels = append(b.rightLabels, r)
		}
	}

	return nil
}

// LeftCount returns the number of distinct left entities added so far.
func (b *NetworkBuilder) LeftCount() int { return len(b.leftLabels) }

// RightCount returns the number of distinct right entities added so far.
func (b *NetworkBuilder) RightCount() int { return len(b.rightLabels) }

// Eligible returns a copy of the right labels registered for left, in order.
func (b *NetworkBuilder) Eligible(left string) ([]string, bool) {
	pos, ok := b.leftPos[strings.TrimSpace(left)]
	if !ok {
		return nil, false
	}

	return append([]string(nil), b.eligible[pos]...), true
}

// Build produces the (P+J+2)×(P+J+2) unit-capacity network.
// The builder stays usable; later Adds do not affect a built Network.
// An empty builder yields the 2-node network holding only source and sink,
// whose max flow is 0.
func (b *NetworkBuilder) Build() (*Network, error) {
	p, j := len(b.leftLabels), len(b.rightLabels)
	n := p + j + 2
	capacity, err := matrix.NewSquare(n)
	if err != nil {
		return nil, builderErrorf(methodBuild, err)
	}
	net := &Network{
		capacity:    capacity,
		leftLabels:  append([]string(nil), b.leftLabels...),
		rightLabels: append([]string(nil), b.rightLabels...),
		leftNodes:   make(map[string]int, p),
		rightNodes:  make(map[string]int, j),
	}
	for pos, label := range net.leftLabels {
		net.leftNodes[label] = pos + 1
	}
	for pos, label := range net.rightLabels {
		net.rightNodes[label] = p + 1 + pos
	}

	sink := net.Sink()
	for pos, label := range net.leftLabels {
		u := net.leftNodes[label]
		if err = capacity.Set(sourceNode, u, unitCapacity); err != nil {
			return nil, builderErrorf(methodBuild, err)
		}
		for _, r := range b.eligible[pos] {
			v := net.rightNodes[r]
			if err = capacity.Set(u, v, unitCapacity); err != nil {
				return nil, builderErrorf(methodBuild, fmt.Errorf("edge %s→%s: %w", label, r, err))
			}
		}
	}
	for _, v := range net.rightNodes {
		if err = capacity.Set(v, sink, unitCapacity); err != nil {
			return nil, builderErrorf(methodBuild, err)
		}
	}

	return net, nil
}

// Network is a built flow network with its label mappings. It is immutable.
type Network struct {
	capacity    *matrix.Dense
	leftLabels  []string
	rightLabels []string
	leftNodes   map[string]int
	rightNodes  map[string]int
}

// Size returns the node count N = P + J + 2.
func (n *Network) Size() int { return n.capacity.Rows() }

// Source returns the super-source node (always 0).
func (n *Network) Source() int { return sourceNode }

// Sink returns the super-sink node (N-1).
func (n *Network) Sink() int { return n.capacity.Rows() - 1 }

// LeftCount returns P.
func (n *Network) LeftCount() int { return len(n.leftLabels) }

// RightCount returns J.
func (n *Network) RightCount() int { return len(n.rightLabels) }

// Capacity returns a [][]int64 copy of the capacity matrix.
func (n *Network) Capacity() [][]int64 { return n.capacity.ToRows() }

// CapacityMatrix returns a copy of the capacity matrix.
func (n *Network) CapacityMatrix() *matrix.Dense { return n.capacity.Clone() }

// IsLeft reports whether node is a left entity.
func (n *Network) IsLeft(node int) bool { return node >= 1 && node <= len(n.leftLabels) }

// IsRight reports whether node is a right entity.
func (n *Network) IsRight(node int) bool {
	return node > len(n.leftLabels) && node < n.Sink()
}

// LeftLabel returns the label of left node.
func (n *Network) LeftLabel(node int) (string, bool) {
	if !n.IsLeft(node) {
		return "", false
	}

	return n.leftLabels[node-1], true
}

// RightLabel returns the label of right node.
func (n *Network) RightLabel(node int) (string, bool) {
	if !n.IsRight(node) {
		return "", false
	}

	return n.rightLabels[node-1-len(n.leftLabels)], true
}

// NodeLabel returns a display label for any node: "source", "sink", or the
// entity label.
func (n *Network) NodeLabel(node int) string {
	switch {
	case node == n.Source():
		return "source"
	case node == n.Sink():
		return "sink"
	}
	if l, ok := n.LeftLabel(node); ok {
		return l
	}
	if r, ok := n.RightLabel(node); ok {
		return r
	}

	return ""
}

// LeftNode returns the node index of a left label.
func (n *Network) LeftNode(label string) (int, bool) {
	v, ok := n.leftNodes[label]
	return v, ok
}

// RightNode returns the node index of a right label.
func (n *Network) RightNode(label string) (int, bool) {
	v, ok := n.rightNodes[label]
	return v, ok
}

// LeftLabels returns the left labels in node order.
func (n *Network) LeftLabels() []string { return append([]string(nil), n.leftLabels...) }

// RightLabels returns the right labels in node order.
func (n *Network) RightLabels() []string { return append([]string(nil), n.rightLabels...) }
