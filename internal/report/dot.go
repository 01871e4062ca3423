// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/flowmatch/builder"
	"github.com/katalvlaran/flowmatch/flow"
	"github.com/katalvlaran/flowmatch/matrix"
)

// networkNode is a flow-network node labelled with its entity.
type networkNode struct {
	id    int64
	dotID string
	label string
}

var (
	_ graph.Node          = (*networkNode)(nil)
	_ encoding.Attributer = (*networkNode)(nil)
)

func (n *networkNode) ID() int64     { return n.id }
func (n *networkNode) DOTID() string { return n.dotID }

func (n *networkNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: n.label}}
}

// flowEdge carries the final flow against its capacity.
type flowEdge struct {
	from, to *networkNode
	flow     int64
	capacity int64
}

var (
	_ graph.Edge          = (*flowEdge)(nil)
	_ encoding.Attributer = (*flowEdge)(nil)
)

func (e *flowEdge) From() graph.Node { return e.from }
func (e *flowEdge) To() graph.Node   { return e.to }

func (e *flowEdge) ReversedEdge() graph.Edge {
	return &flowEdge{from: e.to, to: e.from, flow: e.flow, capacity: e.capacity}
}

func (e *flowEdge) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{{Key: "label", Value: fmt.Sprintf("%d/%d", e.flow, e.capacity)}}
	if e.flow == e.capacity {
		attrs = append(attrs, encoding.Attribute{Key: "color", Value: "red"})
	}
	return attrs
}

// networkGraph adds graph-level layout attributes.
type networkGraph struct {
	*simple.DirectedGraph
}

var _ dot.Attributers = networkGraph{}

func (networkGraph) DOTAttributers() (graphAttrs, nodeAttrs, edgeAttrs encoding.Attributer) {
	return attributes{{Key: "rankdir", Value: "LR"}}, attributes{{Key: "shape", Value: "circle"}}, attributes{}
}

type attributes []encoding.Attribute

func (a attributes) Attributes() []encoding.Attribute { return a }

// DOT writes net as a Graphviz digraph. Every positive-capacity edge is
// labelled "flow/cap"; saturated edges are red.
func DOT(w io.Writer, net *builder.Network, f *flow.Flow) error {
	g := networkGraph{simple.NewDirectedGraph()}

	nodes := make([]*networkNode, net.Size())
	for i := range nodes {
		nodes[i] = &networkNode{id: int64(i), dotID: dotID(net, i), label: net.NodeLabel(i)}
		g.AddNode(nodes[i])
	}

	capacity, fm := net.CapacityMatrix(), f.FlowMatrix()
	if err := matrix.ValidateSameShape(capacity, fm); err != nil {
		return fmt.Errorf("DOT: %w", err)
	}
	for u := 0; u < capacity.Rows(); u++ {
		flows := fm.RowView(u)
		for v, c := range capacity.RowView(u) {
			if c <= 0 {
				continue
			}
			g.SetEdge(&flowEdge{from: nodes[u], to: nodes[v], flow: flows[v], capacity: c})
		}
	}

	b, err := dot.Marshal(g, "network", "", "\t")
	if err != nil {
		return err
	}
	if _, err = w.Write(append(b, '\n')); err != nil {
		return err
	}

	return nil
}

// dotID keeps left and right labels apart even when they coincide.
func dotID(net *builder.Network, node int) string {
	switch {
	case net.IsLeft(node):
		return "L" + strconv.Itoa(node)
	case net.IsRight(node):
		return "R" + strconv.Itoa(node)
	}
	return net.NodeLabel(node)
}
