package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowmatch/builder"
)

func TestBuildTwoLeft(t *testing.T) {
	b := builder.NewNetworkBuilder()
	require.NoError(t, b.Add("A", "X", "Y"))
	require.NoError(t, b.Add("B", "X"))

	net, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 6, net.Size())
	require.Equal(t, 0, net.Source())
	require.Equal(t, 5, net.Sink())
	require.Equal(t, 2, net.LeftCount())
	require.Equal(t, 2, net.RightCount())

	want := [][]int64{
		{0, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 0},
		{0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0},
	}
	require.Equal(t, want, net.Capacity())
}

func TestNodeLabels(t *testing.T) {
	b := builder.NewNetworkBuilder()
	require.NoError(t, b.Add("B", "Y"))
	require.NoError(t, b.Add("A", "X", "Y"))
	net, err := b.Build()
	require.NoError(t, err)

	// first-seen order: B=1, A=2, Y=3, X=4
	for label, node := range map[string]int{"B": 1, "A": 2} {
		got, ok := net.LeftNode(label)
		require.True(t, ok)
		require.Equal(t, node, got)
		l, ok := net.LeftLabel(node)
		require.True(t, ok)
		require.Equal(t, label, l)
		require.True(t, net.IsLeft(node))
		require.False(t, net.IsRight(node))
	}
	for label, node := range map[string]int{"Y": 3, "X": 4} {
		got, ok := net.RightNode(label)
		require.True(t, ok)
		require.Equal(t, node, got)
		r, ok := net.RightLabel(node)
		require.True(t, ok)
		require.Equal(t, label, r)
		require.True(t, net.IsRight(node))
	}

	_, ok := net.LeftLabel(0)
	require.False(t, ok)
	_, ok = net.RightLabel(net.Sink())
	require.False(t, ok)
	_, ok = net.LeftNode("X")
	require.False(t, ok)

	require.Equal(t, "source", net.NodeLabel(0))
	require.Equal(t, "sink", net.NodeLabel(5))
	require.Equal(t, "A", net.NodeLabel(2))
	require.Equal(t, "X", net.NodeLabel(4))
	require.Equal(t, "", net.NodeLabel(42))

	require.Equal(t, []string{"B", "A"}, net.LeftLabels())
	require.Equal(t, []string{"Y", "X"}, net.RightLabels())
}

func TestAddMergesDuplicateLeft(t *testing.T) {
	b := builder.NewNetworkBuilder()
	require.NoError(t, b.Add("A", "X"))
	require.NoError(t, b.Add(" A ", "Y", "X", " "))

	require.Equal(t, 1, b.LeftCount())
	require.Equal(t, 2, b.RightCount())
	rights, ok := b.Eligible("A")
	require.True(t, ok)
	require.Equal(t, []string{"X", "Y"}, rights)

	_, ok = b.Eligible("missing")
	require.False(t, ok)
}

func TestAddEmptyLabel(t *testing.T) {
	b := builder.NewNetworkBuilder()
	require.ErrorIs(t, b.Add("   ", "X"), builder.ErrEmptyLabel)
	require.Equal(t, 0, b.LeftCount())
}

func TestBuildEmptyRelation(t *testing.T) {
	net, err := builder.NewNetworkBuilder().Build()
	require.NoError(t, err)
	require.Equal(t, 2, net.Size())
	require.Equal(t, 0, net.Source())
	require.Equal(t, 1, net.Sink())
	require.Zero(t, net.LeftCount())
	require.Zero(t, net.RightCount())
	require.Equal(t, [][]int64{{0, 0}, {0, 0}}, net.Capacity())
	require.False(t, net.IsRight(0))
	require.Equal(t, "sink", net.NodeLabel(1))
}

func TestBuildNoEligible(t *testing.T) {
	b := builder.NewNetworkBuilder()
	require.NoError(t, b.Add("A"))
	net, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 3, net.Size())
	require.Equal(t, [][]int64{{0, 1, 0}, {0, 0, 0}, {0, 0, 0}}, net.Capacity())
}

func TestBuildersAreIsolated(t *testing.T) {
	first := builder.NewNetworkBuilder()
	require.NoError(t, first.Add("A", "X"))
	second := builder.NewNetworkBuilder()
	require.NoError(t, second.Add("Z", "Q"))

	n1, err := first.Build()
	require.NoError(t, err)
	n2, err := second.Build()
	require.NoError(t, err)

	_, ok := n2.LeftNode("A")
	require.False(t, ok)
	node, ok := n2.LeftNode("Z")
	require.True(t, ok)
	require.Equal(t, 1, node)
	require.Equal(t, n1.Capacity(), n2.Capacity())
}

func TestNetworkIsSnapshot(t *testing.T) {
	b := builder.NewNetworkBuilder()
	require.NoError(t, b.Add("A", "X"))
	net, err := b.Build()
	require.NoError(t, err)

	require.NoError(t, b.Add("B", "Y"))
	require.Equal(t, 4, net.Size())

	c := net.Capacity()
	c[0][1] = 99
	require.Equal(t, int64(1), net.Capacity()[0][1])

	m := net.CapacityMatrix()
	require.NoError(t, m.Set(0, 1, 7))
	v, err := net.CapacityMatrix().At(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), v)
}
