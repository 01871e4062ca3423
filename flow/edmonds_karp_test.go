package flow_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowmatch/flow"
	"github.com/katalvlaran/flowmatch/matrix"
)

// EdmondsKarpSuite groups tests for the Edmonds–Karp engine.
type EdmondsKarpSuite struct {
	suite.Suite
}

// requireFlow fails the test if got differs from want, printing a diff.
func (s *EdmondsKarpSuite) requireFlow(want, got [][]int64) {
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Fatalf("flow matrix mismatch (-want +got):\n%s", diff)
	}
}

// TestSingleEdge: 0→1 (cap=1) => maxFlow = 1.
func (s *EdmondsKarpSuite) TestSingleEdge() {
	f, err := flow.New([][]int64{{0, 1}, {0, 0}}, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(1), f.MaxFlow())
	require.Equal(s.T(), 1, f.Augmentations())
	s.requireFlow([][]int64{{0, 1}, {0, 0}}, f.FlowGraph())
}

// TestMultiPath: two routes into the sink => flow sums them (3 + 2).
func (s *EdmondsKarpSuite) TestMultiPath() {
	// 0=A, 1=B, 2=C: A→B(3), A→C(4), C→B(2)
	f, err := flow.New([][]int64{
		{0, 3, 4},
		{0, 0, 0},
		{0, 2, 0},
	}, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), f.MaxFlow())
}

// TestCancellation covers the A→{X,Y}, B→{X} reduction: the second path
// must cancel A→X so that both left nodes are matched.
func (s *EdmondsKarpSuite) TestCancellation() {
	// 0=src 1=A 2=B 3=X 4=Y 5=sink
	capacity := [][]int64{
		{0, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 0},
		{0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0},
	}
	f, err := flow.New(capacity, 0, 5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), f.MaxFlow())
	require.Equal(s.T(), 2, f.Augmentations())
	s.requireFlow([][]int64{
		{0, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 0},
		{0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0},
	}, f.FlowGraph())
}

// TestReferenceNetworks exercises small weighted networks with known values.
func (s *EdmondsKarpSuite) TestReferenceNetworks() {
	cases := []struct {
		name         string
		graph        [][]int64
		source, sink int
		want         int64
	}{
		{"triangle_to_1", [][]int64{{0, 1, 1}, {0, 0, 1}, {0, 0, 0}}, 0, 1, 1},
		{"triangle_to_2", [][]int64{{0, 1, 1}, {0, 0, 1}, {0, 0, 0}}, 0, 2, 2},
		{"triangle_from_1", [][]int64{{0, 1, 1}, {0, 0, 1}, {0, 0, 0}}, 1, 2, 1},
		{"diamond", [][]int64{{0, 1, 2, 0}, {0, 0, 0, 2}, {0, 1, 0, 1}, {0, 0, 0, 0}}, 0, 3, 3},
		{"diamond_from_2", [][]int64{{0, 1, 2, 0}, {0, 0, 0, 2}, {0, 1, 0, 1}, {0, 0, 0, 0}}, 2, 3, 2},
		{"wide", [][]int64{{0, 100, 100, 0}, {0, 0, 0, 101}, {0, 1, 0, 99}, {0, 0, 0, 0}}, 0, 3, 200},
		{"disconnected", [][]int64{{0, 0, 0}, {0, 0, 5}, {0, 0, 0}}, 0, 2, 0},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			f, err := flow.New(tc.graph, tc.source, tc.sink)
			require.NoError(s.T(), err)
			require.Equal(s.T(), tc.want, f.MaxFlow())
			requireFeasible(s.T(), tc.graph, f.FlowGraph(), tc.source, tc.sink)
		})
	}
}

// TestInvalidNetwork checks every construction-time rejection.
func (s *EdmondsKarpSuite) TestInvalidNetwork() {
	cases := []struct {
		name         string
		graph        [][]int64
		source, sink int
		want         error
	}{
		{"nil", nil, 0, 1, flow.ErrNilGraph},
		{"empty", [][]int64{}, 0, 1, flow.ErrNilGraph},
		{"ragged", [][]int64{{0, 1}, {0}}, 0, 1, flow.ErrNonSquare},
		{"rectangular", [][]int64{{0, 1, 0}, {0, 0, 0}}, 0, 1, flow.ErrNonSquare},
		{"source_negative", [][]int64{{0, 1}, {0, 0}}, -1, 1, flow.ErrSourceOutOfRange},
		{"source_too_big", [][]int64{{0, 1}, {0, 0}}, 2, 1, flow.ErrSourceOutOfRange},
		{"sink_too_big", [][]int64{{0, 1}, {0, 0}}, 0, 2, flow.ErrSinkOutOfRange},
		{"source_is_sink", [][]int64{{0, 1}, {0, 0}}, 1, 1, flow.ErrSourceIsSink},
		{"negative", [][]int64{{0, -1}, {0, 0}}, 0, 1, flow.ErrNegativeCapacity},
		{"antiparallel", [][]int64{{0, 1}, {1, 0}}, 0, 1, flow.ErrAntiparallel},
		{"self_loop", [][]int64{{0, 1}, {0, 3}}, 0, 1, flow.ErrAntiparallel},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			f, err := flow.New(tc.graph, tc.source, tc.sink)
			require.Nil(s.T(), f)
			require.ErrorIs(s.T(), err, tc.want)
			require.ErrorIs(s.T(), err, flow.ErrInvalidNetwork)
		})
	}
}

// TestCapacityErrorDetails checks the structured payload of CapacityError.
func (s *EdmondsKarpSuite) TestCapacityErrorDetails() {
	_, err := flow.New([][]int64{{0, 0, 0}, {0, 0, 0}, {0, -4, 0}}, 0, 1)
	var ce flow.CapacityError
	require.True(s.T(), errors.As(err, &ce), "error must be CapacityError")
	require.Equal(s.T(), 2, ce.From)
	require.Equal(s.T(), 1, ce.To)
	require.Equal(s.T(), int64(-4), ce.Cap)
}

// TestNewFromMatrix mirrors New for *matrix.Dense input.
func (s *EdmondsKarpSuite) TestNewFromMatrix() {
	m, err := matrix.FromRows([][]int64{{0, 2, 0}, {0, 0, 3}, {0, 0, 0}})
	require.NoError(s.T(), err)

	f, err := flow.NewFromMatrix(m, 0, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), f.MaxFlow())
	require.Equal(s.T(), 3, f.Size())
	require.Equal(s.T(), 0, f.Source())
	require.Equal(s.T(), 2, f.Sink())

	_, err = flow.NewFromMatrix(nil, 0, 1)
	require.ErrorIs(s.T(), err, flow.ErrNilGraph)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(s.T(), err)
	_, err = flow.NewFromMatrix(rect, 0, 1)
	require.ErrorIs(s.T(), err, flow.ErrNonSquare)
}

// TestInputIsCopied ensures the engine does not alias caller storage.
func (s *EdmondsKarpSuite) TestInputIsCopied() {
	g := [][]int64{{0, 1}, {0, 0}}
	f, err := flow.New(g, 0, 1)
	require.NoError(s.T(), err)

	g[0][1] = 50
	fg := f.FlowGraph()
	fg[0][1] = 7
	fm := f.FlowMatrix()
	require.NoError(s.T(), fm.Set(0, 1, 9))

	v, err := f.FlowAt(0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(1), v)
}

// TestIdempotent re-runs the same network and expects identical results.
func (s *EdmondsKarpSuite) TestIdempotent() {
	g := [][]int64{{0, 1, 2, 0}, {0, 0, 0, 2}, {0, 1, 0, 1}, {0, 0, 0, 0}}
	first, err := flow.New(g, 0, 3)
	require.NoError(s.T(), err)
	second, err := flow.New(g, 0, 3)
	require.NoError(s.T(), err)

	require.Equal(s.T(), first.MaxFlow(), second.MaxFlow())
	s.requireFlow(first.FlowGraph(), second.FlowGraph())
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}
