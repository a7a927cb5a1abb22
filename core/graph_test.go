package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/cursorlist"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	g, err := core.New(4)
	s.Require().NoError(err)
	s.g = g
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) TestNewGraph() {
	require := require.New(s.T())
	require.Equal(4, s.g.Order())
	require.Equal(0, s.g.Size())
	require.Equal(core.Nil, s.g.Source())

	for v := 1; v <= 4; v++ {
		d, ok, err := s.g.Distance(v)
		require.NoError(err)
		require.False(ok)
		require.Equal(core.Infinity, d)

		p, ok, err := s.g.Parent(v)
		require.NoError(err)
		require.False(ok)
		require.Equal(core.Nil, p)
	}

	_, err := core.New(0)
	require.ErrorIs(err, core.ErrBadOrder)
	_, err = core.New(-3)
	require.ErrorIs(err, core.ErrBadOrder)
}

func (s *GraphSuite) TestAddEdgeKeepsListsSorted() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(1, 4))
	require.NoError(s.g.AddEdge(1, 2))
	require.NoError(s.g.AddEdge(3, 1))
	require.Equal(3, s.g.Size(), "one per AddEdge call")

	adj, err := s.g.Neighbors(1)
	require.NoError(err)
	require.Equal([]int{2, 3, 4}, adj)
	adj, _ = s.g.Neighbors(4)
	require.Equal([]int{1}, adj)

	ok, err := s.g.HasArc(2, 1)
	require.NoError(err)
	require.True(ok)
	ok, _ = s.g.HasArc(2, 3)
	require.False(ok)

	deg, err := s.g.OutDegree(1)
	require.NoError(err)
	require.Equal(3, deg)
}

func (s *GraphSuite) TestAddArcIsOneWay() {
	require := require.New(s.T())
	require.NoError(s.g.AddArc(2, 3))
	require.NoError(s.g.AddArc(2, 1))
	require.Equal(2, s.g.Size())

	adj, _ := s.g.Neighbors(2)
	require.Equal([]int{1, 3}, adj)
	adj, _ = s.g.Neighbors(3)
	require.Empty(adj)
}

func (s *GraphSuite) TestOutOfBounds() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddEdge(0, 1), core.ErrVertexOutOfBounds)
	require.ErrorIs(s.g.AddEdge(1, 5), core.ErrVertexOutOfBounds)
	require.ErrorIs(s.g.AddArc(5, 1), core.ErrVertexOutOfBounds)
	require.ErrorIs(s.g.BFS(0), core.ErrVertexOutOfBounds)
	require.ErrorIs(s.g.BFS(5), core.ErrVertexOutOfBounds)
	require.Equal(0, s.g.Size(), "failed adds do not count")

	_, _, err := s.g.Distance(5)
	require.ErrorIs(err, core.ErrVertexOutOfBounds)
	_, _, err = s.g.Parent(0)
	require.ErrorIs(err, core.ErrVertexOutOfBounds)
	_, err = s.g.Visited(-1)
	require.ErrorIs(err, core.ErrVertexOutOfBounds)
	_, err = s.g.Neighbors(9)
	require.ErrorIs(err, core.ErrVertexOutOfBounds)
	_, err = s.g.HasArc(1, 9)
	require.ErrorIs(err, core.ErrVertexOutOfBounds)

	require.NoError(s.g.BFS(1))
	_, _, err = s.g.Path(5)
	require.ErrorIs(err, core.ErrVertexOutOfBounds)
}

func (s *GraphSuite) TestClearIsIdempotent() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(1, 2))
	require.NoError(s.g.AddArc(3, 4))

	s.g.Clear()
	require.Equal(0, s.g.Size())
	for v := 1; v <= 4; v++ {
		adj, _ := s.g.Neighbors(v)
		require.Empty(adj)
	}
	s.g.Clear()
	require.Equal(0, s.g.Size())

	require.NoError(s.g.AddEdge(2, 3))
	adj, _ := s.g.Neighbors(3)
	require.Equal([]int{2}, adj)
}

func (s *GraphSuite) TestPathBeforeTraversal() {
	require := require.New(s.T())
	_, _, err := s.g.Path(1)
	require.ErrorIs(err, core.ErrNoSource)
	_, err = s.g.AppendPath(cursorlist.New(), 1)
	require.ErrorIs(err, core.ErrNoSource)
	_, err = s.g.AppendPath(nil, 1)
	require.ErrorIs(err, core.ErrNilList)
}

func (s *GraphSuite) TestCopyIsIndependent() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(1, 2))
	require.NoError(s.g.BFS(1))

	c := s.g.Copy()
	require.Equal(s.g.Size(), c.Size())
	require.Equal(core.Nil, c.Source(), "copy carries no traversal state")

	require.NoError(c.AddEdge(3, 4))
	adj, _ := s.g.Neighbors(3)
	require.Empty(adj, "edits to the copy leave g alone")
	require.Equal(2, c.Size())
	require.Equal(1, s.g.Size())
}

func (s *GraphSuite) TestTranspose() {
	require := require.New(s.T())
	require.NoError(s.g.AddArc(1, 3))
	require.NoError(s.g.AddArc(2, 3))
	require.NoError(s.g.AddArc(4, 3))
	require.NoError(s.g.AddEdge(1, 2))

	tr := s.g.Transpose()
	require.Equal(s.g.Size(), tr.Size())
	adj, _ := tr.Neighbors(3)
	require.Equal([]int{1, 2, 4}, adj)
	adj, _ = tr.Neighbors(1)
	require.Equal([]int{2}, adj)
	adj, _ = tr.Neighbors(2)
	require.Equal([]int{1}, adj)

	back := tr.Transpose()
	for v := 1; v <= 4; v++ {
		want, _ := s.g.Neighbors(v)
		got, _ := back.Neighbors(v)
		require.Equal(want, got, "vertex %d", v)
	}
}

func TestNilGraph(t *testing.T) {
	var g *core.Graph
	require.ErrorIs(t, g.AddEdge(1, 2), core.ErrNilGraph)
	require.ErrorIs(t, g.AddArc(1, 2), core.ErrNilGraph)
	require.ErrorIs(t, g.BFS(1), core.ErrNilGraph)
	require.ErrorIs(t, g.Dijkstra(1, core.WeightFunc(nil)), core.ErrNilGraph)
	_, _, err := g.Distance(1)
	require.ErrorIs(t, err, core.ErrNilGraph)
	_, _, err = g.Path(1)
	require.ErrorIs(t, err, core.ErrNilGraph)
	require.Equal(t, 0, g.Order())
	require.Nil(t, g.Copy())
	g.Clear()
}
