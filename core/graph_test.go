package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma/core"
)

// TestNewGraph_Order verifies order validation and the empty-graph state.
func TestNewGraph_Order(t *testing.T) {
	_, err := core.NewGraph(0)
	assert.ErrorIs(t, err, core.ErrNonPositiveOrder)

	_, err = core.NewGraph(-3)
	assert.ErrorIs(t, err, core.ErrNonPositiveOrder)

	g, err := core.NewGraph(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.V())
	assert.Equal(t, 0, g.E())
	assert.Equal(t, 0, g.Degree(2))
}

// TestAddEdge_Sentinels covers range, loop and duplicate rejection.
func TestAddEdge_Sentinels(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(-1, 0), core.ErrVertexRange)
	assert.ErrorIs(t, g.AddEdge(0, 3), core.ErrVertexRange)
	assert.ErrorIs(t, g.AddEdge(1, 1), core.ErrSelfLoop)

	require.NoError(t, g.AddEdge(0, 1))
	assert.ErrorIs(t, g.AddEdge(0, 1), core.ErrDuplicateEdge)
	// The mirror direction is the same undirected edge.
	assert.ErrorIs(t, g.AddEdge(1, 0), core.ErrDuplicateEdge)
	assert.Equal(t, 1, g.E())
}

// TestAdjacency_BothViews checks that the slice and bitmap views agree.
func TestAdjacency_BothViews(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	edges := [][2]int{{0, 1}, {0, 2}, {1, 2}, {3, 4}}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0)) // undirected mirror
	assert.False(t, g.HasEdge(0, 3))
	assert.False(t, g.HasEdge(0, 5)) // out of range reports false

	assert.ElementsMatch(t, []int{1, 2}, g.Neighbors(0))
	assert.ElementsMatch(t, []int{0, 2}, g.Neighbors(1))
	assert.ElementsMatch(t, []int{4}, g.Neighbors(3))
	assert.Nil(t, g.Neighbors(7))

	assert.Equal(t, 2, g.Degree(0))
	assert.Equal(t, 2, g.Degree(2))
	assert.Equal(t, 1, g.Degree(4))
	assert.Equal(t, 4, g.E())
}

// TestNeighbors_Ascending verifies the ordered-view contract: neighbor
// slices come back ascending no matter the edge insertion order.
func TestNeighbors_Ascending(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{1, 3}, {0, 1}, {1, 2}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	assert.Equal(t, []int{0, 2, 3}, g.Neighbors(1))
	assert.Equal(t, []int{1}, g.Neighbors(0))
	assert.Equal(t, []int{1}, g.Neighbors(3))
}

// TestNeighbors_ReturnsCopy verifies callers cannot corrupt adjacency.
func TestNeighbors_ReturnsCopy(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))

	nbrs := g.Neighbors(0)
	nbrs[0] = 99
	assert.ElementsMatch(t, []int{1, 2}, g.Neighbors(0))
}

// TestClone_Independence verifies a clone shares no mutable state.
func TestClone_Independence(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	c := g.Clone()
	require.NoError(t, c.AddEdge(2, 3))

	assert.Equal(t, 1, g.E())
	assert.Equal(t, 2, c.E())
	assert.False(t, g.HasEdge(2, 3))
	assert.True(t, c.HasEdge(0, 1))
}
