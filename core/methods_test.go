// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/radialgrid/core"
)

// TestGraph_AddVertexIdempotent ensures repeated AddVertex calls do not change the count.
func TestGraph_AddVertexIdempotent(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddVertex("A")
	g.AddVertex("A")
	g.AddVertex("B")

	assert.Equal(t, 2, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("Z"))
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
}

// TestGraph_AddEdgeAutoAddsVertices checks endpoint creation and symmetric membership.
func TestGraph_AddEdgeAutoAddsVertices(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(10, 1, 2))

	assert.Equal(t, []int{1, 2}, g.Vertices())
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 1))
	assert.False(t, g.HasEdge(1, 3))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestGraph_AddEdgeConstraints covers duplicate IDs, loops and parallel edges.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("e1", "A", "B"))

	assert.ErrorIs(t, g.AddEdge("e1", "B", "C"), core.ErrEdgeExists)
	assert.ErrorIs(t, g.AddEdge("e2", "B", "A"), core.ErrMultiEdgeNotAllowed)
	assert.ErrorIs(t, g.AddEdge("e3", "C", "C"), core.ErrLoopNotAllowed)

	multi := core.NewGraph[string](core.WithMultiEdges(), core.WithLoops())
	require.NoError(t, multi.AddEdge("e1", "A", "B"))
	require.NoError(t, multi.AddEdge("e2", "B", "A"))
	require.NoError(t, multi.AddEdge("e3", "C", "C"))
	assert.True(t, multi.Multigraph())
	assert.True(t, multi.Looped())
	assert.Equal(t, 3, multi.EdgeCount())
}

// TestGraph_RemoveEdge verifies adjacency cleanup on both mirrors.
func TestGraph_RemoveEdge(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("e1", "A", "B"))
	require.NoError(t, g.AddEdge("e2", "B", "C"))

	require.NoError(t, g.RemoveEdge("e1"))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.ErrorIs(t, g.RemoveEdge("e1"), core.ErrEdgeNotFound)

	nbrs, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, nbrs)

	// Vertices survive edge removal.
	assert.True(t, g.HasVertex("A"))
}

// TestGraph_GetEdgeAndOther checks lookup and endpoint helpers.
func TestGraph_GetEdgeAndOther(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("e1", "A", "B"))

	e, err := g.GetEdge("e1")
	require.NoError(t, err)
	assert.Equal(t, "B", e.Other("A"))
	assert.Equal(t, "A", e.Other("B"))
	assert.False(t, e.IsLoop())

	_, err = g.GetEdge("missing")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestGraph_NeighborsSorted anchors deterministic ordering by edge ID and vertex ID.
func TestGraph_NeighborsSorted(t *testing.T) {
	g := core.NewGraph[int](core.WithLoops())
	require.NoError(t, g.AddEdge(30, 1, 4))
	require.NoError(t, g.AddEdge(10, 1, 3))
	require.NoError(t, g.AddEdge(20, 2, 1))
	require.NoError(t, g.AddEdge(40, 1, 1))

	edges, err := g.Neighbors(1)
	require.NoError(t, err)
	ids := make([]int, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int{10, 20, 30, 40}, ids)

	nbrs, err := g.NeighborIDs(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, nbrs)

	deg, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 5, deg, "self-loop counts twice")

	_, err = g.Neighbors(99)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree(99)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_EdgesSorted verifies Edges() ordering independent of insertion order.
func TestGraph_EdgesSorted(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("c", "X", "Y"))
	require.NoError(t, g.AddEdge("a", "Y", "Z"))
	require.NoError(t, g.AddEdge("b", "Z", "W"))

	var ids []string
	for _, e := range g.Edges() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

// TestGraph_FilterEdges keeps only edges passing the predicate.
func TestGraph_FilterEdges(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 1; i <= 5; i++ {
		require.NoError(t, g.AddEdge(i, i, i+1))
	}
	g.FilterEdges(func(e *core.Edge[int]) bool { return e.ID%2 == 1 })

	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 3))
	assert.False(t, g.HasEdge(3, 2))
	assert.Equal(t, 6, g.VertexCount(), "filtering never drops vertices")
}

// TestGraph_CloneIsolation ensures clones are deep and independent.
func TestGraph_CloneIsolation(t *testing.T) {
	g := core.NewGraph[string](core.WithLoops())
	require.NoError(t, g.AddEdge("e1", "A", "B"))
	require.NoError(t, g.AddEdge("e2", "B", "C"))
	g.AddVertex("D")

	clone := g.Clone()
	require.NoError(t, clone.RemoveEdge("e1"))
	require.NoError(t, clone.AddEdge("e3", "C", "C"))

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("C", "C"))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, g.Vertices(), clone.Vertices())

	empty := g.CloneEmpty()
	assert.Equal(t, 0, empty.EdgeCount())
	assert.Equal(t, 4, empty.VertexCount())
	assert.True(t, empty.Looped())
}
