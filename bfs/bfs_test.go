// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/radialgrid/bfs"
	"github.com/katalvlaran/radialgrid/core"
)

// feederGraph builds
//
//	A ─1─ B ─2─ C ─3─ D
//	            │
//	            4
//	            │
//	            E
func feederGraph(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("1", "A", "B"))
	require.NoError(t, g.AddEdge("2", "B", "C"))
	require.NoError(t, g.AddEdge("3", "C", "D"))
	require.NoError(t, g.AddEdge("4", "C", "E"))

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[string](nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph[string]()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	g.AddVertex("A")
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth[string](-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Components[string](nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

// TestBFS_OrderDepthParent covers the full traversal bookkeeping.
func TestBFS_OrderDepthParent(t *testing.T) {
	res, err := bfs.BFS(feederGraph(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2, "D": 3, "E": 3}, res.Depth)
	assert.Equal(t, "C", res.Parent["E"])
	assert.Equal(t, "4", res.ParentEdge["E"])

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)

	edges, err := res.EdgePathTo("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "4"}, edges)

	edges, err = res.EdgePathTo("A")
	require.NoError(t, err)
	assert.Empty(t, edges)
}

// TestBFS_SkipEdge hides one line and checks the split.
func TestBFS_SkipEdge(t *testing.T) {
	g := feederGraph(t)
	res, err := bfs.BFS(g, "A", bfs.WithSkipEdge("2"))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, res.Order)
	assert.False(t, res.Visited("C"))

	_, err = res.PathTo("D")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
	_, err = res.EdgePathTo("D")
	assert.ErrorIs(t, err, bfs.ErrNoPath)

	// The graph itself still carries the edge.
	assert.True(t, g.HasEdge("B", "C"))
}

// TestBFS_FilterEdgeAndMaxDepth combines a predicate with a depth limit.
func TestBFS_FilterEdgeAndMaxDepth(t *testing.T) {
	g := feederGraph(t)
	res, err := bfs.BFS(g, "A",
		bfs.WithFilterEdge(func(e *core.Edge[string]) bool { return e.ID != "4" }),
		bfs.WithMaxDepth[string](2),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

// TestBFS_OnVisitAbort propagates hook errors.
func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	var seen []string
	_, err := bfs.BFS(feederGraph(t), "A", bfs.WithOnVisit(func(id string, _ int) error {
		seen = append(seen, id)
		if id == "C" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B", "C"}, seen)
}

// TestBFS_Cancelled returns the context error before visiting anything.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(feederGraph(t), "A", bfs.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestComponents_Split verifies component discovery with and without a hidden edge.
func TestComponents_Split(t *testing.T) {
	g := feederGraph(t)
	g.AddVertex("Z")

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C", "D", "E"}, {"Z"}}, comps)

	comps, err = bfs.Components(g, bfs.WithSkipEdge("2"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B"}, {"C", "D", "E"}, {"Z"}}, comps)
}
