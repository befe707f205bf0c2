// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/radialgrid/core"
	"github.com/katalvlaran/radialgrid/dfs"
)

// TestFindCycle_NilGraph verifies the nil guard.
func TestFindCycle_NilGraph(t *testing.T) {
	_, found, err := dfs.FindCycle[string](nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	assert.False(t, found)

	_, err = dfs.HasCycle[int](nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestFindCycle_Tree ensures a tree plus an isolated vertex is cycle-free.
func TestFindCycle_Tree(t *testing.T) {
	g := core.NewGraph[string]()
	// A─B─C─D, C─E, isolated Z
	require.NoError(t, g.AddEdge("1", "A", "B"))
	require.NoError(t, g.AddEdge("2", "B", "C"))
	require.NoError(t, g.AddEdge("3", "C", "D"))
	require.NoError(t, g.AddEdge("4", "C", "E"))
	g.AddVertex("Z")

	c, found, err := dfs.FindCycle(g)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, c)
}

// TestFindCycle_Triangle covers the basic back edge.
func TestFindCycle_Triangle(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("e1", "A", "B"))
	require.NoError(t, g.AddEdge("e2", "B", "C"))
	require.NoError(t, g.AddEdge("e3", "C", "A"))

	c, found, err := dfs.FindCycle(g)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"A", "B", "C", "A"}, c.Vertices)
	assert.Equal(t, []string{"e1", "e2", "e3"}, c.Edges)
	assert.Equal(t, "e3", c.ClosingEdge())
	assert.Equal(t, "A-B-C-A", c.String())
}

// TestFindCycle_ParallelEdges flags two distinct edges between the same pair.
func TestFindCycle_ParallelEdges(t *testing.T) {
	g := core.NewGraph[int](core.WithMultiEdges())
	require.NoError(t, g.AddEdge(1, 10, 20))
	require.NoError(t, g.AddEdge(2, 20, 10))

	c, found, err := dfs.FindCycle(g)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []int{10, 20, 10}, c.Vertices)
	assert.Equal(t, []int{1, 2}, c.Edges)
}

// TestFindCycle_SelfLoop flags a loop as a one-edge cycle.
func TestFindCycle_SelfLoop(t *testing.T) {
	g := core.NewGraph[string](core.WithLoops())
	require.NoError(t, g.AddEdge("1", "A", "B"))
	require.NoError(t, g.AddEdge("2", "B", "B"))

	c, found, err := dfs.FindCycle(g)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"B", "B"}, c.Vertices)
	assert.Equal(t, []string{"2"}, c.Edges)
}

// TestFindCycle_SecondComponent finds a cycle outside the first tree.
func TestFindCycle_SecondComponent(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("1", "A", "B"))
	// four-node cycle W─X─Y─Z─W
	require.NoError(t, g.AddEdge("2", "W", "X"))
	require.NoError(t, g.AddEdge("3", "X", "Y"))
	require.NoError(t, g.AddEdge("4", "Y", "Z"))
	require.NoError(t, g.AddEdge("5", "Z", "W"))

	has, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.True(t, has)

	c, _, err := dfs.FindCycle(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"W", "X", "Y", "Z", "W"}, c.Vertices)
	assert.Equal(t, "5", c.ClosingEdge())
}

// TestFindCycle_LongChain checks the explicit stack on a deep path.
func TestFindCycle_LongChain(t *testing.T) {
	g := core.NewGraph[int]()
	const n = 100000
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(i, i, i+1))
	}
	has, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, g.AddEdge(n, n, 0))
	c, found, err := dfs.FindCycle(g)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, c.Edges, n+1)
}
