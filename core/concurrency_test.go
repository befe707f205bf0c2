// SPDX-License-Identifier: MIT
// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/radialgrid/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls with distinct IDs all land.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph[int]()
	const num = 200
	var wg sync.WaitGroup
	errs := make([]error, num)

	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs[id] = g.AddEdge(id, 0, id+1)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	nbrs, err := g.NeighborIDs(0)
	require.NoError(t, err)
	assert.Len(t, nbrs, num)
}

// TestConcurrentReadersWithClone mixes readers on g with writers on private clones.
func TestConcurrentReadersWithClone(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge(i, i, i+1))
	}

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func(r int) {
			defer wg.Done()
			local := g.Clone()
			_ = local.RemoveEdge(r)
			_, _ = g.Neighbors(r)
			_ = g.Edges()
		}(r)
	}
	wg.Wait()

	assert.Equal(t, 50, g.EdgeCount())
}
