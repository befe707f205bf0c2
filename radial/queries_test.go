// SPDX-License-Identifier: MIT

package radial_test

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/radialgrid/radial"
)

// TestDownstreamVertices covers every line of the five-bus network.
func TestDownstreamVertices(t *testing.T) {
	n := mustFiveBus(t)

	cases := []struct {
		edge string
		want []string
	}{
		{"1", []string{"B", "C", "D", "E"}},
		{"2", []string{"C", "D", "E"}},
		{"3", []string{"D"}},
		{"4", []string{"E"}},
		{"5", []string{}}, // disabled
	}
	for _, tc := range cases {
		got, err := n.DownstreamVertices(tc.edge)
		require.NoError(t, err, "edge %s", tc.edge)
		assert.Equal(t, tc.want, got, "edge %s", tc.edge)
	}

	_, err := n.DownstreamVertices("9")
	assert.ErrorIs(t, err, radial.ErrUnknownEdge)
}

// TestAlternativeEdges covers success, empty results and both failure kinds.
func TestAlternativeEdges(t *testing.T) {
	n := mustFiveBus(t)

	cases := []struct {
		edge string
		want []string
	}{
		{"1", []string{}},    // A alone: nothing else touches it
		{"2", []string{"5"}}, // {A,B} | {C,D,E}
		{"3", []string{}},    // D is a leaf with a single line
		{"4", []string{"5"}}, // {E} picked up from B
	}
	for _, tc := range cases {
		got, err := n.AlternativeEdges(tc.edge)
		require.NoError(t, err, "edge %s", tc.edge)
		assert.Equal(t, tc.want, got, "edge %s", tc.edge)
	}

	_, err := n.AlternativeEdges("5")
	assert.ErrorIs(t, err, radial.ErrAlreadyDisabled)

	_, err = n.AlternativeEdges("9")
	assert.ErrorIs(t, err, radial.ErrUnknownEdge)
	assert.NotErrorIs(t, err, radial.ErrAlreadyDisabled)
}

// TestAlternativeEdges_TieSwitches uses a bus with two tie switches to
// neighbouring branches.
//
//	    0
//	 1/ |3 \5
//	 2  4   6
//	9|  ┊7┊8
//	10  (7: 2-4, 8: 4-6 disabled)
func TestAlternativeEdges_TieSwitches(t *testing.T) {
	n, err := radial.New(
		[]int{0, 2, 4, 6, 10},
		[]int{1, 3, 5, 7, 8, 9},
		[][2]int{{0, 2}, {0, 4}, {0, 6}, {2, 4}, {4, 6}, {2, 10}},
		[]bool{true, true, true, false, false, true},
		0,
	)
	require.NoError(t, err)

	want := map[int][]int{
		1: {7},
		3: {7, 8},
		5: {8},
		9: {},
	}
	for edge, alts := range want {
		got, err := n.AlternativeEdges(edge)
		require.NoError(t, err)
		assert.Equal(t, alts, got, "edge %d", edge)
	}

	down, err := n.DownstreamVertices(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 10}, down)
}

// TestQueries_Properties checks the structural guarantees on every enabled line.
func TestQueries_Properties(t *testing.T) {
	n, err := radial.New(
		[]int{1, 2, 3, 4, 5, 6, 7, 8},
		[]int{12, 23, 24, 15, 56, 57, 78, 34, 68, 48},
		[][2]int{{1, 2}, {2, 3}, {2, 4}, {1, 5}, {5, 6}, {5, 7}, {7, 8}, {3, 4}, {6, 8}, {4, 8}},
		[]bool{true, true, true, true, true, true, true, false, false, false},
		1,
	)
	require.NoError(t, err)
	require.Len(t, n.EnabledLines(), n.VertexCount()-1)

	for _, id := range n.EnabledLines() {
		down, err := n.DownstreamVertices(id)
		require.NoError(t, err)
		require.True(t, slices.IsSorted(down))
		assert.NotContains(t, down, n.Source(), "line %d", id)
		assert.NotEmpty(t, down, "line %d", id)

		line, err := n.Line(id)
		require.NoError(t, err)
		// exactly one endpoint of the opened line loses supply
		assert.NotEqual(t, slices.Contains(down, line.From), slices.Contains(down, line.To), "line %d", id)

		// downstream ∪ supplied = V, disjoint by construction of the complement
		inDown := make(map[int]bool, len(down))
		for _, v := range down {
			assert.False(t, inDown[v], "repeated vertex %d", v)
			inDown[v] = true
		}
		path, err := n.PathFromSource(line.From)
		require.NoError(t, err)
		assert.Equal(t, slices.Contains(path, id), inDown[line.From])

		alts, err := n.AlternativeEdges(id)
		require.NoError(t, err)
		require.True(t, slices.IsSorted(alts))
		for _, alt := range alts {
			l, err := n.Line(alt)
			require.NoError(t, err)
			assert.False(t, l.Enabled)
			assert.NotEqual(t, inDown[l.From], inDown[l.To], "alt %d for line %d", alt, id)
		}

		// idempotent
		again, err := n.AlternativeEdges(id)
		require.NoError(t, err)
		assert.Equal(t, alts, again)
		downAgain, err := n.DownstreamVertices(id)
		require.NoError(t, err)
		assert.Equal(t, down, downAgain)
	}

	// Swapping a line for one of its alternatives yields another valid tree.
	alts, err := n.AlternativeEdges(56)
	require.NoError(t, err)
	require.Equal(t, []int{68}, alts)
	swapped, err := radial.New(
		n.Vertices(),
		[]int{12, 23, 24, 15, 56, 57, 78, 34, 68, 48},
		[][2]int{{1, 2}, {2, 3}, {2, 4}, {1, 5}, {5, 6}, {5, 7}, {7, 8}, {3, 4}, {6, 8}, {4, 8}},
		[]bool{true, true, true, true, false, true, true, false, true, false},
		1,
	)
	require.NoError(t, err)
	path, err := swapped.PathFromSource(6)
	require.NoError(t, err)
	assert.Equal(t, []int{15, 57, 78, 68}, path)
}

// TestQueries_Concurrent runs both queries from many goroutines at once.
func TestQueries_Concurrent(t *testing.T) {
	n := mustFiveBus(t)

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				down, err := n.DownstreamVertices("2")
				assert.NoError(t, err)
				assert.Equal(t, []string{"C", "D", "E"}, down)

				alts, err := n.AlternativeEdges("4")
				assert.NoError(t, err)
				assert.Equal(t, []string{"5"}, alts)
			}
		}()
	}
	wg.Wait()
}
