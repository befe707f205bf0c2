// SPDX-License-Identifier: MIT

// File: network.go
// Role: Network type and the validating constructor (Topology Validator).
// Determinism:
//   - Validation order is fixed; the first failing check is reported.
// Concurrency:
//   - A *Network is read-only once New returns.

package radial

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/radialgrid/bfs"
	"github.com/katalvlaran/radialgrid/core"
	"github.com/katalvlaran/radialgrid/dfs"
)

// Line is one edge of the network as supplied at construction.
type Line[ID cmp.Ordered] struct {
	ID      ID
	From    ID
	To      ID
	Enabled bool
}

// Network is a validated radial network: the enabled lines form a spanning
// tree over all vertices, rooted at the source.
type Network[ID cmp.Ordered] struct {
	source   ID
	vertices []ID            // sorted
	enabled  map[ID]bool     // edge ID → enabled flag
	all      *core.Graph[ID] // every line, enabled or not
	op       *core.Graph[ID] // operational subgraph: enabled lines only
}

// New validates the raw definition of a network and returns a ready-to-query
// *Network. vertices, edgeIDs, pairs and enabled follow the parallel-slice
// layout of power-grid input tables: index i of edgeIDs, pairs and enabled
// describes the same line.
//
// Checks run in this order and the first violation is returned:
//  1. duplicate vertex or edge ID                 → ErrDuplicateIdentifier
//  2. len(pairs) != len(edgeIDs), or two edges
//     joining the same unordered pair             → ErrLengthMismatch
//  3. endpoint not among vertices                 → ErrUnknownVertex
//  4. len(enabled) != len(edgeIDs)                → ErrLengthMismatch
//  5. source not among vertices                   → ErrUnknownVertex
//  6. enabled lines do not reach every vertex     → ErrDisconnected
//  7. enabled lines contain a cycle               → ErrCyclePresent
//
// No partial Network is returned on failure. The input slices are copied.
//
// Complexity: O((V + E)·log(V + E)).
func New[ID cmp.Ordered](vertices, edgeIDs []ID, pairs [][2]ID, enabled []bool, source ID) (*Network[ID], error) {
	if err := checkUnique(vertices, edgeIDs); err != nil {
		return nil, err
	}
	if err := checkPairs(edgeIDs, pairs); err != nil {
		return nil, err
	}
	known := make(map[ID]struct{}, len(vertices))
	for _, v := range vertices {
		known[v] = struct{}{}
	}
	for i, p := range pairs {
		for _, v := range p {
			if _, ok := known[v]; !ok {
				return nil, fmt.Errorf("%w: %v (endpoint of edge %v)", ErrUnknownVertex, v, edgeIDs[i])
			}
		}
	}
	if len(enabled) != len(edgeIDs) {
		return nil, fmt.Errorf("%w: %d enabled flags for %d edges", ErrLengthMismatch, len(enabled), len(edgeIDs))
	}
	if _, ok := known[source]; !ok {
		return nil, fmt.Errorf("%w: source %v", ErrUnknownVertex, source)
	}

	n := &Network[ID]{
		source:   source,
		vertices: slices.Clone(vertices),
		enabled:  make(map[ID]bool, len(edgeIDs)),
		all:      core.NewGraph[ID](core.WithLoops()),
	}
	slices.Sort(n.vertices)
	for _, v := range n.vertices {
		n.all.AddVertex(v)
	}
	for i, id := range edgeIDs {
		// Uniqueness of IDs and pairs was checked above.
		if err := n.all.AddEdge(id, pairs[i][0], pairs[i][1]); err != nil {
			return nil, fmt.Errorf("radial: add edge %v: %w", id, err)
		}
		n.enabled[id] = enabled[i]
	}
	n.op = n.all.Clone()
	n.op.FilterEdges(func(e *core.Edge[ID]) bool { return n.enabled[e.ID] })

	if err := n.checkSpanningTree(); err != nil {
		return nil, err
	}

	return n, nil
}

// checkUnique enforces pairwise-distinct vertex IDs and edge IDs.
func checkUnique[ID cmp.Ordered](vertices, edgeIDs []ID) error {
	seen := make(map[ID]struct{}, len(vertices))
	for _, v := range vertices {
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: vertex %v", ErrDuplicateIdentifier, v)
		}
		seen[v] = struct{}{}
	}

	seen = make(map[ID]struct{}, len(edgeIDs))
	for _, e := range edgeIDs {
		if _, dup := seen[e]; dup {
			return fmt.Errorf("%w: edge %v", ErrDuplicateIdentifier, e)
		}
		seen[e] = struct{}{}
	}

	return nil
}

// checkPairs enforces one pair per edge and no two edges over the same
// unordered pair of vertices.
func checkPairs[ID cmp.Ordered](edgeIDs []ID, pairs [][2]ID) error {
	if len(pairs) != len(edgeIDs) {
		return fmt.Errorf("%w: %d vertex pairs for %d edges", ErrLengthMismatch, len(pairs), len(edgeIDs))
	}

	seen := make(map[[2]ID]ID, len(pairs))
	for i, p := range pairs {
		key := p
		if cmp.Less(key[1], key[0]) {
			key[0], key[1] = key[1], key[0]
		}
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("%w: edges %v and %v both join %v and %v",
				ErrLengthMismatch, prev, edgeIDs[i], key[0], key[1])
		}
		seen[key] = edgeIDs[i]
	}

	return nil
}

// checkSpanningTree verifies the operational subgraph is connected, then acyclic.
func (n *Network[ID]) checkSpanningTree() error {
	res, err := bfs.BFS(n.op, n.source)
	if err != nil {
		return fmt.Errorf("radial: connectivity scan: %w", err)
	}
	if len(res.Order) != len(n.vertices) {
		islands, err := n.islands(res)
		if err != nil {
			return err
		}

		return fmt.Errorf("%w: vertex %v unreachable from source %v (%d of %d reached, isolated groups %v)",
			ErrDisconnected, islands[0][0], n.source, len(res.Order), len(n.vertices), islands)
	}

	c, found, err := dfs.FindCycle(n.op)
	if err != nil {
		return fmt.Errorf("radial: cycle scan: %w", err)
	}
	if found {
		return fmt.Errorf("%w: %s closed by edge %v", ErrCyclePresent, c, c.ClosingEdge())
	}

	return nil
}

// islands lists the connected groups of vertices the source walk res did not
// reach, each sorted, ordered by their smallest vertex.
func (n *Network[ID]) islands(res *bfs.Result[ID]) ([][]ID, error) {
	comps, err := bfs.Components(n.op)
	if err != nil {
		return nil, fmt.Errorf("radial: component scan: %w", err)
	}

	out := comps[:0]
	for _, c := range comps {
		if !res.Visited(c[0]) {
			out = append(out, c)
		}
	}

	return out, nil
}
