// SPDX-License-Identifier: MIT

// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Degree).
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
//   - NeighborIDs() returns unique IDs sorted asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.

package core

import "slices"

// Neighbors returns all edges incident to the vertex id, sorted by Edge.ID asc.
//
// Neighborhood policy:
//   - Every incident edge appears exactly once; a self-loop appears once.
//   - Returned pointers reference live catalog edges (read-only by convention).
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d), d = number of incident edges.
func (g *Graph[ID]) Neighbors(id ID) ([]*Edge[ID], error) {
	// Same lock order as mutators so a vertex cannot vanish between
	// validation and the adjacency snapshot.
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge[ID]
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			if e := g.edges[eid]; e != nil {
				out = append(out, e)
			}
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted asc.
// A self-loop contributes id itself.
//
// Errors: propagates ErrVertexNotFound from Neighbors.
// Complexity: O(d log d).
func (g *Graph[ID]) NeighborIDs(id ID) ([]ID, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[ID]struct{}, len(edges))
	out := make([]ID, 0, len(edges))
	for _, e := range edges {
		nbr := e.Other(id)
		if _, dup := seen[nbr]; dup {
			continue
		}
		seen[nbr] = struct{}{}
		out = append(out, nbr)
	}
	slices.Sort(out)

	return out, nil
}

// Degree returns the number of edge endpoints at id.
// A self-loop counts twice, matching the handshake lemma sum(deg) == 2|E|.
//
// Errors: ErrVertexNotFound.
// Complexity: O(d).
func (g *Graph[ID]) Degree(id ID) (int, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}

	deg := 0
	for _, e := range edges {
		if e.IsLoop() {
			deg += 2
			continue
		}
		deg++
	}

	return deg, nil
}
