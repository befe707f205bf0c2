// SPDX-License-Identifier: MIT

// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending (cmp.Compare).
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj.

package core

import "slices"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Under muVert write lock, check presence; if missing, register it.
//   - Stage 2: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Complexity: O(1) amortized.
func (g *Graph[ID]) AddVertex(id ID) {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = struct{}{}

	g.muEdgeAdj.Lock()
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[ID]map[ID]struct{})
	}
	g.muEdgeAdj.Unlock()
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1).
func (g *Graph[ID]) HasVertex(id ID) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
//
// The returned slice is a fresh copy; callers may mutate it.
// Complexity: O(V log V).
func (g *Graph[ID]) Vertices() []ID {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]ID, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph[ID]) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
