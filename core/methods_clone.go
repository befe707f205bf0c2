// SPDX-License-Identifier: MIT

// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
// Complexity: O(V).
func (g *Graph[ID]) CloneEmpty() *Graph[ID] {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	clone := &Graph[ID]{
		opts:          g.opts,
		vertices:      make(map[ID]struct{}, len(g.vertices)),
		edges:         make(map[ID]*Edge[ID]),
		adjacencyList: make(map[ID]map[ID]map[ID]struct{}, len(g.vertices)),
	}
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.adjacencyList[id] = make(map[ID]map[ID]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges, and adjacency.
//
// Edge structs are duplicated, so removing or filtering edges on the clone
// never affects g.
// Complexity: O(V + E).
func (g *Graph[ID]) Clone() *Graph[ID] {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for id, e := range g.edges {
		ne := &Edge[ID]{ID: id, From: e.From, To: e.To}
		clone.edges[id] = ne
		clone.link(ne)
	}

	return clone
}
