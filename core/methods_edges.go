// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount,
//       plus filtered removals.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"cmp"
	"slices"
)

// AddEdge inserts the undirected edge id between from and to.
//
// Steps:
//  1. Reject loops when loops are disabled.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj; reject a reused ID (ErrEdgeExists).
//  4. Reject a parallel edge when multi-edges are disabled.
//  5. Store in g.edges and link adjacency in both directions.
//
// Complexity: O(1) amortized.
// Concurrency:
//   - Creates vertices outside muEdgeAdj; adjacency and edge catalog under muEdgeAdj.
func (g *Graph[ID]) AddEdge(id, from, to ID) error {
	if from == to && !g.opts.allowLoops {
		return ErrLoopNotAllowed
	}

	g.AddVertex(from)
	g.AddVertex(to)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.edges[id]; exists {
		return ErrEdgeExists
	}
	if !g.opts.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return ErrMultiEdgeNotAllowed
	}

	e := &Edge[ID]{ID: id, From: from, To: to}
	g.edges[id] = e
	g.link(e)

	return nil
}

// RemoveEdge deletes one edge and its mirror.
// Complexity: O(1).
// Concurrency: acquires muEdgeAdj write lock only.
func (g *Graph[ID]) RemoveEdge(id ID) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, id)
	g.unlink(e)

	return nil
}

// HasEdge reports whether at least one edge joins from and to.
// Symmetric: HasEdge(a,b) == HasEdge(b,a).
// Complexity: O(1).
func (g *Graph[ID]) HasEdge(from, to ID) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the cataloged edge with the given ID, or ErrEdgeNotFound.
//
// The returned *Edge must be treated as read-only by callers.
// Complexity: O(1).
func (g *Graph[ID]) GetEdge(id ID) (*Edge[ID], error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID asc.
// Complexity: O(E log E).
func (g *Graph[ID]) Edges() []*Edge[ID] {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge[ID], 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph[ID]) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// FilterEdges removes all edges for which keep returns false.
//
// Contract:
//   - keep is pure; it must not call back into g.
//
// Complexity: O(E).
// Concurrency: write lock on muEdgeAdj.
func (g *Graph[ID]) FilterEdges(keep func(*Edge[ID]) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	for id, e := range g.edges {
		if !keep(e) {
			g.unlink(e)
			delete(g.edges, id)
		}
	}
}

// link registers e in both adjacency directions. Caller holds muEdgeAdj.
func (g *Graph[ID]) link(e *Edge[ID]) {
	g.bucket(e.From, e.To)[e.ID] = struct{}{}
	if !e.IsLoop() {
		g.bucket(e.To, e.From)[e.ID] = struct{}{}
	}
}

// unlink removes e from both adjacency directions and prunes empty buckets.
// Caller holds muEdgeAdj.
func (g *Graph[ID]) unlink(e *Edge[ID]) {
	drop := func(from, to ID) {
		if m := g.adjacencyList[from][to]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[from], to)
			}
		}
	}
	drop(e.From, e.To)
	if !e.IsLoop() {
		drop(e.To, e.From)
	}
}

// bucket returns adjacencyList[from][to], allocating nested maps on demand.
// Caller holds muEdgeAdj.
func (g *Graph[ID]) bucket(from, to ID) map[ID]struct{} {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[ID]map[ID]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[ID]struct{})
	}

	return g.adjacencyList[from][to]
}

func sortEdges[ID cmp.Ordered](es []*Edge[ID]) {
	slices.SortFunc(es, func(a, b *Edge[ID]) int { return cmp.Compare(a.ID, b.ID) })
}
