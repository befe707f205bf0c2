// SPDX-License-Identifier: MIT

// Package core defines the central Graph and Edge types together with the
// sentinel errors and construction options.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so a built graph can be read from many
// goroutines at once.
package core

import (
	"cmp"
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates AddEdge was called with an edge ID already in the catalog.
	ErrEdgeExists = errors.New("core: edge ID already exists")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between two vertices.
//
// From and To carry the endpoints in the order the caller supplied them;
// the graph treats them symmetrically.
type Edge[ID cmp.Ordered] struct {
	// ID uniquely identifies this edge in the Graph.
	ID ID

	// From is the first endpoint.
	From ID

	// To is the second endpoint.
	To ID
}

// Other returns the endpoint of e opposite to v.
// For a self-loop, Other returns v itself.
func (e *Edge[ID]) Other(v ID) ID {
	if e.From == v {
		return e.To
	}

	return e.From
}

// IsLoop reports whether both endpoints coincide.
func (e *Edge[ID]) IsLoop() bool { return e.From == e.To }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(o *graphOptions)

// graphOptions is the non-generic configuration shared by all Graph instantiations.
type graphOptions struct {
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(o *graphOptions) { o.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(o *graphOptions) { o.allowLoops = true }
}

// Graph is the core in-memory undirected graph.
//
// muVert protects the vertex catalog; muEdgeAdj protects the edge catalog and
// adjacencyList. Lock order is always muVert -> muEdgeAdj.
type Graph[ID cmp.Ordered] struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	opts graphOptions

	vertices map[ID]struct{}
	edges    map[ID]*Edge[ID]

	// adjacencyList[from][to][edgeID] = struct{}{}, mirrored for to->from.
	adjacencyList map[ID]map[ID]map[ID]struct{}
}

// NewGraph creates an empty Graph. By default, no loops and no multi-edges.
// Complexity: O(1)
func NewGraph[ID cmp.Ordered](opts ...GraphOption) *Graph[ID] {
	g := &Graph[ID]{
		vertices:      make(map[ID]struct{}),
		edges:         make(map[ID]*Edge[ID]),
		adjacencyList: make(map[ID]map[ID]map[ID]struct{}),
	}
	for _, opt := range opts {
		opt(&g.opts)
	}

	return g
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph[ID]) Looped() bool { return g.opts.allowLoops }

// Multigraph reports whether parallel edges are permitted by policy.
func (g *Graph[ID]) Multigraph() bool { return g.opts.allowMulti }
