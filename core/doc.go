// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory undirected Graph that every
// other radialgrid package traverses.
//
// A Graph G = (V,E) is generic over a single ordered identifier type
// (ID cmp.Ordered) shared by vertices and edges, so the same store serves
// integer bus/line ids coming from a power-grid model and string ids coming
// from hand-written network files.
//
// Behavior:
//
//   - Undirected edges only; every edge is mirrored in the adjacency map:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Edge IDs are caller-supplied and must be unique (ErrEdgeExists).
//   - Parallel edges are rejected unless WithMultiEdges() is set.
//   - Self-loops are rejected unless WithLoops() is set.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj), lock order muVert -> muEdgeAdj.
//
// Determinism:
//
//	Vertices(), Edges(), Neighbors() and NeighborIDs() all return results
//	sorted by natural ID order (cmp.Compare), so traversals built on top of
//	them visit vertices in a reproducible order.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id ID)                      // O(1), idempotent
//	HasVertex(id ID) bool                 // O(1)
//	Vertices() []ID                       // O(V·log V)
//
//	// Edge lifecycle
//	AddEdge(id, from, to ID) error        // O(1)
//	RemoveEdge(id ID) error               // O(1)
//	HasEdge(from, to ID) bool             // O(1)
//	GetEdge(id ID) (*Edge[ID], error)     // O(1)
//	Edges() []*Edge[ID]                   // O(E·log E)
//	FilterEdges(keep func(*Edge[ID]) bool)// O(E)
//
//	// Query
//	Neighbors(id ID) ([]*Edge[ID], error) // O(d·log d)
//	NeighborIDs(id ID) ([]ID, error)      // O(d·log d)
//	Degree(id ID) (int, error)            // O(d)
//
//	// Cloning
//	CloneEmpty() *Graph[ID]               // O(V)
//	Clone() *Graph[ID]                    // O(V+E)
//
// Errors:
//
//	ErrVertexNotFound      - missing vertex
//	ErrEdgeNotFound        - missing edge
//	ErrEdgeExists          - edge ID already used
//	ErrLoopNotAllowed      - self-loop when loops are disabled
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled
package core
