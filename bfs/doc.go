// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: vertex → distance (edges) from start
//   - Parent / ParentEdge: predecessor vertex and the edge used to reach it
//   - Components: connected components of the whole graph under the same options.
//   - Edges can be hidden per traversal (WithSkipEdge, WithFilterEdge) without
//     mutating the graph.
//
// Why
//
//   - Connectivity checks and component splits are the building blocks of the
//     radial network validator and its downstream/reconnection queries.
//   - Hiding an edge inside the walker gives a "what if this line were open"
//     view for free, with no clone and no shared state.
//
// Determinism
//
//	Because core.Neighbors returns edges sorted by Edge.ID, and BFS enqueues
//	neighbors in that order, the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d)  (neighbor lists are sorted per visit)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, source, bfs.WithSkipEdge(lineID))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // ctx.Err(), or an OnVisit hook error
//	}
//	if !res.Visited(bus) { /* bus lost supply */ }
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - ErrNoPath               from Result.PathTo / EdgePathTo for unreached vertices.
package bfs
