// SPDX-License-Identifier: MIT

// File: queries.go
// Role: Downstream Query and Reconnection Search.
// Concurrency:
//   - Both queries only read the Network; each call owns its traversal state,
//     so any number may run in parallel.

package radial

import (
	"fmt"

	"github.com/katalvlaran/radialgrid/bfs"
)

// DownstreamVertices returns, in ascending order, every vertex that loses
// supply if edgeID is opened: the vertices on the far side of edgeID from
// the source, including the edge's far endpoint.
//
// A disabled edge carries no supply, so it yields an empty (non-nil) slice.
// An unknown edgeID yields ErrUnknownEdge.
//
// Complexity: O((V + E)·log d) for one traversal.
func (n *Network[ID]) DownstreamVertices(edgeID ID) ([]ID, error) {
	on, ok := n.enabled[edgeID]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownEdge, edgeID)
	}
	if !on {
		return []ID{}, nil
	}

	supplied, err := n.splitAt(edgeID)
	if err != nil {
		return nil, err
	}

	out := make([]ID, 0, len(n.vertices)-len(supplied.Order))
	for _, v := range n.vertices {
		if !supplied.Visited(v) {
			out = append(out, v)
		}
	}

	return out, nil
}

// AlternativeEdges returns, in ascending order, the disabled edges that would
// restore a spanning tree if edgeID were opened and that edge closed. Those
// are exactly the disabled edges with one endpoint on each side of the split.
//
// Errors:
//   - ErrUnknownEdge      edgeID is not in the network
//   - ErrAlreadyDisabled  edgeID is already open
//
// The partition is computed once; each candidate is then an O(1) side lookup,
// so the whole search is O((V + E)·log d).
func (n *Network[ID]) AlternativeEdges(edgeID ID) ([]ID, error) {
	on, ok := n.enabled[edgeID]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownEdge, edgeID)
	}
	if !on {
		return nil, fmt.Errorf("%w: %v", ErrAlreadyDisabled, edgeID)
	}

	supplied, err := n.splitAt(edgeID)
	if err != nil {
		return nil, err
	}

	out := []ID{}
	// Edges() is sorted by ID, so out is too.
	for _, e := range n.all.Edges() {
		if n.enabled[e.ID] {
			continue
		}
		if supplied.Visited(e.From) != supplied.Visited(e.To) {
			out = append(out, e.ID)
		}
	}

	return out, nil
}

// splitAt walks the operational tree from the source with the given edges
// treated as open. The visited set is the side that keeps supply.
func (n *Network[ID]) splitAt(open ...ID) (*bfs.Result[ID], error) {
	res, err := bfs.BFS(n.op, n.source, bfs.WithSkipEdge(open...))
	if err != nil {
		return nil, fmt.Errorf("radial: walk from source %v (open %v): %w", n.source, open, err)
	}

	return res, nil
}
