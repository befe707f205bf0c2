// SPDX-License-Identifier: MIT

package radial

import (
	"fmt"
	"slices"
)

// Source returns the supply vertex.
func (n *Network[ID]) Source() ID { return n.source }

// Vertices returns every vertex ID in ascending order. The slice is a copy.
func (n *Network[ID]) Vertices() []ID { return slices.Clone(n.vertices) }

// HasVertex reports whether id is a declared vertex.
func (n *Network[ID]) HasVertex(id ID) bool { return n.all.HasVertex(id) }

// VertexCount returns |V|.
func (n *Network[ID]) VertexCount() int { return len(n.vertices) }

// Lines returns every edge, enabled or not, sorted by edge ID.
func (n *Network[ID]) Lines() []Line[ID] {
	edges := n.all.Edges()
	out := make([]Line[ID], 0, len(edges))
	for _, e := range edges {
		out = append(out, Line[ID]{ID: e.ID, From: e.From, To: e.To, Enabled: n.enabled[e.ID]})
	}

	return out
}

// Line returns the edge with the given ID, or ErrUnknownEdge.
func (n *Network[ID]) Line(id ID) (Line[ID], error) {
	e, err := n.all.GetEdge(id)
	if err != nil {
		return Line[ID]{}, fmt.Errorf("%w: %v", ErrUnknownEdge, id)
	}

	return Line[ID]{ID: e.ID, From: e.From, To: e.To, Enabled: n.enabled[e.ID]}, nil
}

// EnabledLines returns the IDs of closed (conducting) edges, ascending.
// A valid network always has VertexCount()-1 of them.
func (n *Network[ID]) EnabledLines() []ID { return n.linesWhere(true) }

// DisabledLines returns the IDs of open edges, ascending.
func (n *Network[ID]) DisabledLines() []ID { return n.linesWhere(false) }

func (n *Network[ID]) linesWhere(on bool) []ID {
	out := []ID{}
	for _, e := range n.all.Edges() {
		if n.enabled[e.ID] == on {
			out = append(out, e.ID)
		}
	}

	return out
}

// PathFromSource returns the enabled edge IDs leading from the source to
// vertex, in travel order. The path to the source itself is empty.
// An undeclared vertex yields ErrUnknownVertex.
func (n *Network[ID]) PathFromSource(vertex ID) ([]ID, error) {
	if !n.op.HasVertex(vertex) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVertex, vertex)
	}
	res, err := n.splitAt()
	if err != nil {
		return nil, err
	}

	return res.EdgePathTo(vertex)
}
