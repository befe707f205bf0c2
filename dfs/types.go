// SPDX-License-Identifier: MIT

// Package dfs defines the vertex colors, errors and result types used by
// depth-first cycle detection.
package dfs

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the traversal stack.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to FindCycle or HasCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// Cycle is one closed walk found in the graph.
//
// Vertices is closed: it starts and ends at the same vertex, so a triangle
// A-B-C yields [A B C A] and a self-loop on A yields [A A].
// Edges lists the edge IDs along the walk in the same order; the last entry
// is the edge that closed the cycle.
type Cycle[ID cmp.Ordered] struct {
	Vertices []ID
	Edges    []ID
}

// String renders the cycle as "A-B-C-A".
func (c *Cycle[ID]) String() string {
	parts := make([]string, len(c.Vertices))
	for i, v := range c.Vertices {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, "-")
}

// ClosingEdge returns the edge that turned the traversal tree into a cycle.
func (c *Cycle[ID]) ClosingEdge() ID {
	return c.Edges[len(c.Edges)-1]
}
