// SPDX-License-Identifier: MIT

// File: cycle.go
// Role: undirected cycle detection.
//
// FindCycle runs an iterative depth-first search with three-color marking.
// Each stack frame remembers the edge it was entered through, so walking
// straight back to the parent over that same edge is never reported, while a
// parallel edge or a self-loop is. The first back edge to a Gray vertex closes
// a cycle, which is reconstructed from the stack.
//
// Complexity:
//
//   - Time:   O(V + E·log d)
//   - Memory: O(V)   (explicit stack, no recursion)
package dfs

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/radialgrid/core"
)

// frame is one entry of the explicit DFS stack.
type frame[ID cmp.Ordered] struct {
	id     ID
	via    ID   // edge used to enter id
	hasVia bool // false for traversal roots
	edges  []*core.Edge[ID]
	next   int // index of the next edge to examine
}

// FindCycle reports the first cycle found in g, scanning roots in ascending
// vertex order. It returns (nil, false, nil) for a forest.
func FindCycle[ID cmp.Ordered](g *core.Graph[ID]) (*Cycle[ID], bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}

	verts := g.Vertices()
	state := make(map[ID]int, len(verts))
	for _, root := range verts {
		if state[root] != White {
			continue
		}
		c, err := walk(g, root, state)
		if err != nil {
			return nil, false, fmt.Errorf("dfs: FindCycle: %w", err)
		}
		if c != nil {
			return c, true, nil
		}
	}

	return nil, false, nil
}

// HasCycle reports whether g contains any cycle.
func HasCycle[ID cmp.Ordered](g *core.Graph[ID]) (bool, error) {
	_, found, err := FindCycle(g)
	return found, err
}

// walk explores the tree rooted at root and returns the first cycle it closes.
func walk[ID cmp.Ordered](g *core.Graph[ID], root ID, state map[ID]int) (*Cycle[ID], error) {
	push := func(stack []frame[ID], id, via ID, hasVia bool) ([]frame[ID], error) {
		edges, err := g.Neighbors(id)
		if err != nil {
			return stack, fmt.Errorf("Neighbors(%v): %w", id, err)
		}
		state[id] = Gray
		return append(stack, frame[ID]{id: id, via: via, hasVia: hasVia, edges: edges}), nil
	}

	var zero ID
	stack, err := push(nil, root, zero, false)
	if err != nil {
		return nil, err
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.edges) {
			state[top.id] = Black
			stack = stack[:len(stack)-1]
			continue
		}
		e := top.edges[top.next]
		top.next++

		// The edge we arrived on leads back to the parent: not a cycle.
		if top.hasVia && e.ID == top.via {
			continue
		}

		nbr := e.Other(top.id)
		switch state[nbr] {
		case White:
			if stack, err = push(stack, nbr, e.ID, true); err != nil {
				return nil, err
			}
		case Gray:
			return closeCycle(stack, nbr, e.ID), nil
		}
	}

	return nil, nil
}

// closeCycle builds the cycle formed by the stack segment from start up to the
// top frame, closed by edge closing.
func closeCycle[ID cmp.Ordered](stack []frame[ID], start ID, closing ID) *Cycle[ID] {
	idx := len(stack) - 1
	for idx > 0 && stack[idx].id != start {
		idx--
	}

	c := &Cycle[ID]{
		Vertices: make([]ID, 0, len(stack)-idx+1),
		Edges:    make([]ID, 0, len(stack)-idx),
	}
	for i := idx; i < len(stack); i++ {
		c.Vertices = append(c.Vertices, stack[i].id)
		if i > idx {
			c.Edges = append(c.Edges, stack[i].via)
		}
	}
	c.Vertices = append(c.Vertices, start)
	c.Edges = append(c.Edges, closing)

	return c
}
