// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted distances, parent links, and visit order.
package bfs

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/radialgrid/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem[ID cmp.Ordered] struct {
	id    ID
	depth int
}

// walker encapsulates mutable BFS state.
type walker[ID cmp.Ordered] struct {
	graph *core.Graph[ID]
	opts  Options[ID]
	ctx   context.Context
	queue []queueItem[ID]
	res   *Result[ID]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any OnVisit hook error.
func BFS[ID cmp.Ordered](g *core.Graph[ID], start ID, opts ...Option[ID]) (*Result[ID], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	w := newWalker(g, o, start, g.VertexCount())
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// Components partitions the vertices of g into connected components,
// honoring the edge filters in opts. Each component is sorted ascending and
// components are ordered by their smallest vertex.
//
// Complexity: O(V + E).
func Components[ID cmp.Ordered](g *core.Graph[ID], opts ...Option[ID]) ([][]ID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	seen := make(map[ID]bool, g.VertexCount())
	var comps [][]ID
	// Vertices() is sorted, so every component is seeded by its minimum.
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		w := newWalker(g, o, v, 0)
		w.enqueue(v, 0)
		if err = w.loop(); err != nil {
			return nil, err
		}
		comp := slices.Clone(w.res.Order)
		for _, id := range comp {
			seen[id] = true
		}
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

func buildOptions[ID cmp.Ordered](opts []Option[ID]) (Options[ID], error) {
	o := DefaultOptions[ID]()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func newWalker[ID cmp.Ordered](g *core.Graph[ID], o Options[ID], start ID, sizeHint int) *walker[ID] {
	return &walker[ID]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[ID], 0, sizeHint),
		res: &Result[ID]{
			Start:      start,
			Order:      make([]ID, 0, sizeHint),
			Depth:      make(map[ID]int, sizeHint),
			Parent:     make(map[ID]ID, sizeHint),
			ParentEdge: make(map[ID]ID, sizeHint),
		},
	}
}

// enqueue marks id reached at depth d and adds it to the queue.
func (w *walker[ID]) enqueue(id ID, d int) {
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem[ID]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[ID]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors walks incident edges in Edge.ID order, applies filtering
// and MaxDepth, and enqueues each unseen neighbor.
func (w *walker[ID]) enqueueNeighbors(item queueItem[ID]) error {
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %v: %w", item.id, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, e := range edges {
		if !w.opts.allows(e) {
			continue
		}
		nbr := e.Other(item.id)
		if w.res.Visited(nbr) {
			continue
		}
		w.res.Parent[nbr] = item.id
		w.res.ParentEdge[nbr] = e.ID
		w.enqueue(nbr, next)
	}

	return nil
}
