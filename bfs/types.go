// SPDX-License-Identifier: MIT

// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/radialgrid/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result path helpers when dest was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[ID cmp.Ordered] func(*Options[ID])

// Options holds parameters and callbacks to customize BFS execution.
type Options[ID cmp.Ordered] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id ID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterEdge can skip edges by returning false.
	FilterEdge func(e *core.Edge[ID]) bool

	// skip holds edge IDs treated as absent (WithSkipEdge).
	skip map[ID]struct{}

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - no depth limit
//   - no filtering
//   - no-op OnVisit
func DefaultOptions[ID cmp.Ordered]() Options[ID] {
	return Options[ID]{
		Ctx:        context.Background(),
		OnVisit:    func(ID, int) error { return nil },
		MaxDepth:   0,
		FilterEdge: func(*core.Edge[ID]) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[ID cmp.Ordered](ctx context.Context) Option[ID] {
	return func(o *Options[ID]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[ID cmp.Ordered](fn func(id ID, depth int) error) Option[ID] {
	return func(o *Options[ID]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[ID cmp.Ordered](d int) Option[ID] {
	return func(o *Options[ID]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges for which fn returns false.
func WithFilterEdge[ID cmp.Ordered](fn func(e *core.Edge[ID]) bool) Option[ID] {
	return func(o *Options[ID]) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// WithSkipEdge treats the given edge IDs as removed for this traversal only.
// The graph itself is not touched, which is what makes hypothetical
// "what if this line were open" queries safe to run concurrently.
func WithSkipEdge[ID cmp.Ordered](ids ...ID) Option[ID] {
	return func(o *Options[ID]) {
		if o.skip == nil {
			o.skip = make(map[ID]struct{}, len(ids))
		}
		for _, id := range ids {
			o.skip[id] = struct{}{}
		}
	}
}

// allows reports whether e may be traversed under o.
func (o *Options[ID]) allows(e *core.Edge[ID]) bool {
	if _, skipped := o.skip[e.ID]; skipped {
		return false
	}

	return o.FilterEdge(e)
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: vertex ID → distance (in edges) from the start.
//   - Parent: vertex ID → predecessor in the BFS tree.
//   - ParentEdge: vertex ID → ID of the edge used to reach it.
type Result[ID cmp.Ordered] struct {
	Start      ID
	Order      []ID
	Depth      map[ID]int
	Parent     map[ID]ID
	ParentEdge map[ID]ID
}

// Visited reports whether id was reached.
func (r *Result[ID]) Visited(id ID) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the vertex path from the start vertex to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result[ID]) PathTo(dest ID) ([]ID, error) {
	if !r.Visited(dest) {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	path := []ID{dest}
	for cur := dest; cur != r.Start; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	reverse(path)

	return path, nil
}

// EdgePathTo reconstructs the edge IDs traversed from the start vertex to dest,
// in travel order. The path to the start itself is empty.
// Returns ErrNoPath if dest was not reached.
func (r *Result[ID]) EdgePathTo(dest ID) ([]ID, error) {
	if !r.Visited(dest) {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	path := make([]ID, 0, r.Depth[dest])
	for cur := dest; cur != r.Start; cur = r.Parent[cur] {
		path = append(path, r.ParentEdge[cur])
	}
	reverse(path)

	return path, nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
