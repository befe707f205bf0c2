// Package radialgrid answers structural questions about radial electrical
// distribution networks: which buses lose supply when a line opens, and
// which open tie lines can take over.
//
// What is in the box?
//
//	A thread-safe, in-memory graph core plus the traversals and studies a
//	distribution planner runs on it:
//		• Core primitives: generic vertices & edges, mutate safely under locks
//		• Traversals: BFS with per-call edge skipping, iterative DFS cycle search
//		• Topology validation: closed lines must form a spanning tree
//		• Downstream and reconnection queries for one opened line
//		• Feeder studies: partition, N-1 sweep, EV profile placement
//		• Synthetic network generation for tests and benchmarks
//
// Layout:
//
//	core/            generic undirected Graph, Edge & thread-safe primitives
//	bfs/             breadth-first search, components, skip/filter options
//	dfs/             cycle detection with an explicit stack
//	radial/          Network: validator, DownstreamVertices, AlternativeEdges
//	feeder/          Validate, Partition, Contingency, PlaceEVs
//	builder/         synthetic feeders, stars, random trees and tie lines
//	cmd/radialgrid/  cobra CLI over network files (YAML or JSON)
//
// Quick ASCII example:
//
//	A ──1── B ──2── C ──3── D
//	        ┊       │
//	        5       4
//	        ┊       │
//	        └────── E
//
//	Closed {1,2,3,4}, open {5}, source A. Opening 2 cuts off C, D and E;
//	closing 5 restores them.
//
//	go install github.com/katalvlaran/radialgrid/cmd/radialgrid@latest
package radialgrid
