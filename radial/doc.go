// SPDX-License-Identifier: MIT

// Package radial models a radial electrical distribution network: a set of
// buses (vertices) joined by lines (edges), each line either enabled
// (closed, conducting) or disabled (open), with one designated supply source.
//
// What:
//
//   - New: Topology Validator. Builds a *Network from parallel input slices
//     and rejects anything whose enabled lines are not a spanning tree.
//   - (*Network).DownstreamVertices: buses that lose supply when one enabled
//     line is opened.
//   - (*Network).AlternativeEdges: disabled lines that, once closed, restore a
//     spanning tree after that line is opened.
//
// Why:
//
//   - N-1 contingency studies open every line in turn and ask which buses
//     are cut off and which tie switches could pick them up.
//   - Feeder-level load studies need the buses served by each feeder.
//
// Model:
//
//	A ──1── B ──2── C ──3── D
//	        ┊       │
//	        5       4
//	        ┊       │
//	        └────── E
//
//	Enabled {1,2,3,4}, disabled {5}, source A.
//	DownstreamVertices(2) = [C D E]
//	AlternativeEdges(2)   = [5]
//
// The operational subgraph (enabled lines only) is a core.Graph; both queries
// are a single bfs traversal from the source with the target line skipped, so
// nothing is cloned or mutated per call and a *Network is safe for concurrent
// use. Acyclicity is checked with dfs.FindCycle.
//
// Outputs are always sorted ascending by ID, and empty results are non-nil.
//
// Errors:
//
//   - ErrDuplicateIdentifier  repeated vertex or edge ID
//   - ErrLengthMismatch       per-edge slices differ in length, or a repeated vertex pair
//   - ErrUnknownVertex        endpoint or source not declared
//   - ErrDisconnected         enabled lines leave a vertex unsupplied
//   - ErrCyclePresent         enabled lines form a loop
//   - ErrUnknownEdge          query on an absent edge
//   - ErrAlreadyDisabled      reconnection search on an open line
package radial
