// SPDX-License-Identifier: MIT

// Package dfs implements depth-first cycle detection on an undirected core.Graph.
//
// What:
//
//   - FindCycle: returns the first cycle found, as a closed vertex walk plus
//     the edge IDs along it, or reports that the graph is a forest.
//   - HasCycle: boolean shorthand for FindCycle.
//
// Why:
//
//   - A radial network is valid only if its operational subgraph is a tree;
//     connectivity is checked with bfs, acyclicity here.
//   - The cycle witness lets callers name the offending lines in errors.
//
// Undirected semantics:
//
//   - Returning to the parent over the edge just traversed is not a cycle.
//   - Returning to the parent over a different (parallel) edge is a cycle.
//   - A self-loop is a cycle of length one.
//
// Implementation uses an explicit stack instead of recursion, so feeders with
// tens of thousands of buses in series do not grow the goroutine stack.
//
// Errors:
//
//   - ErrGraphNil  graph pointer is nil
package dfs
