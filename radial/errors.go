// SPDX-License-Identifier: MIT

package radial

import "errors"

// Sentinel errors. Every failure returned by this package wraps exactly one of
// them, so callers branch with errors.Is and read the detail from Error().
var (
	// ErrDuplicateIdentifier indicates two vertices or two edges share an ID.
	ErrDuplicateIdentifier = errors.New("radial: duplicate identifier")

	// ErrLengthMismatch indicates the per-edge input lists disagree in length,
	// or two edges join the same pair of vertices.
	ErrLengthMismatch = errors.New("radial: input length mismatch")

	// ErrUnknownVertex indicates an edge endpoint or the source is not a declared vertex.
	ErrUnknownVertex = errors.New("radial: unknown vertex")

	// ErrDisconnected indicates the enabled edges do not reach every vertex.
	ErrDisconnected = errors.New("radial: enabled subgraph is not connected")

	// ErrCyclePresent indicates the enabled edges contain a loop.
	ErrCyclePresent = errors.New("radial: enabled subgraph contains a cycle")

	// ErrUnknownEdge indicates a query referenced an edge ID absent from the network.
	ErrUnknownEdge = errors.New("radial: unknown edge")

	// ErrAlreadyDisabled indicates a reconnection search targeted a disabled edge.
	ErrAlreadyDisabled = errors.New("radial: edge already disabled")
)
