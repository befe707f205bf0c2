// SPDX-License-Identifier: MIT

// File: feeder.go
// Role: low-voltage feeder checks and the feeder → buses partition.

package feeder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/radialgrid/radial"
)

// Validate checks that feeders describe the outgoing lines of the transformer
// low-voltage bus: the set is non-empty, bus is a vertex of net, feeder IDs
// are distinct lines of net, and every feeder line has bus as an endpoint.
// Checks run in that order and the first violation is returned.
//
// Lines are undirected, so a feeder may name the bus as either its From or
// its To end; a feeder is not required to be listed leaving the bus.
func Validate[ID cmp.Ordered](net *radial.Network[ID], bus ID, feeders []ID) error {
	if len(feeders) == 0 {
		return ErrNoFeeders
	}
	if !net.HasVertex(bus) {
		return fmt.Errorf("%w: bus %v", radial.ErrUnknownVertex, bus)
	}

	seen := make(map[ID]struct{}, len(feeders))
	for _, f := range feeders {
		if _, dup := seen[f]; dup {
			return fmt.Errorf("%w: feeder %v", radial.ErrDuplicateIdentifier, f)
		}
		seen[f] = struct{}{}

		line, err := net.Line(f)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnknownFeeder, f)
		}
		if line.From != bus && line.To != bus {
			return fmt.Errorf("%w: line %v joins %v and %v, bus is %v",
				ErrFeederNotAtBus, f, line.From, line.To, bus)
		}
	}

	return nil
}

// Partition maps every feeder to the buses it supplies, i.e. the vertices cut
// off when that feeder opens. Each set is sorted; an open feeder supplies
// nothing and maps to an empty slice.
func Partition[ID cmp.Ordered](net *radial.Network[ID], feeders []ID) (map[ID][]ID, error) {
	out := make(map[ID][]ID, len(feeders))
	for _, f := range feeders {
		down, err := net.DownstreamVertices(f)
		if err != nil {
			return nil, fmt.Errorf("feeder: partition %v: %w", f, err)
		}
		out[f] = down
	}

	return out, nil
}
