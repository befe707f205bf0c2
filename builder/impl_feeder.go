// SPDX-License-Identifier: MIT

// File: impl_feeder.go
// Role: Feeder(n) and Star(n), the deterministic tree constructors.
//
// Both add n new buses via cfg.busID in ascending index order and one closed
// line per new bus, so a definition that was a spanning tree stays one.
//
// Complexity: O(n) buses + O(n) lines.

package builder

import "fmt"

const (
	methodFeeder = "Feeder"
	methodStar   = "Star"
	minNewBuses  = 1
)

// Feeder returns a Constructor that hangs n buses in series off the source:
// source ─ b1 ─ b2 ─ … ─ bn.
func Feeder(n int) Constructor {
	return func(d *Definition, cfg builderConfig) error {
		if n < minNewBuses {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodFeeder, n, minNewBuses, ErrTooFewVertices)
		}

		prev := d.source(cfg)
		for i := 0; i < n; i++ {
			next := d.addBus(cfg)
			d.addLine(cfg, prev, next, true)
			prev = next
		}

		return nil
	}
}

// Star returns a Constructor that connects n new buses directly to the source.
func Star(n int) Constructor {
	return func(d *Definition, cfg builderConfig) error {
		if n < minNewBuses {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minNewBuses, ErrTooFewVertices)
		}

		src := d.source(cfg)
		for i := 0; i < n; i++ {
			d.addLine(cfg, src, d.addBus(cfg), true)
		}

		return nil
	}
}
