// SPDX-License-Identifier: MIT

// File: impl_random.go
// Role: RandomTree(n) and TieLines(k), the stochastic constructors.
//
// Both require cfg.rng (WithSeed or WithRand) and draw from it in a fixed
// order, so outcomes are reproducible for a given seed.

package builder

import "fmt"

const (
	methodRandomTree = "RandomTree"
	methodTieLines   = "TieLines"

	// enumerateLimit bounds the bus count for which TieLines lists every free
	// pair; above it, pairs are drawn by rejection sampling.
	enumerateLimit = 512
	// attemptsPerTie bounds rejection sampling per requested tie line.
	attemptsPerTie = 64
)

// RandomTree returns a Constructor that adds n buses, each joined by a closed
// line to a uniformly chosen bus that already exists (random recursive tree).
//
// Complexity: O(n).
func RandomTree(n int) Constructor {
	return func(d *Definition, cfg builderConfig) error {
		if n < minNewBuses {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomTree, n, minNewBuses, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}

		d.source(cfg)
		for i := 0; i < n; i++ {
			parent := d.Vertices[cfg.rng.Intn(len(d.Vertices))]
			d.addLine(cfg, parent, d.addBus(cfg), true)
		}

		return nil
	}
}

// TieLines returns a Constructor that adds k open lines, each between two
// distinct buses that are not yet joined by any line.
//
// Complexity: O(V²) for V ≤ 512 buses, otherwise O(k) expected draws.
func TieLines(k int) Constructor {
	return func(d *Definition, cfg builderConfig) error {
		if k < 0 {
			return fmt.Errorf("%s: k=%d < min=0: %w", methodTieLines, k, ErrTooFewVertices)
		}
		if k == 0 {
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodTieLines, ErrNeedRandSource)
		}

		n := len(d.Vertices)
		free := n*(n-1)/2 - len(d.EdgeIDs)
		if free < k {
			return fmt.Errorf("%s: %d tie lines requested, %d free bus pairs: %w",
				methodTieLines, k, free, ErrConstructFailed)
		}

		if n <= enumerateLimit {
			return d.tiesFromList(cfg, k)
		}

		return d.tiesBySampling(cfg, k)
	}
}

// tiesFromList shuffles every free pair and takes the first k.
func (d *Definition) tiesFromList(cfg builderConfig, k int) error {
	var candidates [][2]string
	for i := 0; i < len(d.Vertices); i++ {
		for j := i + 1; j < len(d.Vertices); j++ {
			if !d.isJoined(d.Vertices[i], d.Vertices[j]) {
				candidates = append(candidates, [2]string{d.Vertices[i], d.Vertices[j]})
			}
		}
	}
	cfg.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, p := range candidates[:k] {
		d.addLine(cfg, p[0], p[1], false)
	}

	return nil
}

// tiesBySampling draws random bus pairs until k free ones are found.
func (d *Definition) tiesBySampling(cfg builderConfig, k int) error {
	n := len(d.Vertices)
	for added, attempts := 0, 0; added < k; attempts++ {
		if attempts == k*attemptsPerTie {
			return fmt.Errorf("%s: placed %d of %d tie lines: %w", methodTieLines, added, k, ErrConstructFailed)
		}
		i, j := cfg.rng.Intn(n), cfg.rng.Intn(n)
		if i == j {
			continue
		}
		if i > j {
			i, j = j, i
		}
		a, b := d.Vertices[i], d.Vertices[j]
		if d.isJoined(a, b) {
			continue
		}
		d.addLine(cfg, a, b, false)
		added++
	}

	return nil
}
