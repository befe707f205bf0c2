// SPDX-License-Identifier: MIT

// File: options.go
// Role: functional options for the builder package.
//
// Option constructors panic on nil arguments; constructors themselves
// never panic.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the bus ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.busID = fn
	}
}

// WithLineIDScheme sets the line ID generator: idx -> string.
// Panics on nil.
func WithLineIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLineIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.lineID = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
