// SPDX-License-Identifier: MIT

// File: config.go
// Role: internal configuration and deterministic defaults.
//
// Defaults:
//   • busID  = DefaultIDFn            ("0","1","2",...)
//   • lineID = SymbolNumberIDFn("l")  ("l0","l1",...)
//   • rng    = nil                    (stochastic constructors refuse to run)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	busID  IDFn
	lineID IDFn
	rng    *rand.Rand
}

const defaultLinePrefix = "l"

// newBuilderConfig applies opts over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		busID:  DefaultIDFn,
		lineID: SymbolNumberIDFn(defaultLinePrefix),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
