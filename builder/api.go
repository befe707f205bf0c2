// SPDX-License-Identifier: MIT

// File: api.go
// Role: public entry points for the builder package.
//
// Contract:
//   - One orchestrator: BuildNetwork(bopts, cons...). Creates the Definition,
//     resolves cfg, runs cons in order.
//   - Constructors append buses and lines; they never remove or rewrite.
//   - Determinism: same options, seed and constructor order give identical
//     definitions.

package builder

import (
	"fmt"

	"github.com/katalvlaran/radialgrid/radial"
)

// Definition is a radial network in the parallel-slice layout radial.New
// accepts. Index i of EdgeIDs, Pairs and Enabled describes one line.
type Definition struct {
	Source   string
	Vertices []string
	EdgeIDs  []string
	Pairs    [][2]string
	Enabled  []bool

	joined map[[2]string]struct{} // unordered pairs already carrying a line
}

// Constructor applies one deterministic growth step to d.
type Constructor func(d *Definition, cfg builderConfig) error

// BuildNetwork resolves bopts and applies all constructors in order to a
// fresh Definition. Constructor errors are wrapped with "BuildNetwork: %w".
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*Definition, error) {
	d := &Definition{joined: make(map[[2]string]struct{})}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return d, nil
}

// Build validates the definition through radial.New.
func (d *Definition) Build() (*radial.Network[string], error) {
	return radial.New(d.Vertices, d.EdgeIDs, d.Pairs, d.Enabled, d.Source)
}

// source returns the source bus, creating it if d is still empty.
func (d *Definition) source(cfg builderConfig) string {
	if len(d.Vertices) == 0 {
		d.Source = d.addBus(cfg)
	}

	return d.Source
}

func (d *Definition) addBus(cfg builderConfig) string {
	id := cfg.busID(len(d.Vertices))
	d.Vertices = append(d.Vertices, id)

	return id
}

func (d *Definition) addLine(cfg builderConfig, from, to string, enabled bool) {
	d.EdgeIDs = append(d.EdgeIDs, cfg.lineID(len(d.EdgeIDs)))
	d.Pairs = append(d.Pairs, [2]string{from, to})
	d.Enabled = append(d.Enabled, enabled)
	d.joined[pairKey(from, to)] = struct{}{}
}

func (d *Definition) isJoined(a, b string) bool {
	_, ok := d.joined[pairKey(a, b)]
	return ok
}

func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}

	return [2]string{a, b}
}
