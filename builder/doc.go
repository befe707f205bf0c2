// SPDX-License-Identifier: MIT

// Package builder generates synthetic radial network definitions for tests,
// benchmarks and the `radialgrid generate` command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildNetwork: resolves options and runs Constructors in order into a
//     fresh Definition.
//     – Definition.Build: hands the parallel slices to radial.New.
//   - Topology constructors (Constructor implementations):
//     – Feeder(n):     n buses in series hanging off the source.
//     – Star(n):       n buses each fed directly from the source.
//     – RandomTree(n): n buses, each attached to a random existing bus.
//     – TieLines(k):   k open lines between random buses not yet joined.
//   - ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolNumberIDFn:  prefix + decimal ("bus0","bus1",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//
// Guarantees:
//
//   - The first bus created is the source.
//   - Feeder, Star and RandomTree add only closed lines and keep the
//     definition a spanning tree; TieLines adds only open lines, never a
//     duplicate pair. Any composition therefore builds a valid Network.
//   - Determinism: same constructors, options and seed give the same
//     definition.
//   - Invalid parameters return sentinel errors; option constructors panic
//     on nil arguments.
package builder
