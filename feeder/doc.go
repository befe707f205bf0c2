// SPDX-License-Identifier: MIT

// Package feeder runs the studies that sit on top of a validated
// radial.Network: low-voltage feeder checks, the feeder → buses partition,
// an N-1 contingency sweep, and EV charging-profile placement.
//
// Only topology is computed here. Power flow over the resulting
// configurations is left to the caller.
//
//	net, _ := radial.New(...)
//	if err := feeder.Validate(net, bus, feeders); err != nil { ... }
//	part, _ := feeder.Partition(net, feeders)
//	outages, _ := feeder.Contingency(ctx, net, nil, feeder.WithConcurrency(8))
//	evs, _ := feeder.PlaceEVs(part, loads, 0.3, len(profiles), feeder.WithSeed(7))
//
// Contingency and PlaceEVs log through log/slog (WithLogger); nothing is
// logged by default.
package feeder
