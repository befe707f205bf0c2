// SPDX-License-Identifier: MIT

package feeder

import "errors"

var (
	// ErrNoFeeders is returned when a study is given an empty feeder set.
	ErrNoFeeders = errors.New("feeder: no feeders")

	// ErrUnknownFeeder is returned when a feeder ID is not a line of the network.
	ErrUnknownFeeder = errors.New("feeder: feeder is not a network line")

	// ErrFeederNotAtBus is returned when a feeder line does not touch the transformer bus.
	ErrFeederNotAtBus = errors.New("feeder: feeder does not start at the transformer bus")

	// ErrPenetrationRange is returned for an EV penetration level outside [0, 1].
	ErrPenetrationRange = errors.New("feeder: penetration level out of range")

	// ErrNotEnoughProfiles is returned when there are fewer charging profiles than loads.
	ErrNotEnoughProfiles = errors.New("feeder: not enough charging profiles")
)
