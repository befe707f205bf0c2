// SPDX-License-Identifier: MIT

// File: ev.go
// Role: random placement of EV charging profiles on feeder loads.

package feeder

import (
	"cmp"
	"fmt"
	"maps"
	"math"
	"math/rand"
	"slices"

	"github.com/katalvlaran/radialgrid/radial"
)

// Load is a consumer connected to a bus.
type Load[ID cmp.Ordered] struct {
	ID     ID `json:"id" yaml:"id"`
	Vertex ID `json:"vertex" yaml:"vertex"`
}

// Assignment binds one load to one EV charging profile.
type Assignment[ID cmp.Ordered] struct {
	Load    ID  `json:"load" yaml:"load"`
	Feeder  ID  `json:"feeder" yaml:"feeder"`
	Profile int `json:"profile" yaml:"profile"`
}

// PlaceEVs distributes EVs over the loads of each feeder.
//
// Every feeder gets floor(penetration·len(loads)/len(partition)) EVs. A
// feeder with no more loads than that gets an EV on every load; otherwise
// that many of its loads are drawn at random. Each chosen load receives a
// distinct profile index from a random permutation of [0, profiles).
//
// partition is the output of Partition. Feeders are visited in ascending ID
// order and their loads in ascending load ID, so the result is fully
// determined by the inputs and the seed (WithSeed).
func PlaceEVs[ID cmp.Ordered](partition map[ID][]ID, loads []Load[ID], penetration float64, profiles int, opts ...Option) ([]Assignment[ID], error) {
	o := buildOptions(opts)
	if len(partition) == 0 {
		return nil, ErrNoFeeders
	}
	if math.IsNaN(penetration) || penetration < 0 || penetration > 1 {
		return nil, fmt.Errorf("%w: %v", ErrPenetrationRange, penetration)
	}
	if profiles < len(loads) {
		return nil, fmt.Errorf("%w: %d profiles for %d loads", ErrNotEnoughProfiles, profiles, len(loads))
	}

	seen := make(map[ID]struct{}, len(loads))
	for _, l := range loads {
		if _, dup := seen[l.ID]; dup {
			return nil, fmt.Errorf("%w: load %v", radial.ErrDuplicateIdentifier, l.ID)
		}
		seen[l.ID] = struct{}{}
	}

	quota := int(math.Floor(penetration * float64(len(loads)) / float64(len(partition))))
	rng := rand.New(rand.NewSource(o.seed))
	seq := rng.Perm(profiles)

	sorted := slices.Clone(loads)
	slices.SortFunc(sorted, func(a, b Load[ID]) int { return cmp.Compare(a.ID, b.ID) })

	assigned := make(map[ID]bool, len(loads))
	out := make([]Assignment[ID], 0, min(quota*len(partition), len(loads)))
	for _, f := range slices.Sorted(maps.Keys(partition)) {
		buses := make(map[ID]struct{}, len(partition[f]))
		for _, v := range partition[f] {
			buses[v] = struct{}{}
		}
		var members []ID
		for _, l := range sorted {
			if _, ok := buses[l.Vertex]; ok && !assigned[l.ID] {
				members = append(members, l.ID)
			}
		}

		chosen := members
		if quota < len(members) {
			chosen = make([]ID, 0, quota)
			for _, idx := range rng.Perm(len(members))[:quota] {
				chosen = append(chosen, members[idx])
			}
			slices.Sort(chosen)
		}
		for _, id := range chosen {
			out = append(out, Assignment[ID]{Load: id, Feeder: f, Profile: seq[len(out)]})
			assigned[id] = true
		}
		o.logger.Debug("feeder EVs placed", "feeder", f, "loads", len(members), "evs", len(chosen))
	}
	o.logger.Info("EV placement finished", "feeders", len(partition), "per_feeder", quota, "evs", len(out))

	return out, nil
}
