// SPDX-License-Identifier: MIT

package commands

import (
	"cmp"
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/radialgrid/feeder"
)

var errNoBus = errors.New("network file names no transformer bus")

// feederPartition validates the feeders declared in the file and splits the
// network between them.
func feederPartition[ID cmp.Ordered](ld *loaded[ID]) (map[ID][]ID, error) {
	if ld.file.Bus == nil {
		return nil, errNoBus
	}
	if err := feeder.Validate(ld.net, *ld.file.Bus, ld.file.Feeders); err != nil {
		return nil, err
	}

	return feeder.Partition(ld.net, ld.file.Feeders)
}

func newFeedersCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "feeders",
		Short: "Validate the feeders and list the buses each one supplies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return st.run(cmd.OutOrStdout(), feeders[int], feeders[string])
		},
	}
}

func feeders[ID cmp.Ordered](ld *loaded[ID]) (any, error) {
	part, err := feederPartition(ld)
	if err != nil {
		return nil, err
	}

	return struct {
		Bus     ID          `json:"bus" yaml:"bus"`
		Feeders map[ID][]ID `json:"feeders" yaml:"feeders"`
	}{*ld.file.Bus, part}, nil
}

// evRequest carries the evs flags into the typed handler.
type evRequest struct {
	penetration float64
	profiles    int // negative means one per load in the file
	seed        int64
}

func newEVsCmd(st *state) *cobra.Command {
	var req evRequest
	cmd := &cobra.Command{
		Use:   "evs",
		Short: "Place EV charging profiles on feeder loads",
		Long: `evs spreads floor(penetration x loads / feeders) EVs over each feeder's
loads and gives every chosen load a distinct charging profile index.
Profiles defaults to the number of loads in the network file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := req
			if !cmd.Flags().Changed("profiles") {
				r.profiles = -1
			}

			return st.run(cmd.OutOrStdout(), placeEVs[int](st, r), placeEVs[string](st, r))
		},
	}
	cmd.Flags().Float64VarP(&req.penetration, "penetration", "p", 0, "share of loads that get an EV, in [0,1]")
	cmd.Flags().IntVar(&req.profiles, "profiles", 0, "number of available charging profiles (default: one per load)")
	cmd.Flags().Int64Var(&req.seed, "seed", 0, "random seed")

	return cmd
}

func placeEVs[ID cmp.Ordered](st *state, req evRequest) handler[ID] {
	return func(ld *loaded[ID]) (any, error) {
		part, err := feederPartition(ld)
		if err != nil {
			return nil, err
		}
		profiles := req.profiles
		if profiles < 0 {
			profiles = len(ld.file.Loads)
		}
		placed, err := feeder.PlaceEVs(part, ld.file.loads(), req.penetration, profiles,
			feeder.WithSeed(req.seed),
			feeder.WithLogger(st.logger),
		)
		if err != nil {
			return nil, err
		}

		return struct {
			Penetration float64                 `json:"penetration" yaml:"penetration"`
			Seed        int64                   `json:"seed" yaml:"seed"`
			Assignments []feeder.Assignment[ID] `json:"assignments" yaml:"assignments"`
		}{req.penetration, req.seed, placed}, nil
	}
}
