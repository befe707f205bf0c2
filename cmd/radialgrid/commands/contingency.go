// SPDX-License-Identifier: MIT

package commands

import (
	"cmp"
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/radialgrid/feeder"
	"github.com/katalvlaran/radialgrid/radial"
)

func newContingencyCmd(st *state) *cobra.Command {
	var lines []string
	cmd := &cobra.Command{
		Use:   "contingency",
		Short: "Open each line in turn and report isolated buses and alternatives",
		Long: `contingency runs an N-1 sweep. Without --line every closed line is
opened once; with --line only the given lines are, in the given order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return st.run(cmd.OutOrStdout(),
				sweep[int](ctx, st, lines),
				sweep[string](ctx, st, lines),
			)
		},
	}
	cmd.Flags().StringSliceVarP(&lines, "line", "l", nil, "line ID to open (repeatable)")

	return cmd
}

func sweep[ID cmp.Ordered](ctx context.Context, st *state, lines []string) handler[ID] {
	return func(ld *loaded[ID]) (any, error) {
		ids := make([]ID, len(lines))
		for i, l := range lines {
			id, err := parseID[ID](l, radial.ErrUnknownEdge)
			if err != nil {
				return nil, err
			}
			ids[i] = id
		}

		outages, err := feeder.Contingency(ctx, ld.net, ids,
			feeder.WithLogger(st.logger),
			feeder.WithConcurrency(st.v.GetInt("concurrency")),
		)
		if err != nil {
			return nil, err
		}

		return struct {
			Outages []feeder.Outage[ID] `json:"outages" yaml:"outages"`
		}{outages}, nil
	}
}
