// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/radialgrid/builder"
)

func newGenerateCmd(st *state) *cobra.Command {
	var (
		shape string
		buses int
		ties  int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic radial network file",
		Long: `generate grows a radial network from a single source bus and adds open
tie lines between random buses. The output is a network file that every
other command accepts via --network.

Shapes: feeder (buses in series), star (buses fed from the source),
tree (each bus attached to a random earlier one).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var grow builder.Constructor
			switch shape {
			case "feeder":
				grow = builder.Feeder(buses)
			case "star":
				grow = builder.Star(buses)
			case "tree":
				grow = builder.RandomTree(buses)
			default:
				return fmt.Errorf("invalid --shape %q (want feeder, star or tree)", shape)
			}

			def, err := builder.BuildNetwork(
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithBusPrefix("b")},
				grow,
				builder.TieLines(ties),
			)
			if err != nil {
				return err
			}
			if _, err = def.Build(); err != nil {
				return err
			}
			st.logger.Info("network generated",
				"shape", shape, "buses", len(def.Vertices), "ties", ties, "seed", seed)

			return st.render(cmd.OutOrStdout(), fileFromDefinition(def))
		},
	}
	cmd.Flags().StringVar(&shape, "shape", "tree", "topology: feeder|star|tree")
	cmd.Flags().IntVar(&buses, "buses", 10, "buses to add besides the source")
	cmd.Flags().IntVar(&ties, "ties", 2, "open tie lines to add")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")

	return cmd
}

func fileFromDefinition(def *builder.Definition) networkFile[string] {
	nf := networkFile[string]{
		Source:   def.Source,
		Vertices: def.Vertices,
		Edges:    make([]edgeSpec[string], len(def.EdgeIDs)),
	}
	for i, id := range def.EdgeIDs {
		nf.Edges[i] = edgeSpec[string]{ID: id, From: def.Pairs[i][0], To: def.Pairs[i][1]}
		if !def.Enabled[i] {
			off := false
			nf.Edges[i].Enabled = &off
		}
	}

	return nf
}
