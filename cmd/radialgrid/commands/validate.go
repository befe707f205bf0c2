// SPDX-License-Identifier: MIT

package commands

import (
	"cmp"

	"github.com/spf13/cobra"
)

type summary[ID cmp.Ordered] struct {
	Source   ID   `json:"source" yaml:"source"`
	Vertices int  `json:"vertices" yaml:"vertices"`
	Lines    int  `json:"lines" yaml:"lines"`
	Enabled  []ID `json:"enabled" yaml:"enabled"`
	Disabled []ID `json:"disabled" yaml:"disabled"`
}

func newValidateCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the closed lines form a spanning tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return st.run(cmd.OutOrStdout(), summarize[int], summarize[string])
		},
	}
}

func summarize[ID cmp.Ordered](ld *loaded[ID]) (any, error) {
	return summary[ID]{
		Source:   ld.net.Source(),
		Vertices: ld.net.VertexCount(),
		Lines:    len(ld.net.Lines()),
		Enabled:  ld.net.EnabledLines(),
		Disabled: ld.net.DisabledLines(),
	}, nil
}
