// SPDX-License-Identifier: MIT

package commands

import (
	"cmp"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/radialgrid/radial"
)

func newDownstreamCmd(st *state) *cobra.Command {
	var edge string
	cmd := &cobra.Command{
		Use:   "downstream",
		Short: "List the buses that lose supply when a line opens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return st.run(cmd.OutOrStdout(), downstream[int](edge), downstream[string](edge))
		},
	}
	cmd.Flags().StringVarP(&edge, "edge", "e", "", "line ID")
	_ = cmd.MarkFlagRequired("edge")

	return cmd
}

func downstream[ID cmp.Ordered](edge string) handler[ID] {
	return func(ld *loaded[ID]) (any, error) {
		id, err := parseID[ID](edge, radial.ErrUnknownEdge)
		if err != nil {
			return nil, err
		}
		down, err := ld.net.DownstreamVertices(id)
		if err != nil {
			return nil, err
		}

		return struct {
			Edge       ID   `json:"edge" yaml:"edge"`
			Downstream []ID `json:"downstream" yaml:"downstream"`
		}{id, down}, nil
	}
}

func newAlternativesCmd(st *state) *cobra.Command {
	var edge string
	cmd := &cobra.Command{
		Use:   "alternatives",
		Short: "List open lines that can replace a line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return st.run(cmd.OutOrStdout(), alternatives[int](edge), alternatives[string](edge))
		},
	}
	cmd.Flags().StringVarP(&edge, "edge", "e", "", "line ID")
	_ = cmd.MarkFlagRequired("edge")

	return cmd
}

func alternatives[ID cmp.Ordered](edge string) handler[ID] {
	return func(ld *loaded[ID]) (any, error) {
		id, err := parseID[ID](edge, radial.ErrUnknownEdge)
		if err != nil {
			return nil, err
		}
		alts, err := ld.net.AlternativeEdges(id)
		if err != nil {
			return nil, err
		}

		return struct {
			Edge         ID   `json:"edge" yaml:"edge"`
			Alternatives []ID `json:"alternatives" yaml:"alternatives"`
		}{id, alts}, nil
	}
}

func newPathCmd(st *state) *cobra.Command {
	var vertex string
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show the closed lines from the source to a bus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return st.run(cmd.OutOrStdout(), path[int](vertex), path[string](vertex))
		},
	}
	cmd.Flags().StringVar(&vertex, "vertex", "", "bus ID")
	_ = cmd.MarkFlagRequired("vertex")

	return cmd
}

func path[ID cmp.Ordered](vertex string) handler[ID] {
	return func(ld *loaded[ID]) (any, error) {
		id, err := parseID[ID](vertex, radial.ErrUnknownVertex)
		if err != nil {
			return nil, err
		}
		lines, err := ld.net.PathFromSource(id)
		if err != nil {
			return nil, err
		}

		return struct {
			Vertex ID   `json:"vertex" yaml:"vertex"`
			Lines  []ID `json:"lines" yaml:"lines"`
		}{id, lines}, nil
	}
}
