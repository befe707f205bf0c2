// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/radialgrid/bfs"
	"github.com/katalvlaran/radialgrid/core"
)

// ExampleBFS shows how hiding a single line reveals the buses it feeds.
func ExampleBFS() {
	g := core.NewGraph[int]()
	_ = g.AddEdge(1, 0, 1)
	_ = g.AddEdge(2, 1, 2)
	_ = g.AddEdge(3, 2, 3)

	res, _ := bfs.BFS(g, 0, bfs.WithSkipEdge(2))
	for _, v := range g.Vertices() {
		if !res.Visited(v) {
			fmt.Println("unsupplied:", v)
		}
	}

	// Output:
	// unsupplied: 2
	// unsupplied: 3
}
