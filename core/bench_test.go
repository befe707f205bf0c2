// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/katalvlaran/radialgrid/core"
)

// BenchmarkGraph_AddEdgeChain measures building a 10,000-vertex chain.
func BenchmarkGraph_AddEdgeChain(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g := core.NewGraph[int]()
		for v := 0; v < 10000; v++ {
			_ = g.AddEdge(v, v, v+1)
		}
	}
}

// BenchmarkGraph_Clone measures deep-copying a 10,000-edge chain.
func BenchmarkGraph_Clone(b *testing.B) {
	g := core.NewGraph[int]()
	for v := 0; v < 10000; v++ {
		_ = g.AddEdge(v, v, v+1)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
