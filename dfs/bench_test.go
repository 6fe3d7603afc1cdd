package dfs_test

import (
	"testing"

	"github.com/katalvlaran/hedgegraph/builder"
	"github.com/katalvlaran/hedgegraph/core"
	"github.com/katalvlaran/hedgegraph/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on a linear chain of 10,000 vertices.
// The walk is iterative, so depth does not grow the goroutine stack.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := core.NewPlain()
	prev := g.AddVertex()
	start := prev
	for i := 1; i < 10000; i++ {
		v := g.AddVertex()
		_, _ = g.AddEdge(prev, v)
		prev = v
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g.Primal(), start)
	}
}

// BenchmarkComponents_GridDual measures face-patch discovery on a 64×64 lattice.
func BenchmarkComponents_GridDual(b *testing.B) {
	g := build(b, nil, builder.Grid(64, 64))
	dual := g.Dual()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Components(dual)
	}
}
