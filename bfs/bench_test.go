package bfs_test

import (
	"testing"

	"github.com/katalvlaran/srsearch/bfs"
	"github.com/katalvlaran/srsearch/graph"
)

// BenchmarkSearch_Chain measures a search along a linear chain of N nodes.
func BenchmarkSearch_Chain(b *testing.B) {
	const N = 10000
	g := graph.Chain(N)

	b.ReportAllocs()
	b.SetBytes(int64(N + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = bfs.Search(g, "N0", "N9999")
	}
}

// BenchmarkSearch_BinaryTree runs BFS on a complete binary tree of depth 10
// (1023 nodes) towards the last leaf, with no switch signals.
func BenchmarkSearch_BinaryTree(b *testing.B) {
	const depth = 10
	g := graph.BinaryTree(depth)
	nodeCount := (1 << depth) - 1

	b.ReportAllocs()
	b.SetBytes(int64(nodeCount + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = bfs.Search(g, "T-1", "T-1023", bfs.WithMemoryThreshold(nodeCount))
	}
}
