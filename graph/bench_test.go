// Package graph_test provides benchmarks for graph.Graph operations.
package graph_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/kata/graph"
)

// BenchmarkConnect_Star measures Connect from a single hub, where the
// membership scan grows with the hub's degree.
func BenchmarkConnect_Star(b *testing.B) {
	g := graph.NewGraph[string, struct{}]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Connect("Root", "N"+strconv.Itoa(i%1000))
	}
}

// BenchmarkConnect_Chain measures Connect on a path, where degrees stay at 2.
func BenchmarkConnect_Chain(b *testing.B) {
	g := graph.NewGraph[int, struct{}]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Connect(i, i+1, graph.WithWeight(float64(i)))
	}
}

// BenchmarkConnectedNodes measures the adjacency copy for a hub of 1000 nodes.
func BenchmarkConnectedNodes(b *testing.B) {
	g := graph.NewGraph[int, struct{}]()
	for i := 1; i <= 1000; i++ {
		g.Connect(0, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedNodes(0)
	}
}
