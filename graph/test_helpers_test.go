package graph_test

import (
	"github.com/katalvlaran/kata/graph"
)

// testGraph is the fixture type shared by the graph tests.
type testGraph = graph.Graph[string, string]

func emptyGraph() *testGraph {
	return graph.NewGraph[string, string]()
}

func oneNodeGraph() *testGraph {
	return graph.FromList[string, string](graph.Node("0"))
}

// simpleGraph is a star 0–{1,2,3}.
func simpleGraph() *testGraph {
	return graph.FromList[string, string](
		graph.Link("0", "1"),
		graph.Link("0", "2"),
		graph.Link("0", "3"),
	)
}

// simpleDirectedGraph is a star 0→{1,2,3}.
func simpleDirectedGraph() *testGraph {
	return graph.FromList[string, string](
		graph.Arc("0", "1", graph.DefaultEdgeWeight, false),
		graph.Arc("0", "2", graph.DefaultEdgeWeight, false),
		graph.Arc("0", "3", graph.DefaultEdgeWeight, false),
	)
}

// complexGraph has 12 nodes in a single component, with a 0–7–11 triangle.
func complexGraph() *testGraph {
	g := graph.NewGraph[string, string]()
	for _, target := range []string{"7", "9", "11"} {
		g.Connect("0", target)
	}
	for _, target := range []string{"10", "8"} {
		g.Connect("9", target)
	}
	// reconnecting is a no-op
	for _, target := range []string{"10", "8"} {
		g.Connect("9", target)
	}
	g.Connect("8", "12")
	g.Connect("12", "2")
	g.Connect("7", "11")
	g.Connect("7", "6")
	g.Connect("3", "2")
	g.Connect("3", "4")
	g.Connect("6", "5")

	return g
}
