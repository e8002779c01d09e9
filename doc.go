// Package kata is a collection of small, independently usable graph and
// array algorithms.
//
// Packages
//
//	graph/     generic adjacency-list Graph[K, T] with weighted, directed or
//	            bidirectional edges and per-node payloads
//	bfs/       breadth-first traversal over graph.Graph (BFT visitor API and
//	            Walk with hooks, depth limits and path reconstruction)
//	maxheap/   binary max-heap with insert, extract and arbitrary removal
//	bintree/   binary tree nodes with iterative in/pre/post-order visitors
//	peak/      1D and 2D peak finding, including gonum matrices
//	merge/     k-way merge of sorted slices
//	builder/   deterministic graph fixtures (path, cycle, star, wheel, grid, ...)
//	cmd/kata/  command-line entry point
//
// Quick example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := graph.FromList[string, struct{}](
//	    graph.Link("A", "B"), graph.Link("A", "C"),
//	    graph.Link("B", "D"), graph.Link("C", "D"),
//	)
//	bfs.BFT(g, "A", func(id string) bool { fmt.Println(id); return true })
//
//	go get github.com/katalvlaran/kata
package kata
