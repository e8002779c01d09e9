// Package bfs provides breadth-first traversal over a graph.Graph.
//
// What
//
//   - BFT(g, start, visit): the minimal contract. Visits every node reachable
//     from start in breadth-first order; visit returning false stops the
//     traversal immediately.
//   - Walk(g, start, opts...): the same traversal returning a Result with
//     the visit Order, the Depth (edge count from start) and the Parent of
//     every discovered node, tunable through functional options:
//   - WithContext (cancellation)
//   - WithMaxDepth (stop expanding beyond depth d)
//   - WithFilterNeighbor (skip individual curr→neighbor steps)
//   - WithOnEnqueue / WithOnDequeue (observation hooks)
//   - WithOnVisit (may abort with an error, or stop cleanly with ErrStopped)
//
// Frontier
//
//	The frontier is a FIFO queue seeded with start. A node is dequeued, its
//	visitor runs, then it is marked visited and its unseen neighbours are
//	enqueued. Nodes are de-duplicated when they are enqueued, so a node
//	reachable through several paths is still visited at most once.
//
// Early termination
//
//	When the visitor of BFT returns false (or OnVisit returns ErrStopped), the
//	whole remaining frontier is discarded: no further node is dequeued, the
//	current node is not marked visited and its neighbours are never enqueued.
//
// Determinism
//
//	Neighbours are enqueued in the adjacency order recorded by
//	graph.Connect (insertion order), so the visit sequence is fully
//	reproducible for a given construction order.
//
// Complexity (V = reachable nodes, E = their edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, the discovered set and the Result maps.
//
// Usage
//
//	bfs.BFT(g, "A", func(id string) bool {
//	    fmt.Println(id)
//	    return id != "target" // stop once the target is seen
//	})
//
//	res, err := bfs.Walk(g, "A",
//	    bfs.WithContext[string](ctx),
//	    bfs.WithMaxDepth[string](3),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors (Walk only; BFT never fails)
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      if an invalid Option is supplied (negative MaxDepth).
//   - context errors          if the context is cancelled.
//   - Wrapped user-supplied OnVisit errors (other than ErrStopped).
package bfs
