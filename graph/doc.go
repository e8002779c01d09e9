// Package graph provides a generic, in-memory adjacency-list Graph with
// weighted, optionally bidirectional edges and an optional payload per node.
//
// The Graph G = (V,E) is parameterised by:
//
//   - K: the node key, any ordered type (constraints.Ordered), so keys can be
//     compared with <, > and == and used as map keys.
//   - T: an arbitrary per-node payload, stored separately from the topology.
//
// Storage:
//
//	nodes[key]            = []K        // adjacency in insertion order, no duplicates
//	edges[Edge{from,to}]  = weight     // one entry per directed edge
//	data[key]             = T          // optional payload
//
// Adjacency is kept as ordered slices rather than sets: traversal (the dominant
// access pattern) iterates neighbours cheaply and deterministically, while the
// membership check performed by Connect costs O(deg(v)).
//
// Edges are always directed internally. Connect with the default options
// inserts both Edge{s,t} and Edge{t,s} with the same weight; Directed() (or
// WithBidirectional(false)) inserts only Edge{s,t}.
//
// Core Methods:
//
//	AddNode(key)                       // O(1), idempotent
//	Connect(s, t, opts...)             // O(deg(s)+deg(t)), idempotent per edge
//	IsEdgePresent(s, t) bool           // O(1), directional
//	Weight(s, t) (float64, bool)       // O(1)
//	ConnectedNodes(n) []K              // O(deg(n)) copy; empty for unknown nodes
//	Contains(n) bool                   // O(1)
//	Size() int                         // O(1), number of distinct nodes
//	Nodes() []K                        // O(V), first-insertion order
//	Data(k) (T, bool) / SetData / DeleteData
//
// Construction from a literal description is done with FromList:
//
//	g := graph.FromList[string, struct{}](
//	    graph.Node("lonely"),
//	    graph.Link("A", "B"),                 // weight 1, both directions
//	    graph.WeightedLink("B", "C", 2.5),    // weight 2.5, both directions
//	    graph.Arc("C", "D", 4, false),        // weight 4, C→D only
//	)
//
// Nodes and edges are never removed: the structure only grows.
//
// Concurrency: every method takes the Graph's RWMutex, so one instance may be
// shared between goroutines. Traversals in package bfs read through the public
// API and never hold the lock while calling user code.
package graph
