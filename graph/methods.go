// Package graph: method implementations for Graph.
//
// All mutating methods take the write lock, all queries the read lock.
// Node creation is always explicit (ensureNode); a lookup never creates a node.

package graph

import (
	"sort"
)

// AddNode inserts key with an empty adjacency list.
// If the node already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph[K, T]) AddNode(key K) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(key)
}

// Connect links source to target.
//
// Both endpoints are created if missing. The target is appended to the
// source's adjacency only if it is not already there, and only in that case is
// the weight recorded: reconnecting an existing pair with a different weight
// leaves the original weight untouched.
// Unless Directed()/WithBidirectional(false) is given, target→source is
// connected the same way with the same weight.
//
// Complexity: O(deg(source) + deg(target)).
func (g *Graph[K, T]) Connect(source, target K, opts ...EdgeOption) {
	cfg := defaultEdgeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.connect(source, target, cfg.weight)
	if cfg.bidirectional {
		g.connect(target, source, cfg.weight)
	}
}

// IsEdgePresent reports whether the directed edge source→target exists,
// regardless of how it was created.
// Complexity: O(1).
func (g *Graph[K, T]) IsEdgePresent(source, target K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edges[Edge[K]{Source: source, Target: target}]

	return ok
}

// Weight returns the weight of source→target and whether that edge exists.
// Complexity: O(1).
func (g *Graph[K, T]) Weight(source, target K) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.edges[Edge[K]{Source: source, Target: target}]

	return w, ok
}

// ConnectedNodes returns the adjacency of node in insertion order.
//
// The result is a copy. It is empty both for an isolated node and for an
// unknown one; use Contains to tell the two apart.
// Complexity: O(deg(node)).
func (g *Graph[K, T]) ConnectedNodes(node K) []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.nodes[node]
	if !ok {
		return []K{}
	}
	out := make([]K, len(adj))
	copy(out, adj)

	return out
}

// Contains reports whether node has been added to the graph.
// Complexity: O(1).
func (g *Graph[K, T]) Contains(node K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[node]

	return ok
}

// Size returns the number of distinct node keys.
// Complexity: O(1).
func (g *Graph[K, T]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Nodes returns all node keys in the order they were first added.
// Complexity: O(V).
func (g *Graph[K, T]) Nodes() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// EdgeCount returns the number of directed edges. A bidirectional Connect
// between two distinct nodes accounts for two.
// Complexity: O(1).
func (g *Graph[K, T]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns all directed edges sorted by Source, then Target.
// Complexity: O(E·log E).
func (g *Graph[K, T]) Edges() []Edge[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[K], 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})

	return out
}

// Data returns the payload stored for key, if any.
// Complexity: O(1).
func (g *Graph[K, T]) Data(key K) (T, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.data[key]

	return v, ok
}

// SetData stores data for key, overwriting any previous payload.
// key does not need to be a known node.
// Complexity: O(1).
func (g *Graph[K, T]) SetData(key K, data T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.data[key] = data
}

// DeleteData removes the payload stored for key. Missing keys are ignored.
// Complexity: O(1).
func (g *Graph[K, T]) DeleteData(key K) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.data, key)
}

// Internal helper methods:
////////////////////

// ensureNode makes nodes[key] present. Caller holds the write lock.
func (g *Graph[K, T]) ensureNode(key K) {
	if _, ok := g.nodes[key]; ok {
		return
	}
	g.nodes[key] = []K{}
	g.order = append(g.order, key)
}

// connect records the single directed edge source→target unless target is
// already adjacent to source. Caller holds the write lock.
func (g *Graph[K, T]) connect(source, target K, weight float64) {
	g.ensureNode(source)
	g.ensureNode(target)

	for _, k := range g.nodes[source] {
		if k == target {
			return // already connected; weight is not rewritten
		}
	}
	g.nodes[source] = append(g.nodes[source], target)
	g.edges[Edge[K]{Source: source, Target: target}] = weight
}
