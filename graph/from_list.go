package graph

import (
	"golang.org/x/exp/constraints"
)

// Entry describes one element of a FromList literal: either a single isolated
// node or a connection with its weight and direction.
// Build entries with Node, Link, WeightedLink or Arc.
type Entry[K constraints.Ordered] struct {
	source K
	target K
	isNode bool
	opts   []EdgeOption
}

// Node returns an Entry that adds key as an isolated node.
func Node[K constraints.Ordered](key K) Entry[K] {
	return Entry[K]{source: key, isNode: true}
}

// Link returns an Entry connecting source and target in both directions with
// DefaultEdgeWeight.
func Link[K constraints.Ordered](source, target K) Entry[K] {
	return Entry[K]{source: source, target: target}
}

// WeightedLink returns an Entry connecting source and target in both
// directions with weight w.
func WeightedLink[K constraints.Ordered](source, target K, w float64) Entry[K] {
	return Entry[K]{source: source, target: target, opts: []EdgeOption{WithWeight(w)}}
}

// Arc returns an Entry connecting source to target with weight w; the reverse
// edge is added only if bidirectional is true.
func Arc[K constraints.Ordered](source, target K, w float64, bidirectional bool) Entry[K] {
	return Entry[K]{
		source: source,
		target: target,
		opts:   []EdgeOption{WithWeight(w), WithBidirectional(bidirectional)},
	}
}

// FromList builds a new Graph by applying entries in order.
// Node entries call AddNode; every other entry calls Connect with the weight
// and direction it carries (defaults: DefaultEdgeWeight, bidirectional).
// Complexity: O(Σ cost of each AddNode/Connect).
func FromList[K constraints.Ordered, T any](entries ...Entry[K]) *Graph[K, T] {
	g := NewGraph[K, T]()
	for _, e := range entries {
		if e.isNode {
			g.AddNode(e.source)
			continue
		}
		g.Connect(e.source, e.target, e.opts...)
	}

	return g
}
