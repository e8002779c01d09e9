// Package graph defines the generic Graph, Edge and EdgeOption types and the
// NewGraph constructor.
package graph

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// DefaultEdgeWeight is the weight recorded by Connect when WithWeight is not given.
const DefaultEdgeWeight = 1.0

// Edge is a directed connection Source→Target. It is a comparable value type
// and is used as the key of the weight map, so two Edges are equal iff both
// endpoints are equal.
type Edge[K constraints.Ordered] struct {
	// Source is the key of the node the edge leaves.
	Source K

	// Target is the key of the node the edge enters.
	Target K
}

// Reverse returns the edge pointing the other way.
func (e Edge[K]) Reverse() Edge[K] {
	return Edge[K]{Source: e.Target, Target: e.Source}
}

// edgeConfig holds the per-call settings of Connect.
type edgeConfig struct {
	weight        float64
	bidirectional bool
}

// defaultEdgeConfig returns weight DefaultEdgeWeight, bidirectional.
func defaultEdgeConfig() edgeConfig {
	return edgeConfig{weight: DefaultEdgeWeight, bidirectional: true}
}

// EdgeOption configures a single Connect call.
type EdgeOption func(*edgeConfig)

// WithWeight sets the weight recorded for the new edge(s).
// Any float64 is accepted; weights are not validated.
func WithWeight(w float64) EdgeOption {
	return func(c *edgeConfig) { c.weight = w }
}

// WithBidirectional selects whether Connect also records target→source.
func WithBidirectional(bidirectional bool) EdgeOption {
	return func(c *edgeConfig) { c.bidirectional = bidirectional }
}

// Directed is shorthand for WithBidirectional(false).
func Directed() EdgeOption {
	return WithBidirectional(false)
}

// Graph is a generic adjacency-list graph.
//
// nodes holds the adjacency of every known key, in insertion order.
// order remembers the first-insertion order of keys for deterministic Nodes().
// edges maps each directed Edge to its weight; Edge{s,t} is present iff t is
// in nodes[s]. data holds the optional payloads.
// mu guards all four maps.
type Graph[K constraints.Ordered, T any] struct {
	mu sync.RWMutex

	nodes map[K][]K
	order []K
	edges map[Edge[K]]float64
	data  map[K]T
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[K constraints.Ordered, T any]() *Graph[K, T] {
	return &Graph[K, T]{
		nodes: make(map[K][]K),
		edges: make(map[Edge[K]]float64),
		data:  make(map[K]T),
	}
}
