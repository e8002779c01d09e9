package bintree

import "golang.org/x/exp/constraints"

// Node is a single tree node. Its key is fixed at creation; the value and
// the children can be changed freely.
type Node[K constraints.Ordered, V any] struct {
	key   K
	Value V
	Left  *Node[K, V]
	Right *Node[K, V]
}

// NewNode returns a childless node.
func NewNode[K constraints.Ordered, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{key: key, Value: value}
}

// Key returns the node's key.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Visitor is called once per node; returning false stops the traversal.
type Visitor[K constraints.Ordered, V any] func(n *Node[K, V]) bool

// Tree wraps an optional root.
type Tree[K constraints.Ordered, V any] struct {
	Root *Node[K, V]
}

// IsEmpty reports whether the tree has no node.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || IsEmpty(t.Root)
}

// VisitInOrder walks the tree left, root, right.
func (t *Tree[K, V]) VisitInOrder(visit Visitor[K, V]) {
	if t != nil {
		VisitInOrder(t.Root, visit)
	}
}

// VisitPreOrder walks the tree root, left, right.
func (t *Tree[K, V]) VisitPreOrder(visit Visitor[K, V]) {
	if t != nil {
		VisitPreOrder(t.Root, visit)
	}
}

// VisitPostOrder walks the tree left, right, root.
func (t *Tree[K, V]) VisitPostOrder(visit Visitor[K, V]) {
	if t != nil {
		VisitPostOrder(t.Root, visit)
	}
}
