package bintree

import "golang.org/x/exp/constraints"

// IsEmpty reports whether root denotes an empty tree.
func IsEmpty[K constraints.Ordered, V any](root *Node[K, V]) bool {
	return root == nil
}

// VisitInOrder calls visit for every node reachable from root in
// left, node, right order. A nil root or visitor visits nothing.
func VisitInOrder[K constraints.Ordered, V any](root *Node[K, V], visit Visitor[K, V]) {
	if visit == nil {
		return
	}
	var stack []*Node[K, V]
	cur := root
	for cur != nil || len(stack) > 0 {
		// descend to the leftmost unvisited node
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.Left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(cur) {
			return
		}
		cur = cur.Right
	}
}

// VisitPreOrder calls visit for every node reachable from root in
// node, left, right order.
func VisitPreOrder[K constraints.Ordered, V any](root *Node[K, V], visit Visitor[K, V]) {
	if root == nil || visit == nil {
		return
	}
	stack := []*Node[K, V]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n) {
			return
		}
		// right first so that left is popped first
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}
}

// VisitPostOrder calls visit for every node reachable from root in
// left, right, node order.
func VisitPostOrder[K constraints.Ordered, V any](root *Node[K, V], visit Visitor[K, V]) {
	if visit == nil {
		return
	}
	var (
		stack []*Node[K, V]
		last  *Node[K, V]
	)
	cur := root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.Left
		}
		top := stack[len(stack)-1]
		// right subtree pending
		if top.Right != nil && top.Right != last {
			cur = top.Right
			continue
		}
		stack = stack[:len(stack)-1]
		if !visit(top) {
			return
		}
		last = top
	}
}
