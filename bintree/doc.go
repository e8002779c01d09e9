// Package bintree provides a minimal binary tree with visitor-driven
// in-order, pre-order and post-order traversals.
//
// Traversals are iterative and keep an explicit stack, so an unbalanced
// tree of any height is walked without growing the goroutine stack. Every
// visitor returns a bool; false stops the walk at once.
//
//	root := bintree.NewNode(2, "root")
//	root.Left = bintree.NewNode(1, "left")
//	root.Right = bintree.NewNode(3, "right")
//
//	bintree.VisitInOrder(root, func(n *bintree.Node[int, string]) bool {
//	    fmt.Println(n.Key(), n.Value)
//	    return true
//	})
package bintree
