package bintree_test

import (
	"fmt"

	"github.com/katalvlaran/kata/bintree"
)

func ExampleVisitInOrder() {
	root := bintree.NewNode(2, "root")
	root.Left = bintree.NewNode(1, "left")
	root.Right = bintree.NewNode(3, "right")

	bintree.VisitInOrder(root, func(n *bintree.Node[int, string]) bool {
		fmt.Println(n.Key(), n.Value)
		return true
	})
	// Output:
	// 1 left
	// 2 root
	// 3 right
}
