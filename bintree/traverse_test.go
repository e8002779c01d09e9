package bintree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/kata/bintree"
)

type node = bintree.Node[int, string]

// threeNodes builds 2(1, 3).
func threeNodes() *node {
	root := bintree.NewNode(2, "root")
	root.Left = bintree.NewNode(1, "left")
	root.Right = bintree.NewNode(3, "right")

	return root
}

// sevenNodes builds a complete tree keyed 1..7 in in-order.
func sevenNodes() *node {
	n := make(map[int]*node)
	for i := 1; i <= 7; i++ {
		n[i] = bintree.NewNode(i, "")
	}
	n[4].Left, n[4].Right = n[2], n[6]
	n[2].Left, n[2].Right = n[1], n[3]
	n[6].Left, n[6].Right = n[5], n[7]

	return n[4]
}

// leftChain builds a degenerate tree n, n-1, ..., 1 hanging to the left.
func leftChain(n int) *node {
	var root *node
	for i := 1; i <= n; i++ {
		next := bintree.NewNode(i, "")
		next.Left = root
		root = next
	}

	return root
}

type walkFn func(*node, bintree.Visitor[int, string])

func values(walk walkFn, root *node) []string {
	out := []string{}
	walk(root, func(n *node) bool {
		out = append(out, n.Value)
		return true
	})

	return out
}

func keys(walk walkFn, root *node) []int {
	out := []int{}
	walk(root, func(n *node) bool {
		out = append(out, n.Key())
		return true
	})

	return out
}

func TestTraversals(t *testing.T) {
	inOrder := bintree.VisitInOrder[int, string]
	preOrder := bintree.VisitPreOrder[int, string]
	postOrder := bintree.VisitPostOrder[int, string]

	tests := []struct {
		name string
		walk walkFn
		want []string
	}{
		{"in-order", inOrder, []string{"left", "root", "right"}},
		{"pre-order", preOrder, []string{"root", "left", "right"}},
		{"post-order", postOrder, []string{"left", "right", "root"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, values(tc.walk, threeNodes()))
			assert.Equal(t, []string{}, values(tc.walk, nil))
		})
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, keys(inOrder, sevenNodes()))
	assert.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, keys(preOrder, sevenNodes()))
	assert.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, keys(postOrder, sevenNodes()))
}

func TestTraversals_StopEarly(t *testing.T) {
	stopAfter := func(walk walkFn, k int) []int {
		var seen []int
		walk(sevenNodes(), func(n *node) bool {
			seen = append(seen, n.Key())
			return len(seen) < k
		})
		return seen
	}

	assert.Equal(t, []int{1, 2, 3}, stopAfter(bintree.VisitInOrder[int, string], 3))
	assert.Equal(t, []int{4, 2}, stopAfter(bintree.VisitPreOrder[int, string], 2))
	assert.Equal(t, []int{1, 3, 2, 5}, stopAfter(bintree.VisitPostOrder[int, string], 4))
}

func TestTraversals_DeepChain(t *testing.T) {
	const depth = 200000
	root := leftChain(depth)

	count := 0
	bintree.VisitPostOrder(root, func(*node) bool {
		count++
		return true
	})
	assert.Equal(t, depth, count)

	first := 0
	bintree.VisitInOrder(root, func(n *node) bool {
		first = n.Key()
		return false
	})
	assert.Equal(t, 1, first)
}

func TestNode_Mutation(t *testing.T) {
	n := bintree.NewNode("k", 1)
	n.Value = 2
	assert.Equal(t, "k", n.Key())
	assert.Equal(t, 2, n.Value)
	assert.Nil(t, n.Left)
	assert.Nil(t, n.Right)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, bintree.IsEmpty[int, string](nil))
	assert.False(t, bintree.IsEmpty(threeNodes()))

	var tree *bintree.Tree[int, string]
	assert.True(t, tree.IsEmpty())
	assert.True(t, (&bintree.Tree[int, string]{}).IsEmpty())
	assert.False(t, (&bintree.Tree[int, string]{Root: threeNodes()}).IsEmpty())
}

func TestTree_Delegates(t *testing.T) {
	tree := &bintree.Tree[int, string]{Root: threeNodes()}

	var got []string
	collect := func(n *node) bool {
		got = append(got, n.Value)
		return true
	}
	tree.VisitInOrder(collect)
	tree.VisitPreOrder(collect)
	tree.VisitPostOrder(collect)

	assert.Equal(t, []string{
		"left", "root", "right",
		"root", "left", "right",
		"left", "right", "root",
	}, got)

	assert.NotPanics(t, func() {
		var empty *bintree.Tree[int, string]
		empty.VisitInOrder(collect)
		bintree.VisitPreOrder(threeNodes(), nil)
	})
}
