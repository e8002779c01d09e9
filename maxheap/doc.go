// Package maxheap implements a binary max-heap over any ordered type.
//
// The heap is stored as a complete binary tree laid out in a slice: the
// children of index i live at 2i+1 and 2i+2, its parent at (i-1)/2. Every
// parent is greater than or equal to its children, so the maximum is always
// at index 0.
//
// Operations
//
//   - New(items)   O(n)      builds a heap from a copy of items
//   - Insert(x)    O(log n)  appends and bubbles up
//   - Max()        O(1)      peeks at the root
//   - Extract()    O(log n)  removes and returns the root
//   - Remove(x)    O(n)      removes the first element equal to x
//   - Size()       O(1)
//   - Items()      O(n)      snapshot of the internal layout
//
// Empty-heap queries report absence through a boolean or a sentinel error
// rather than a zero value, so the zero value of T is a legitimate item.
//
// A MaxHeap is not safe for concurrent use.
package maxheap
