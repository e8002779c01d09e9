package maxheap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// New returns a heap holding a copy of items; the caller's slice is never
// modified. A nil or empty slice yields an empty heap.
//
// Construction makes one top-down pass that pushes larger children upwards
// and then a bottom-up sift-down pass, which together establish the heap
// property for any input in O(n).
func New[T constraints.Ordered](items []T, opts ...Option) *MaxHeap[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &MaxHeap[T]{
		data: make([]T, len(items)),
		log:  cfg.log,
	}
	copy(h.data, items)

	if len(h.data) > 1 {
		h.promote(0)
		for i := len(h.data)/2 - 1; i >= 0; i-- {
			h.siftDown(i)
		}
	}
	h.debug("heapified", "items", h.data)

	return h
}

// Insert adds item, keeping the heap property.
func (h *MaxHeap[T]) Insert(item T) {
	h.data = append(h.data, item)
	h.siftUp(len(h.data) - 1)
}

// Max returns the largest item without removing it.
func (h *MaxHeap[T]) Max() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}

	return h.data[0], true
}

// Extract removes and returns the largest item.
func (h *MaxHeap[T]) Extract() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}

	return h.removeAt(0), true
}

// Remove deletes the first stored item equal to item (in layout order) and
// returns it. It fails with ErrEmptyHeap or ErrItemNotFound.
func (h *MaxHeap[T]) Remove(item T) (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	for i, v := range h.data {
		if v == item {
			return h.removeAt(i), nil
		}
	}

	var zero T
	return zero, fmt.Errorf("%w: %v", ErrItemNotFound, item)
}

// Size returns the number of stored items.
func (h *MaxHeap[T]) Size() int {
	return len(h.data)
}

// Items returns a copy of the internal array layout.
func (h *MaxHeap[T]) Items() []T {
	out := make([]T, len(h.data))
	copy(out, h.data)

	return out
}

// removeAt moves the last element into slot i, shrinks the heap and restores
// order around i.
func (h *MaxHeap[T]) removeAt(i int) T {
	last := len(h.data) - 1
	removed := h.data[i]
	h.data[i] = h.data[last]
	h.data = h.data[:last]

	if i < last {
		if !h.siftDown(i) {
			h.siftUp(i)
		}
	}

	return removed
}

// promote is the top-down pass of New. Each child is compared with the value
// its parent held on entry; the subtree is then processed recursively, so the
// recursion depth is bounded by the tree height.
func (h *MaxHeap[T]) promote(i int) {
	n := len(h.data)
	l, r := 2*i+1, 2*i+2
	if l >= n {
		return
	}
	v, lv := h.data[i], h.data[l]
	if v < lv {
		h.swap(i, l)
		h.debug("promote", "parent", i, "child", l)
	}
	h.promote(l)

	if r >= n {
		return
	}
	if rv := h.data[r]; v < rv {
		h.swap(i, r)
		h.debug("promote", "parent", i, "child", r)
	}
	h.promote(r)
}

// siftUp moves the element at i towards the root while it is strictly
// greater than its parent.
func (h *MaxHeap[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !(h.data[i] > h.data[p]) {
			return
		}
		h.swap(i, p)
		i = p
	}
}

// siftDown moves the element at i towards the leaves, swapping with the
// larger child. It reports whether the element moved.
func (h *MaxHeap[T]) siftDown(i int) bool {
	n := len(h.data)
	start := i
	for {
		largest := i
		if l := 2*i + 1; l < n && h.data[l] > h.data[largest] {
			largest = l
		}
		if r := 2*i + 2; r < n && h.data[r] > h.data[largest] {
			largest = r
		}
		if largest == i {
			return i != start
		}
		h.swap(i, largest)
		i = largest
	}
}

func (h *MaxHeap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

func (h *MaxHeap[T]) debug(msg string, args ...any) {
	if h.log != nil {
		h.log.Debug("maxheap: "+msg, args...)
	}
}
