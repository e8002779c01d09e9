// Package bfs implements breadth-first traversal over a graph.Graph,
// returning visit order, hop distances, and parent links.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/kata/graph"
)

// queueItem pairs a node with its BFS depth.
type queueItem[K constraints.Ordered] struct {
	id    K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K constraints.Ordered, T any] struct {
	graph      *graph.Graph[K, T]
	opts       Options[K]
	ctx        context.Context
	queue      []queueItem[K]
	discovered map[K]bool
	res        *Result[K]
}

// BFT visits every node reachable from start in breadth-first order,
// calling visit once per node. When visit returns false the traversal ends
// at once. A start node absent from g (or a nil g) visits nothing.
func BFT[K constraints.Ordered, T any](g *graph.Graph[K, T], start K, visit Visitor[K]) {
	if visit == nil {
		return
	}
	_, _ = Walk(g, start, WithOnVisit(func(id K, _ int) error {
		if !visit(id) {
			return ErrStopped
		}
		return nil
	}))
}

// Walk runs breadth-first traversal on g from start, applying any number of
// functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation,
// or the wrapped OnVisit error. When OnVisit returns ErrStopped the partial
// Result is returned with a nil error.
func Walk[K constraints.Ordered, T any](g *graph.Graph[K, T], start K, opts ...Option[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Contains(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.Size()
	w := &walker[K, T]{
		graph:      g,
		opts:       o,
		ctx:        o.Ctx,
		queue:      make([]queueItem[K], 0, n),
		discovered: make(map[K]bool, n),
		res: &Result[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	w.enqueue(start, 0)
	err := w.loop()
	if errors.Is(err, ErrStopped) {
		err = nil
	}

	return w.res, err
}

// enqueue marks id discovered at depth d, calls OnEnqueue, and adds it to
// the queue.
func (w *walker[K, T]) enqueue(id K, d int) {
	w.discovered[id] = true
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[K]{id: id, depth: d})
}

// loop processes the queue until empty, error, stop, or cancellation.
func (w *walker[K, T]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			w.queue = w.queue[:0]
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[K, T]) dequeue() queueItem[K] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit calls OnVisit and records the node in Order once it succeeded.
func (w *walker[K, T]) visit(item queueItem[K]) error {
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		if errors.Is(err, ErrStopped) {
			return err
		}
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}
	w.res.Order = append(w.res.Order, item.id)

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// undiscovered neighbour in adjacency order.
func (w *walker[K, T]) enqueueNeighbors(item queueItem[K]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.ConnectedNodes(item.id) {
		if w.discovered[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.res.Parent[nbr] = item.id
		w.enqueue(nbr, nextDepth)
	}
}
