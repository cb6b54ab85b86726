// Package bfs provides breadth-first search over a core.Adjacency,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/deepening/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem[N comparable] struct {
	id    N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	graph   core.Adjacency[N]
	opts    BFSOptions[N]
	ctx     context.Context
	queue   []queueItem[N]
	visited map[N]bool
	res     *BFSResult[N]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// the context error on cancellation, or any user-supplied hook error.
// A start vertex the graph does not know is visited as a sink.
func BFS[N comparable](g core.Adjacency[N], start N, opts ...Option[N]) (*BFSResult[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Prepare walker
	w := &walker[N]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[N]bool),
		res: &BFSResult[N]{
			Depth:  make(map[N]int),
			Parent: make(map[N]N),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker[N]) enqueue(id N, d int, parent *N) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != nil {
		w.res.Parent[id] = *parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[N]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N]) dequeue() queueItem[N] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[N]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// unseen successor in declared order.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Successors(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, &item.id)
		}
	}
}
