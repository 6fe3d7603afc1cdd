// Package bfs provides breadth-first search over a core.Structure,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/katalvlaran/hedgegraph/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	graph   core.Structure[N]
	opts    BFSOptions[N]
	ctx     context.Context
	queue   *arrayqueue.Queue
	visited map[N]bool
	res     *BFSResult[N]
}

// BFS runs breadth-first search on s starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for structure failures,
// or any user-supplied hook error.
//
// Use g.Primal() to walk vertices over edges and g.Dual() to walk faces
// across shared edges.
func BFS[N comparable](s core.Structure[N], start N, opts ...Option[N]) (*BFSResult[N], error) {
	if s == nil {
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

	// Validate start node
	if !s.Has(start) {
		return nil, ErrStartVertexNotFound
	}

	n := len(s.Nodes())
	w := &walker[N]{
		graph:   s,
		opts:    o,
		ctx:     o.Ctx,
		queue:   arrayqueue.New(),
		visited: make(map[N]bool, n),
		res: &BFSResult[N]{
			Order:  make([]N, 0, n),
			Depth:  make(map[N]int, n),
			Parent: make(map[N]N, n),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue marks n visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker[N]) enqueue(n N, d int, parent *N) {
	w.visited[n] = true
	w.res.Depth[n] = d
	if parent != nil {
		w.res.Parent[n] = *parent
	}
	w.opts.OnEnqueue(n, d)
	w.queue.Enqueue(queueItem[N]{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for !w.queue.Empty() {
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
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N]) dequeue() queueItem[N] {
	v, _ := w.queue.Dequeue()
	item := v.(queueItem[N])
	w.opts.OnDequeue(item.node, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[N]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
	}

	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) error {
	neighbors, err := w.graph.Neighbors(item.node)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %v", ErrNeighbors, item.node, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, &item.node)
		}
	}

	return nil
}
