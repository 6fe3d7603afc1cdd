// Package dfs implements depth-first search (single-source and forest) over a core.Structure.
//
// Key features:
//   - DFS(s, start, opts...): traverse from a root or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// The walk is iterative on an explicit gods arraystack, so deep meshes
// (long strips, large grids) never grow the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E), plus overhead of hooks and filters.
//   - Memory: O(V) for the frame stack and metadata maps.
package dfs

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/hedgegraph/core"
)

// frame is one entry of the explicit DFS stack: a node, its depth,
// its neighbor snapshot, and the cursor into that snapshot.
type frame[N comparable] struct {
	node  N
	depth int
	nbrs  []N
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[N comparable] struct {
	graph core.Structure[N]
	opts  DFSOptions[N]
	state map[N]int
	stack *arraystack.Stack
	res   *DFSResult[N]
}

// DFS performs depth-first search on s. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from start.
// Returns DFSResult or an error if aborted by context, hook, or structure failure.
//
// Use g.Primal() to walk vertices over edges and g.Dual() to walk faces
// across shared edges.
func DFS[N comparable](s core.Structure[N], start N, opts ...Option[N]) (*DFSResult[N], error) {
	// 1. Validate input
	if s == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions[N]()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !s.Has(start) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hint
	nodes := s.Nodes()
	w := newWalker(s, dopts, len(nodes))

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, n := range nodes {
			if w.state[n] == White {
				if err := w.traverse(n); err != nil {
					return w.res, err
				}
			}
		}
	} else if err := w.traverse(start); err != nil {
		return w.res, err
	}

	return w.res, nil
}

func newWalker[N comparable](s core.Structure[N], opts DFSOptions[N], n int) *dfsWalker[N] {
	return &dfsWalker[N]{
		graph: s,
		opts:  opts,
		state: make(map[N]int, n),
		stack: arraystack.New(),
		res: &DFSResult[N]{
			Order:   make([]N, 0, n),
			Depth:   make(map[N]int, n),
			Parent:  make(map[N]N, n),
			Visited: make(map[N]bool, n),
		},
	}
}

// traverse runs one DFS tree rooted at root.
func (w *dfsWalker[N]) traverse(root N) error {
	if err := w.discover(root, 0); err != nil {
		return w.abort(err)
	}

	for !w.stack.Empty() {
		select {
		case <-w.opts.Ctx.Done():
			return w.abort(w.opts.Ctx.Err())
		default:
		}

		top, _ := w.stack.Peek()
		f := top.(*frame[N])

		if f.next < len(f.nbrs) {
			nb := f.nbrs[f.next]
			f.next++

			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(f.node, nb) {
				w.res.SkippedNeighbors++
				continue
			}
			if w.state[nb] != White {
				continue
			}
			if w.opts.MaxDepth >= 0 && f.depth+1 > w.opts.MaxDepth {
				continue
			}
			w.res.Parent[nb] = f.node
			if err := w.discover(nb, f.depth+1); err != nil {
				return w.abort(err)
			}
			continue
		}

		// all neighbors explored: finish the node
		w.stack.Pop()
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(f.node); err != nil {
				return w.abort(fmt.Errorf("dfs: OnExit hook for %v: %w", f.node, err))
			}
		}
		w.state[f.node] = Black
		w.res.Order = append(w.res.Order, f.node)
	}

	return nil
}

// discover marks n Gray, runs the pre-order hook, and pushes its frame.
func (w *dfsWalker[N]) discover(n N, depth int) error {
	w.state[n] = Gray
	w.res.Visited[n] = true
	w.res.Depth[n] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", n, err)
		}
	}

	nbs, err := w.graph.Neighbors(n)
	if err != nil {
		return fmt.Errorf("%w: Neighbors(%v): %v", ErrNeighbors, n, err)
	}
	w.stack.Push(&frame[N]{node: n, depth: depth, nbrs: nbs})

	return nil
}

// abort clears the post-order and the stack before surfacing err.
func (w *dfsWalker[N]) abort(err error) error {
	w.res.Order = nil
	w.stack.Clear()

	return err
}
