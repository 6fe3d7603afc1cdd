// Package bfs provides breadth-first search over any core.Structure,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (step count) from a start node.
//   - Works on both adjacency views of a half-edge graph:
//   - g.Primal(): vertices joined by edges
//   - g.Dual():   faces joined across shared edges
//   - Returns a BFSResult containing Order, Depth and Parent.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual steps via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors come back in rotation order around a vertex (or loop order
//	around a face), and BFS enqueues them in that order, so the visit
//	sequence is reproducible for a given construction sequence.
//
// Complexity (V = |Nodes|, E = |adjacencies|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue (gods arrayqueue), Depth, Parent and visited set.
//
// Usage
//
//	res, err := bfs.BFS(g.Primal(), start,
//	    bfs.WithMaxDepth[core.VertexHandle](3),
//	    bfs.WithOnVisit(func(v core.VertexHandle, depth int) error { return nil }),
//	)
//
//	path, err := res.PathTo(goal)
//
// Errors
//
//   - ErrGraphNil             if the structure is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if Neighbors fails for any node.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
