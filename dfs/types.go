// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// full-structure (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Visitation colors used by the walker.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the DFS stack (visiting).
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil structure is passed to DFS,
	// Components, or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start node does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrNeighbors wraps a failure of the structure's Neighbors lookup.
	ErrNeighbors = errors.New("dfs: neighbor iteration error")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(s, start, opts...).
type Option[N comparable] func(*DFSOptions[N])

// DFSOptions holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, full-structure mode, and diagnostics.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions[N comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(n N, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a node
	// have been explored (post-order), before appending to result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(n N) error

	// MaxDepth, if non-negative, limits the walk to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each step curr→neighbor.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(curr, neighbor N) bool

	// FullTraversal, if true, runs DFS from every unvisited node in the structure,
	// covering disconnected components (forest traversal). Default is false.
	FullTraversal bool

	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions[N comparable]() DFSOptions[N] {
	return DFSOptions[N]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *DFSOptions[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit[N comparable](fn func(n N, depth int) error) Option[N] {
	return func(o *DFSOptions[N]) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit[N comparable](fn func(n N) error) Option[N] {
	return func(o *DFSOptions[N]) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited; -1 removes the limit.
// Anything below -1 is rejected with ErrOptionViolation.
func WithMaxDepth[N comparable](limit int) Option[N] {
	return func(o *DFSOptions[N]) {
		if limit < -1 {
			o.err = fmt.Errorf("%w: MaxDepth must be >= -1 (got %d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters steps.
// If fn(curr, nb) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor[N comparable](fn func(curr, neighbor N) bool) Option[N] {
	return func(o *DFSOptions[N]) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-structure traversal.
// When set, DFS restarts from each unvisited node, covering disconnected components.
func WithFullTraversal[N comparable]() Option[N] {
	return func(o *DFSOptions[N]) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult[N comparable] struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []N

	// Depth maps each node to its tree depth from the root of its DFS tree.
	Depth map[N]int

	// Parent maps each node to the node from which it was first discovered.
	// Roots do not appear in this map.
	Parent map[N]N

	// Visited flags which nodes were reached during the traversal.
	Visited map[N]bool

	// SkippedNeighbors reports how many steps were skipped
	// due to FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}
