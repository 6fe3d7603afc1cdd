// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/hedgegraph/core"
)

// ErrInvalidGraph indicates a nil graph or an unknown method name.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil weighted graph")

// ErrEmptyRoot indicates that Prim was given the nil vertex handle.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that no spanning tree covers every vertex.
// An empty graph is reported as disconnected too.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root core.VertexHandle
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim. Kruskal ignores it.
func WithRoot(root core.VertexHandle) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions selects Kruskal with no root.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute runs the algorithm named by the options over g.
//
// Returns the tree edges, their total weight, and an error when the
// computation cannot proceed. An unknown method yields ErrInvalidGraph.
func Compute[V, H, F any](g *core.Graph[V, float64, H, F], opts ...Option) ([]core.EdgeHandle, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, cfg.Root)
	default:
		return nil, 0, ErrInvalidGraph
	}
}
