// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm over the vertices of a half-edge
// graph whose edge payloads are non-negative float64 weights.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E), the queue holds stale entries under lazy decrease-key.
//
// Options:
//
//	– ReturnPath:       record predecessors and arriving half-edges.
//	– MaxDistance:      vertices farther than this stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are impassable.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/hedgegraph/core"
)

// Sentinel errors returned by Dijkstra and Result.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source handle does not belong to the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates a negative or NaN edge weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or less.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnreachable is returned by PathTo for vertices the search never reached.
	ErrUnreachable = errors.New("dijkstra: vertex is unreachable")

	// ErrPathNotRecorded is returned by PathTo when WithReturnPath was not given.
	ErrPathNotRecorded = errors.New("dijkstra: predecessors were not recorded")
)

// Options configures a Dijkstra run.
type Options struct {
	ReturnPath       bool    // record Prev and Via
	MaxDistance      float64 // default +Inf
	InfEdgeThreshold float64 // default +Inf

	err error // first invalid option, reported by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables predecessor recording.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration. Negative values make Dijkstra fail with
// ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.fail(ErrBadMaxDistance)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks edges with weight >= threshold as walls.
// Zero or negative values make Dijkstra fail with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			o.fail(ErrBadInfThreshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// DefaultOptions returns an Options with no caps and no path recording.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result holds the outcome of one run.
//
// Dist has an entry for every vertex of the graph; unreached vertices map to
// +Inf. Prev and Via are nil unless WithReturnPath was given; for a reached
// vertex v other than Source, Via[v] is the half-edge arriving at v on the
// chosen shortest path and Prev[v] is its source.
type Result struct {
	Source core.VertexHandle
	Dist   map[core.VertexHandle]float64
	Prev   map[core.VertexHandle]core.VertexHandle
	Via    map[core.VertexHandle]core.HalfEdgeHandle
}

// Reachable reports whether v received a finite distance.
func (r *Result) Reachable(v core.VertexHandle) bool {
	d, ok := r.Dist[v]
	return ok && !math.IsInf(d, 1)
}

// PathTo reconstructs the vertex sequence Source..v.
func (r *Result) PathTo(v core.VertexHandle) ([]core.VertexHandle, error) {
	if r.Prev == nil {
		return nil, ErrPathNotRecorded
	}
	if !r.Reachable(v) {
		return nil, ErrUnreachable
	}
	var path []core.VertexHandle
	for cur := v; ; cur = r.Prev[cur] {
		path = append(path, cur)
		if cur == r.Source {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
