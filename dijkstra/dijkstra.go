// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// primal view of a half-edge graph.
//
// Relaxation walks the outgoing half-edge ring of each settled vertex, so
// every edge is seen once from each endpoint. Edge payloads are the weights.
//
// Notes on implementation choices:
//
//   - An upfront O(E) scan rejects negative (or NaN) weights.
//   - Edges with weight >= InfEdgeThreshold are walls.
//   - Exploration stops once the queue minimum exceeds MaxDistance.
//   - The queue is a gods binary-heap priority queue with lazy decrease-key;
//     entries carry a sequence number so ties pop in push order.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/hedgegraph/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain source (ErrVertexNotFound).
//  4. No edge may carry a negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[V, H, F any](g *core.Graph[V, float64, H, F], source core.VertexHandle, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, source)
	}

	for e := range g.Edges() {
		if w := e.Data(); w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("%w: edge %s weight=%g", ErrNegativeWeight, e.Handle(), w)
		}
	}

	r := newRunner(g, source, cfg)
	r.process()

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V, H, F any] struct {
	g       *core.Graph[V, float64, H, F]
	options Options
	res     *Result
	visited map[core.VertexHandle]bool
	pq      *priorityqueue.Queue
	seq     int
}

// nodeItem is a queued tentative distance.
type nodeItem struct {
	v    core.VertexHandle
	dist float64
	seq  int
}

// byDist orders nodeItems by distance, then by push order.
func byDist(a, b interface{}) int {
	x, y := a.(*nodeItem), b.(*nodeItem)
	switch {
	case x.dist < y.dist:
		return -1
	case x.dist > y.dist:
		return 1
	}

	return x.seq - y.seq
}

func newRunner[V, H, F any](g *core.Graph[V, float64, H, F], source core.VertexHandle, cfg Options) *runner[V, H, F] {
	n := g.VertexCount()
	res := &Result{
		Source: source,
		Dist:   make(map[core.VertexHandle]float64, n),
	}
	if cfg.ReturnPath {
		res.Prev = make(map[core.VertexHandle]core.VertexHandle, n)
		res.Via = make(map[core.VertexHandle]core.HalfEdgeHandle, n)
	}
	for v := range g.Vertices() {
		res.Dist[v.Handle()] = math.Inf(1)
	}
	res.Dist[source] = 0

	r := &runner[V, H, F]{
		g:       g,
		options: cfg,
		res:     res,
		visited: make(map[core.VertexHandle]bool, n),
		pq:      priorityqueue.NewWith(byDist),
	}
	r.push(source, 0)

	return r
}

func (r *runner[V, H, F]) push(v core.VertexHandle, d float64) {
	r.pq.Enqueue(&nodeItem{v: v, dist: d, seq: r.seq})
	r.seq++
}

// process settles vertices in distance order until the queue drains or
// its minimum passes MaxDistance.
func (r *runner[V, H, F]) process() {
	for {
		x, ok := r.pq.Dequeue()
		if !ok {
			return
		}
		item := x.(*nodeItem)
		if r.visited[item.v] {
			continue // stale
		}
		if item.dist > r.options.MaxDistance {
			return
		}
		r.visited[item.v] = true
		r.relax(item.v)
	}
}

// relax walks the outgoing ring of settled vertex u.
func (r *runner[V, H, F]) relax(u core.VertexHandle) {
	uv, ok := r.g.Vertex(u)
	if !ok {
		return
	}
	du := r.res.Dist[u]
	for h := range uv.OutHalfEdges() {
		w := h.Edge().Data()
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		v := h.Vertex().Handle()
		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = nd
		if r.res.Prev != nil {
			r.res.Prev[v] = u
			r.res.Via[v] = h.Handle()
		}
		r.push(v, nd)
	}
}
