// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// The tree grows from a root vertex along the outgoing half-edge rings of the vertices it reaches.
package prim_kruskal

import (
	"fmt"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/hedgegraph/core"
)

// candidate is a half-edge leaving the tree, queued by weight.
type candidate struct {
	e   core.EdgeHandle
	to  core.VertexHandle
	w   float64
	seq int
}

func byWeight(a, b interface{}) int {
	x, y := a.(*candidate), b.(*candidate)
	switch {
	case x.w < y.w:
		return -1
	case x.w > y.w:
		return 1
	}

	return x.seq - y.seq
}

// Prim computes the Minimum Spanning Tree of g by growing outwards from root.
//
// Error Conditions:
//   - ErrInvalidGraph        : g is nil.
//   - ErrDisconnected        : g has no vertices, or the tree cannot reach every vertex.
//   - ErrEmptyRoot           : root is the nil handle.
//   - core.ErrVertexNotFound : root is not a vertex of g.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim[V, H, F any](g *core.Graph[V, float64, H, F], root core.VertexHandle) ([]core.EdgeHandle, float64, error) {
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if root.IsNil() {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("prim_kruskal: root %s: %w", root, core.ErrVertexNotFound)
	}
	if n == 1 {
		return []core.EdgeHandle{}, 0, nil
	}

	visited := make(map[core.VertexHandle]bool, n)
	mst := make([]core.EdgeHandle, 0, n-1)
	var total float64
	pq := priorityqueue.NewWith(byWeight)
	seq := 0

	// grow marks v as part of the tree and queues its outgoing half-edges.
	grow := func(v core.VertexHandle) {
		visited[v] = true
		vv, ok := g.Vertex(v)
		if !ok {
			return
		}
		for h := range vv.OutHalfEdges() {
			to := h.Vertex().Handle()
			if visited[to] {
				continue
			}
			e := h.Edge()
			pq.Enqueue(&candidate{e: e.Handle(), to: to, w: e.Data(), seq: seq})
			seq++
		}
	}

	grow(root)
	for len(mst) < n-1 {
		x, ok := pq.Dequeue()
		if !ok {
			break
		}
		c := x.(*candidate)
		if visited[c.to] {
			continue
		}
		mst = append(mst, c.e)
		total += c.w
		grow(c.to)
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
