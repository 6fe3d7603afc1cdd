// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// Edge payloads are the weights; the tree is returned as edge handles.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/hedgegraph/core"
)

// weightedEdge is one candidate edge with its resolved endpoints.
type weightedEdge struct {
	e    core.EdgeHandle
	u, v core.VertexHandle
	w    float64
}

// Kruskal computes the Minimum Spanning Tree of g using a disjoint-set with
// path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : g is nil.
//   - ErrDisconnected : g has no vertices, or more than one component.
//
// Ties between equal weights break by edge creation order, so the result is
// deterministic for a given graph.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal[V, H, F any](g *core.Graph[V, float64, H, F]) ([]core.EdgeHandle, float64, error) {
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}

	n := g.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		return []core.EdgeHandle{}, 0, nil
	}

	edges := make([]weightedEdge, 0, g.EdgeCount())
	for e := range g.Edges() {
		u, v := e.Vertices()
		if u.Handle() == v.Handle() {
			continue
		}
		edges = append(edges, weightedEdge{e: e.Handle(), u: u.Handle(), v: v.Handle(), w: e.Data()})
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].w < edges[j].w
	})

	parent := make(map[core.VertexHandle]core.VertexHandle, n)
	rank := make(map[core.VertexHandle]int, n)
	for v := range g.Vertices() {
		parent[v.Handle()] = v.Handle()
	}

	// iterative find with path halving
	find := func(u core.VertexHandle) core.VertexHandle {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(a, b core.VertexHandle) {
		switch {
		case rank[a] < rank[b]:
			parent[a] = b
		case rank[a] > rank[b]:
			parent[b] = a
		default:
			parent[b] = a
			rank[a]++
		}
	}

	mst := make([]core.EdgeHandle, 0, n-1)
	var total float64
	for _, we := range edges {
		ru, rv := find(we.u), find(we.v)
		if ru == rv {
			continue
		}
		union(ru, rv)
		mst = append(mst, we.e)
		total += we.w
		if len(mst) == n-1 {
			break
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
