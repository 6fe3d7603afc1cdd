// Package prim_kruskal computes Minimum Spanning Trees over the primal view
// of a half-edge graph whose edge payloads are float64 weights.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]core.EdgeHandle, float64, error)
//     Sort every edge by weight (stable, so ties break by creation order),
//     then merge components with a disjoint-set, skipping edges whose
//     endpoints already share a root. Time O(E log E), space O(V + E).
//
//   - Prim(g, root) ([]core.EdgeHandle, float64, error)
//     Grow one tree from root. Candidate half-edges leaving the tree wait in
//     a priority queue; the lightest one that reaches a new vertex joins.
//     Time O(E log V), space O(V + E).
//
//   - Compute(g, opts...) dispatches on WithMethod and WithRoot.
//
// Both return the tree as edge handles plus its total weight. On a closed
// surface of genus zero the edges left out of a spanning tree number
// exactly F-1 and form a spanning tree of the dual.
//
// Errors
//
//   - ErrInvalidGraph: nil graph or unknown method.
//   - ErrDisconnected: empty graph, or a vertex the tree cannot reach.
//   - ErrEmptyRoot, core.ErrVertexNotFound: bad Prim root.
package prim_kruskal
