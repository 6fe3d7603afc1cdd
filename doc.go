// Package hedgegraph is an in-memory half-edge graph: a polygon mesh
// connectivity structure where every edge is split into two opposite
// half-edges, and faces, vertex rings and boundaries are walked by following
// next/prev/pair links.
//
// What lives where:
//
//	core/            Graph[V, E, H, F], handles, topology operations, views,
//	                 the Writer, snapshots and the primal/dual Structure views
//	verify/          invariant checker over a graph or a snapshot
//	builder/         deterministic constructors: paths, cycles, grids, fans,
//	                 wheels, polygons, Platonic solids, random sparse graphs
//	meshdsl/         a small text format for meshes, parsed with participle
//	export/          cytoscape-friendly JSON dumps and a gjson summary reader
//	bfs/, dfs/       traversals over the vertex graph or the face graph
//	dijkstra/        shortest paths over float64 edge weights
//	prim_kruskal/    spanning trees over float64 edge weights
//	cmd/hedgegraph   load, check and export from the command line
//
// Quick ASCII example:
//
//	    v0 ───── v1
//	    │   f0   │
//	    v3 ───── v2
//
// AddFace(v0, v1, v2, v3) creates the four edges and eight half-edges above.
// The four inner half-edges bound f0; the four outer ones form the boundary
// loop and bound no face.
package hedgegraph
