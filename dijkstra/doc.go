// Package dijkstra computes single-source shortest paths over the vertices of
// a half-edge graph whose edge payloads are float64 weights, such as the
// graphs produced by builder.BuildGraph.
//
// Overview:
//
//   - Dijkstra settles vertices in order of distance using a min-priority
//     queue and relaxes the outgoing half-edge ring of each settled vertex.
//   - Weights must be non-negative; a pre-scan rejects the graph otherwise.
//   - WithReturnPath records, per reached vertex, its predecessor and the
//     half-edge that arrives at it, so a path can be rebuilt as vertices
//     (Result.PathTo) or walked as half-edges (Result.Via).
//   - WithMaxDistance stops the search at a radius; WithInfEdgeThreshold turns
//     heavy edges into walls.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Errors:
//
//   - ErrNilGraph, ErrVertexNotFound: bad input.
//   - ErrNegativeWeight: a negative or NaN edge weight.
//   - ErrBadMaxDistance, ErrBadInfThreshold: invalid options.
//   - ErrUnreachable, ErrPathNotRecorded: from Result.PathTo.
//
// Thread safety:
//
//   - The graph is read through its views, which take the read lock per step.
//     Topology changes during a run panic with core.ErrMutatedDuringWalk.
package dijkstra
