// Package core provides an in-memory half-edge graph: a topological
// structure of vertices, edges, faces and directed half-edges, built
// incrementally and traversed in time proportional to local degree.
//
// Every edge owns two half-edges pointing in opposite directions (a pair).
// Half-edges bounding the same face are linked into a loop through next/prev;
// half-edges without a face form the boundary loops. Around a vertex the
// outgoing half-edges are ordered by the rotation h → h.pair.next.
//
//	      v2
//	     ╱  ╲          NewFace([v1, v2, v3]) claims v1→v2, v2→v3, v3→v1.
//	   v1 ── v3        Their pairs stay on the boundary until another face
//	                   claims them.
//
// Construction:
//
//	NewVertex(data V) VertexHandle                      // O(1)
//	NewEdge(v1, v2, data E) (EdgeHandle, error)         // O(deg v1 + deg v2)
//	NewFace(vertices, data F) (FaceHandle, error)       // O(Σ deg v)
//	FindEdge / FindHalfEdge / FindOrCreateHalfEdge      // O(deg v1)
//
// Entities are never deleted. Handles are small comparable values carrying
// the graph identity and a slot index; handles of another graph, or the nil
// handle, are reported as not found.
//
// Payloads:
//
//	Graph[V, E, H, F] stores one payload per vertex, edge, half-edge and face.
//	Entities created implicitly (the half-edges of every edge, the edges
//	NewFace adds) receive the zero value, or T.Default() when T implements
//	Defaulter[T]. Plain is the payload-free graph.
//
// Options (GraphOption):
//
//	– WithPartialFaces()
//	    A failed NewFace keeps the edges and rotations it already made.
//	    By default a failed NewFace leaves the graph untouched.
//
//	– WithRingGuard()
//	    Every ring walk records the half-edges it visits and panics with
//	    ErrCorruptRing on a repeat. Walks are always bounded by the half-edge count.
//
//	– WithCapacity(vertices, edges, faces)
//	    Preallocates arena space.
//
// Traversal:
//
//	Read views (VertexView, EdgeView, HalfEdgeView, FaceView) expose navigation
//	and iter.Seq traversals: the outgoing/incoming half-edges, neighbours,
//	edges and faces around a vertex; the faces of an edge; the half-edges,
//	vertices, edges and neighbouring faces of a face.
//
// Concurrency:
//
//	A Graph is guarded by one sync.RWMutex. Queries and read traversals take the
//	read lock (per step for traversals, never across yield); construction takes
//	the write lock. Write() returns a Writer holding the write lock until Release,
//	handing out mutable views and Cursor traversals. A traversal that observes a
//	topology change since it started panics with ErrMutatedDuringWalk.
//
// Errors:
//
//	ErrVertexNotFound      – unknown, nil or foreign vertex handle
//	ErrFaceNotFound        – unknown, nil or foreign face handle
//	ErrLoopNotAllowed      – NewEdge(v, v)
//	ErrMultiEdgeNotAllowed – the vertices are already connected
//	ErrTooFewVertices      – NewFace with fewer than two vertices
//	ErrHalfEdgeTaken       – a side of the new face already bounds a face
//	ErrNoFreeSlot          – a vertex ring is closed by faces where a splice is needed
//
// Panics (never returned): ErrCorruptRing, ErrMutatedDuringWalk, ErrWriterReleased.
package core
