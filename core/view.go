// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Read views over vertices, edges, half-edges and faces, and the
//       iter.Seq traversals behind them.
// Concurrency:
//   - A view bound to the Graph takes the read lock for every call and for
//     every step of a traversal; the lock is never held across yield.
//   - A view bound to a Writer (VertexMut.View and friends) reads under the
//     writer's lock and panics with ErrWriterReleased once it is released.
//   - Topology writes between two steps of a traversal make the next step
//     panic with ErrMutatedDuringWalk. Payload writes do not.
//   - A view taken before Reset panics with ErrStaleHandle; it never reads
//     the entity that now occupies its slot.
// AI-HINT (file):
//   - Views are small values (graph pointer + handle); copy them freely.
//   - Face boundary traversals start at the target of the face's representative half-edge.

package core

import "iter"

// binding routes reads through the Graph read lock, or through a live
// Writer that already holds the write lock.
type binding[V, E, H, F any] struct {
	g *Graph[V, E, H, F]
	w *Writer[V, E, H, F]
}

// lock acquires read access and returns the matching release.
func (b binding[V, E, H, F]) lock() func() {
	if b.w != nil {
		b.w.check()
		return func() {}
	}
	b.g.mu.RLock()

	return b.g.mu.RUnlock
}

func (b binding[V, E, H, F]) open(start func(t *topology) (HalfEdgeHandle, bool), kind ringKind) *ringWalker {
	defer b.lock()()

	h, ok := start(&b.g.topo)

	return newRingWalker(&b.g.topo, b.g.version, h, ok, kind)
}

// walk turns a ring walk into a sequence of projected values.
func walk[V, E, H, F, T any](
	b binding[V, E, H, F],
	start func(t *topology) (HalfEdgeHandle, bool),
	kind ringKind,
	project func(t *topology, h HalfEdgeHandle) T,
) iter.Seq[T] {
	return func(yield func(T) bool) {
		w := b.open(start, kind)
		for {
			v, ok := walkStep(b, w, project)
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func walkStep[V, E, H, F, T any](
	b binding[V, E, H, F],
	w *ringWalker,
	project func(t *topology, h HalfEdgeHandle) T,
) (T, bool) {
	defer b.lock()()

	h, ok := w.next(b.g.version)
	if !ok {
		var zero T
		return zero, false
	}

	return project(&b.g.topo, h), true
}

// slots yields project(i) for every arena slot that existed when iteration began.
func slots[V, E, H, F, T any](b binding[V, E, H, F], count func(t *topology) int, project func(i int) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		unlock := b.lock()
		n := count(&b.g.topo)
		unlock()
		for i := 0; i < n; i++ {
			if !yield(project(i)) {
				return
			}
		}
	}
}

// vertexStart selects the representative outgoing half-edge of v.
func vertexStart(v VertexHandle) func(t *topology) (HalfEdgeHandle, bool) {
	return func(t *topology) (HalfEdgeHandle, bool) {
		h := t.vertices.at(v).hedge
		return h, !h.IsNil()
	}
}

// vertexInStart selects the pair of v's representative, an incoming half-edge.
func vertexInStart(v VertexHandle) func(t *topology) (HalfEdgeHandle, bool) {
	return func(t *topology) (HalfEdgeHandle, bool) {
		h := t.vertices.at(v).hedge
		if h.IsNil() {
			return h, false
		}
		return t.pair(h), true
	}
}

func edgeStart(e EdgeHandle) func(t *topology) (HalfEdgeHandle, bool) {
	return func(t *topology) (HalfEdgeHandle, bool) {
		return t.edges.at(e).hedge, true
	}
}

func faceStart(f FaceHandle) func(t *topology) (HalfEdgeHandle, bool) {
	return func(t *topology) (HalfEdgeHandle, bool) {
		return t.faces.at(f).hedge, true
	}
}

// Vertex returns a read view of v.
func (g *Graph[V, E, H, F]) Vertex(v VertexHandle) (VertexView[V, E, H, F], bool) {
	if !g.HasVertex(v) {
		return VertexView[V, E, H, F]{}, false
	}

	return VertexView[V, E, H, F]{b: binding[V, E, H, F]{g: g}, h: v}, true
}

// Edge returns a read view of e.
func (g *Graph[V, E, H, F]) Edge(e EdgeHandle) (EdgeView[V, E, H, F], bool) {
	if !g.HasEdge(e) {
		return EdgeView[V, E, H, F]{}, false
	}

	return EdgeView[V, E, H, F]{b: binding[V, E, H, F]{g: g}, h: e}, true
}

// HalfEdge returns a read view of h.
func (g *Graph[V, E, H, F]) HalfEdge(h HalfEdgeHandle) (HalfEdgeView[V, E, H, F], bool) {
	if !g.HasHalfEdge(h) {
		return HalfEdgeView[V, E, H, F]{}, false
	}

	return HalfEdgeView[V, E, H, F]{b: binding[V, E, H, F]{g: g}, h: h}, true
}

// Face returns a read view of f.
func (g *Graph[V, E, H, F]) Face(f FaceHandle) (FaceView[V, E, H, F], bool) {
	if !g.HasFace(f) {
		return FaceView[V, E, H, F]{}, false
	}

	return FaceView[V, E, H, F]{b: binding[V, E, H, F]{g: g}, h: f}, true
}

// Vertices yields every vertex in creation order. The read lock is held for
// the whole range, so ranging while the same goroutine holds a Writer
// deadlocks; use Writer.Vertices there.
func (g *Graph[V, E, H, F]) Vertices() iter.Seq[VertexView[V, E, H, F]] {
	b := binding[V, E, H, F]{g: g}
	return slots(b,
		func(t *topology) int { return t.vertices.len() },
		func(i int) VertexView[V, E, H, F] {
			return VertexView[V, E, H, F]{b: b, h: g.topo.vertices.handle(i)}
		})
}

// Edges yields every edge in creation order.
func (g *Graph[V, E, H, F]) Edges() iter.Seq[EdgeView[V, E, H, F]] {
	b := binding[V, E, H, F]{g: g}
	return slots(b,
		func(t *topology) int { return t.edges.len() },
		func(i int) EdgeView[V, E, H, F] {
			return EdgeView[V, E, H, F]{b: b, h: g.topo.edges.handle(i)}
		})
}

// HalfEdges yields every half-edge in creation order; the two half-edges of
// an edge are adjacent.
func (g *Graph[V, E, H, F]) HalfEdges() iter.Seq[HalfEdgeView[V, E, H, F]] {
	b := binding[V, E, H, F]{g: g}
	return slots(b,
		func(t *topology) int { return t.hedges.len() },
		func(i int) HalfEdgeView[V, E, H, F] {
			return HalfEdgeView[V, E, H, F]{b: b, h: g.topo.hedges.handle(i)}
		})
}

// Faces yields every face in creation order.
func (g *Graph[V, E, H, F]) Faces() iter.Seq[FaceView[V, E, H, F]] {
	b := binding[V, E, H, F]{g: g}
	return slots(b,
		func(t *topology) int { return t.faces.len() },
		func(i int) FaceView[V, E, H, F] {
			return FaceView[V, E, H, F]{b: b, h: g.topo.faces.handle(i)}
		})
}

// VertexView is a read-only view of one vertex.
type VertexView[V, E, H, F any] struct {
	b binding[V, E, H, F]
	h VertexHandle
}

// Handle returns the viewed vertex handle.
func (v VertexView[V, E, H, F]) Handle() VertexHandle { return v.h }

// Equal reports whether both views address the same vertex.
func (v VertexView[V, E, H, F]) Equal(o VertexView[V, E, H, F]) bool { return v.h == o.h }

// Data returns a copy of the vertex payload.
func (v VertexView[V, E, H, F]) Data() V {
	defer v.b.lock()()

	return *v.b.g.vdata.at(v.h)
}

// HalfEdge returns the representative outgoing half-edge, if v has edges.
func (v VertexView[V, E, H, F]) HalfEdge() (HalfEdgeView[V, E, H, F], bool) {
	defer v.b.lock()()

	h := v.b.g.topo.vertices.at(v.h).hedge
	if h.IsNil() {
		return HalfEdgeView[V, E, H, F]{}, false
	}

	return HalfEdgeView[V, E, H, F]{b: v.b, h: h}, true
}

// IsIsolated reports whether v has no edges.
func (v VertexView[V, E, H, F]) IsIsolated() bool {
	_, ok := v.HalfEdge()
	return !ok
}

// OutHalfEdges yields the half-edges leaving v in rotation order.
func (v VertexView[V, E, H, F]) OutHalfEdges() iter.Seq[HalfEdgeView[V, E, H, F]] {
	return walk(v.b, vertexStart(v.h), ringOut, func(_ *topology, h HalfEdgeHandle) HalfEdgeView[V, E, H, F] {
		return HalfEdgeView[V, E, H, F]{b: v.b, h: h}
	})
}

// InHalfEdges yields the half-edges pointing to v in rotation order.
func (v VertexView[V, E, H, F]) InHalfEdges() iter.Seq[HalfEdgeView[V, E, H, F]] {
	return walk(v.b, vertexInStart(v.h), ringIn, func(_ *topology, h HalfEdgeHandle) HalfEdgeView[V, E, H, F] {
		return HalfEdgeView[V, E, H, F]{b: v.b, h: h}
	})
}

// Vertices yields the neighbours of v.
func (v VertexView[V, E, H, F]) Vertices() iter.Seq[VertexView[V, E, H, F]] {
	return walk(v.b, vertexStart(v.h), ringOut, func(t *topology, h HalfEdgeHandle) VertexView[V, E, H, F] {
		return VertexView[V, E, H, F]{b: v.b, h: t.he(h).vertex}
	})
}

// Edges yields the edges incident to v.
func (v VertexView[V, E, H, F]) Edges() iter.Seq[EdgeView[V, E, H, F]] {
	return walk(v.b, vertexStart(v.h), ringOut, func(t *topology, h HalfEdgeHandle) EdgeView[V, E, H, F] {
		return EdgeView[V, E, H, F]{b: v.b, h: t.he(h).edge}
	})
}

// Faces yields the faces bounded by an outgoing half-edge of v. Boundary
// positions are skipped.
func (v VertexView[V, E, H, F]) Faces() iter.Seq[FaceView[V, E, H, F]] {
	return walk(v.b, vertexStart(v.h), ringVertexFaces, func(t *topology, h HalfEdgeHandle) FaceView[V, E, H, F] {
		return FaceView[V, E, H, F]{b: v.b, h: t.he(h).face}
	})
}

// EdgeView is a read-only view of one edge.
type EdgeView[V, E, H, F any] struct {
	b binding[V, E, H, F]
	h EdgeHandle
}

// Handle returns the viewed edge handle.
func (e EdgeView[V, E, H, F]) Handle() EdgeHandle { return e.h }

// Equal reports whether both views address the same edge.
func (e EdgeView[V, E, H, F]) Equal(o EdgeView[V, E, H, F]) bool { return e.h == o.h }

// Data returns a copy of the edge payload.
func (e EdgeView[V, E, H, F]) Data() E {
	defer e.b.lock()()

	return *e.b.g.edata.at(e.h)
}

// HalfEdge returns the representative half-edge. For edges built by
// NewEdge(v1, v2) it points from v1 to v2.
func (e EdgeView[V, E, H, F]) HalfEdge() HalfEdgeView[V, E, H, F] {
	defer e.b.lock()()

	return HalfEdgeView[V, E, H, F]{b: e.b, h: e.b.g.topo.edges.at(e.h).hedge}
}

// Vertices returns the source and target of the representative half-edge.
func (e EdgeView[V, E, H, F]) Vertices() (VertexView[V, E, H, F], VertexView[V, E, H, F]) {
	defer e.b.lock()()

	t := &e.b.g.topo
	h := t.edges.at(e.h).hedge

	return VertexView[V, E, H, F]{b: e.b, h: t.source(h)}, VertexView[V, E, H, F]{b: e.b, h: t.he(h).vertex}
}

// Faces yields the zero, one or two faces on either side of e.
func (e EdgeView[V, E, H, F]) Faces() iter.Seq[FaceView[V, E, H, F]] {
	return walk(e.b, edgeStart(e.h), ringEdgeFaces, func(t *topology, h HalfEdgeHandle) FaceView[V, E, H, F] {
		return FaceView[V, E, H, F]{b: e.b, h: t.he(h).face}
	})
}

// IsBoundary reports whether at least one side of e bounds no face.
func (e EdgeView[V, E, H, F]) IsBoundary() bool {
	defer e.b.lock()()

	t := &e.b.g.topo
	h := t.edges.at(e.h).hedge

	return !t.hasFace(h) || !t.hasFace(t.pair(h))
}

// HalfEdgeView is a read-only view of one half-edge.
type HalfEdgeView[V, E, H, F any] struct {
	b binding[V, E, H, F]
	h HalfEdgeHandle
}

// Handle returns the viewed half-edge handle.
func (h HalfEdgeView[V, E, H, F]) Handle() HalfEdgeHandle { return h.h }

// Equal reports whether both views address the same half-edge.
func (h HalfEdgeView[V, E, H, F]) Equal(o HalfEdgeView[V, E, H, F]) bool { return h.h == o.h }

// Data returns a copy of the half-edge payload.
func (h HalfEdgeView[V, E, H, F]) Data() H {
	defer h.b.lock()()

	return *h.b.g.hdata.at(h.h)
}

func (h HalfEdgeView[V, E, H, F]) links() halfEdgeLinks {
	defer h.b.lock()()

	return *h.b.g.topo.he(h.h)
}

func (h HalfEdgeView[V, E, H, F]) sibling(o HalfEdgeHandle) HalfEdgeView[V, E, H, F] {
	return HalfEdgeView[V, E, H, F]{b: h.b, h: o}
}

// Pair returns the opposite half-edge of the same edge.
func (h HalfEdgeView[V, E, H, F]) Pair() HalfEdgeView[V, E, H, F] { return h.sibling(h.links().pair) }

// Next returns the successor along h's loop.
func (h HalfEdgeView[V, E, H, F]) Next() HalfEdgeView[V, E, H, F] { return h.sibling(h.links().next) }

// Prev returns the predecessor along h's loop.
func (h HalfEdgeView[V, E, H, F]) Prev() HalfEdgeView[V, E, H, F] { return h.sibling(h.links().prev) }

// Vertex returns the vertex h points to.
func (h HalfEdgeView[V, E, H, F]) Vertex() VertexView[V, E, H, F] {
	return VertexView[V, E, H, F]{b: h.b, h: h.links().vertex}
}

// Source returns the vertex h leaves from.
func (h HalfEdgeView[V, E, H, F]) Source() VertexView[V, E, H, F] {
	defer h.b.lock()()

	return VertexView[V, E, H, F]{b: h.b, h: h.b.g.topo.source(h.h)}
}

// Edge returns the edge h belongs to.
func (h HalfEdgeView[V, E, H, F]) Edge() EdgeView[V, E, H, F] {
	return EdgeView[V, E, H, F]{b: h.b, h: h.links().edge}
}

// Face returns the face h bounds; false on the boundary.
func (h HalfEdgeView[V, E, H, F]) Face() (FaceView[V, E, H, F], bool) {
	f := h.links().face
	if f.IsNil() {
		return FaceView[V, E, H, F]{}, false
	}

	return FaceView[V, E, H, F]{b: h.b, h: f}, true
}

// IsBoundary reports whether h bounds no face.
func (h HalfEdgeView[V, E, H, F]) IsBoundary() bool {
	return h.links().face.IsNil()
}

// FaceView is a read-only view of one face.
type FaceView[V, E, H, F any] struct {
	b binding[V, E, H, F]
	h FaceHandle
}

// Handle returns the viewed face handle.
func (f FaceView[V, E, H, F]) Handle() FaceHandle { return f.h }

// Equal reports whether both views address the same face.
func (f FaceView[V, E, H, F]) Equal(o FaceView[V, E, H, F]) bool { return f.h == o.h }

// Data returns a copy of the face payload.
func (f FaceView[V, E, H, F]) Data() F {
	defer f.b.lock()()

	return *f.b.g.fdata.at(f.h)
}

// HalfEdge returns the representative boundary half-edge, the first side
// passed to NewFace.
func (f FaceView[V, E, H, F]) HalfEdge() HalfEdgeView[V, E, H, F] {
	defer f.b.lock()()

	return HalfEdgeView[V, E, H, F]{b: f.b, h: f.b.g.topo.faces.at(f.h).hedge}
}

// HalfEdges yields the boundary half-edges in loop order.
func (f FaceView[V, E, H, F]) HalfEdges() iter.Seq[HalfEdgeView[V, E, H, F]] {
	return walk(f.b, faceStart(f.h), ringLoop, func(_ *topology, h HalfEdgeHandle) HalfEdgeView[V, E, H, F] {
		return HalfEdgeView[V, E, H, F]{b: f.b, h: h}
	})
}

// Vertices yields the boundary vertices in loop order.
func (f FaceView[V, E, H, F]) Vertices() iter.Seq[VertexView[V, E, H, F]] {
	return walk(f.b, faceStart(f.h), ringLoop, func(t *topology, h HalfEdgeHandle) VertexView[V, E, H, F] {
		return VertexView[V, E, H, F]{b: f.b, h: t.he(h).vertex}
	})
}

// Edges yields the boundary edges in loop order.
func (f FaceView[V, E, H, F]) Edges() iter.Seq[EdgeView[V, E, H, F]] {
	return walk(f.b, faceStart(f.h), ringLoop, func(t *topology, h HalfEdgeHandle) EdgeView[V, E, H, F] {
		return EdgeView[V, E, H, F]{b: f.b, h: t.he(h).edge}
	})
}

// Faces yields the faces across each boundary edge, skipping edges with no
// face on the other side.
func (f FaceView[V, E, H, F]) Faces() iter.Seq[FaceView[V, E, H, F]] {
	return walk(f.b, faceStart(f.h), ringFaceFaces, func(t *topology, h HalfEdgeHandle) FaceView[V, E, H, F] {
		return FaceView[V, E, H, F]{b: f.b, h: t.he(t.pair(h)).face}
	})
}
