// SPDX-License-Identifier: MIT
//
// File: writer.go
// Role: Exclusive write guard, mutable views, and cursor-based traversals.
// Concurrency:
//   - Write() blocks until the Graph write lock is free and keeps it until
//     Release(). Every call on the Graph itself blocks meanwhile, including
//     calls made from the goroutine holding the Writer.
//   - After Release() every Writer method, mutable view and cursor panics
//     with ErrWriterReleased.
// AI-HINT (file):
//   - Always `w := g.Write(); defer w.Release()`.
//   - A cursor is invalidated by any topology write made through the same
//     Writer; payload writes (SetData/Update) are fine mid-walk.

package core

// Writer is a borrow guard granting exclusive access to a Graph.
// It implements Topology.
type Writer[V, E, H, F any] struct {
	g        *Graph[V, E, H, F]
	released bool
}

// Write acquires the graph write lock and returns a guard holding it.
func (g *Graph[V, E, H, F]) Write() *Writer[V, E, H, F] {
	g.mu.Lock()

	return &Writer[V, E, H, F]{g: g}
}

// Release gives the write lock back. Releasing twice is a no-op.
func (w *Writer[V, E, H, F]) Release() {
	if w.released {
		return
	}
	w.released = true
	w.g.mu.Unlock()
}

func (w *Writer[V, E, H, F]) check() {
	if w.released {
		panic(ErrWriterReleased)
	}
}

func (w *Writer[V, E, H, F]) binding() binding[V, E, H, F] {
	return binding[V, E, H, F]{g: w.g, w: w}
}

// NewVertex is Graph.NewVertex under the held lock.
func (w *Writer[V, E, H, F]) NewVertex(data V) VertexHandle {
	w.check()

	return w.g.newVertex(data)
}

// NewEdge is Graph.NewEdge under the held lock.
func (w *Writer[V, E, H, F]) NewEdge(v1, v2 VertexHandle, data E) (EdgeHandle, error) {
	w.check()

	return w.g.newEdge(v1, v2, data)
}

// NewFace is Graph.NewFace under the held lock.
func (w *Writer[V, E, H, F]) NewFace(vertices []VertexHandle, data F) (FaceHandle, error) {
	w.check()

	return w.g.newFace(vertices, data)
}

// AddVertex adds a vertex with the default payload.
func (w *Writer[V, E, H, F]) AddVertex() VertexHandle {
	return w.NewVertex(defaultOf[V]())
}

// AddEdge adds an edge with the default payload.
func (w *Writer[V, E, H, F]) AddEdge(v1, v2 VertexHandle) (EdgeHandle, error) {
	return w.NewEdge(v1, v2, defaultOf[E]())
}

// AddFace adds a face with the default payload.
func (w *Writer[V, E, H, F]) AddFace(vertices ...VertexHandle) (FaceHandle, error) {
	return w.NewFace(vertices, defaultOf[F]())
}

// FindEdge is Graph.FindEdge under the held lock.
func (w *Writer[V, E, H, F]) FindEdge(v1, v2 VertexHandle) (EdgeHandle, bool) {
	w.check()

	return w.g.findEdge(v1, v2)
}

// FindHalfEdge is Graph.FindHalfEdge under the held lock.
func (w *Writer[V, E, H, F]) FindHalfEdge(v1, v2 VertexHandle) (HalfEdgeHandle, bool) {
	w.check()

	return w.g.topo.findHalfEdge(v1, v2)
}

// FindOrCreateHalfEdge is Graph.FindOrCreateHalfEdge under the held lock.
func (w *Writer[V, E, H, F]) FindOrCreateHalfEdge(v1, v2 VertexHandle) (HalfEdgeHandle, error) {
	w.check()

	return w.g.findOrCreateHalfEdge(v1, v2)
}

// Vertex returns a mutable view of v.
func (w *Writer[V, E, H, F]) Vertex(v VertexHandle) (*VertexMut[V, E, H, F], bool) {
	w.check()
	if !w.g.topo.vertices.contains(v) {
		return nil, false
	}

	return &VertexMut[V, E, H, F]{w: w, h: v}, true
}

// Edge returns a mutable view of e.
func (w *Writer[V, E, H, F]) Edge(e EdgeHandle) (*EdgeMut[V, E, H, F], bool) {
	w.check()
	if !w.g.topo.edges.contains(e) {
		return nil, false
	}

	return &EdgeMut[V, E, H, F]{w: w, h: e}, true
}

// HalfEdge returns a mutable view of h.
func (w *Writer[V, E, H, F]) HalfEdge(h HalfEdgeHandle) (*HalfEdgeMut[V, E, H, F], bool) {
	w.check()
	if !w.g.topo.hedges.contains(h) {
		return nil, false
	}

	return &HalfEdgeMut[V, E, H, F]{w: w, h: h}, true
}

// Face returns a mutable view of f.
func (w *Writer[V, E, H, F]) Face(f FaceHandle) (*FaceMut[V, E, H, F], bool) {
	w.check()
	if !w.g.topo.faces.contains(f) {
		return nil, false
	}

	return &FaceMut[V, E, H, F]{w: w, h: f}, true
}

// Vertices returns a cursor over every vertex in creation order.
func (w *Writer[V, E, H, F]) Vertices() *Cursor[*VertexMut[V, E, H, F]] {
	w.check()
	return slotCursor(w, w.g.topo.vertices.len(), func(i int) *VertexMut[V, E, H, F] {
		return &VertexMut[V, E, H, F]{w: w, h: w.g.topo.vertices.handle(i)}
	})
}

// Edges returns a cursor over every edge in creation order.
func (w *Writer[V, E, H, F]) Edges() *Cursor[*EdgeMut[V, E, H, F]] {
	w.check()
	return slotCursor(w, w.g.topo.edges.len(), func(i int) *EdgeMut[V, E, H, F] {
		return &EdgeMut[V, E, H, F]{w: w, h: w.g.topo.edges.handle(i)}
	})
}

// HalfEdges returns a cursor over every half-edge in creation order.
func (w *Writer[V, E, H, F]) HalfEdges() *Cursor[*HalfEdgeMut[V, E, H, F]] {
	w.check()
	return slotCursor(w, w.g.topo.hedges.len(), func(i int) *HalfEdgeMut[V, E, H, F] {
		return &HalfEdgeMut[V, E, H, F]{w: w, h: w.g.topo.hedges.handle(i)}
	})
}

// Faces returns a cursor over every face in creation order.
func (w *Writer[V, E, H, F]) Faces() *Cursor[*FaceMut[V, E, H, F]] {
	w.check()
	return slotCursor(w, w.g.topo.faces.len(), func(i int) *FaceMut[V, E, H, F] {
		return &FaceMut[V, E, H, F]{w: w, h: w.g.topo.faces.handle(i)}
	})
}

// Cursor is a pull-style traversal handed out by a Writer. Next returns
// false once the traversal is exhausted.
type Cursor[T any] struct {
	next func() (T, bool)
}

// Next advances the cursor.
func (c *Cursor[T]) Next() (T, bool) {
	return c.next()
}

// ringCursor adapts a ring walk to a Cursor under the writer's lock.
func ringCursor[V, E, H, F, T any](
	w *Writer[V, E, H, F],
	start func(t *topology) (HalfEdgeHandle, bool),
	kind ringKind,
	project func(t *topology, h HalfEdgeHandle) T,
) *Cursor[T] {
	w.check()
	t := &w.g.topo
	h, ok := start(t)
	rw := newRingWalker(t, w.g.version, h, ok, kind)

	return &Cursor[T]{next: func() (T, bool) {
		w.check()
		h, more := rw.next(w.g.version)
		if !more {
			var zero T
			return zero, false
		}
		return project(t, h), true
	}}
}

// slotCursor walks the first n arena slots and panics with
// ErrMutatedDuringWalk if the topology changes in between.
func slotCursor[V, E, H, F, T any](w *Writer[V, E, H, F], n int, project func(i int) T) *Cursor[T] {
	version := w.g.version
	i := 0

	return &Cursor[T]{next: func() (T, bool) {
		w.check()
		if w.g.version != version {
			panic(ErrMutatedDuringWalk)
		}
		if i >= n {
			var zero T
			return zero, false
		}
		v := project(i)
		i++
		return v, true
	}}
}

// VertexMut is a mutable view of one vertex.
type VertexMut[V, E, H, F any] struct {
	w *Writer[V, E, H, F]
	h VertexHandle
}

// Handle returns the viewed vertex handle.
func (v *VertexMut[V, E, H, F]) Handle() VertexHandle { return v.h }

// View converts v into a read view bound to the same Writer.
func (v *VertexMut[V, E, H, F]) View() VertexView[V, E, H, F] {
	return VertexView[V, E, H, F]{b: v.w.binding(), h: v.h}
}

// Data returns a copy of the payload.
func (v *VertexMut[V, E, H, F]) Data() V {
	v.w.check()
	return *v.w.g.vdata.at(v.h)
}

// SetData replaces the payload.
func (v *VertexMut[V, E, H, F]) SetData(data V) {
	v.w.check()
	v.w.g.vdata.set(v.h, data)
}

// Update applies fn to the payload in place.
func (v *VertexMut[V, E, H, F]) Update(fn func(*V)) {
	v.w.check()
	v.w.g.vdata.update(v.h, fn)
}

// HalfEdge returns the representative outgoing half-edge, if any.
func (v *VertexMut[V, E, H, F]) HalfEdge() (*HalfEdgeMut[V, E, H, F], bool) {
	v.w.check()
	h := v.w.g.topo.vertices.at(v.h).hedge
	if h.IsNil() {
		return nil, false
	}

	return &HalfEdgeMut[V, E, H, F]{w: v.w, h: h}, true
}

// OutHalfEdges returns a cursor over the half-edges leaving v.
func (v *VertexMut[V, E, H, F]) OutHalfEdges() *Cursor[*HalfEdgeMut[V, E, H, F]] {
	return ringCursor(v.w, vertexStart(v.h), ringOut, func(_ *topology, h HalfEdgeHandle) *HalfEdgeMut[V, E, H, F] {
		return &HalfEdgeMut[V, E, H, F]{w: v.w, h: h}
	})
}

// InHalfEdges returns a cursor over the half-edges pointing to v.
func (v *VertexMut[V, E, H, F]) InHalfEdges() *Cursor[*HalfEdgeMut[V, E, H, F]] {
	return ringCursor(v.w, vertexInStart(v.h), ringIn, func(_ *topology, h HalfEdgeHandle) *HalfEdgeMut[V, E, H, F] {
		return &HalfEdgeMut[V, E, H, F]{w: v.w, h: h}
	})
}

// Vertices returns a cursor over the neighbours of v.
func (v *VertexMut[V, E, H, F]) Vertices() *Cursor[*VertexMut[V, E, H, F]] {
	return ringCursor(v.w, vertexStart(v.h), ringOut, func(t *topology, h HalfEdgeHandle) *VertexMut[V, E, H, F] {
		return &VertexMut[V, E, H, F]{w: v.w, h: t.he(h).vertex}
	})
}

// Edges returns a cursor over the edges incident to v.
func (v *VertexMut[V, E, H, F]) Edges() *Cursor[*EdgeMut[V, E, H, F]] {
	return ringCursor(v.w, vertexStart(v.h), ringOut, func(t *topology, h HalfEdgeHandle) *EdgeMut[V, E, H, F] {
		return &EdgeMut[V, E, H, F]{w: v.w, h: t.he(h).edge}
	})
}

// Faces returns a cursor over the faces around v.
func (v *VertexMut[V, E, H, F]) Faces() *Cursor[*FaceMut[V, E, H, F]] {
	return ringCursor(v.w, vertexStart(v.h), ringVertexFaces, func(t *topology, h HalfEdgeHandle) *FaceMut[V, E, H, F] {
		return &FaceMut[V, E, H, F]{w: v.w, h: t.he(h).face}
	})
}

// EdgeMut is a mutable view of one edge.
type EdgeMut[V, E, H, F any] struct {
	w *Writer[V, E, H, F]
	h EdgeHandle
}

// Handle returns the viewed edge handle.
func (e *EdgeMut[V, E, H, F]) Handle() EdgeHandle { return e.h }

// View converts e into a read view bound to the same Writer.
func (e *EdgeMut[V, E, H, F]) View() EdgeView[V, E, H, F] {
	return EdgeView[V, E, H, F]{b: e.w.binding(), h: e.h}
}

// Data returns a copy of the payload.
func (e *EdgeMut[V, E, H, F]) Data() E {
	e.w.check()
	return *e.w.g.edata.at(e.h)
}

// SetData replaces the payload.
func (e *EdgeMut[V, E, H, F]) SetData(data E) {
	e.w.check()
	e.w.g.edata.set(e.h, data)
}

// Update applies fn to the payload in place.
func (e *EdgeMut[V, E, H, F]) Update(fn func(*E)) {
	e.w.check()
	e.w.g.edata.update(e.h, fn)
}

// HalfEdge returns the representative half-edge.
func (e *EdgeMut[V, E, H, F]) HalfEdge() *HalfEdgeMut[V, E, H, F] {
	e.w.check()
	return &HalfEdgeMut[V, E, H, F]{w: e.w, h: e.w.g.topo.edges.at(e.h).hedge}
}

// Vertices returns the source and target of the representative half-edge.
func (e *EdgeMut[V, E, H, F]) Vertices() (*VertexMut[V, E, H, F], *VertexMut[V, E, H, F]) {
	e.w.check()
	t := &e.w.g.topo
	h := t.edges.at(e.h).hedge

	return &VertexMut[V, E, H, F]{w: e.w, h: t.source(h)}, &VertexMut[V, E, H, F]{w: e.w, h: t.he(h).vertex}
}

// Faces returns a cursor over the faces on either side of e.
func (e *EdgeMut[V, E, H, F]) Faces() *Cursor[*FaceMut[V, E, H, F]] {
	return ringCursor(e.w, edgeStart(e.h), ringEdgeFaces, func(t *topology, h HalfEdgeHandle) *FaceMut[V, E, H, F] {
		return &FaceMut[V, E, H, F]{w: e.w, h: t.he(h).face}
	})
}

// HalfEdgeMut is a mutable view of one half-edge.
type HalfEdgeMut[V, E, H, F any] struct {
	w *Writer[V, E, H, F]
	h HalfEdgeHandle
}

// Handle returns the viewed half-edge handle.
func (h *HalfEdgeMut[V, E, H, F]) Handle() HalfEdgeHandle { return h.h }

// View converts h into a read view bound to the same Writer.
func (h *HalfEdgeMut[V, E, H, F]) View() HalfEdgeView[V, E, H, F] {
	return HalfEdgeView[V, E, H, F]{b: h.w.binding(), h: h.h}
}

// Data returns a copy of the payload.
func (h *HalfEdgeMut[V, E, H, F]) Data() H {
	h.w.check()
	return *h.w.g.hdata.at(h.h)
}

// SetData replaces the payload.
func (h *HalfEdgeMut[V, E, H, F]) SetData(data H) {
	h.w.check()
	h.w.g.hdata.set(h.h, data)
}

// Update applies fn to the payload in place.
func (h *HalfEdgeMut[V, E, H, F]) Update(fn func(*H)) {
	h.w.check()
	h.w.g.hdata.update(h.h, fn)
}

func (h *HalfEdgeMut[V, E, H, F]) links() *halfEdgeLinks {
	h.w.check()
	return h.w.g.topo.he(h.h)
}

func (h *HalfEdgeMut[V, E, H, F]) sibling(o HalfEdgeHandle) *HalfEdgeMut[V, E, H, F] {
	return &HalfEdgeMut[V, E, H, F]{w: h.w, h: o}
}

// Pair returns the opposite half-edge.
func (h *HalfEdgeMut[V, E, H, F]) Pair() *HalfEdgeMut[V, E, H, F] { return h.sibling(h.links().pair) }

// Next returns the successor along h's loop.
func (h *HalfEdgeMut[V, E, H, F]) Next() *HalfEdgeMut[V, E, H, F] { return h.sibling(h.links().next) }

// Prev returns the predecessor along h's loop.
func (h *HalfEdgeMut[V, E, H, F]) Prev() *HalfEdgeMut[V, E, H, F] { return h.sibling(h.links().prev) }

// Vertex returns the vertex h points to.
func (h *HalfEdgeMut[V, E, H, F]) Vertex() *VertexMut[V, E, H, F] {
	return &VertexMut[V, E, H, F]{w: h.w, h: h.links().vertex}
}

// Source returns the vertex h leaves from.
func (h *HalfEdgeMut[V, E, H, F]) Source() *VertexMut[V, E, H, F] {
	h.w.check()
	return &VertexMut[V, E, H, F]{w: h.w, h: h.w.g.topo.source(h.h)}
}

// Edge returns the edge h belongs to.
func (h *HalfEdgeMut[V, E, H, F]) Edge() *EdgeMut[V, E, H, F] {
	return &EdgeMut[V, E, H, F]{w: h.w, h: h.links().edge}
}

// Face returns the face h bounds; false on the boundary.
func (h *HalfEdgeMut[V, E, H, F]) Face() (*FaceMut[V, E, H, F], bool) {
	f := h.links().face
	if f.IsNil() {
		return nil, false
	}

	return &FaceMut[V, E, H, F]{w: h.w, h: f}, true
}

// FaceMut is a mutable view of one face.
type FaceMut[V, E, H, F any] struct {
	w *Writer[V, E, H, F]
	h FaceHandle
}

// Handle returns the viewed face handle.
func (f *FaceMut[V, E, H, F]) Handle() FaceHandle { return f.h }

// View converts f into a read view bound to the same Writer.
func (f *FaceMut[V, E, H, F]) View() FaceView[V, E, H, F] {
	return FaceView[V, E, H, F]{b: f.w.binding(), h: f.h}
}

// Data returns a copy of the payload.
func (f *FaceMut[V, E, H, F]) Data() F {
	f.w.check()
	return *f.w.g.fdata.at(f.h)
}

// SetData replaces the payload.
func (f *FaceMut[V, E, H, F]) SetData(data F) {
	f.w.check()
	f.w.g.fdata.set(f.h, data)
}

// Update applies fn to the payload in place.
func (f *FaceMut[V, E, H, F]) Update(fn func(*F)) {
	f.w.check()
	f.w.g.fdata.update(f.h, fn)
}

// HalfEdge returns the representative boundary half-edge.
func (f *FaceMut[V, E, H, F]) HalfEdge() *HalfEdgeMut[V, E, H, F] {
	f.w.check()
	return &HalfEdgeMut[V, E, H, F]{w: f.w, h: f.w.g.topo.faces.at(f.h).hedge}
}

// HalfEdges returns a cursor over the boundary half-edges.
func (f *FaceMut[V, E, H, F]) HalfEdges() *Cursor[*HalfEdgeMut[V, E, H, F]] {
	return ringCursor(f.w, faceStart(f.h), ringLoop, func(_ *topology, h HalfEdgeHandle) *HalfEdgeMut[V, E, H, F] {
		return &HalfEdgeMut[V, E, H, F]{w: f.w, h: h}
	})
}

// Vertices returns a cursor over the boundary vertices.
func (f *FaceMut[V, E, H, F]) Vertices() *Cursor[*VertexMut[V, E, H, F]] {
	return ringCursor(f.w, faceStart(f.h), ringLoop, func(t *topology, h HalfEdgeHandle) *VertexMut[V, E, H, F] {
		return &VertexMut[V, E, H, F]{w: f.w, h: t.he(h).vertex}
	})
}

// Edges returns a cursor over the boundary edges.
func (f *FaceMut[V, E, H, F]) Edges() *Cursor[*EdgeMut[V, E, H, F]] {
	return ringCursor(f.w, faceStart(f.h), ringLoop, func(t *topology, h HalfEdgeHandle) *EdgeMut[V, E, H, F] {
		return &EdgeMut[V, E, H, F]{w: f.w, h: t.he(h).edge}
	})
}

// Faces returns a cursor over the neighbouring faces.
func (f *FaceMut[V, E, H, F]) Faces() *Cursor[*FaceMut[V, E, H, F]] {
	return ringCursor(f.w, faceStart(f.h), ringFaceFaces, func(t *topology, h HalfEdgeHandle) *FaceMut[V, E, H, F] {
		return &FaceMut[V, E, H, F]{w: f.w, h: t.he(t.pair(h)).face}
	})
}
