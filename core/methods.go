// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Topology builder: NewVertex/NewEdge/NewFace and half-edge lookups.
// Policy:
//   - Exported methods take the Graph lock and delegate to unexported twins
//     that assume it is held; Writer calls the twins directly.
//   - NewEdge validates everything before its first write.
//   - NewFace is journaled unless the graph was built WithPartialFaces.
// AI-HINT (file):
//   - A face loop is directed: NewFace([a,b,c]) and NewFace([a,c,b]) claim
//     opposite half-edges and may coexist.

package core

import "fmt"

const (
	methodNewEdge = "NewEdge"
	methodNewFace = "NewFace"
)

// NewVertex adds an isolated vertex carrying data.
// Complexity: O(1) amortized.
func (g *Graph[V, E, H, F]) NewVertex(data V) VertexHandle {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.newVertex(data)
}

// NewEdge connects v1 and v2 with a new edge carrying data. Its two
// half-edges get the default half-edge payload.
//
// Implementation:
//   - Stage 1: validate handles, reject self-loops and existing connections.
//   - Stage 2: for each endpoint that already has edges, find a face-free
//     outgoing half-edge to splice in front of. Fails before any mutation.
//   - Stage 3: allocate the edge and its two paired half-edges, then splice
//     each half-edge into its endpoint ring (or make it the ring of an
//     isolated endpoint).
//
// Errors:
//   - ErrVertexNotFound, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed, ErrNoFreeSlot.
//
// Complexity: O(deg v1 + deg v2).
func (g *Graph[V, E, H, F]) NewEdge(v1, v2 VertexHandle, data E) (EdgeHandle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.newEdge(v1, v2, data)
}

// NewFace creates a face bounded by the directed loop v[0] → v[1] → … → v[0].
// Missing edges are created with the default edge payload.
//
// Implementation:
//   - Stage 1: validate the vertex list.
//   - Stage 2: find or create the directed half-edge of every consecutive pair.
//   - Stage 3: reject the loop if any of those half-edges already bounds a face.
//   - Stage 4: rotate vertex rings so that each loop half-edge is followed by
//     the next one.
//   - Stage 5: allocate the face and stamp it on every loop half-edge.
//
// Failure is all-or-nothing unless the graph was built WithPartialFaces, in
// which case edges created in Stage 2 and rotations made in Stage 4 remain.
//
// Errors:
//   - ErrTooFewVertices, ErrVertexNotFound, ErrLoopNotAllowed (repeated
//     consecutive vertex), ErrHalfEdgeTaken, ErrNoFreeSlot.
//
// Complexity: O(Σ deg v) over the listed vertices.
func (g *Graph[V, E, H, F]) NewFace(vertices []VertexHandle, data F) (FaceHandle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.newFace(vertices, data)
}

// FindEdge returns the edge joining v1 and v2, in either direction.
// Complexity: O(deg v1).
func (g *Graph[V, E, H, F]) FindEdge(v1, v2 VertexHandle) (EdgeHandle, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.findEdge(v1, v2)
}

// FindHalfEdge returns the half-edge leaving v1 and pointing to v2.
// Complexity: O(deg v1).
func (g *Graph[V, E, H, F]) FindHalfEdge(v1, v2 VertexHandle) (HalfEdgeHandle, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.topo.findHalfEdge(v1, v2)
}

// FindOrCreateHalfEdge returns the half-edge v1 → v2, creating the edge with
// the default edge payload when the vertices are not yet connected.
func (g *Graph[V, E, H, F]) FindOrCreateHalfEdge(v1, v2 VertexHandle) (HalfEdgeHandle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.findOrCreateHalfEdge(v1, v2)
}

func (g *Graph[V, E, H, F]) newVertex(data V) VertexHandle {
	h := g.topo.vertices.alloc(vertexLinks{})
	g.vdata.alloc(data)

	return h
}

func (g *Graph[V, E, H, F]) newEdge(v1, v2 VertexHandle, data E) (EdgeHandle, error) {
	t := &g.topo
	if !t.vertices.contains(v1) || !t.vertices.contains(v2) {
		return EdgeHandle{}, fmt.Errorf("%s(%v, %v): %w", methodNewEdge, v1, v2, ErrVertexNotFound)
	}
	if v1 == v2 {
		return EdgeHandle{}, fmt.Errorf("%s(%v, %v): %w", methodNewEdge, v1, v2, ErrLoopNotAllowed)
	}
	if _, ok := t.findHalfEdge(v1, v2); ok {
		return EdgeHandle{}, fmt.Errorf("%s(%v, %v): %w", methodNewEdge, v1, v2, ErrMultiEdgeNotAllowed)
	}

	at1, err := t.insertionPoint(v1)
	if err != nil {
		return EdgeHandle{}, fmt.Errorf("%s(%v, %v): %w", methodNewEdge, v1, v2, err)
	}
	at2, err := t.insertionPoint(v2)
	if err != nil {
		return EdgeHandle{}, fmt.Errorf("%s(%v, %v): %w", methodNewEdge, v1, v2, err)
	}

	e := t.spliceEdge(v1, v2, at1, at2)
	g.edata.alloc(data)
	g.hdata.alloc(defaultOf[H]())
	g.hdata.alloc(defaultOf[H]())
	g.version++

	return e, nil
}

func (g *Graph[V, E, H, F]) newFace(vertices []VertexHandle, data F) (FaceHandle, error) {
	if len(vertices) < 2 {
		return FaceHandle{}, fmt.Errorf("%s: %d vertices: %w", methodNewFace, len(vertices), ErrTooFewVertices)
	}
	for _, v := range vertices {
		if !g.topo.vertices.contains(v) {
			return FaceHandle{}, fmt.Errorf("%s: %v: %w", methodNewFace, v, ErrVertexNotFound)
		}
	}

	atomic := !g.cfg.partialFaces
	if atomic {
		g.topo.begin()
	}
	g.version++

	f, err := g.weaveFace(vertices, data)
	if err != nil {
		if atomic {
			m := g.topo.rollback()
			g.vdata.truncate(m.vertices)
			g.edata.truncate(m.edges)
			g.hdata.truncate(m.hedges)
			g.fdata.truncate(m.faces)
		}
		return FaceHandle{}, err
	}
	if atomic {
		g.topo.commit()
	}

	return f, nil
}

// weaveFace runs Stages 2–5 of NewFace.
func (g *Graph[V, E, H, F]) weaveFace(vertices []VertexHandle, data F) (FaceHandle, error) {
	t := &g.topo
	n := len(vertices)

	loop := make([]HalfEdgeHandle, n)
	for i, from := range vertices {
		to := vertices[(i+1)%n]
		h, err := g.findOrCreateHalfEdge(from, to)
		if err != nil {
			return FaceHandle{}, fmt.Errorf("%s: side %v→%v: %w", methodNewFace, from, to, err)
		}
		loop[i] = h
	}

	for i, h := range loop {
		if t.hasFace(h) {
			return FaceHandle{}, fmt.Errorf("%s: side %v→%v bounds %v: %w",
				methodNewFace, vertices[i], vertices[(i+1)%n], t.he(h).face, ErrHalfEdgeTaken)
		}
	}

	for i, in := range loop {
		out := loop[(i+1)%n]
		if !t.makeAdjacent(in, out) {
			return FaceHandle{}, fmt.Errorf("%s: rotate around %v: %w",
				methodNewFace, vertices[(i+1)%n], ErrNoFreeSlot)
		}
	}

	f := t.faces.alloc(faceLinks{hedge: loop[0]})
	g.fdata.alloc(data)
	for _, h := range loop {
		t.he(h).face = f
	}

	return f, nil
}

func (g *Graph[V, E, H, F]) findEdge(v1, v2 VertexHandle) (EdgeHandle, bool) {
	h, ok := g.topo.findHalfEdge(v1, v2)
	if !ok {
		return EdgeHandle{}, false
	}

	return g.topo.he(h).edge, true
}

func (g *Graph[V, E, H, F]) findOrCreateHalfEdge(v1, v2 VertexHandle) (HalfEdgeHandle, error) {
	if h, ok := g.topo.findHalfEdge(v1, v2); ok {
		return h, nil
	}
	e, err := g.newEdge(v1, v2, defaultOf[E]())
	if err != nil {
		return HalfEdgeHandle{}, err
	}

	// the representative of a fresh edge always points to its second vertex
	return g.topo.edges.at(e).hedge, nil
}

// insertionPoint returns the face-free outgoing half-edge of v that a new
// half-edge will be spliced in front of, or the nil handle for an isolated v.
func (t *topology) insertionPoint(v VertexHandle) (HalfEdgeHandle, error) {
	start := t.vertices.at(v).hedge
	if start.IsNil() {
		return HalfEdgeHandle{}, nil
	}
	free, ok := t.findFreeHalfEdge(start)
	if !ok {
		return HalfEdgeHandle{}, fmt.Errorf("vertex %v enclosed: %w", v, ErrNoFreeSlot)
	}

	return free, nil
}

// spliceEdge allocates an edge v1-v2 and links its half-edges into the rings
// of both endpoints. at1/at2 come from insertionPoint.
func (t *topology) spliceEdge(v1, v2 VertexHandle, at1, at2 HalfEdgeHandle) EdgeHandle {
	e := t.edges.alloc(edgeLinks{})
	h1 := t.hedges.alloc(halfEdgeLinks{vertex: v2, edge: e}) // v1 → v2
	h2 := t.hedges.alloc(halfEdgeLinks{vertex: v1, edge: e}) // v2 → v1

	r1, r2 := t.he(h1), t.he(h2)
	r1.pair, r1.next, r1.prev = h2, h2, h2
	r2.pair, r2.next, r2.prev = h1, h1, h1
	t.edges.at(e).hedge = h1

	if at1.IsNil() {
		t.setVertexHedge(v1, h1)
	} else {
		into := t.prev(at1)
		t.link(into, h1)
		t.link(h2, at1)
	}

	if at2.IsNil() {
		t.setVertexHedge(v2, h2)
	} else {
		into := t.prev(at2)
		t.link(h1, at2)
		t.link(into, h2)
	}

	return e
}
