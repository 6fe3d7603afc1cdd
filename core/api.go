// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade: counts, membership, Stats, adjacency lists, and
//       handle-indexed payload access.
// Policy:
//   - No topology writes here. Payload setters take the write lock.
//   - Every list is returned in a deterministic order (arena order or ring order).
// AI-HINT (file):
//   - Use Primal()/Dual() to hand the graph to bfs/dfs.
//   - Stats() is an O(V+H) snapshot; rely on it for quick diagnostics.

package core

import "fmt"

// Topology is the payload-agnostic construction surface. It is implemented
// by *Graph and *Writer; implied payloads take their default values.
type Topology interface {
	AddVertex() VertexHandle
	AddEdge(v1, v2 VertexHandle) (EdgeHandle, error)
	AddFace(vertices ...VertexHandle) (FaceHandle, error)
	FindEdge(v1, v2 VertexHandle) (EdgeHandle, bool)
}

// Structure is an adjacency view consumed by traversal packages.
// Nodes returns every node in a deterministic order; Neighbors returns the
// nodes adjacent to n, or an error when n is not part of the structure.
type Structure[N comparable] interface {
	Nodes() []N
	Has(n N) bool
	Neighbors(n N) ([]N, error)
}

// GraphStats is a snapshot of catalog sizes and construction policy.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	HalfEdgeCount int
	FaceCount     int

	IsolatedVertexCount   int // vertices without edges
	BoundaryHalfEdgeCount int // half-edges that bound no face

	AtomicFaces bool // false when built WithPartialFaces
	RingGuard   bool
}

// EulerCharacteristic returns V − E + F.
func (s *GraphStats) EulerCharacteristic() int {
	return s.VertexCount - s.EdgeCount + s.FaceCount
}

// AddVertex adds a vertex with the default vertex payload.
func (g *Graph[V, E, H, F]) AddVertex() VertexHandle {
	return g.NewVertex(defaultOf[V]())
}

// AddEdge adds an edge with the default edge payload. See NewEdge.
func (g *Graph[V, E, H, F]) AddEdge(v1, v2 VertexHandle) (EdgeHandle, error) {
	return g.NewEdge(v1, v2, defaultOf[E]())
}

// AddFace adds a face with the default face payload. See NewFace.
func (g *Graph[V, E, H, F]) AddFace(vertices ...VertexHandle) (FaceHandle, error) {
	return g.NewFace(vertices, defaultOf[F]())
}

// Stats produces a read-only snapshot of counts and policy flags.
//
// Implementation:
//   - Stage 1: take the read lock and copy arena lengths.
//   - Stage 2: scan vertex and half-edge link records once.
//
// Complexity: O(V + H).
func (g *Graph[V, E, H, F]) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	t := &g.topo
	stats := GraphStats{
		VertexCount:   t.vertices.len(),
		EdgeCount:     t.edges.len(),
		HalfEdgeCount: t.hedges.len(),
		FaceCount:     t.faces.len(),
		AtomicFaces:   !g.cfg.partialFaces,
		RingGuard:     g.cfg.ringGuard,
	}
	for i := range t.vertices.slots {
		if t.vertices.slots[i].hedge.IsNil() {
			stats.IsolatedVertexCount++
		}
	}
	for i := range t.hedges.slots {
		if t.hedges.slots[i].face.IsNil() {
			stats.BoundaryHalfEdgeCount++
		}
	}

	return &stats
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph[V, E, H, F]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.topo.vertices.len()
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph[V, E, H, F]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.topo.edges.len()
}

// HalfEdgeCount returns the number of half-edges, always 2·EdgeCount.
func (g *Graph[V, E, H, F]) HalfEdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.topo.hedges.len()
}

// FaceCount returns the number of faces. Complexity: O(1).
func (g *Graph[V, E, H, F]) FaceCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.topo.faces.len()
}

// HasVertex reports whether v was issued by this graph.
func (g *Graph[V, E, H, F]) HasVertex(v VertexHandle) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.topo.vertices.contains(v)
}

// HasEdge reports whether e was issued by this graph.
func (g *Graph[V, E, H, F]) HasEdge(e EdgeHandle) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.topo.edges.contains(e)
}

// HasHalfEdge reports whether h was issued by this graph.
func (g *Graph[V, E, H, F]) HasHalfEdge(h HalfEdgeHandle) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.topo.hedges.contains(h)
}

// HasFace reports whether f was issued by this graph.
func (g *Graph[V, E, H, F]) HasFace(f FaceHandle) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.topo.faces.contains(f)
}

// VertexHandles returns every vertex handle in creation order.
func (g *Graph[V, E, H, F]) VertexHandles() []VertexHandle {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return handlesOf(&g.topo.vertices)
}

// EdgeHandles returns every edge handle in creation order.
func (g *Graph[V, E, H, F]) EdgeHandles() []EdgeHandle {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return handlesOf(&g.topo.edges)
}

// FaceHandles returns every face handle in creation order.
func (g *Graph[V, E, H, F]) FaceHandles() []FaceHandle {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return handlesOf(&g.topo.faces)
}

func handlesOf[K kind, T any](a *arena[K, T]) []Handle[K] {
	out := make([]Handle[K], a.len())
	for i := range out {
		out[i] = a.handle(i)
	}

	return out
}

// Neighbors returns the vertices adjacent to v in rotation order, starting
// from the target of v's representative half-edge.
//
// Errors:
//   - ErrVertexNotFound if v is not in the graph.
//
// Complexity: O(deg v).
func (g *Graph[V, E, H, F]) Neighbors(v VertexHandle) ([]VertexHandle, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	t := &g.topo
	if !t.vertices.contains(v) {
		return nil, fmt.Errorf("Neighbors(%v): %w", v, ErrVertexNotFound)
	}
	start := t.vertices.at(v).hedge
	ring := t.collect(start, !start.IsNil(), ringOut)
	out := make([]VertexHandle, len(ring))
	for i, h := range ring {
		out[i] = t.he(h).vertex
	}

	return out, nil
}

// FaceNeighbors returns the faces sharing an edge with f, in boundary order.
// A face adjacent along several edges appears once per shared edge.
//
// Errors:
//   - ErrFaceNotFound if f is not in the graph.
//
// Complexity: O(len(boundary f)).
func (g *Graph[V, E, H, F]) FaceNeighbors(f FaceHandle) ([]FaceHandle, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	t := &g.topo
	if !t.faces.contains(f) {
		return nil, fmt.Errorf("FaceNeighbors(%v): %w", f, ErrFaceNotFound)
	}
	ring := t.collect(t.faces.at(f).hedge, true, ringFaceFaces)
	out := make([]FaceHandle, len(ring))
	for i, h := range ring {
		out[i] = t.he(t.pair(h)).face
	}

	return out, nil
}

// Primal exposes vertex adjacency as a Structure.
func (g *Graph[V, E, H, F]) Primal() Structure[VertexHandle] {
	return primal[V, E, H, F]{g}
}

// Dual exposes face adjacency (the dual graph) as a Structure.
func (g *Graph[V, E, H, F]) Dual() Structure[FaceHandle] {
	return dual[V, E, H, F]{g}
}

type primal[V, E, H, F any] struct{ g *Graph[V, E, H, F] }

func (p primal[V, E, H, F]) Nodes() []VertexHandle { return p.g.VertexHandles() }
func (p primal[V, E, H, F]) Has(v VertexHandle) bool { return p.g.HasVertex(v) }
func (p primal[V, E, H, F]) Neighbors(v VertexHandle) ([]VertexHandle, error) {
	return p.g.Neighbors(v)
}

type dual[V, E, H, F any] struct{ g *Graph[V, E, H, F] }

func (d dual[V, E, H, F]) Nodes() []FaceHandle { return d.g.FaceHandles() }
func (d dual[V, E, H, F]) Has(f FaceHandle) bool { return d.g.HasFace(f) }
func (d dual[V, E, H, F]) Neighbors(f FaceHandle) ([]FaceHandle, error) {
	return d.g.FaceNeighbors(f)
}

// VertexData returns the payload of v.
func (g *Graph[V, E, H, F]) VertexData(v VertexHandle) (V, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vdata.get(v)
}

// SetVertexData replaces the payload of v. Reports false for unknown handles.
func (g *Graph[V, E, H, F]) SetVertexData(v VertexHandle, data V) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.vdata.set(v, data)
}

// UpdateVertexData applies fn to the payload of v in place.
// fn runs under the write lock and must not call back into g.
func (g *Graph[V, E, H, F]) UpdateVertexData(v VertexHandle, fn func(*V)) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.vdata.update(v, fn)
}

// EdgeData returns the payload of e.
func (g *Graph[V, E, H, F]) EdgeData(e EdgeHandle) (E, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edata.get(e)
}

// SetEdgeData replaces the payload of e.
func (g *Graph[V, E, H, F]) SetEdgeData(e EdgeHandle, data E) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.edata.set(e, data)
}

// UpdateEdgeData applies fn to the payload of e in place.
func (g *Graph[V, E, H, F]) UpdateEdgeData(e EdgeHandle, fn func(*E)) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.edata.update(e, fn)
}

// HalfEdgeData returns the payload of h.
func (g *Graph[V, E, H, F]) HalfEdgeData(h HalfEdgeHandle) (H, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hdata.get(h)
}

// SetHalfEdgeData replaces the payload of h.
func (g *Graph[V, E, H, F]) SetHalfEdgeData(h HalfEdgeHandle, data H) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.hdata.set(h, data)
}

// UpdateHalfEdgeData applies fn to the payload of h in place.
func (g *Graph[V, E, H, F]) UpdateHalfEdgeData(h HalfEdgeHandle, fn func(*H)) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.hdata.update(h, fn)
}

// FaceData returns the payload of f.
func (g *Graph[V, E, H, F]) FaceData(f FaceHandle) (F, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.fdata.get(f)
}

// SetFaceData replaces the payload of f.
func (g *Graph[V, E, H, F]) SetFaceData(f FaceHandle, data F) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.fdata.set(f, data)
}

// UpdateFaceData applies fn to the payload of f in place.
func (g *Graph[V, E, H, F]) UpdateFaceData(f FaceHandle, fn func(*F)) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.fdata.update(f, fn)
}
