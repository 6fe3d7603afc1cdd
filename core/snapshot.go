// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Plain-data dump of every link record, for checkers and exporters.
// Determinism:
//   - Records are listed in slot order: Records[i].Handle.Index() == i.
// Concurrency:
//   - Taken under the read lock; the result shares nothing with the graph.

package core

import "github.com/google/uuid"

// VertexRecord is the link state of one vertex.
type VertexRecord struct {
	Handle   VertexHandle
	HalfEdge HalfEdgeHandle // outgoing; nil while isolated
}

// EdgeRecord is the link state of one edge.
type EdgeRecord struct {
	Handle   EdgeHandle
	HalfEdge HalfEdgeHandle
}

// HalfEdgeRecord is the link state of one half-edge.
type HalfEdgeRecord struct {
	Handle HalfEdgeHandle
	Pair   HalfEdgeHandle
	Next   HalfEdgeHandle
	Prev   HalfEdgeHandle
	Vertex VertexHandle // target
	Edge   EdgeHandle
	Face   FaceHandle // nil on the boundary
}

// FaceRecord is the link state of one face.
type FaceRecord struct {
	Handle   FaceHandle
	HalfEdge HalfEdgeHandle
}

// Snapshot is a detached copy of a graph's topology.
type Snapshot struct {
	ID        uuid.UUID
	Vertices  []VertexRecord
	Edges     []EdgeRecord
	HalfEdges []HalfEdgeRecord
	Faces     []FaceRecord
}

// Snapshot copies every link record of g.
// Complexity: O(V + E + F).
func (g *Graph[V, E, H, F]) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	t := &g.topo
	s := &Snapshot{
		ID:        g.id,
		Vertices:  make([]VertexRecord, t.vertices.len()),
		Edges:     make([]EdgeRecord, t.edges.len()),
		HalfEdges: make([]HalfEdgeRecord, t.hedges.len()),
		Faces:     make([]FaceRecord, t.faces.len()),
	}
	for i, rec := range t.vertices.slots {
		s.Vertices[i] = VertexRecord{Handle: t.vertices.handle(i), HalfEdge: rec.hedge}
	}
	for i, rec := range t.edges.slots {
		s.Edges[i] = EdgeRecord{Handle: t.edges.handle(i), HalfEdge: rec.hedge}
	}
	for i, rec := range t.hedges.slots {
		s.HalfEdges[i] = HalfEdgeRecord{
			Handle: t.hedges.handle(i),
			Pair:   rec.pair,
			Next:   rec.next,
			Prev:   rec.prev,
			Vertex: rec.vertex,
			Edge:   rec.edge,
			Face:   rec.face,
		}
	}
	for i, rec := range t.faces.slots {
		s.Faces[i] = FaceRecord{Handle: t.faces.handle(i), HalfEdge: rec.hedge}
	}

	return s
}

// Vertex returns the record addressed by h, if h belongs to this snapshot.
func (s *Snapshot) Vertex(h VertexHandle) (*VertexRecord, bool) {
	i := h.Index()
	if i < 0 || i >= len(s.Vertices) || s.Vertices[i].Handle != h {
		return nil, false
	}

	return &s.Vertices[i], true
}

// Edge returns the record addressed by h, if h belongs to this snapshot.
func (s *Snapshot) Edge(h EdgeHandle) (*EdgeRecord, bool) {
	i := h.Index()
	if i < 0 || i >= len(s.Edges) || s.Edges[i].Handle != h {
		return nil, false
	}

	return &s.Edges[i], true
}

// HalfEdge returns the record addressed by h, if h belongs to this snapshot.
func (s *Snapshot) HalfEdge(h HalfEdgeHandle) (*HalfEdgeRecord, bool) {
	i := h.Index()
	if i < 0 || i >= len(s.HalfEdges) || s.HalfEdges[i].Handle != h {
		return nil, false
	}

	return &s.HalfEdges[i], true
}

// Face returns the record addressed by h, if h belongs to this snapshot.
func (s *Snapshot) Face(h FaceHandle) (*FaceRecord, bool) {
	i := h.Index()
	if i < 0 || i >= len(s.Faces) || s.Faces[i].Handle != h {
		return nil, false
	}

	return &s.Faces[i], true
}
