// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and resetting graph instances, and index-based handle lookup.
// Determinism:
//   - A clone keeps every slot index; only the graph identity changes.
// Concurrency:
//   - Read lock on the source while copying; Reset takes the write lock.
// AI-HINT (file):
//   - Handles of the source do not validate against a clone. Translate with
//     clone.VertexAt(h.Index()) and friends.
//   - Reset issues a fresh identity, so every handle issued before it is rejected.

package core

import "github.com/google/uuid"

// Clone returns a deep copy of the graph: configuration, topology and
// payloads (payloads are copied by assignment). The clone has its own identity.
//
// Complexity: O(V + E + F).
func (g *Graph[V, E, H, F]) Clone() *Graph[V, E, H, F] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.emptyLike()
	id := clone.id
	t, ct := &g.topo, &clone.topo

	for i := range t.vertices.slots {
		ct.vertices.alloc(vertexLinks{hedge: rebind(t.vertices.slots[i].hedge, id)})
	}
	for i := range t.edges.slots {
		ct.edges.alloc(edgeLinks{hedge: rebind(t.edges.slots[i].hedge, id)})
	}
	for i := range t.hedges.slots {
		src := &t.hedges.slots[i]
		ct.hedges.alloc(halfEdgeLinks{
			pair:   rebind(src.pair, id),
			next:   rebind(src.next, id),
			prev:   rebind(src.prev, id),
			vertex: rebind(src.vertex, id),
			edge:   rebind(src.edge, id),
			face:   rebind(src.face, id),
		})
	}
	for i := range t.faces.slots {
		ct.faces.alloc(faceLinks{hedge: rebind(t.faces.slots[i].hedge, id)})
	}

	clone.vdata.slots = append(clone.vdata.slots, g.vdata.slots...)
	clone.edata.slots = append(clone.edata.slots, g.edata.slots...)
	clone.hdata.slots = append(clone.hdata.slots, g.hdata.slots...)
	clone.fdata.slots = append(clone.fdata.slots, g.fdata.slots...)

	return clone
}

// CloneVertices returns a graph with the same configuration and vertex
// payloads but no edges or faces.
//
// Complexity: O(V).
func (g *Graph[V, E, H, F]) CloneVertices() *Graph[V, E, H, F] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.emptyLike()
	for i := range g.vdata.slots {
		clone.newVertex(g.vdata.slots[i])
	}

	return clone
}

// Reset drops every entity and issues a new graph identity. Configuration
// is preserved.
//
// Complexity: O(1) plus garbage collection of the old arenas.
func (g *Graph[V, E, H, F]) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	fresh := g.emptyLike()
	g.id = fresh.id
	g.topo = fresh.topo
	g.vdata, g.edata, g.hdata, g.fdata = fresh.vdata, fresh.edata, fresh.hdata, fresh.fdata
	g.version++
}

// emptyLike builds an empty graph with g's configuration. Caller holds a lock on g.
func (g *Graph[V, E, H, F]) emptyLike() *Graph[V, E, H, F] {
	cfg := g.cfg
	cfg.capacity = capacity{
		vertices: g.topo.vertices.len(),
		edges:    g.topo.edges.len(),
		faces:    g.topo.faces.len(),
	}

	return newGraph[V, E, H, F](cfg)
}

func rebind[K kind](h Handle[K], owner uuid.UUID) Handle[K] {
	if h.IsNil() {
		return h
	}
	h.owner = owner

	return h
}

// VertexAt returns the handle of the vertex in slot i (0-based).
func (g *Graph[V, E, H, F]) VertexAt(i int) (VertexHandle, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slotHandle(&g.topo.vertices, i)
}

// EdgeAt returns the handle of the edge in slot i (0-based).
func (g *Graph[V, E, H, F]) EdgeAt(i int) (EdgeHandle, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slotHandle(&g.topo.edges, i)
}

// HalfEdgeAt returns the handle of the half-edge in slot i (0-based).
func (g *Graph[V, E, H, F]) HalfEdgeAt(i int) (HalfEdgeHandle, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slotHandle(&g.topo.hedges, i)
}

// FaceAt returns the handle of the face in slot i (0-based).
func (g *Graph[V, E, H, F]) FaceAt(i int) (FaceHandle, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slotHandle(&g.topo.faces, i)
}

func slotHandle[K kind, T any](a *arena[K, T], i int) (Handle[K], bool) {
	if i < 0 || i >= a.len() {
		return Handle[K]{}, false
	}

	return a.handle(i), true
}
