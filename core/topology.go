// SPDX-License-Identifier: MIT
//
// File: topology.go
// Role: Link records of the four entity kinds and the payload-free topology store.
// Policy:
//   - Every write to next/prev/vertex.hedge goes through a setter so an open
//     journal can undo it.
//   - Nothing in this file knows about payloads; Graph keeps payload arenas in lockstep.

package core

import "github.com/google/uuid"

type vertexLinks struct {
	hedge HalfEdgeHandle // outgoing representative; nil while isolated
}

type edgeLinks struct {
	hedge HalfEdgeHandle
}

type faceLinks struct {
	hedge HalfEdgeHandle
}

type halfEdgeLinks struct {
	pair HalfEdgeHandle
	next HalfEdgeHandle
	prev HalfEdgeHandle

	vertex VertexHandle // the vertex this half-edge points to
	edge   EdgeHandle
	face   FaceHandle // nil for boundary half-edges
}

// topology is the connectivity of a Graph.
type topology struct {
	vertices arena[vertexKind, vertexLinks]
	edges    arena[edgeKind, edgeLinks]
	hedges   arena[halfEdgeKind, halfEdgeLinks]
	faces    arena[faceKind, faceLinks]

	journal   *journal // non-nil while an atomic face insertion is running
	ringGuard bool     // record visited half-edges during ring walks
}

func newTopology(owner uuid.UUID, c capacity) topology {
	return topology{
		vertices: newArena[vertexKind, vertexLinks](owner, c.vertices),
		edges:    newArena[edgeKind, edgeLinks](owner, c.edges),
		hedges:   newArena[halfEdgeKind, halfEdgeLinks](owner, 2*c.edges),
		faces:    newArena[faceKind, faceLinks](owner, c.faces),
	}
}

// he returns the link record of a valid half-edge.
func (t *topology) he(h HalfEdgeHandle) *halfEdgeLinks {
	return t.hedges.at(h)
}

func (t *topology) pair(h HalfEdgeHandle) HalfEdgeHandle { return t.he(h).pair }
func (t *topology) next(h HalfEdgeHandle) HalfEdgeHandle { return t.he(h).next }
func (t *topology) prev(h HalfEdgeHandle) HalfEdgeHandle { return t.he(h).prev }

func (t *topology) hasFace(h HalfEdgeHandle) bool { return !t.he(h).face.IsNil() }

// source returns the vertex h leaves from.
func (t *topology) source(h HalfEdgeHandle) VertexHandle {
	return t.he(t.he(h).pair).vertex
}

func (t *topology) setNext(h, n HalfEdgeHandle) {
	rec := t.he(h)
	t.journal.recordNext(h, rec.next)
	rec.next = n
}

func (t *topology) setPrev(h, p HalfEdgeHandle) {
	rec := t.he(h)
	t.journal.recordPrev(h, rec.prev)
	rec.prev = p
}

func (t *topology) setVertexHedge(v VertexHandle, h HalfEdgeHandle) {
	rec := t.vertices.at(v)
	t.journal.recordVertex(v, rec.hedge)
	rec.hedge = h
}

// link makes b follow a in their loop.
func (t *topology) link(a, b HalfEdgeHandle) {
	t.setNext(a, b)
	t.setPrev(b, a)
}

// marks captures the arena lengths a journal truncates back to.
type marks struct {
	vertices, edges, hedges, faces int
}

func (t *topology) mark() marks {
	return marks{
		vertices: t.vertices.len(),
		edges:    t.edges.len(),
		hedges:   t.hedges.len(),
		faces:    t.faces.len(),
	}
}
