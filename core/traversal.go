// SPDX-License-Identifier: MIT
//
// File: traversal.go
// Role: Generic ring walker behind every structural query.
// Policy:
//   - A walk starts at a head half-edge, applies one step function, and ends
//     when the step returns to head.
//   - Positions rejected by the accept predicate are skipped, never yielded.
//   - Every walk is bounded by the half-edge count; WithRingGuard adds an
//     exact repeat check. Either violation panics with ErrCorruptRing.
// AI-HINT (file):
//   - Projection (half-edge → vertex/edge/face view) lives in view.go and writer.go.

package core

import "fmt"

type stepFunc func(t *topology, h HalfEdgeHandle) HalfEdgeHandle

type acceptFunc func(t *topology, h HalfEdgeHandle) bool

// ringKind names one way of walking around a vertex, edge, or face.
type ringKind struct {
	name   string
	step   stepFunc
	accept acceptFunc // nil accepts everything
}

func stepOut(t *topology, h HalfEdgeHandle) HalfEdgeHandle  { return t.next(t.pair(h)) }
func stepIn(t *topology, h HalfEdgeHandle) HalfEdgeHandle   { return t.pair(t.next(h)) }
func stepNext(t *topology, h HalfEdgeHandle) HalfEdgeHandle { return t.next(h) }
func stepPair(t *topology, h HalfEdgeHandle) HalfEdgeHandle { return t.pair(h) }

func acceptFaced(t *topology, h HalfEdgeHandle) bool     { return t.hasFace(h) }
func acceptPairFaced(t *topology, h HalfEdgeHandle) bool { return t.hasFace(t.pair(h)) }

var (
	// outgoing half-edges of a vertex, starting at vertex.hedge
	ringOut = ringKind{name: "vertex-out", step: stepOut}
	// incoming half-edges of a vertex, starting at vertex.hedge.pair
	ringIn = ringKind{name: "vertex-in", step: stepIn}
	// outgoing half-edges that bound a face
	ringVertexFaces = ringKind{name: "vertex-faces", step: stepOut, accept: acceptFaced}
	// the one or two faced sides of an edge
	ringEdgeFaces = ringKind{name: "edge-faces", step: stepPair, accept: acceptFaced}
	// a face boundary (or any next-loop)
	ringLoop = ringKind{name: "loop", step: stepNext}
	// loop half-edges whose opposite side has a face
	ringFaceFaces = ringKind{name: "face-faces", step: stepNext, accept: acceptPairFaced}
)

// ringWalker is a resumable walk. It holds no lock; callers take the
// Graph lock around each call to next.
type ringWalker struct {
	t       *topology
	kind    ringKind
	head    HalfEdgeHandle
	cur     HalfEdgeHandle
	live    bool
	steps   int
	version uint64
	visited map[HalfEdgeHandle]struct{}
}

// newRingWalker positions a walker on start. With ok == false (the start
// selector yielded nothing) the walk is empty.
func newRingWalker(t *topology, version uint64, start HalfEdgeHandle, ok bool, kind ringKind) *ringWalker {
	w := &ringWalker{t: t, kind: kind, version: version}
	if !ok || start.IsNil() {
		return w
	}
	w.head, w.cur, w.live = start, start, true
	if t.ringGuard {
		w.visited = make(map[HalfEdgeHandle]struct{})
	}
	// make sure the first yielded position is acceptable
	if !w.accepts(start) {
		w.advance()
	}

	return w
}

func (w *ringWalker) accepts(h HalfEdgeHandle) bool {
	return w.kind.accept == nil || w.kind.accept(w.t, h)
}

// next returns the current position and moves past it.
func (w *ringWalker) next(version uint64) (HalfEdgeHandle, bool) {
	if version != w.version {
		panic(fmt.Errorf("%w: %s walk from %v", ErrMutatedDuringWalk, w.kind.name, w.head))
	}
	if !w.live {
		return HalfEdgeHandle{}, false
	}
	cur := w.cur
	w.advance()

	return cur, true
}

func (w *ringWalker) advance() {
	for w.live {
		nxt := w.kind.step(w.t, w.cur)
		w.guard(nxt)
		if nxt == w.head {
			w.live = false
			return
		}
		w.cur = nxt
		if w.accepts(nxt) {
			return
		}
	}
}

func (w *ringWalker) guard(nxt HalfEdgeHandle) {
	w.steps++
	if w.steps > w.t.hedges.len() {
		panicCorrupt(w.kind.name, w.head)
	}
	if w.visited == nil {
		return
	}
	if _, seen := w.visited[nxt]; seen {
		panicCorrupt(w.kind.name, w.head)
	}
	w.visited[nxt] = struct{}{}
}

// collect drains a fresh walk into a slice.
func (t *topology) collect(start HalfEdgeHandle, ok bool, kind ringKind) []HalfEdgeHandle {
	w := newRingWalker(t, 0, start, ok, kind)
	var out []HalfEdgeHandle
	for h, more := w.next(0); more; h, more = w.next(0) {
		out = append(out, h)
	}

	return out
}

// findHalfEdge scans the outgoing ring of v1 for a half-edge pointing to v2.
// Complexity: O(deg v1).
func (t *topology) findHalfEdge(v1, v2 VertexHandle) (HalfEdgeHandle, bool) {
	if !t.vertices.contains(v1) {
		return HalfEdgeHandle{}, false
	}
	start := t.vertices.at(v1).hedge
	w := newRingWalker(t, 0, start, !start.IsNil(), ringOut)
	for h, more := w.next(0); more; h, more = w.next(0) {
		if t.he(h).vertex == v2 {
			return h, true
		}
	}

	return HalfEdgeHandle{}, false
}

func panicCorrupt(where string, at HalfEdgeHandle) {
	panic(fmt.Errorf("%w: %s at %v", ErrCorruptRing, where, at))
}
