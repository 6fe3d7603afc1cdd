// SPDX-License-Identifier: MIT
//
// File: rotation.go
// Role: Rotation/adjacency solver: free-slot search in vertex rings and the
//       constant-time splice that makes two half-edges consecutive.
// Policy:
//   - Nothing here allocates; every pointer write goes through topology setters.
//   - All searches are bounded by the degree of a single vertex.

package core

// findFreeHalfEdge walks the outgoing ring of the vertex start leaves from
// (step: pair, then next) and returns the first half-edge without a face.
// Returns false once the walk comes back to start.
//
// Complexity: O(deg v).
func (t *topology) findFreeHalfEdge(start HalfEdgeHandle) (HalfEdgeHandle, bool) {
	limit := t.hedges.len()
	cur := start
	for steps := 0; ; steps++ {
		if !t.hasFace(cur) {
			return cur, true
		}
		cur = t.next(t.pair(cur))
		if cur == start {
			return HalfEdgeHandle{}, false
		}
		if steps > limit {
			panicCorrupt("findFreeHalfEdge", start)
		}
	}
}

// findFreeHalfEdgeBetween walks the incoming ring of a vertex (step: next,
// then pair) from after, and returns the first half-edge without a face seen
// before reaching before. after and before must point to the same vertex.
//
// Complexity: O(deg v).
func (t *topology) findFreeHalfEdgeBetween(after, before HalfEdgeHandle) (HalfEdgeHandle, bool) {
	if t.he(after).vertex != t.he(before).vertex {
		panicCorrupt("findFreeHalfEdgeBetween", after)
	}
	limit := t.hedges.len()
	cur := after
	for steps := 0; ; steps++ {
		if cur == before {
			return HalfEdgeHandle{}, false
		}
		if !t.hasFace(cur) {
			return cur, true
		}
		cur = t.pair(t.next(cur))
		if steps > limit {
			panicCorrupt("findFreeHalfEdgeBetween", after)
		}
	}
}

// makeAdjacent rearranges the ring of the vertex shared by in and out so
// that in.next == out. in must point to the vertex out leaves from.
//
// Implementation:
//   - Stage 1: no-op if already adjacent.
//   - Stage 2: find a face-free incoming half-edge freeIn strictly between
//     out.pair and in (rotating around the vertex); fail if none.
//   - Stage 3: close in → out, move the displaced chain [in.next .. out.prev]
//     to sit right after freeIn, and reconnect its tail to freeIn's old next.
//
// Returns false without writing anything when no free slot exists.
// Complexity: O(deg v) search + 6 link writes.
func (t *topology) makeAdjacent(in, out HalfEdgeHandle) bool {
	outPair := t.pair(out)
	if t.he(in).vertex != t.he(outPair).vertex {
		panicCorrupt("makeAdjacent", in)
	}
	if t.next(in) == out {
		return true
	}

	inNext := t.next(in)
	outPrev := t.prev(out)

	freeIn, ok := t.findFreeHalfEdgeBetween(outPair, in)
	if !ok {
		return false
	}
	freeInNext := t.next(freeIn)

	t.link(in, out)
	t.link(freeIn, inNext)
	t.link(outPrev, freeInNext)

	return true
}
