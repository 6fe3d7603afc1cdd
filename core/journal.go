// SPDX-License-Identifier: MIT
//
// File: journal.go
// Role: Undo log that turns NewFace into an all-or-nothing operation.
// Policy:
//   - Methods are nil-safe: a nil *journal records nothing (partial-faces mode
//     and every operation outside NewFace).
//   - Rollback replays writes newest-first, then truncates arenas to the marks
//     taken when the journal opened.

package core

type writeKind uint8

const (
	writeNext writeKind = iota
	writePrev
	writeVertexHedge
)

type linkWrite struct {
	kind   writeKind
	hedge  HalfEdgeHandle // target of writeNext/writePrev
	vertex VertexHandle   // target of writeVertexHedge
	old    HalfEdgeHandle
}

type journal struct {
	start  marks
	writes []linkWrite
}

func (j *journal) recordNext(h, old HalfEdgeHandle) {
	if j == nil {
		return
	}
	j.writes = append(j.writes, linkWrite{kind: writeNext, hedge: h, old: old})
}

func (j *journal) recordPrev(h, old HalfEdgeHandle) {
	if j == nil {
		return
	}
	j.writes = append(j.writes, linkWrite{kind: writePrev, hedge: h, old: old})
}

func (j *journal) recordVertex(v VertexHandle, old HalfEdgeHandle) {
	if j == nil {
		return
	}
	j.writes = append(j.writes, linkWrite{kind: writeVertexHedge, vertex: v, old: old})
}

// begin opens a journal on t. Only one journal may be open at a time.
func (t *topology) begin() {
	t.journal = &journal{start: t.mark()}
}

// commit discards the open journal, keeping every write.
func (t *topology) commit() {
	t.journal = nil
}

// rollback undoes every write recorded since begin and returns the arena
// lengths the caller must restore its own (payload) arenas to.
func (t *topology) rollback() marks {
	j := t.journal
	t.journal = nil
	if j == nil {
		return t.mark()
	}
	for i := len(j.writes) - 1; i >= 0; i-- {
		w := j.writes[i]
		switch w.kind {
		case writeNext:
			t.he(w.hedge).next = w.old
		case writePrev:
			t.he(w.hedge).prev = w.old
		case writeVertexHedge:
			t.vertices.at(w.vertex).hedge = w.old
		}
	}
	t.vertices.truncate(j.start.vertices)
	t.edges.truncate(j.start.edges)
	t.hedges.truncate(j.start.hedges)
	t.faces.truncate(j.start.faces)

	return j.start
}
