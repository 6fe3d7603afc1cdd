// SPDX-License-Identifier: MIT
// Package core_test verifies the exclusive Writer guard and its mutable views.

package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hedgegraph/core"
)

type label struct {
	Name  string
	Visit int
}

// TestWriter_BuildAndEdit VERIFIES construction and payload edits through one guard.
func TestWriter_BuildAndEdit(t *testing.T) {
	g := core.NewGraph[label, int, int, string]()

	w := g.Write()
	a := w.NewVertex(label{Name: "a"})
	b := w.NewVertex(label{Name: "b"})
	c := w.NewVertex(label{Name: "c"})
	d := w.AddVertex()
	f, err := w.NewFace([]core.VertexHandle{a, b, c}, "abc")
	require.NoError(t, err)
	_, err = w.AddFace(b, d, c)
	require.NoError(t, err)
	_, err = w.NewEdge(a, a, 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	e, ok := w.FindEdge(b, c)
	require.True(t, ok)

	// touch every vertex through a full-graph cursor
	first, ok := w.Vertices().Next()
	require.True(t, ok)
	first.Update(func(l *label) { l.Visit++ })
	vc := w.Vertices()
	for v, ok := vc.Next(); ok; v, ok = vc.Next() {
		v.Update(func(l *label) { l.Visit++ })
	}

	fm, ok := w.Face(f)
	require.True(t, ok)
	fm.SetData("ABC")
	assert.Len(t, DrainCursor(fm.Vertices()), 3)
	assert.Len(t, DrainCursor(fm.Faces()), 1)

	em, ok := w.Edge(e)
	require.True(t, ok)
	em.SetData(42)
	assert.Len(t, DrainCursor(em.Faces()), 2)
	from, to := em.Vertices()
	assert.Equal(t, b, from.Handle())
	assert.Equal(t, c, to.Handle())

	// read views bound to the writer work under its lock
	view := fm.View()
	assert.Equal(t, "ABC", view.Data())
	assert.Len(t, Collect(view.Edges()), 3)
	w.Release()

	va, _ := g.VertexData(a)
	assert.Equal(t, label{Name: "a", Visit: 2}, va)
	vd, _ := g.VertexData(d)
	assert.Equal(t, 1, vd.Visit)
	ed, _ := g.EdgeData(e)
	assert.Equal(t, 42, ed)
	MustValid(t, g)
}

// TestWriter_HalfEdgeNavigation VERIFIES mutable half-edge navigation mirrors read views.
func TestWriter_HalfEdgeNavigation(t *testing.T) {
	g, vs := MustBuild(t, 4, TetrahedronFaces)
	w := g.Write()
	defer w.Release()

	vm, ok := w.Vertex(vs[0])
	require.True(t, ok)
	out := DrainCursor(vm.OutHalfEdges())
	require.Len(t, out, 3)
	for _, h := range out {
		assert.Equal(t, vs[0], h.Source().Handle())
		assert.Equal(t, h.Handle(), h.Pair().Pair().Handle())
		assert.Equal(t, h.Handle(), h.Next().Prev().Handle())
		_, faced := h.Face()
		assert.True(t, faced)
		h.Update(func(n *core.Empty) {})
	}
	assert.Len(t, DrainCursor(vm.InHalfEdges()), 3)
	assert.Len(t, DrainCursor(vm.Vertices()), 3)
	assert.Len(t, DrainCursor(vm.Edges()), 3)
	assert.Len(t, DrainCursor(vm.Faces()), 3)
	assert.Len(t, DrainCursor(w.Edges()), 6)
	assert.Len(t, DrainCursor(w.HalfEdges()), 12)
	assert.Len(t, DrainCursor(w.Faces()), 4)

	rep, ok := vm.HalfEdge()
	require.True(t, ok)
	assert.Equal(t, out[0].Handle(), rep.Handle())
}

// TestWriter_CursorInvalidated VERIFIES topology writes through the writer
// invalidate its live cursors.
func TestWriter_CursorInvalidated(t *testing.T) {
	g := core.NewPlain()
	vs := Vertices(g, 3)
	_, err := g.AddEdge(vs[0], vs[1])
	require.NoError(t, err)

	w := g.Write()
	defer w.Release()

	vm, _ := w.Vertex(vs[0])
	c := vm.OutHalfEdges()
	_, ok := c.Next()
	require.True(t, ok)
	_, err = w.AddEdge(vs[0], vs[2])
	require.NoError(t, err)
	RequirePanicIs(t, core.ErrMutatedDuringWalk, func() { c.Next() })

	all := w.Vertices()
	_, err = w.AddEdge(vs[1], vs[2])
	require.NoError(t, err)
	RequirePanicIs(t, core.ErrMutatedDuringWalk, func() { all.Next() })

	// an exhausted cursor reports the change too instead of ending quietly
	v2, _ := w.Vertex(vs[2])
	done := v2.OutHalfEdges()
	assert.Len(t, DrainCursor(done), 2)
	_, err = w.AddEdge(vs[0], w.AddVertex())
	require.NoError(t, err)
	RequirePanicIs(t, core.ErrMutatedDuringWalk, func() { done.Next() })
}

// TestWriter_Released VERIFIES use-after-release panics and double release is harmless.
func TestWriter_Released(t *testing.T) {
	g := core.NewPlain()
	w := g.Write()
	v := w.AddVertex()
	vm, _ := w.Vertex(v)
	view := vm.View()
	w.Release()
	w.Release()

	RequirePanicIs(t, core.ErrWriterReleased, func() { w.AddVertex() })
	RequirePanicIs(t, core.ErrWriterReleased, func() { vm.Data() })
	RequirePanicIs(t, core.ErrWriterReleased, func() { view.IsIsolated() })

	// the graph is usable again
	assert.Equal(t, 1, g.VertexCount())
}

// TestWriter_Exclusive VERIFIES readers wait for the guard.
func TestWriter_Exclusive(t *testing.T) {
	g := core.NewPlain()
	w := g.Write()

	done := make(chan int)
	go func() {
		done <- g.VertexCount()
	}()

	w.AddVertex()
	select {
	case <-done:
		t.Fatal("reader ran while the writer was held")
	case <-time.After(20 * time.Millisecond):
	}
	w.Release()
	assert.Equal(t, 1, <-done)
}

// TestWriter_Topology VERIFIES *Writer satisfies core.Topology.
func TestWriter_Topology(t *testing.T) {
	var _ core.Topology = (*core.Writer[int, int, int, int])(nil)
	var _ core.Topology = core.NewPlain()
}
