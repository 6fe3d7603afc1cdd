// SPDX-License-Identifier: MIT
// In-package tests for the ring corruption guard: they break a link on
// purpose, which the public API never allows.

package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corruptQuad builds one quad face h0→h1→h2→h3 and relinks h3.next to h1,
// leaving a 3-cycle that never returns to h0.
func corruptQuad(t *testing.T, opts ...GraphOption) (*Plain, HalfEdgeHandle) {
	t.Helper()
	g := NewPlain(opts...)
	vs := []VertexHandle{g.AddVertex(), g.AddVertex(), g.AddVertex(), g.AddVertex()}
	f, err := g.AddFace(vs...)
	require.NoError(t, err)

	tp := &g.topo
	h0 := tp.faces.at(f).hedge
	h1 := tp.next(h0)
	h3 := tp.prev(h0)
	tp.he(h3).next = h1

	return g, h0
}

// drain pulls from w until it ends or panics, returning the number of
// positions yielded and the recovered error.
func drain(w *ringWalker) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	for _, ok := w.next(0); ok; _, ok = w.next(0) {
		n++
	}

	return n, nil
}

// TestRingGuard_StepBound VERIFIES a walk stuck in a cycle that skips its
// head is cut off after one pass over the half-edge arena.
func TestRingGuard_StepBound(t *testing.T) {
	g, h0 := corruptQuad(t)
	require.Equal(t, 8, g.topo.hedges.len())

	n, err := drain(newRingWalker(&g.topo, 0, h0, true, ringLoop))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorruptRing), "got %v", err)
	assert.Equal(t, 8, n)
}

// TestRingGuard_RepeatCheck VERIFIES WithRingGuard stops on the first
// revisited half-edge.
func TestRingGuard_RepeatCheck(t *testing.T) {
	g, h0 := corruptQuad(t, WithRingGuard())

	n, err := drain(newRingWalker(&g.topo, 0, h0, true, ringLoop))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorruptRing), "got %v", err)
	assert.Equal(t, 3, n)
}

// TestRingGuard_PublicViews VERIFIES the guard surfaces through iter.Seq
// traversals and releases the read lock on the way out.
func TestRingGuard_PublicViews(t *testing.T) {
	for name, opts := range map[string][]GraphOption{
		"bound": nil,
		"guard": {WithRingGuard()},
	} {
		t.Run(name, func(t *testing.T) {
			g, _ := corruptQuad(t, opts...)
			f, ok := g.Face(g.FaceHandles()[0])
			require.True(t, ok)

			var got any
			func() {
				defer func() { got = recover() }()
				for range f.HalfEdges() {
				}
			}()
			err, isErr := got.(error)
			require.True(t, isErr, "panic value %v", got)
			assert.True(t, errors.Is(err, ErrCorruptRing))

			// a write lock is available again
			g.AddVertex()
			assert.Equal(t, 5, g.VertexCount())
		})
	}
}
