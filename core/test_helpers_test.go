// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for hedgegraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures (vertex batches, face lists) for core.Graph.
//   - Bridge iter.Seq traversals into slices of handles for compact assertions.
//   - Run the invariant checker after every fixture so each test starts from a sound graph.

package core_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hedgegraph/core"
	"github.com/katalvlaran/hedgegraph/verify"
)

// Common sizes used across core tests (avoid magic numbers in test bodies).
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NCloners        = 20
)

// Face lists over 0-based vertex indices.
var (
	// 3×3 grid, row-major, with the outer face closing it into a disk pair.
	GridFaces = [][]int{{0, 1, 4, 3}, {3, 4, 7, 6}, {1, 2, 5, 4}, {4, 5, 8, 7}}
	GridOuter = []int{0, 3, 6, 7, 8, 5, 2, 1}

	TetrahedronFaces = [][]int{{0, 1, 2}, {0, 3, 1}, {1, 3, 2}, {0, 2, 3}}
	CubeFaces        = [][]int{
		{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4},
		{1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
	}
	OctahedronFaces = [][]int{
		{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
		{1, 4, 2}, {1, 3, 4}, {1, 5, 3}, {1, 2, 5},
	}

	// closed fan of four triangles around vertex 0
	FanFaces = [][]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 1}}
)

// Vertices ADDS n vertices with default payloads and returns their handles in order.
func Vertices[V, E, H, F any](g *core.Graph[V, E, H, F], n int) []core.VertexHandle {
	out := make([]core.VertexHandle, n)
	for i := range out {
		out[i] = g.AddVertex()
	}

	return out
}

// Pick MAPS indices onto handles.
func Pick(vs []core.VertexHandle, idx ...int) []core.VertexHandle {
	out := make([]core.VertexHandle, len(idx))
	for i, j := range idx {
		out[i] = vs[j]
	}

	return out
}

// MustFaces ADDS every face of faces (indices into vs) and fails the test on error.
func MustFaces[V, E, H, F any](t *testing.T, g *core.Graph[V, E, H, F], vs []core.VertexHandle, faces [][]int) []core.FaceHandle {
	t.Helper()
	out := make([]core.FaceHandle, len(faces))
	for i, f := range faces {
		h, err := g.AddFace(Pick(vs, f...)...)
		require.NoError(t, err, "AddFace(%v)", f)
		out[i] = h
	}

	return out
}

// MustBuild CREATES a plain graph with n vertices and the given faces, then
// checks every invariant.
func MustBuild(t *testing.T, n int, faces [][]int, opts ...core.GraphOption) (*core.Plain, []core.VertexHandle) {
	t.Helper()
	g := core.NewPlain(opts...)
	vs := Vertices(g, n)
	MustFaces(t, g, vs, faces)
	MustValid(t, g)

	return g, vs
}

// MustValid RUNS the invariant checker and fails with its full report.
func MustValid(t *testing.T, g verify.Source) {
	t.Helper()
	require.NoError(t, verify.Check(g).Err())
}

// Collect DRAINS a sequence.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}

	return out
}

type handled[H comparable] interface {
	Handle() H
}

// HandlesOf DRAINS a sequence of views into their handles.
func HandlesOf[H comparable, T handled[H]](seq iter.Seq[T]) []H {
	var out []H
	for v := range seq {
		out = append(out, v.Handle())
	}

	return out
}

// DrainCursor PULLS every value out of a writer cursor.
func DrainCursor[T any](c *core.Cursor[T]) []T {
	var out []T
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		out = append(out, v)
	}

	return out
}

// RequirePanicIs RUNS fn and requires it to panic with an error matching target.
func RequirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	fn()
}
