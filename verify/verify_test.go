package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hedgegraph/core"
	"github.com/katalvlaran/hedgegraph/verify"
)

// twoTriangles builds faces v1→v2→v3 and v2→v4→v3 sharing edge v2-v3.
func twoTriangles(t *testing.T) (*core.Plain, []core.VertexHandle) {
	t.Helper()
	g := core.NewPlain()
	vs := make([]core.VertexHandle, 4)
	for i := range vs {
		vs[i] = g.AddVertex()
	}
	_, err := g.AddFace(vs[0], vs[1], vs[2])
	require.NoError(t, err)
	_, err = g.AddFace(vs[1], vs[3], vs[2])
	require.NoError(t, err)

	return g, vs
}

func TestCheck_EmptyAndIsolated(t *testing.T) {
	g := core.NewPlain()
	require.True(t, verify.Check(g).OK())

	g.AddVertex()
	g.AddVertex()
	r := verify.Check(g)
	require.NoError(t, r.Err())
	assert.Equal(t, 2, r.Vertices)
	assert.Zero(t, r.HalfEdges)
}

func TestCheck_ValidGraphs(t *testing.T) {
	g, _ := twoTriangles(t)
	r := verify.Check(g)
	require.NoError(t, r.Err())
	assert.Equal(t, 4, r.Vertices)
	assert.Equal(t, 5, r.Edges)
	assert.Equal(t, 10, r.HalfEdges)
	assert.Equal(t, 2, r.Faces)
}

func TestCheck_Idempotent(t *testing.T) {
	g, _ := twoTriangles(t)
	first := verify.Check(g)
	second := verify.Check(g)
	assert.Equal(t, first, second)
}

func TestCheckSnapshot_DetectsCorruption(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func(s *core.Snapshot)
		rule    verify.Rule
	}{
		{
			name: "next skips ahead",
			corrupt: func(s *core.Snapshot) {
				h := &s.HalfEdges[0]
				h.Next = h.Prev
			},
			rule: verify.RuleNextPrev,
		},
		{
			name: "pair not mutual",
			corrupt: func(s *core.Snapshot) {
				s.HalfEdges[0].Pair = s.HalfEdges[2].Handle
			},
			rule: verify.RulePair,
		},
		{
			name: "face differs along loop",
			corrupt: func(s *core.Snapshot) {
				s.HalfEdges[0].Face = s.Faces[1].Handle
			},
			rule: verify.RuleLoopFace,
		},
		{
			name: "vertex representative is incoming",
			corrupt: func(s *core.Snapshot) {
				v := &s.Vertices[0]
				rec, _ := s.HalfEdge(v.HalfEdge)
				v.HalfEdge = rec.Pair
			},
			rule: verify.RuleVertexRing,
		},
		{
			name: "face representative on boundary",
			corrupt: func(s *core.Snapshot) {
				f := &s.Faces[0]
				rec, _ := s.HalfEdge(f.HalfEdge)
				f.HalfEdge = rec.Pair
			},
			rule: verify.RuleFaceLoop,
		},
		{
			name: "edge representative foreign",
			corrupt: func(s *core.Snapshot) {
				s.Edges[0].HalfEdge = s.Edges[1].HalfEdge
			},
			rule: verify.RuleEdge,
		},
		{
			name: "self-loop",
			corrupt: func(s *core.Snapshot) {
				h := &s.HalfEdges[0]
				pair, _ := s.HalfEdge(h.Pair)
				h.Vertex = pair.Vertex
			},
			rule: verify.RuleSimple,
		},
		{
			name: "handle from another graph",
			corrupt: func(s *core.Snapshot) {
				other, _ := twoTriangles(t)
				s.HalfEdges[0].Next = other.Snapshot().HalfEdges[0].Handle
			},
			rule: verify.RuleDangling,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := twoTriangles(t)
			s := g.Snapshot()
			require.True(t, verify.CheckSnapshot(s).OK())

			tc.corrupt(s)
			r := verify.CheckSnapshot(s)
			require.False(t, r.OK())
			assert.True(t, r.Has(tc.rule), "violations: %v", r.Violations)
			assert.ErrorIs(t, r.Err(), verify.ErrInvariantViolated)
		})
	}
}

func TestCheck_ClosedSurface(t *testing.T) {
	g := core.NewPlain()
	vs := make([]core.VertexHandle, 4)
	for i := range vs {
		vs[i] = g.AddVertex()
	}
	for _, f := range [][]int{{0, 1, 2}, {0, 3, 1}, {1, 3, 2}, {0, 2, 3}} {
		_, err := g.AddFace(vs[f[0]], vs[f[1]], vs[f[2]])
		require.NoError(t, err)
	}
	require.NoError(t, verify.Check(g).Err())
	assert.Zero(t, g.Stats().BoundaryHalfEdgeCount)
}
