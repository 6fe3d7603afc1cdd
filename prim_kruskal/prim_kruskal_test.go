package prim_kruskal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hedgegraph/builder"
	"github.com/katalvlaran/hedgegraph/core"
	"github.com/katalvlaran/hedgegraph/prim_kruskal"
)

func build(tb testing.TB, opts []builder.BuilderOption, cons ...builder.Constructor) *builder.Graph {
	tb.Helper()
	g, err := builder.BuildGraph(nil, opts, cons...)
	require.NoError(tb, err)

	return g
}

func id(t *testing.T, g *builder.Graph, label string) core.VertexHandle {
	t.Helper()
	v, ok := builder.VertexByID(g, label)
	require.True(t, ok, label)

	return v
}

func edge(t *testing.T, g *builder.Graph, a, b string) core.EdgeHandle {
	t.Helper()
	e, ok := g.FindEdge(id(t, g, a), id(t, g, b))
	require.True(t, ok, "%s-%s", a, b)

	return e
}

// buildTriangle is the cycle 0-1-2 with weights 1, 2 and 3.
func buildTriangle(t *testing.T) *builder.Graph {
	g := build(t, nil, builder.Cycle(3))
	// handles are resolved first: lookups block while the writer is held
	weights := map[core.EdgeHandle]float64{
		edge(t, g, "0", "1"): 1,
		edge(t, g, "1", "2"): 2,
		edge(t, g, "2", "0"): 3,
	}
	wr := g.Write()
	defer wr.Release()
	for e, w := range weights {
		em, ok := wr.Edge(e)
		require.True(t, ok)
		em.SetData(w)
	}

	return g
}

func TestValidation(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal[string, core.Empty, core.Empty](nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Prim[string, core.Empty, core.Empty](nil, core.VertexHandle{})
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	empty := core.NewGraph[string, float64, core.Empty, core.Empty]()
	_, _, err = prim_kruskal.Kruskal(empty)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(empty, core.VertexHandle{})
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	g := buildTriangle(t)
	_, _, err = prim_kruskal.Prim(g, core.VertexHandle{})
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)

	other := build(t, nil, builder.Cycle(3))
	_, _, err = prim_kruskal.Prim(g, id(t, other, "0"))
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestTriangle(t *testing.T) {
	g := buildTriangle(t)
	want := []core.EdgeHandle{edge(t, g, "0", "1"), edge(t, g, "1", "2")}

	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.ElementsMatch(t, want, mst)

	mst, total, err = prim_kruskal.Prim(g, id(t, g, "2"))
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.ElementsMatch(t, want, mst)
}

func TestSingleAndIsolatedVertices(t *testing.T) {
	g := core.NewGraph[string, float64, core.Empty, core.Empty]()
	a := g.AddVertex()

	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, mst)
	assert.Zero(t, total)

	mst, _, err = prim_kruskal.Prim(g, a)
	require.NoError(t, err)
	assert.Empty(t, mst)

	g.AddVertex()
	_, _, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(g, a)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestComputeAgreement(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 10)},
		builder.Grid(6, 7))
	root := id(t, g, "3,3")

	km, kw, err := prim_kruskal.Compute(g)
	require.NoError(t, err)
	pm, pw, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(root))
	require.NoError(t, err)

	assert.Len(t, km, g.VertexCount()-1)
	assert.Len(t, pm, g.VertexCount()-1)
	assert.InDelta(t, kw, pw, 1e-9)
}

// The complement of a spanning tree on a closed genus-zero surface has one
// edge per face but one.
func TestCotreeOnSolids(t *testing.T) {
	for _, name := range []builder.PlatonicName{
		builder.Tetrahedron, builder.Cube, builder.Octahedron, builder.Dodecahedron, builder.Icosahedron,
	} {
		g := build(t, nil, builder.PlatonicSolid(name))
		mst, total, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err, name)

		assert.Len(t, mst, g.VertexCount()-1, name)
		assert.Equal(t, float64(g.VertexCount()-1)*builder.DefaultEdgeWeight, total, name)
		assert.Equal(t, g.FaceCount()-1, g.EdgeCount()-len(mst), name)
	}
}

func BenchmarkKruskal(b *testing.B) {
	g := build(b, []builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(1, 100)}, builder.Grid(40, 40))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

func BenchmarkPrim(b *testing.B) {
	g := build(b, []builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(1, 100)}, builder.Grid(40, 40))
	root, _ := builder.VertexByID(g, "0,0")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g, root)
	}
}
