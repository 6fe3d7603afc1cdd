package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/katalvlaran/hedgegraph/builder"
	"github.com/katalvlaran/hedgegraph/core"
	"github.com/katalvlaran/hedgegraph/export"
)

// triangle is a single face with one extra isolated vertex.
func triangle(t *testing.T) *builder.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Polygon(3))
	require.NoError(t, err)
	g.AddVertex()

	return g
}

func TestDump_Links(t *testing.T) {
	g := triangle(t)
	doc, err := export.Dump(g, export.WithCompact())
	require.NoError(t, err)
	require.True(t, gjson.ValidBytes(doc))
	root := gjson.ParseBytes(doc)

	assert.Equal(t, g.ID().String(), root.Get("graph").String())
	assert.Equal(t, gjson.Null, root.Get("vertices.v3.hedge").Type)
	assert.Equal(t, gjson.String, root.Get("vertices.v0.hedge").Type)
	assert.Equal(t, "f0", root.Get("half_edges."+root.Get("faces.f0.hedge").String()+".face").String())

	hedges := root.Get("half_edges")
	boundary := 0
	hedges.ForEach(func(k, v gjson.Result) bool {
		id := k.String()
		pair := v.Get("pair").String()
		assert.Equal(t, id, hedges.Get(pair+".pair").String(), "pair of %s", id)
		assert.Equal(t, id, hedges.Get(v.Get("next").String()+".prev").String(), "next of %s", id)
		assert.Equal(t, v.Get("edge").String(), hedges.Get(pair+".edge").String())
		assert.NotEqual(t, v.Get("vertex").String(), hedges.Get(pair+".vertex").String())
		if v.Get("face").Type == gjson.Null {
			boundary++
		}
		return true
	})
	assert.Equal(t, 3, boundary)
}

func TestDump_Formatting(t *testing.T) {
	g := triangle(t)

	compact, err := export.Dump(g, export.WithCompact())
	require.NoError(t, err)
	assert.False(t, bytes.Contains(compact, []byte("\n")))

	indented, err := export.Dump(g)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(indented, []byte("\n  ")))
	assert.Equal(t, string(compact), string(pretty.Ugly(indented)))
}

func TestDump_Labels(t *testing.T) {
	g := triangle(t)
	doc, err := export.Dump(g, export.WithCompact(), export.WithVertexNames(g))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		v, _ := g.VertexAt(i)
		want, _ := g.VertexData(v)
		assert.Equal(t, want, gjson.GetBytes(doc, "vertices."+v.String()+".label").String())
	}
	// the isolated vertex carries an empty label
	assert.True(t, gjson.GetBytes(doc, "vertices.v3.label").Exists())
}

func TestSummarize(t *testing.T) {
	cases := map[string]*builder.Graph{
		"triangle": triangle(t),
	}
	cube, err := builder.BuildGraph(nil, nil, builder.PlatonicSolid(builder.Cube))
	require.NoError(t, err)
	cases["cube"] = cube

	for name, g := range cases {
		t.Run(name, func(t *testing.T) {
			doc, err := export.Dump(g)
			require.NoError(t, err)
			sum, err := export.Summarize(doc)
			require.NoError(t, err)

			st := g.Stats()
			assert.Equal(t, g.ID().String(), sum.Graph)
			assert.Equal(t, st.VertexCount, sum.Vertices)
			assert.Equal(t, st.EdgeCount, sum.Edges)
			assert.Equal(t, st.HalfEdgeCount, sum.HalfEdges)
			assert.Equal(t, st.FaceCount, sum.Faces)
			assert.Equal(t, st.BoundaryHalfEdgeCount, sum.Boundary)
			assert.Equal(t, st.IsolatedVertexCount, sum.Isolated)
		})
	}

	_, err = export.Summarize([]byte(`{"vertices":`))
	assert.ErrorIs(t, err, export.ErrInvalidDocument)
}

func TestElements(t *testing.T) {
	g := triangle(t)
	doc, err := export.Elements(g, export.WithCompact(), export.WithVertexNames(g))
	require.NoError(t, err)

	classes := map[string]int{}
	ids := map[string]bool{}
	gjson.GetBytes(doc, "elements").ForEach(func(_, el gjson.Result) bool {
		classes[el.Get("data.class").String()]++
		id := el.Get("data.id").String()
		assert.False(t, ids[id], "duplicate id %s", id)
		ids[id] = true
		return true
	})

	assert.Equal(t, map[string]int{
		export.ClassVertex:     4,
		export.ClassHalfEdge:   6,
		export.ClassFace:       1,
		export.ClassVertexEdge: 3,
		export.ClassPair:       3,
		export.ClassNext:       6,
		export.ClassPrev:       6,
		export.ClassTarget:     6,
		export.ClassHedge:      4,
	}, classes)

	// every edge element points at existing nodes
	gjson.GetBytes(doc, `elements.#(group=="edges")#`).ForEach(func(_, el gjson.Result) bool {
		assert.True(t, ids[el.Get("data.source").String()])
		assert.True(t, ids[el.Get("data.target").String()])
		return true
	})
	assert.Equal(t, "0", gjson.GetBytes(doc, `elements.#(data.id=="v0").data.label`).String())
}

func TestNilSource(t *testing.T) {
	_, err := export.Dump(nil)
	assert.ErrorIs(t, err, export.ErrNilSource)
	_, err = export.Elements(nil)
	assert.ErrorIs(t, err, export.ErrNilSource)
}

func TestDump_EmptyGraph(t *testing.T) {
	doc, err := export.Dump(core.NewPlain(), export.WithCompact())
	require.NoError(t, err)
	sum, err := export.Summarize(doc)
	require.NoError(t, err)
	assert.Zero(t, sum.Vertices+sum.Edges+sum.Faces+sum.HalfEdges)
	assert.True(t, gjson.GetBytes(doc, "half_edges").IsObject())
}
