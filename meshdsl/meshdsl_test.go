package meshdsl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hedgegraph/core"
	"github.com/katalvlaran/hedgegraph/meshdsl"
	"github.com/katalvlaran/hedgegraph/verify"
)

// readFixture loads testdata/name.
func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	src, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	return src
}

func TestParse_Canonical(t *testing.T) {
	src := `
# leading comment
vertex a,b , c;   // trailing comment
edge   ab (a->b);
face f(a -> b -> c);
`
	f, err := meshdsl.ParseString("inline.mesh", src)
	require.NoError(t, err)
	require.Len(t, f.Stmts, 3)
	assert.Equal(t, []string{"a", "b", "c"}, f.Stmts[0].Vertex.Names)
	assert.Equal(t, "ab", f.Stmts[1].Edge.Name)
	assert.Equal(t, []string{"a", "b", "c"}, f.Stmts[2].Face.Loop)
	assert.Equal(t, 4, f.Stmts[1].Pos.Line)

	want := "vertex a, b, c;\nedge ab (a -> b);\nface f (a -> b -> c);\n"
	assert.Equal(t, want, f.String())

	again, err := meshdsl.ParseString("again.mesh", f.String())
	require.NoError(t, err)
	assert.Equal(t, want, again.String())
}

func TestParse_Empty(t *testing.T) {
	f, err := meshdsl.ParseString("empty.mesh", "  # nothing\n")
	require.NoError(t, err)
	assert.Empty(t, f.Stmts)
}

func TestParse_SyntaxErrors(t *testing.T) {
	cases := map[string]string{
		"missing semicolon": "vertex a\nvertex b;",
		"unknown keyword":   "node a;",
		"unclosed loop":     "vertex a, b;\nface f (a -> b;",
		"bad arrow":         "vertex a, b;\nedge e (a - b);",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := meshdsl.ParseString("bad.mesh", src)
			require.ErrorIs(t, err, meshdsl.ErrSyntax)
			assert.Contains(t, err.Error(), "bad.mesh:")
		})
	}
}

func TestApply_Fixtures(t *testing.T) {
	cases := []struct {
		file                 string
		vertices, edges      int
		faces, boundaryHalfs int
	}{
		{"grid.mesh", 9, 12, 5, 0},
		{"fans.mesh", 8, 11, 4, 10},
		{"edges.mesh", 4, 5, 2, 4},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			g := core.NewPlain()
			m, err := meshdsl.Load(g, tc.file, readFixture(t, tc.file))
			require.NoError(t, err)

			st := g.Stats()
			assert.Equal(t, tc.vertices, st.VertexCount)
			assert.Equal(t, tc.edges, st.EdgeCount)
			assert.Equal(t, tc.faces, st.FaceCount)
			assert.Equal(t, tc.boundaryHalfs, st.BoundaryHalfEdgeCount)
			assert.Len(t, m.VertexNames(), tc.vertices)
			assert.Len(t, m.Faces, tc.faces)
			require.NoError(t, verify.Check(g).Err())
		})
	}
}

func TestApply_FaceLoops(t *testing.T) {
	g := core.NewPlain()
	m, err := meshdsl.Load(g, "grid.mesh", readFixture(t, "grid.mesh"))
	require.NoError(t, err)

	for _, d := range m.Faces {
		fv, ok := g.Face(d.Handle)
		require.True(t, ok)
		var got []core.VertexHandle
		for v := range fv.Vertices() {
			got = append(got, v.Handle())
		}
		require.Len(t, got, len(d.Loop))
		assert.ElementsMatch(t, d.Loop, got, d.Name)
	}

	// the repeated name resolves to the later face
	last, ok := m.Face("f3")
	require.True(t, ok)
	assert.Equal(t, m.Faces[3].Handle, last)
	_, ok = m.Face("nope")
	assert.False(t, ok)
}

func TestApply_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
		at   string
	}{
		{"unknown vertex", "vertex a, b;\n\nedge e (a -> z);", meshdsl.ErrUnknownVertex, "x.mesh:3:1"},
		{"duplicate vertex", "vertex a;\nvertex b, a;", meshdsl.ErrDuplicateVertex, "x.mesh:2:1"},
		{"self loop", "vertex a;\nedge e (a -> a);", core.ErrLoopNotAllowed, "x.mesh:2:1"},
		{"multi edge", "vertex a, b;\nedge e (a -> b);\nedge f (b -> a);", core.ErrMultiEdgeNotAllowed, "x.mesh:3:1"},
		{"short face", "vertex a;\nface f (a);", core.ErrTooFewVertices, "x.mesh:2:1"},
		{"taken side", "vertex a, b, c;\nface f (a -> b -> c);\nface g (b -> c -> a);", core.ErrHalfEdgeTaken, "x.mesh:3:1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewPlain()
			_, err := meshdsl.Load(g, "x.mesh", []byte(tc.src))
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.at)
			require.NoError(t, verify.Check(g).Err())
		})
	}

	f, err := meshdsl.ParseString("x.mesh", "vertex a;")
	require.NoError(t, err)
	_, err = f.Apply(nil)
	assert.ErrorIs(t, err, meshdsl.ErrNilTopology)
}

func TestApply_Writer(t *testing.T) {
	f, err := meshdsl.Parse("grid.mesh", readFixture(t, "grid.mesh"))
	require.NoError(t, err)

	g := core.NewPlain()
	w := g.Write()
	m, err := f.Apply(w)
	w.Release()
	require.NoError(t, err)

	assert.Equal(t, 5, g.FaceCount())
	v5, ok := m.Vertex("v5")
	require.True(t, ok)
	nbs, err := g.Neighbors(v5)
	require.NoError(t, err)
	assert.Len(t, nbs, 4)
}

func TestBuildGraph_Names(t *testing.T) {
	g, m, err := meshdsl.BuildGraph("edges.mesh", readFixture(t, "edges.mesh"))
	require.NoError(t, err)

	for _, name := range m.VertexNames() {
		v, _ := m.Vertex(name)
		got, ok := g.VertexData(v)
		require.True(t, ok)
		assert.Equal(t, name, got)
	}
	for _, d := range m.Edges {
		got, _ := g.EdgeData(d.Handle)
		assert.Equal(t, d.Name, got)
	}
	upper, _ := m.Face("upper")
	name, _ := g.FaceData(upper)
	assert.Equal(t, "upper", name)

	_, _, err = meshdsl.BuildGraph("bad.mesh", []byte("vertex a"))
	assert.ErrorIs(t, err, meshdsl.ErrSyntax)
}
