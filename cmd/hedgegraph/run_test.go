package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/katalvlaran/hedgegraph/meshdsl"
	"github.com/katalvlaran/hedgegraph/verify"
)

const gridMesh = "../../meshdsl/testdata/grid.mesh"

func TestRun_Solid(t *testing.T) {
	cfg := defaultConfig()
	cfg.Input.Solid = "cube"
	cfg.Output.Compact = true

	var out bytes.Buffer
	sum, err := run(cfg, &out)
	require.NoError(t, err)
	assert.Equal(t, 8, sum.Vertices)
	assert.Equal(t, 12, sum.Edges)
	assert.Equal(t, 6, sum.Faces)
	assert.Zero(t, sum.Boundary)

	require.True(t, gjson.ValidBytes(out.Bytes()))
	assert.Equal(t, "0", gjson.GetBytes(out.Bytes(), "vertices.v0.label").String())
}

func TestRun_MeshToFile(t *testing.T) {
	dir := t.TempDir()
	cfg := defaultConfig()
	cfg.Input.Path = gridMesh
	cfg.Output.Path = filepath.Join(dir, "grid.json")
	cfg.Graph.RingGuard = true

	var out bytes.Buffer
	sum, err := run(cfg, &out)
	require.NoError(t, err)
	assert.Zero(t, out.Len())
	assert.Equal(t, 9, sum.Vertices)
	assert.Equal(t, 24, sum.HalfEdges)

	doc, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	assert.Equal(t, "v5", gjson.GetBytes(doc, "vertices.v4.label").String())
}

func TestRun_Elements(t *testing.T) {
	cfg := defaultConfig()
	cfg.Input.Solid = "tetrahedron"
	cfg.Output.Format = FormatElements

	var out bytes.Buffer
	_, err := run(cfg, &out)
	require.NoError(t, err)
	assert.Equal(t, int64(4), gjson.GetBytes(out.Bytes(), `elements.#(data.class=="vertex")#|#`).Int())
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.mesh")
	require.NoError(t, os.WriteFile(bad, []byte("vertex a\n"), 0o644))

	cases := map[string]struct {
		mutate func(*Config)
		want   error
	}{
		"no input":     {func(c *Config) {}, ErrBadConfig},
		"both inputs":  {func(c *Config) { c.Input.Path, c.Input.Solid = gridMesh, "cube" }, ErrBadConfig},
		"bad solid":    {func(c *Config) { c.Input.Solid = "sphere" }, ErrBadConfig},
		"bad format":   {func(c *Config) { c.Input.Solid = "cube"; c.Output.Format = "yaml" }, ErrBadConfig},
		"syntax error": {func(c *Config) { c.Input.Path = bad }, meshdsl.ErrSyntax},
		"missing mesh": {func(c *Config) { c.Input.Path = filepath.Join(dir, "nope.mesh") }, os.ErrNotExist},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(&cfg)
			_, err := run(cfg, &bytes.Buffer{})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestInvariantFailure(t *testing.T) {
	cause := errors.Wrap(verify.ErrInvariantViolated, "1 violation(s): V3 dangling hedge")
	err := invariantFailure(cause)

	assert.ErrorIs(t, err, ErrInvariants)
	assert.ErrorIs(t, err, verify.ErrInvariantViolated)
	assert.Contains(t, err.Error(), "V3 dangling hedge")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[input]
solid = "octahedron"

[graph]
partial_faces = true

[output]
format = "elements"
compact = true
`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "octahedron", cfg.Input.Solid)
	assert.True(t, cfg.Graph.PartialFaces)
	assert.Len(t, cfg.graphOptions(), 1)
	assert.Equal(t, FormatElements, cfg.Output.Format)
	assert.True(t, cfg.Output.Compact)
	assert.True(t, cfg.Check.Enabled, "defaults survive")

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("[output]\ncolour = \"red\"\n"), 0o644))
	_, err = loadConfig(unknown)
	assert.ErrorIs(t, err, ErrBadConfig)

	_, err = loadConfig(filepath.Join(dir, "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRealMain(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "run.toml")
	outPath := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[output]\nformat = \"elements\"\n"), 0o644))

	// flags override the file's format
	code := realMain([]string{"-config", cfgPath, "-format", "dump", "-compact", "-o", outPath, gridMesh})
	require.Equal(t, 0, code)

	doc, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, gjson.GetBytes(doc, "half_edges").IsObject())
	assert.False(t, bytes.Contains(doc, []byte("\n")))

	assert.Equal(t, 2, realMain([]string{"-no-such-flag"}))
	assert.Equal(t, 1, realMain([]string{"-solid", "sphere"}))
}
