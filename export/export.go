// Package export renders the link structure of a half-edge graph as JSON for
// the cytoscape.js viewer.
//
// What
//
//   - Dump:      one document keyed by handle, mirroring every link record:
//     {"graph": id, "vertices": {"v0": {"hedge": "h0"}}, "edges": {...},
//     "faces": {...}, "half_edges": {"h0": {"pair", "next", "prev",
//     "vertex", "edge", "face"}}}. Nil links are JSON null.
//   - Elements:  a cytoscape.js {"elements": [...]} fragment (vertices,
//     half-edges and faces as nodes; pair/next/prev/vertex links as
//     classed edges).
//   - Summarize: reads a Dump document back into counts.
//
// Records appear in slot order, so the output is deterministic for a given
// construction sequence. Documents are built with sjson and, unless
// WithCompact is given, indented with pretty.
package export

import (
	"errors"
	"fmt"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/katalvlaran/hedgegraph/core"
)

var (
	// ErrNilSource is returned when no graph is given.
	ErrNilSource = errors.New("export: nil source")

	// ErrInvalidDocument is returned by Summarize for malformed JSON.
	ErrInvalidDocument = errors.New("export: invalid document")
)

// Source is anything that can hand out a topology snapshot; *core.Graph of
// any payload types satisfies it.
type Source interface {
	Snapshot() *core.Snapshot
}

// Option tunes the rendered output.
type Option func(*config)

type config struct {
	compact bool
	label   func(core.VertexHandle) (string, bool)
}

// WithCompact skips indentation.
func WithCompact() Option {
	return func(c *config) { c.compact = true }
}

// WithVertexLabel attaches a "label" to every vertex for which fn reports ok.
func WithVertexLabel(fn func(core.VertexHandle) (string, bool)) Option {
	return func(c *config) { c.label = fn }
}

func newConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}

	return c
}

// handle is the surface shared by every core handle type.
type handle interface {
	IsNil() bool
	String() string
}

// ref renders a link: its handle string, or nil for JSON null.
func ref(h handle) interface{} {
	if h.IsNil() {
		return nil
	}

	return h.String()
}

// doc accumulates sjson writes and keeps the first error.
type doc struct {
	buf []byte
	err error
}

func (d *doc) set(path string, v interface{}) {
	if d.err != nil {
		return
	}
	d.buf, d.err = sjson.SetBytes(d.buf, path, v)
}

func (d *doc) setRaw(path, raw string) {
	if d.err != nil {
		return
	}
	d.buf, d.err = sjson.SetRawBytes(d.buf, path, []byte(raw))
}

func (d *doc) finish(method string, c config) ([]byte, error) {
	if d.err != nil {
		return nil, fmt.Errorf("export: %s: %w", method, d.err)
	}
	if c.compact {
		return d.buf, nil
	}

	return pretty.Pretty(d.buf), nil
}

// Dump renders every link record of src.
// Complexity: O(N²) in the document size, as each sjson write rescans it.
func Dump(src Source, opts ...Option) ([]byte, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	c := newConfig(opts)
	s := src.Snapshot()

	d := &doc{buf: []byte(`{}`)}
	d.set("graph", s.ID.String())
	for _, key := range []string{"vertices", "edges", "faces", "half_edges"} {
		d.setRaw(key, `{}`)
	}

	for _, r := range s.Vertices {
		key := "vertices." + r.Handle.String()
		d.set(key+".hedge", ref(r.HalfEdge))
		if c.label != nil {
			if l, ok := c.label(r.Handle); ok {
				d.set(key+".label", l)
			}
		}
	}
	for _, r := range s.Edges {
		d.set("edges."+r.Handle.String()+".hedge", ref(r.HalfEdge))
	}
	for _, r := range s.Faces {
		d.set("faces."+r.Handle.String()+".hedge", ref(r.HalfEdge))
	}
	for _, r := range s.HalfEdges {
		key := "half_edges." + r.Handle.String()
		d.set(key+".pair", ref(r.Pair))
		d.set(key+".next", ref(r.Next))
		d.set(key+".prev", ref(r.Prev))
		d.set(key+".vertex", ref(r.Vertex))
		d.set(key+".edge", ref(r.Edge))
		d.set(key+".face", ref(r.Face))
	}

	return d.finish("Dump", c)
}
