package export

import (
	"github.com/tidwall/sjson"

	"github.com/katalvlaran/hedgegraph/core"
)

// Element classes, matching the selectors of the cytoscape viewer.
const (
	ClassVertex     = "vertex"
	ClassHalfEdge   = "half_edge"
	ClassFace       = "face"
	ClassVertexEdge = "vertex_edge"
	ClassPair       = "hedge_pair"
	ClassNext       = "hedge_next"
	ClassPrev       = "hedge_prev"
	ClassTarget     = "hedge_vertex"
	ClassHedge      = "hedge"
)

// Elements renders src as a cytoscape.js init fragment: {"elements": [...]}.
//
// Nodes: one per vertex, half-edge and face. Edges: one vertex_edge per graph
// edge, one hedge_pair per half-edge pair, a hedge_next, hedge_prev and
// hedge_vertex per half-edge, and a hedge link from every vertex and face to
// its representative half-edge.
func Elements(src Source, opts ...Option) ([]byte, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	c := newConfig(opts)
	s := src.Snapshot()
	d := &doc{buf: []byte(`{"elements":[]}`)}

	node := func(id, class, label string) {
		el := []byte(`{"group":"nodes"}`)
		el, _ = sjson.SetBytes(el, "data.id", id)
		el, _ = sjson.SetBytes(el, "data.class", class)
		if label != "" {
			el, _ = sjson.SetBytes(el, "data.label", label)
		}
		d.setRaw("elements.-1", string(el))
	}
	link := func(class, source string, target handle, edge string) {
		el := []byte(`{"group":"edges"}`)
		el, _ = sjson.SetBytes(el, "data.id", source+"-"+class+"-"+target.String())
		el, _ = sjson.SetBytes(el, "data.class", class)
		el, _ = sjson.SetBytes(el, "data.source", source)
		el, _ = sjson.SetBytes(el, "data.target", target.String())
		if edge != "" {
			el, _ = sjson.SetBytes(el, "data.edge", edge)
		}
		d.setRaw("elements.-1", string(el))
	}

	for _, r := range s.Vertices {
		var label string
		if c.label != nil {
			label, _ = c.label(r.Handle)
		}
		node(r.Handle.String(), ClassVertex, label)
	}
	for _, r := range s.HalfEdges {
		node(r.Handle.String(), ClassHalfEdge, "")
	}
	for _, r := range s.Faces {
		node(r.Handle.String(), ClassFace, "")
	}

	for _, r := range s.Edges {
		h, ok := s.HalfEdge(r.HalfEdge)
		if !ok {
			continue
		}
		p, ok := s.HalfEdge(h.Pair)
		if !ok {
			continue
		}
		link(ClassVertexEdge, p.Vertex.String(), h.Vertex, r.Handle.String())
	}
	for _, r := range s.HalfEdges {
		id := r.Handle.String()
		if r.Handle.Index() < r.Pair.Index() {
			link(ClassPair, id, r.Pair, "")
		}
		link(ClassNext, id, r.Next, "")
		link(ClassPrev, id, r.Prev, "")
		link(ClassTarget, id, r.Vertex, "")
	}
	for _, r := range s.Vertices {
		if !r.HalfEdge.IsNil() {
			link(ClassHedge, r.Handle.String(), r.HalfEdge, "")
		}
	}
	for _, r := range s.Faces {
		link(ClassHedge, r.Handle.String(), r.HalfEdge, "")
	}

	return d.finish("Elements", c)
}

// vertexLabels is a WithVertexLabel source for string-labelled graphs.
type vertexLabels interface {
	VertexData(core.VertexHandle) (string, bool)
}

// WithVertexNames labels vertices with their string payload, as carried by
// builder.Graph and meshdsl.Graph.
func WithVertexNames(g vertexLabels) Option {
	return WithVertexLabel(g.VertexData)
}
