// SPDX-License-Identifier: MIT
// Package: hedgegraph/meshdsl
//
// graph.go - one-call construction of a named graph from mesh source.

package meshdsl

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/hedgegraph/core"
)

// Graph carries the source names as payloads: vertex name, explicit edge name
// (empty for edges implied by faces) and face name.
type Graph = core.Graph[string, string, core.Empty, string]

// BuildGraph parses src into a fresh Graph created with opts and stamps the
// declared names into the payloads.
func BuildGraph(filename string, src []byte, opts ...core.GraphOption) (*Graph, *Mesh, error) {
	g := core.NewGraph[string, string, core.Empty, string](opts...)

	m, err := Load(g, filename, src)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "BuildGraph %s", filename)
	}

	w := g.Write()
	defer w.Release()
	for _, name := range m.names {
		if vm, ok := w.Vertex(m.vertices[name]); ok {
			vm.SetData(name)
		}
	}
	for _, d := range m.Edges {
		if em, ok := w.Edge(d.Handle); ok {
			em.SetData(d.Name)
		}
	}
	for _, d := range m.Faces {
		if fm, ok := w.Face(d.Handle); ok {
			fm.SetData(d.Name)
		}
	}

	return g, m, nil
}
