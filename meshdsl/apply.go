// SPDX-License-Identifier: MIT
// Package: hedgegraph/meshdsl
//
// apply.go - replays a parsed File against any core.Topology.
//
// Contract:
//   • Statements run in source order; the first failure stops the replay and
//     work done by earlier statements stays in the topology.
//   • Vertex names are unique; edge and face names are labels only and may repeat.
//   • Errors carry "file:line:col" of the failing statement and wrap either a
//     meshdsl sentinel or the core sentinel returned by the topology.

package meshdsl

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/hedgegraph/core"
)

// EdgeDecl records an explicit edge statement.
type EdgeDecl struct {
	Name     string
	Handle   core.EdgeHandle
	From, To core.VertexHandle
}

// FaceDecl records a face statement and its vertex loop.
type FaceDecl struct {
	Name   string
	Handle core.FaceHandle
	Loop   []core.VertexHandle
}

// Mesh maps the names of a File onto the handles it created.
type Mesh struct {
	vertices map[string]core.VertexHandle
	names    []string

	Edges []EdgeDecl
	Faces []FaceDecl
}

func newMesh() *Mesh {
	return &Mesh{vertices: make(map[string]core.VertexHandle)}
}

// Vertex returns the handle declared under name.
func (m *Mesh) Vertex(name string) (core.VertexHandle, bool) {
	v, ok := m.vertices[name]

	return v, ok
}

// VertexNames returns vertex names in declaration order.
func (m *Mesh) VertexNames() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)

	return out
}

// Face returns the last face declared under name.
func (m *Mesh) Face(name string) (core.FaceHandle, bool) {
	for i := len(m.Faces) - 1; i >= 0; i-- {
		if m.Faces[i].Name == name {
			return m.Faces[i].Handle, true
		}
	}

	return core.FaceHandle{}, false
}

// Apply builds f into topo.
func (f *File) Apply(topo core.Topology) (*Mesh, error) {
	if topo == nil {
		return nil, errors.WithStack(ErrNilTopology)
	}
	m := newMesh()
	for _, st := range f.Stmts {
		var err error
		switch {
		case st.Vertex != nil:
			err = m.applyVertex(topo, st)
		case st.Edge != nil:
			err = m.applyEdge(topo, st)
		case st.Face != nil:
			err = m.applyFace(topo, st)
		}
		if err != nil {
			return m, err
		}
	}

	return m, nil
}

func (m *Mesh) applyVertex(topo core.Topology, st *Stmt) error {
	for _, name := range st.Vertex.Names {
		if _, dup := m.vertices[name]; dup {
			return errors.Wrapf(ErrDuplicateVertex, "%s: vertex %s", st.Pos, name)
		}
		m.vertices[name] = topo.AddVertex()
		m.names = append(m.names, name)
	}

	return nil
}

func (m *Mesh) applyEdge(topo core.Topology, st *Stmt) error {
	s := st.Edge
	vs, err := m.resolve(st, s.From, s.To)
	if err != nil {
		return err
	}
	e, err := topo.AddEdge(vs[0], vs[1])
	if err != nil {
		return errors.Wrapf(err, "%s: edge %s (%s -> %s)", st.Pos, s.Name, s.From, s.To)
	}
	m.Edges = append(m.Edges, EdgeDecl{Name: s.Name, Handle: e, From: vs[0], To: vs[1]})

	return nil
}

func (m *Mesh) applyFace(topo core.Topology, st *Stmt) error {
	s := st.Face
	vs, err := m.resolve(st, s.Loop...)
	if err != nil {
		return err
	}
	fh, err := topo.AddFace(vs...)
	if err != nil {
		return errors.Wrapf(err, "%s: face %s", st.Pos, s.Name)
	}
	m.Faces = append(m.Faces, FaceDecl{Name: s.Name, Handle: fh, Loop: vs})

	return nil
}

// resolve maps names onto declared vertices.
func (m *Mesh) resolve(st *Stmt, names ...string) ([]core.VertexHandle, error) {
	out := make([]core.VertexHandle, len(names))
	for i, name := range names {
		v, ok := m.vertices[name]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownVertex, "%s: %s", st.Pos, name)
		}
		out[i] = v
	}

	return out, nil
}

// Load parses src and applies it to topo.
func Load(topo core.Topology, filename string, src []byte) (*Mesh, error) {
	f, err := Parse(filename, src)
	if err != nil {
		return nil, err
	}

	return f.Apply(topo)
}
