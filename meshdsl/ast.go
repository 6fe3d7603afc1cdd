// SPDX-License-Identifier: MIT
// Package: hedgegraph/meshdsl
//
// ast.go - grammar-carrying syntax tree and its canonical printer.
//
// Grammar (one statement per ';'):
//
//	vertex v1, v2, v3;
//	edge   e1 (v1 -> v2);
//	face   f1 (v1 -> v2 -> v3);
//
// Comments run from '#' or '//' to end of line.

package meshdsl

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// File is a parsed mesh description.
type File struct {
	Stmts []*Stmt `@@*`
}

// Stmt is exactly one of a vertex, edge or face declaration.
type Stmt struct {
	Pos lexer.Position

	Vertex *VertexStmt `  @@`
	Edge   *EdgeStmt   `| @@`
	Face   *FaceStmt   `| @@`
}

// VertexStmt declares one or more isolated vertices.
type VertexStmt struct {
	Names []string `"vertex" @Ident ("," @Ident)* ";"`
}

// EdgeStmt connects two declared vertices.
type EdgeStmt struct {
	Name string `"edge" @Ident`
	From string `"(" @Ident`
	To   string `"->" @Ident ")" ";"`
}

// FaceStmt bounds a face by a loop of declared vertices.
// A loop of fewer than two vertices parses and is rejected when applied.
type FaceStmt struct {
	Name string   `"face" @Ident`
	Loop []string `"(" @Ident ("->" @Ident)* ")" ";"`
}

// String renders f in canonical form, one statement per line.
// Parsing the output yields an equivalent File.
func (f *File) String() string {
	var sb strings.Builder
	for _, st := range f.Stmts {
		sb.WriteString(st.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (s *Stmt) String() string {
	switch {
	case s.Vertex != nil:
		return "vertex " + strings.Join(s.Vertex.Names, ", ") + ";"
	case s.Edge != nil:
		return "edge " + s.Edge.Name + " (" + s.Edge.From + " -> " + s.Edge.To + ");"
	case s.Face != nil:
		return "face " + s.Face.Name + " (" + strings.Join(s.Face.Loop, " -> ") + ");"
	}

	return ""
}
