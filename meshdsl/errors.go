// SPDX-License-Identifier: MIT
// Package: hedgegraph/meshdsl
//
// errors.go - sentinel errors. Core construction failures are not mapped:
// they are wrapped with the statement position and keep their core sentinel.

package meshdsl

import "errors"

var (
	// ErrSyntax is returned when the source does not match the grammar.
	ErrSyntax = errors.New("meshdsl: syntax error")

	// ErrUnknownVertex is returned when an edge or face names an undeclared vertex.
	ErrUnknownVertex = errors.New("meshdsl: unknown vertex")

	// ErrDuplicateVertex is returned when a vertex name is declared twice.
	ErrDuplicateVertex = errors.New("meshdsl: vertex declared twice")

	// ErrNilTopology is returned when Apply gets no target.
	ErrNilTopology = errors.New("meshdsl: nil topology")
)
