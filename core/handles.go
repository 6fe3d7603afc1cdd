// SPDX-License-Identifier: MIT
//
// File: handles.go
// Role: Opaque, comparable handles addressing the four arenas of a Graph.
// Policy:
//   - A handle is (graph identity, 1-based slot index); the zero value is the nil handle.
//   - Handles minted by one Graph never validate against another Graph.

package core

import (
	"strconv"

	"github.com/google/uuid"
)

// kind tags a Handle with the arena it addresses. The tag types are empty,
// so handles of different kinds are distinct types with identical layout.
type kind interface {
	vertexKind | edgeKind | halfEdgeKind | faceKind
	prefix() byte
}

type (
	vertexKind   struct{}
	edgeKind     struct{}
	halfEdgeKind struct{}
	faceKind     struct{}
)

func (vertexKind) prefix() byte   { return 'v' }
func (edgeKind) prefix() byte     { return 'e' }
func (halfEdgeKind) prefix() byte { return 'h' }
func (faceKind) prefix() byte     { return 'f' }

// Handle is a stable identifier of one slot in a Graph arena.
//
// Handles are comparable and may be used as map keys. They stay valid for
// the lifetime of the graph that issued them (there is no deletion).
type Handle[K kind] struct {
	owner uuid.UUID
	index uint32 // 1-based; 0 means nil
}

// Handle aliases for the four entity kinds.
type (
	VertexHandle   = Handle[vertexKind]
	EdgeHandle     = Handle[edgeKind]
	HalfEdgeHandle = Handle[halfEdgeKind]
	FaceHandle     = Handle[faceKind]
)

// IsNil reports whether h is the zero handle.
func (h Handle[K]) IsNil() bool {
	return h.index == 0
}

// Index returns the 0-based arena slot of h, or -1 for the nil handle.
// Slots are assigned in creation order, so Index gives a deterministic
// ordering of handles within one graph.
func (h Handle[K]) Index() int {
	return int(h.index) - 1
}

// String renders h as "<kind><index>", e.g. "v0", "h13", or "<nil>".
func (h Handle[K]) String() string {
	if h.IsNil() {
		return "<nil>"
	}
	var k K
	buf := make([]byte, 0, 8)
	buf = append(buf, k.prefix())

	return string(strconv.AppendInt(buf, int64(h.Index()), 10))
}
