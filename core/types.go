// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, construction options and sentinel errors.
// Concurrency:
//   - One sync.RWMutex guards topology and payloads. Queries take the read
//     lock, construction the write lock, and Write() hands out a guard that
//     keeps the write lock across a sequence of mutations.

package core

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex this graph does not hold.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrFaceNotFound indicates an operation referenced a face this graph does not hold.
	ErrFaceNotFound = errors.New("core: face not found")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself was requested.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same two vertices was requested.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrTooFewVertices indicates a face was requested over fewer than two vertices.
	ErrTooFewVertices = errors.New("core: face needs at least two vertices")

	// ErrHalfEdgeTaken indicates a directed half-edge of the requested face already bounds another face.
	ErrHalfEdgeTaken = errors.New("core: half-edge already bounds a face")

	// ErrNoFreeSlot indicates a vertex ring is fully enclosed by faces where a splice was needed.
	ErrNoFreeSlot = errors.New("core: no face-free slot in vertex ring")

	// ErrCorruptRing is the panic value raised when a ring walk revisits a
	// half-edge before its head. It signals a broken invariant, not bad input.
	ErrCorruptRing = errors.New("core: corrupt half-edge ring")

	// ErrMutatedDuringWalk is the panic value raised when the topology
	// changes while a traversal over it is still live.
	ErrMutatedDuringWalk = errors.New("core: graph mutated during traversal")

	// ErrStaleHandle is the panic value raised when a view outlives the
	// entity it addresses, e.g. a view taken before Reset.
	ErrStaleHandle = errors.New("core: view handle no longer belongs to this graph")

	// ErrWriterReleased is the panic value raised when a released Writer,
	// or a view derived from it, is used.
	ErrWriterReleased = errors.New("core: writer used after release")
)

// GraphOption configures a Graph before creation.
type GraphOption func(c *graphConfig)

type capacity struct {
	vertices, edges, faces int
}

type graphConfig struct {
	partialFaces bool
	ringGuard    bool
	capacity     capacity
}

// WithPartialFaces disables the NewFace undo journal. A NewFace that fails
// during adjacency reordering then keeps the splices and implied edges it
// already made (the graph still satisfies every invariant).
func WithPartialFaces() GraphOption {
	return func(c *graphConfig) { c.partialFaces = true }
}

// WithRingGuard makes every ring walk record the half-edges it visits and
// panic with ErrCorruptRing on the first repeat before returning to its head.
// Intended for tests and debugging; costs O(ring) memory per walk.
func WithRingGuard() GraphOption {
	return func(c *graphConfig) { c.ringGuard = true }
}

// WithCapacity preallocates arena space. Negative values are treated as zero.
func WithCapacity(vertices, edges, faces int) GraphOption {
	return func(c *graphConfig) {
		c.capacity = capacity{
			vertices: max(vertices, 0),
			edges:    max(edges, 0),
			faces:    max(faces, 0),
		}
	}
}

// Graph is an in-memory half-edge graph with per-entity payloads
// V (vertex), E (edge), H (half-edge) and F (face).
//
// Topology lives in four link arenas; payloads live in four parallel
// arenas that share the link arenas' handles. mu guards both.
type Graph[V, E, H, F any] struct {
	mu sync.RWMutex

	id      uuid.UUID
	cfg     graphConfig
	topo    topology
	version uint64 // bumped on every topology write; live walks compare against it

	vdata arena[vertexKind, V]
	edata arena[edgeKind, E]
	hdata arena[halfEdgeKind, H]
	fdata arena[faceKind, F]
}

// Empty is the payload used by graphs that only carry topology.
type Empty = struct{}

// Plain is a Graph without payloads.
type Plain = Graph[Empty, Empty, Empty, Empty]

// NewGraph creates an empty Graph with a fresh identity.
// Complexity: O(1) plus any WithCapacity preallocation.
func NewGraph[V, E, H, F any](opts ...GraphOption) *Graph[V, E, H, F] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return newGraph[V, E, H, F](cfg)
}

func newGraph[V, E, H, F any](cfg graphConfig) *Graph[V, E, H, F] {
	id := uuid.New()
	c := cfg.capacity
	g := &Graph[V, E, H, F]{
		id:    id,
		cfg:   cfg,
		topo:  newTopology(id, c),
		vdata: newArena[vertexKind, V](id, c.vertices),
		edata: newArena[edgeKind, E](id, c.edges),
		hdata: newArena[halfEdgeKind, H](id, 2*c.edges),
		fdata: newArena[faceKind, F](id, c.faces),
	}
	g.topo.ringGuard = cfg.ringGuard

	return g
}

// NewPlain creates a Graph without payloads.
func NewPlain(opts ...GraphOption) *Plain {
	return NewGraph[Empty, Empty, Empty, Empty](opts...)
}

// ID returns the identity embedded in every handle this graph issues.
func (g *Graph[V, E, H, F]) ID() uuid.UUID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.id
}
