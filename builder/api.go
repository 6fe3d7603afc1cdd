// SPDX-License-Identifier: MIT
// Package: hedgegraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(t, bopts, cons...). Resolves cfg, runs cons in order
//     against any core.Topology (a *core.Graph or a live *core.Writer).
//   - BuildGraph(gopts, bopts, cons...) wraps Build with a fresh labelled graph.
//   - Constructors share one Target, so vertices are merged by ID across them.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-HINT (file):
//   - Compose Cycle(n) + Polygon(n) to face an existing ring; IDs line up.
//   - Use WithSeed(...) to freeze stochastic paths (RandomSparse, UniformWeightFn).
//   - Target.Vertex(id) translates builder IDs into core handles after Build.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hedgegraph/core"
)

// Graph is the labelled graph produced by BuildGraph: every vertex carries its
// builder ID and every edge its weight.
type Graph = core.Graph[string, float64, core.Empty, core.Empty]

// Constructor applies a deterministic topology mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Mint vertices through the Target so composition reuses IDs.
//   - Preserve determinism for the same config and call order.
type Constructor func(t *Target, cfg builderConfig) error

// Target is the construction state shared by the constructors of one Build:
// the topology being written plus the ID → handle index and edge weights.
type Target struct {
	topo    core.Topology
	ids     map[string]core.VertexHandle
	order   []string
	weights map[core.EdgeHandle]float64
	edges   []core.EdgeHandle
}

func newTarget(topo core.Topology) *Target {
	return &Target{
		topo:    topo,
		ids:     make(map[string]core.VertexHandle),
		weights: make(map[core.EdgeHandle]float64),
	}
}

// Vertex returns the handle minted for id.
func (t *Target) Vertex(id string) (core.VertexHandle, bool) {
	v, ok := t.ids[id]

	return v, ok
}

// IDs returns vertex IDs in minting order.
func (t *Target) IDs() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)

	return out
}

// Weight returns the weight drawn for an edge created by this Target.
func (t *Target) Weight(e core.EdgeHandle) (float64, bool) {
	w, ok := t.weights[e]

	return w, ok
}

// Edges returns the edges created by this Target in creation order,
// including those implied by faces.
func (t *Target) Edges() []core.EdgeHandle {
	out := make([]core.EdgeHandle, len(t.edges))
	copy(out, t.edges)

	return out
}

// Build resolves the builder configuration from bopts and applies all
// constructors in order to topo. Any constructor error is wrapped with the
// context "Build: %w" and returned immediately; work done by earlier
// constructors stays in topo.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
func Build(topo core.Topology, bopts []BuilderOption, cons ...Constructor) (*Target, error) {
	if topo == nil {
		return nil, fmt.Errorf("Build: nil topology: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	t := newTarget(topo)

	for i, fn := range cons {
		// A nil constructor is a programmer error; surface it as a sentinel.
		if fn == nil {
			return t, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return t, fmt.Errorf("Build: %w", err)
		}
	}

	return t, nil
}

// BuildGraph creates a new labelled Graph with graph options gopts, runs Build
// on it and stamps vertex IDs and edge weights into the payloads.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...)
//     or core sentinels surfaced by the topology (core.ErrNoFreeSlot, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	g := core.NewGraph[string, float64, core.Empty, core.Empty](gopts...)

	t, err := Build(g, bopts, cons...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	// Stamp payloads under one guard.
	w := g.Write()
	defer w.Release()
	for _, id := range t.order {
		if vm, ok := w.Vertex(t.ids[id]); ok {
			vm.SetData(id)
		}
	}
	for e, weight := range t.weights {
		if em, ok := w.Edge(e); ok {
			em.SetData(weight)
		}
	}

	return g, nil
}

// VertexByID scans a labelled graph for the vertex carrying id.
// It takes the graph's read lock, so calling it while the same goroutine
// holds g.Write() deadlocks; resolve handles before taking the Writer.
// Complexity: O(V).
func VertexByID(g *Graph, id string) (core.VertexHandle, bool) {
	for v := range g.Vertices() {
		if v.Data() == id {
			return v.Handle(), true
		}
	}

	return core.VertexHandle{}, false
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Mint vertices via cfg.idFn (except documented fixed IDs like "Center").
//   - Emit edges and faces in a stable, documented order.
//   - Orient faces consistently so every interior edge is claimed once per side.
//   - Return only sentinel errors; NEVER panic at runtime.
//
// Path(n)              P_n, edges only (n ≥ 2).
// Cycle(n)             C_n, edges only (n ≥ 3).
// Star(n)              hub "Center" + n-1 leaves, edges only (n ≥ 2).
// Complete(n)          K_n, edges only (n ≥ 1).
// CompleteBipartite    K_{n1,n2} with prefixed IDs, edges only.
// RandomSparse(n, p)   Erdős–Rényi edges, needs an RNG for 0<p<1.
// Polygon(n)           one n-gon face (n ≥ 3).
// Fan(n)               n-2 triangles around "Center" (n ≥ 3).
// Wheel(n)             closed fan of n-1 triangles around "Center" (n ≥ 4).
// Grid(rows, cols)     rows×cols lattice with quad faces, IDs "r,c".
// PlatonicSolid(name)  one of five closed surfaces.
//
// WithOuterFace() closes Polygon, Fan, Wheel and Grid with a face on the
// boundary side so the result has no boundary half-edges.
