// SPDX-License-Identifier: MIT
// Package: hedgegraph/builder
//
// helpers.go - Target primitives shared by every constructor.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap core errors with the constructor method name.
//   - Composition: vertices are get-or-add by ID, edges are get-or-add by pair,
//     so constructors layered over each other extend rather than collide.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/hedgegraph/core"
)

// vertex returns the handle for id, minting a new vertex on first use.
// Complexity: O(1) amortized.
func (t *Target) vertex(id string) core.VertexHandle {
	if v, ok := t.ids[id]; ok {
		return v
	}
	v := t.topo.AddVertex()
	t.ids[id] = v
	t.order = append(t.order, id)

	return v
}

// vertices mints ids in order and returns their handles.
func (t *Target) vertices(ids []string) []core.VertexHandle {
	out := make([]core.VertexHandle, len(ids))
	for i, id := range ids {
		out[i] = t.vertex(id)
	}

	return out
}

// record assigns a weight to an edge seen for the first time.
func (t *Target) record(e core.EdgeHandle, cfg builderConfig) {
	if _, seen := t.weights[e]; seen {
		return
	}
	t.weights[e] = cfg.weightFn(cfg.rng)
	t.edges = append(t.edges, e)
}

// edge joins ids u and v, reusing an existing edge between them.
// Complexity: O(deg u) for the lookup plus the core splice.
func (t *Target) edge(method string, cfg builderConfig, u, v string) error {
	a, b := t.vertex(u), t.vertex(v)
	if e, ok := t.topo.FindEdge(a, b); ok {
		t.record(e, cfg)

		return nil
	}
	e, err := t.topo.AddEdge(a, b)
	if err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
	}
	t.record(e, cfg)

	return nil
}

// face adds the loop ids[0] → ids[1] → … → ids[0] and weighs the edges it implies.
// Complexity: O(Σ deg) over the loop vertices.
func (t *Target) face(method string, cfg builderConfig, ids ...string) error {
	vs := t.vertices(ids)
	if _, err := t.topo.AddFace(vs...); err != nil {
		return fmt.Errorf("%s: AddFace%v: %w", method, ids, err)
	}
	for i := range vs {
		if e, ok := t.topo.FindEdge(vs[i], vs[(i+1)%len(vs)]); ok {
			t.record(e, cfg)
		}
	}

	return nil
}

// indexIDs renders indices through cfg.idFn.
// Example: indexIDs(cfg, 0, 3) → {"0","1","2"}.
func indexIDs(cfg builderConfig, from, to int) []string {
	ids := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		ids = append(ids, cfg.idFn(i))
	}

	return ids
}

// pick selects ids by index.
func pick(ids []string, idx ...int) []string {
	out := make([]string, len(idx))
	for i, k := range idx {
		out[i] = ids[k]
	}

	return out
}

// reversed returns ids in reverse order.
func reversed(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[len(ids)-1-i] = id
	}

	return out
}

// vertexID returns a vertex identifier by concatenating prefix and index.
// Example: vertexID("R",2) → "R2".
func vertexID(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// gridVertexID formats a 2D grid coordinate as "r,c".
// Example: gridVertexID(0,1) → "0,1".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
