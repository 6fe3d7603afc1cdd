// SPDX-License-Identifier: MIT
// Package: hedgegraph/builder
//
// impl_platonic.go - implementation of PlatonicSolid(name) constructor.
//
// Canonical model:
//   • Build one of the five Platonic solids as a closed surface using the
//     deterministic face sets in variants_platonic.go.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation (invalid parameter).
//   • Mints vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits faces in table order; edges are implied by the faces.
//   • The result has V - E + F = 2 and no boundary half-edges, so no further
//     edge can be attached to any of its vertices.
//
// Complexity:
//   • Time: O(V+E+F) for the selected solid (constants: V≤20, E≤30, F≤20).

package builder

// PlatonicSolid returns a Constructor that builds the chosen Platonic surface.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(t *Target, cfg builderConfig) error {
		// 1) Lookup canonical vertex count for the selected solid.
		n, ok := platonicVertexCounts[name]
		if !ok {
			return builderErrorf(MethodPlatonicSolid, ErrOptionViolation, "unknown solid %q", name)
		}
		faces, ok := platonicFaceSets[name]
		if !ok {
			return builderErrorf(MethodPlatonicSolid, ErrConstructFailed, "missing face set for %q", name)
		}

		// 2) Mint all vertices using the deterministic ID scheme (0..n-1).
		ids := indexIDs(cfg, 0, n)
		t.vertices(ids)

		// 3) Emit faces in table order.
		for _, loop := range faces {
			if err := t.face(MethodPlatonicSolid, cfg, pick(ids, loop...)...); err != nil {
				return err
			}
		}

		return nil
	}
}
