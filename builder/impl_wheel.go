// SPDX-License-Identifier: MIT
// Package: hedgegraph/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical model:
//   • Wₙ = Cₙ₋₁ + "Center": a rim cycle of size n-1 plus a hub vertex, with
//     one triangle per rim edge. The hub ends up fully enclosed.
//
// Contract:
//   • n ≥ MinWheelNodes (else ErrTooFewVertices).
//   • Mints "Center" first, then rim vertices via cfg.idFn (0..n-2).
//   • Emits triangles (Center, rim[i], rim[(i+1)%(n-1)]) for i ascending.
//   • WithOuterFace adds the reversed rim as one more face.
//
// Complexity:
//   • Time: O(n) faces, each O(deg Center) for the hub lookups.
//
// Determinism:
//   • Deterministic rim IDs via cfg.idFn and fixed hub ID.
//   • Stable face emission order; the hub rotation follows it.

package builder

// Wheel returns a Constructor that builds a wheel Wₙ as a closed triangle fan.
func Wheel(n int) Constructor {
	return func(t *Target, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		t.vertex(CenterVertexID)
		rim := indexIDs(cfg, 0, n-1)
		t.vertices(rim)

		m := len(rim)
		for i := 0; i < m; i++ {
			if err := t.face(MethodWheel, cfg, CenterVertexID, rim[i], rim[(i+1)%m]); err != nil {
				return err
			}
		}
		if cfg.outerFace {
			return t.face(MethodWheel, cfg, reversed(rim)...)
		}

		return nil
	}
}
