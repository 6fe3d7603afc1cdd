// SPDX-License-Identifier: MIT
// Package: hedgegraph/builder
//
// impl_polygon.go - Polygon(n) and Fan(n) constructors.
//
// Contract:
//   • Polygon: n ≥ MinPolygonNodes; one face 0 → 1 → … → n-1 → 0.
//   • Fan: n ≥ MinFanNodes; hub "Center", rim cfg.idFn(0..n-2), triangles
//     (Center, rim[i], rim[i+1]) for i ascending. The rim stays open.
//   • WithOuterFace: Polygon adds the reverse loop; Fan adds
//     (Center, rim[n-2], …, rim[0]). Either result is a closed surface.
//   • Faces create their own edges; weights are drawn per implied edge.
//
// Complexity:
//   • Time: O(n) faces/edges, each AddFace O(Σ deg) over its loop.

package builder

// Polygon returns a Constructor that builds a single n-gon face.
func Polygon(n int) Constructor {
	return func(t *Target, cfg builderConfig) error {
		if err := validateMin(MethodPolygon, n, MinPolygonNodes); err != nil {
			return err
		}
		ids := indexIDs(cfg, 0, n)

		if err := t.face(MethodPolygon, cfg, ids...); err != nil {
			return err
		}
		if cfg.outerFace {
			return t.face(MethodPolygon, cfg, reversed(ids)...)
		}

		return nil
	}
}

// Fan returns a Constructor that builds an open fan of n-2 triangles sharing
// the hub "Center".
func Fan(n int) Constructor {
	return func(t *Target, cfg builderConfig) error {
		if err := validateMin(MethodFan, n, MinFanNodes); err != nil {
			return err
		}
		t.vertex(CenterVertexID)
		rim := indexIDs(cfg, 0, n-1)
		t.vertices(rim)

		for i := 0; i+1 < len(rim); i++ {
			if err := t.face(MethodFan, cfg, CenterVertexID, rim[i], rim[i+1]); err != nil {
				return err
			}
		}
		if cfg.outerFace {
			outer := append([]string{CenterVertexID}, reversed(rim)...)

			return t.face(MethodFan, cfg, outer...)
		}

		return nil
	}
}
