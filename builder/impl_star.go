// SPDX-License-Identifier: MIT
// Package: hedgegraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ MinStarNodes (else ErrTooFewVertices).
//   - Mints the hub with fixed ID "Center", then leaves via cfg.idFn(0..n-2).
//   - Emits spokes in stable order Center → leaf[i].
//   - The hub's rotation follows spoke order: each spoke is spliced before the
//     previous one's free slot.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges; the hub ring lookup costs O(deg).

package builder

// Star returns a Constructor that builds a star graph with one hub "Center"
// and n-1 leaves.
func Star(n int) Constructor {
	return func(t *Target, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		t.vertex(CenterVertexID)
		leaves := indexIDs(cfg, 0, n-1)
		t.vertices(leaves)

		for _, leaf := range leaves {
			if err := t.edge(MethodStar, cfg, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
