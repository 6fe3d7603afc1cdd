// SPDX-License-Identifier: MIT
// Package: hedgegraph/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   • Path: n ≥ MinPathNodes; Cycle: n ≥ MinCycleNodes (else ErrTooFewVertices).
//   • Mints vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i → i+1 (Cycle closes with n-1 → 0).
//   • Edges only: every half-edge stays on the boundary.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(n) for the ID slice.

package builder

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(t *Target, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		ids := indexIDs(cfg, 0, n)
		t.vertices(ids)

		for i := 1; i < n; i++ {
			if err := t.edge(MethodPath, cfg, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(t *Target, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		ids := indexIDs(cfg, 0, n)
		t.vertices(ids)

		// for i==n-1, connect to 0 to close the ring
		for i := 0; i < n; i++ {
			if err := t.edge(MethodCycle, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
