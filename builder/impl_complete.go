// SPDX-License-Identifier: MIT
// Package: hedgegraph/builder
//
// impl_complete.go - Complete(n) and CompleteBipartite(n1, n2) constructors.
//
// Contract:
//   • Complete: n ≥ MinCompleteNodes; ids via cfg.idFn(0..n-1).
//   • CompleteBipartite: n1, n2 ≥ MinPartition; ids "{leftPrefix}{i}" and
//     "{rightPrefix}{j}" (prefixes resolved in newBuilderConfig).
//   • Edges only. Without faces no rotation slot is ever enclosed, so dense
//     graphs always build.
//
// Complexity:
//   • Complete: O(n²) edges, each splice O(deg) to find the free slot.
//   • CompleteBipartite: O(n1·n2) edges.
//
// Determinism:
//   • Stable lexicographic pair order (i asc, then j asc).

package builder

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(t *Target, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		ids := indexIDs(cfg, 0, n)
		t.vertices(ids)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := t.edge(MethodComplete, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(t *Target, cfg builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}

		left := make([]string, n1)
		for i := range left {
			left[i] = vertexID(cfg.leftPrefix, i)
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = vertexID(cfg.rightPrefix, j)
		}
		t.vertices(left)
		t.vertices(right)

		for _, u := range left {
			for _, v := range right {
				if err := t.edge(MethodCompleteBipartite, cfg, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
