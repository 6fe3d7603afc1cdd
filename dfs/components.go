package dfs

import (
	"fmt"

	"github.com/katalvlaran/hedgegraph/core"
)

// Components partitions the nodes of s into connected components.
// Components are ordered by their first node in s.Nodes(); the nodes of each
// component are listed in DFS finish order.
//
// On g.Primal() this yields the vertex islands of the mesh; on g.Dual() it
// yields the face patches joined across shared edges.
//
// Complexity: O(V + E) time, O(V) memory.
func Components[N comparable](s core.Structure[N]) ([][]N, error) {
	if s == nil {
		return nil, ErrGraphNil
	}

	nodes := s.Nodes()
	w := newWalker(s, DefaultOptions[N](), len(nodes))

	var out [][]N
	for _, n := range nodes {
		if w.state[n] != White {
			continue
		}
		from := len(w.res.Order)
		if err := w.traverse(n); err != nil {
			return nil, fmt.Errorf("dfs: Components: %w", err)
		}
		comp := make([]N, len(w.res.Order)-from)
		copy(comp, w.res.Order[from:])
		out = append(out, comp)
	}

	return out, nil
}
