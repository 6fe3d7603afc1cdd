// Package dfs implements cycle detection for undirected core.Structures.
// FindCycle runs depth-first search with three-color marking and reports the
// first back-edge it meets as a closed node sequence. The tree edge to the
// parent is skipped exactly once, so a repeated adjacency (two faces sharing
// several edges in the dual) is reported as a 2-cycle, and a node adjacent to
// itself (a face on both sides of a bridge) as a 1-cycle.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) (frame stack + state map + current path)
package dfs

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/hedgegraph/core"
)

// cycleFrame is a DFS frame that remembers how the node was reached.
type cycleFrame[N comparable] struct {
	frame[N]
	parent     N
	hasParent  bool
	parentSeen bool
}

// FindCycle searches s for any cycle.
// Returns (cycle, true, nil) where cycle is closed: [v0, v1, ..., vk, v0].
// Returns (nil, false, nil) if s is a forest.
// If a neighbor lookup fails, returns (nil, false, error) wrapping ErrNeighbors.
func FindCycle[N comparable](s core.Structure[N]) ([]N, bool, error) {
	if s == nil {
		return nil, false, ErrGraphNil
	}

	nodes := s.Nodes()
	state := make(map[N]int, len(nodes))
	path := make([]N, 0, len(nodes))
	stack := arraystack.New()

	push := func(n, parent N, hasParent bool) error {
		nbs, err := s.Neighbors(n)
		if err != nil {
			return fmt.Errorf("dfs: FindCycle: %w: Neighbors(%v): %v", ErrNeighbors, n, err)
		}
		state[n] = Gray
		path = append(path, n)
		stack.Push(&cycleFrame[N]{
			frame:     frame[N]{node: n, nbrs: nbs},
			parent:    parent,
			hasParent: hasParent,
		})

		return nil
	}

	for _, root := range nodes {
		if state[root] != White {
			continue
		}
		var zero N
		if err := push(root, zero, false); err != nil {
			return nil, false, err
		}

		for !stack.Empty() {
			top, _ := stack.Peek()
			f := top.(*cycleFrame[N])

			if f.next == len(f.nbrs) {
				stack.Pop()
				state[f.node] = Black
				path = path[:len(path)-1]
				continue
			}
			nb := f.nbrs[f.next]
			f.next++

			// the tree edge back to the parent, once
			if f.hasParent && !f.parentSeen && nb == f.parent {
				f.parentSeen = true
				continue
			}

			switch state[nb] {
			case White:
				if err := push(nb, f.node, true); err != nil {
					return nil, false, err
				}
			case Gray:
				return closeCycle(path, nb), true, nil
			}
		}
	}

	return nil, false, nil
}

// closeCycle extracts the path segment starting at start and closes it.
func closeCycle[N comparable](path []N, start N) []N {
	idx := len(path) - 1
	for idx > 0 && path[idx] != start {
		idx--
	}
	out := make([]N, 0, len(path)-idx+1)
	out = append(out, path[idx:]...)

	return append(out, start)
}
