// Package dfs implements depth-first search, connected components and
// cycle detection over any core.Structure.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking.
//     Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Step filtering
//   - Forest traversal over every component
//   - Components: partitions nodes into connected components.
//   - FindCycle: reports one cycle using vertex coloring (White, Gray, Black)
//     and back-edge detection, skipping the tree edge to the parent once.
//
// Both adjacency views of a half-edge graph are accepted:
// g.Primal() walks vertices over edges, g.Dual() walks faces across shared edges.
//
// Why:
//   - Find disconnected islands in a mesh, or separate face patches
//   - Check whether an edge skeleton is a tree before building faces on it
//   - Post-order processing of a spanning tree (leaves first)
//
// Complexity:
//
//   - DFS:        Time O(V+E), Memory O(V)
//   - Components: Time O(V+E), Memory O(V)
//   - FindCycle:  Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             structure is nil
//   - ErrStartVertexNotFound  start node not in structure
//   - ErrOptionViolation      MaxDepth below -1
//   - ErrNeighbors            structure failed to list neighbors
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
