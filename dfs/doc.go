// Package dfs implements iterative depth-first traversal on the artist graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking,
//     recording pre-order, depth and parent links.
//   - Forest: restarts DFS from every eligible unvisited root and labels each
//     tree with a sequential index, which is exactly the connected-component
//     labelling used by the community package.
//
// Why:
//   - Connectivity clustering restricted to entity nodes: pass
//     WithRoots(g.Entities()) and WithFilterNeighbor(g.IsMember) so category
//     nodes are never entered and never become roots.
//
// Key Types:
//
//   - Option / DFSOptions: FilterNeighbor, Roots
//   - DFSResult:    Order, Depth, Parent, SkippedNeighbors
//   - ForestResult: Trees, TreeOf, SkippedNeighbors
//
// Complexity:
//
//   - DFS, Forest: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil            if g is nil.
//   - ErrStartVertexNotFound if DFS startID is missing.
package dfs
