// Package bfs provides breadth-first search over the artist graph, returning
// hop distances, parent links and visit order, and streaming every weighted
// traversal step to a hook.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Hooks:
//   - OnVisit (when visiting; may abort with an error)
//   - OnEdge  (every step u→v out of an expanded vertex, even when v was already seen)
//   - Allows filtering of individual adjacency entries via WithFilterNeighbor.
//   - Honors a MaxDepth limit (d >= 0); unlimited by default.
//
// Why
//
//   - OnEdge is the skeleton of traversal-accumulated centrality: the
//     centrality package supplies the per-step contribution formula and bfs
//     stays mode-agnostic.
//
// Depth boundary
//
//	With WithMaxDepth(M), vertices at depth <= M are expanded and their
//	steps reported; a neighbor that would sit at depth M+1 is reported as a
//	step but never enqueued, so nothing beyond M+1 is ever scored.
//
// Determinism
//
//	core.Graph adjacency sequences are built in lexicographic order, and BFS
//	enqueues neighbors in that order, so the visit sequence is reproducible.
//	Parallel adjacency entries yield one Step each.
//
// Complexity (V = |Vertices|, E = |adjacency entries|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	var total float64
//	_, err := bfs.BFS(g, "A",
//	    bfs.WithMaxDepth(2),
//	    bfs.WithOnEdge(func(s bfs.Step) { total += s.Weight }),
//	)
package bfs
