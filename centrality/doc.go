// SPDX-License-Identifier: MIT

// Package centrality scores how central each node of a core.Graph is.
//
// Modes:
//
//	Closeness       1 / mean(dist(u, v)) over reachable v, u included, via dijkstra
//	Linear          Σ w
//	Logarithmic     Σ ln(1 + w)
//	InverseSquare   Σ 1 / (depth + 1)²
//	WeightedDegree  Σ w · 1/(1 + deg(v)) · 1/(1 + depth)
//	Blended         Σ (linear + inverseSquare + logarithmic) / 3
//
// Traversal modes sum over every directed step of a BFS from the scored
// node, including steps back to already visited nodes. depth is the depth
// of the node being expanded. With WithMaxDepth(d), nodes at depth <= d
// are expanded; their steps are scored but nodes at depth d+1 are not
// expanded further.
//
// Only nodes with degree >= 1 (Closeness) or >= 2 (traversal modes) are
// scored. Results are sorted by descending score, ties by ascending ID.
//
// Complexity:
//
//	Closeness:  O(V · (V + E) log V)
//	Traversal:  O(V · (V + E))
package centrality
