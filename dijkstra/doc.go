// Package dijkstra provides single-source weighted shortest distances on the
// artist graph, the building block of closeness centrality.
//
// Overview:
//
//   - ShortestDistances computes the minimum cumulative edge weight from one
//     source vertex to every vertex reachable from it, in O((V + E) log V).
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Edge weights come from core.Build and are never negative.
//
// Result contract:
//
//   - dist[source] == 0.
//   - Unreachable vertices are absent from the map. Callers test membership
//     with `d, ok := dist[v]`; there is no infinite or sentinel entry.
//   - Ties in the heap are broken by cost only. The discovery order among
//     equal-cost vertices is unspecified and must not be relied upon; the
//     resulting distances are nevertheless exact.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrEmptySource:    empty source ID.
//   - ErrVertexNotFound: source is not a node of the graph.
//   - ErrBadMaxDistance: WithMaxDistance received a negative or NaN cap.
//   - ErrNegativeWeight: a negative weight was met while relaxing.
//
// All validation happens before the search starts.
//
// API reference:
//
//	func ShortestDistances(
//	    g *core.Graph,
//	    source string,
//	    opts ...Option,
//	) (dist map[string]float64, err error)
//
// Thread safety:
//
//   - The graph is read-only; each call allocates its own heap, distance and
//     visited maps, so concurrent calls over one *core.Graph are safe.
package dijkstra
