// Package core provides the artist/genre Graph every analytic package in
// genregraph consumes.
//
// The Graph G = (V, E) is undirected and weighted:
//
//   - V holds entity nodes (artists with a positive Length) and, in the
//     bipartite variant, category nodes (one per genre label).
//   - E connects entities that share at least one category. Every edge is
//     stored twice, once in each endpoint's adjacency sequence.
//   - Weights are never negative, which keeps Dijkstra correct.
//
// Edge-weight policies (WithWeightPolicy):
//
//	– SharedCount (default)
//	    One edge per entity pair; weight = number of shared categories.
//	    Favors entities with more overlap.
//
//	– CategoryWeight
//	    One adjacency entry per shared category; weight = that category's
//	    weight (WithCategoryWeights, or the mean Length of its members).
//	    Favors shared categories that are individually heavy. Parallel
//	    entries are kept and accumulate in traversal sums.
//
// Bipartite variant (WithCategoryNodes):
//
//	Adds a node prefix+label per category and a weight-1 edge from each
//	entity to each of its categories. IsMember distinguishes the two kinds.
//
// Lifecycle:
//
//	records ──► Build ──► *Graph (read-only) ──► dijkstra / centrality /
//	                                             community / influence
//
// A built Graph is never mutated. Accessors copy before returning, so one
// *Graph can be handed to several goroutines at once.
//
// Scaling note: pair enumeration is quadratic in the size of the largest
// category, not in the number of entities. A single genre shared by tens of
// thousands of artists will dominate build time and memory.
//
// Example:
//
//	g, err := core.Build([]core.Record{
//	    {ID: "A", Categories: []string{"Rock", "Pop"}, Length: 1000},
//	    {ID: "B", Categories: []string{"Rock"}, Length: 500},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.Neighbors("A")) // [{B 1}]
package core
