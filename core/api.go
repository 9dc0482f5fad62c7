// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only accessors over a built Graph.
// Policy:
//   - No mutation after Build; every slice handed out is a fresh copy.
//   - Absent IDs degrade to empty results, never errors.

package core

// Neighbors returns the adjacency entries of id, or an empty slice when id is
// absent. Duplicate neighbors are preserved.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) []Neighbor {
	src := g.adjacency[id]
	out := make([]Neighbor, len(src))
	copy(out, src)

	return out
}

// ForEachNeighbor calls fn for every adjacency entry of id without copying.
// Iteration stops early when fn returns false.
func (g *Graph) ForEachNeighbor(id string, fn func(n Neighbor) bool) {
	for _, n := range g.adjacency[id] {
		if !fn(n) {
			return
		}
	}
}

// IsMember reports whether id is an entity node (it has a recorded Length).
// Category nodes of the bipartite variant are not members.
func (g *Graph) IsMember(id string) bool {
	_, ok := g.lengths[id]

	return ok
}

// HasNode reports whether id is any node of the graph, entity or category.
func (g *Graph) HasNode(id string) bool {
	if _, ok := g.lengths[id]; ok {
		return true
	}
	_, ok := g.adjacency[id]

	return ok
}

// Length returns the numeric attribute of an entity.
func (g *Graph) Length(id string) (float64, bool) {
	l, ok := g.lengths[id]

	return l, ok
}

// Categories returns the sorted category labels of an entity (nil if absent).
func (g *Graph) Categories(id string) []string {
	return cloneStrings(g.categories[id])
}

// Degree returns the number of adjacency entries of id, duplicates included.
func (g *Graph) Degree(id string) int {
	return len(g.adjacency[id])
}

// Nodes returns every node ID, sorted lexicographically.
func (g *Graph) Nodes() []string {
	return cloneStrings(g.nodes)
}

// Entities returns every entity ID, sorted lexicographically.
func (g *Graph) Entities() []string {
	return cloneStrings(g.entities)
}

// CategoryLabels returns every distinct category label, sorted.
func (g *Graph) CategoryLabels() []string {
	out := make([]string, 0, len(g.members))
	for label := range g.members {
		out = append(out, label)
	}
	sortStrings(out)

	return out
}

// Members returns the sorted entity IDs holding label.
func (g *Graph) Members(label string) []string {
	return cloneStrings(g.members[label])
}

// Stats returns the construction summary.
func (g *Graph) Stats() Stats {
	return g.stats
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)

	return out
}
