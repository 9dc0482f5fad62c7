package community

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/genregraph/core"
	"github.com/katalvlaran/genregraph/dfs"
)

// ByCategory groups entities by every category label they hold. An entity
// with k labels appears in k groups; member lists are sorted.
// A nil graph yields an empty map.
func ByCategory(g *core.Graph) map[string][]string {
	groups := make(map[string][]string)
	if g == nil {
		return groups
	}
	for _, label := range g.CategoryLabels() {
		groups[label] = g.Members(label)
	}

	return groups
}

// Components partitions entity nodes into connected components.
//
// Traversal is an iterative DFS forest rooted at entities in sorted ID
// order. Category nodes are never entered and receive no component id.
// Component ids are assigned 0, 1, 2, … in discovery order.
func Components(g *core.Graph) (*Partition, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	fr, err := dfs.Forest(g,
		dfs.WithRoots(g.Entities()),
		dfs.WithFilterNeighbor(g.IsMember),
	)
	if err != nil {
		return nil, err
	}

	p := &Partition{
		ComponentOf: fr.TreeOf,
		Members:     make([][]string, len(fr.Trees)),
	}
	for i, tree := range fr.Trees {
		members := append([]string(nil), tree...)
		sort.Strings(members)
		p.Members[i] = members
	}

	return p, nil
}

// ComponentGroups adapts p to label-keyed groups ("component-<id>") so that
// components can be aggregated by Stats like category groups.
func ComponentGroups(p *Partition) map[string][]string {
	groups := make(map[string][]string)
	if p == nil {
		return groups
	}
	for i, members := range p.Members {
		groups[ComponentLabel(i)] = append([]string(nil), members...)
	}

	return groups
}

// ComponentLabel returns the group label of component id.
func ComponentLabel(id int) string {
	return fmt.Sprintf("component-%d", id)
}
