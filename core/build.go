// File: build.go
// Role: One-shot graph construction from validated records.
// Determinism:
//   - Entities, labels and pairs are processed in lexicographic order, so
//     adjacency sequences are identical across runs for the same input.

package core

import (
	"math"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// pair is an unordered entity pair stored with a < b.
type pair struct {
	a, b string
}

// Build constructs the Graph from records.
//
// Records with an empty ID or a Length that is not a finite positive number
// are excluded and counted in Stats().Rejected. Categories are trimmed,
// de-duplicated and sorted. A repeated ID replaces the earlier record.
//
// Entity pairs are enumerated through the inverted index label → members, so
// only entities that share a category are ever compared. Under SharedCount
// each pair gets one edge weighted by the number of shared labels; under
// CategoryWeight each shared label contributes its own edge entry weighted
// by the label's weight.
//
// Errors are configuration errors only: ErrUnknownPolicy, ErrBadWeight,
// ErrBadPrefix, ErrNodeCollision.
//
// Complexity: O(N log N + Σ_c |members(c)|²) time, O(N + E) space.
func Build(records []Record, opts ...Option) (*Graph, error) {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	g := &Graph{
		adjacency:  make(map[string][]Neighbor),
		lengths:    make(map[string]float64, len(records)),
		categories: make(map[string][]string, len(records)),
		members:    make(map[string][]string),
	}

	// 1) Accept valid records; last occurrence of an ID wins.
	for _, r := range records {
		id := strings.TrimSpace(r.ID)
		if id == "" || !validLength(r.Length) {
			g.stats.Rejected++
			continue
		}
		g.lengths[id] = r.Length
		g.categories[id] = normalizeCategories(r.Categories)
	}

	g.entities = make([]string, 0, len(g.lengths))
	for id := range g.lengths {
		g.entities = append(g.entities, id)
	}
	sortStrings(g.entities)

	// 2) Inverted index; members come out sorted because entities are sorted.
	for _, id := range g.entities {
		for _, label := range g.categories[id] {
			g.members[label] = append(g.members[label], id)
		}
	}
	labels := g.CategoryLabels()

	// 3) Optional bipartite entity–category edges.
	var categoryNodes []string
	if o.categoryNodes {
		for _, label := range labels {
			node := o.categoryPrefix + label
			if _, clash := g.lengths[node]; clash {
				return nil, errors.Wrapf(ErrNodeCollision, "category %q as node %q", label, node)
			}
			categoryNodes = append(categoryNodes, node)
		}
		for _, id := range g.entities {
			for _, label := range g.categories[id] {
				g.link(id, o.categoryPrefix+label, 1)
			}
		}
	}

	// 4) Entity–entity edges.
	switch o.policy {
	case SharedCount:
		g.stats.EntityLinks = g.linkBySharedCount(labels)
	case CategoryWeight:
		g.stats.EntityLinks = g.linkByCategoryWeight(labels, o.categoryWeights)
	}

	g.nodes = make([]string, 0, len(g.entities)+len(categoryNodes))
	g.nodes = append(g.nodes, g.entities...)
	g.nodes = append(g.nodes, categoryNodes...)
	sortStrings(g.nodes)

	g.stats.Entities = len(g.entities)
	g.stats.Categories = len(labels)
	g.stats.CategoryNodes = len(categoryNodes)
	g.stats.Policy = o.policy

	o.logger.Debug("graph built",
		zap.Int("entities", g.stats.Entities),
		zap.Int("rejected", g.stats.Rejected),
		zap.Int("categories", g.stats.Categories),
		zap.Int("category_nodes", g.stats.CategoryNodes),
		zap.Int("entity_links", g.stats.EntityLinks),
		zap.Stringer("policy", o.policy),
	)

	return g, nil
}

// linkBySharedCount counts shared labels per pair and inserts one edge per pair.
func (g *Graph) linkBySharedCount(labels []string) int {
	shared := make(map[pair]int)
	for _, label := range labels {
		m := g.members[label]
		for i := 0; i < len(m); i++ {
			for j := i + 1; j < len(m); j++ {
				shared[pair{m[i], m[j]}]++
			}
		}
	}

	pairs := sortedPairs(shared)
	for _, p := range pairs {
		g.link(p.a, p.b, float64(shared[p]))
	}

	return len(pairs)
}

// linkByCategoryWeight inserts one entry per shared label and returns the
// number of distinct pairs linked.
func (g *Graph) linkByCategoryWeight(labels []string, explicit map[string]float64) int {
	distinct := make(map[pair]int)
	for _, label := range labels {
		w := g.categoryWeight(label, explicit)
		m := g.members[label]
		for i := 0; i < len(m); i++ {
			for j := i + 1; j < len(m); j++ {
				g.link(m[i], m[j], w)
				distinct[pair{m[i], m[j]}]++
			}
		}
	}

	return len(distinct)
}

// categoryWeight returns the explicit weight of label or the mean member Length.
func (g *Graph) categoryWeight(label string, explicit map[string]float64) float64 {
	if w, ok := explicit[label]; ok {
		return w
	}
	m := g.members[label]
	if len(m) == 0 {
		return 0
	}
	var sum float64
	for _, id := range m {
		sum += g.lengths[id]
	}

	return sum / float64(len(m))
}

// link appends the mirrored entries of an undirected edge.
func (g *Graph) link(u, v string, w float64) {
	g.adjacency[u] = append(g.adjacency[u], Neighbor{ID: v, Weight: w})
	g.adjacency[v] = append(g.adjacency[v], Neighbor{ID: u, Weight: w})
}

func (o *buildOptions) validate() error {
	switch o.policy {
	case SharedCount, CategoryWeight:
	default:
		return errors.Wrapf(ErrUnknownPolicy, "policy %d", int(o.policy))
	}
	if o.categoryNodes && o.categoryPrefix == "" {
		return ErrBadPrefix
	}
	for label, w := range o.categoryWeights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return errors.Wrapf(ErrBadWeight, "category %q weight %v", label, w)
		}
	}

	return nil
}

func validLength(l float64) bool {
	return l > 0 && !math.IsInf(l, 0) && !math.IsNaN(l)
}

// normalizeCategories trims, drops blanks, de-duplicates and sorts labels.
func normalizeCategories(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, c := range in {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sortStrings(out)

	return out
}

func sortedPairs(m map[pair]int) []pair {
	out := make([]pair, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].a != out[j].a {
			return out[i].a < out[j].a
		}
		return out[i].b < out[j].b
	})

	return out
}

func sortStrings(s []string) { sort.Strings(s) }
