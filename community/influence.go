package community

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/genregraph/core"
)

// ClusterInfluence scores every entity of p by ln(length) × ln(component size).
// When p is nil the partition is computed from g. Singletons score 0.
func ClusterInfluence(g *core.Graph, p *Partition) ([]Ranked, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if p == nil {
		var err error
		if p, err = Components(g); err != nil {
			return nil, err
		}
	}

	out := make([]Ranked, 0, len(p.ComponentOf))
	for id := range p.ComponentOf {
		l, ok := g.Length(id)
		if !ok || l <= 0 {
			continue
		}
		out = appendFinite(out, id, math.Log(l)*math.Log(float64(p.Size(id))))
	}
	sortRanked(out)

	return out, nil
}

// CategoryConnectivity links every pair of category labels that share at
// least one member. The relation is symmetric, has no self pairs and lists
// neighbors sorted. Labels without any link are absent.
func CategoryConnectivity(g *core.Graph) map[string][]string {
	if g == nil {
		return map[string][]string{}
	}
	links := make(map[string]map[string]struct{})
	for _, id := range g.Entities() {
		cats := g.Categories(id)
		for i := 0; i < len(cats); i++ {
			for j := i + 1; j < len(cats); j++ {
				addLink(links, cats[i], cats[j])
				addLink(links, cats[j], cats[i])
			}
		}
	}

	out := make(map[string][]string, len(links))
	for label, set := range links {
		nbrs := make([]string, 0, len(set))
		for n := range set {
			nbrs = append(nbrs, n)
		}
		sort.Strings(nbrs)
		out[label] = nbrs
	}

	return out
}

func addLink(links map[string]map[string]struct{}, a, b string) {
	set, ok := links[a]
	if !ok {
		set = make(map[string]struct{})
		links[a] = set
	}
	set[b] = struct{}{}
}

// PrioritizedTargets scores each entity by
//
//	Σ_{c ∈ categories} |connectivity(c)| × log10(length) × 10
//
// and returns the n best. n == 0 returns an empty slice.
func PrioritizedTargets(g *core.Graph, n int) ([]Ranked, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if n < 0 {
		return nil, errors.Wrapf(ErrBadLimit, "n=%d", n)
	}

	conn := CategoryConnectivity(g)
	out := make([]Ranked, 0, len(g.Entities()))
	for _, id := range g.Entities() {
		l, ok := g.Length(id)
		if !ok || l <= 0 {
			continue
		}
		breadth := 0
		for _, c := range g.Categories(id) {
			breadth += len(conn[c])
		}
		out = appendFinite(out, id, float64(breadth)*math.Log10(l)*10)
	}
	sortRanked(out)

	return truncate(out, n), nil
}

// TopInfluential ranks entities by log10(length) × 10 and returns the n best.
func TopInfluential(g *core.Graph, n int) ([]Influential, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if n < 0 {
		return nil, errors.Wrapf(ErrBadLimit, "n=%d", n)
	}

	out := make([]Influential, 0, len(g.Entities()))
	for _, id := range g.Entities() {
		l, ok := g.Length(id)
		if !ok || l <= 0 {
			continue
		}
		out = append(out, Influential{ID: id, Length: l, Score: math.Log10(l) * 10})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	if n < len(out) {
		out = out[:n]
	}

	return out, nil
}

func appendFinite(out []Ranked, id string, score float64) []Ranked {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return out
	}
	return append(out, Ranked{ID: id, Score: score})
}

// sortRanked orders by descending score, ties by ascending ID.
func sortRanked(r []Ranked) {
	sort.SliceStable(r, func(i, j int) bool {
		if r[i].Score != r[j].Score {
			return r[i].Score > r[j].Score
		}
		return r[i].ID < r[j].ID
	})
}

func truncate(r []Ranked, n int) []Ranked {
	if n < len(r) {
		return r[:n]
	}
	return r
}
