package community

import (
	"sort"

	"github.com/katalvlaran/genregraph/core"
)

// Stats sums and averages entity lengths per group. IDs unknown to g are
// ignored. The result is sorted by label; an empty group has Mean 0.
func Stats(g *core.Graph, groups map[string][]string) []GroupStat {
	out := make([]GroupStat, 0, len(groups))
	for label, members := range groups {
		st := GroupStat{Label: label}
		for _, id := range members {
			if g == nil {
				break
			}
			l, ok := g.Length(id)
			if !ok {
				continue
			}
			st.Sum += l
			st.Members++
		}
		if st.Members > 0 {
			st.Mean = st.Sum / float64(st.Members)
		}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })

	return out
}

// Rank returns a copy of stats ordered by the chosen aggregate, descending,
// ties by label.
func Rank(stats []GroupStat, by RankBy) []GroupStat {
	out := append([]GroupStat(nil), stats...)
	key := func(s GroupStat) float64 {
		if by == ByMean {
			return s.Mean
		}
		return s.Sum
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := key(out[i]), key(out[j])
		if a != b {
			return a > b
		}
		return out[i].Label < out[j].Label
	})

	return out
}
