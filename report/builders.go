package report

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/genregraph/centrality"
	"github.com/katalvlaran/genregraph/community"
	"github.com/katalvlaran/genregraph/core"
	"github.com/katalvlaran/genregraph/dataset"
	"github.com/katalvlaran/genregraph/influence"
)

// maxListed caps member lists in console cells.
const maxListed = 8

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func rank(i int) string {
	return strconv.Itoa(i + 1)
}

// list joins ids for a console cell, eliding past maxListed.
func list(ids []string) string {
	if len(ids) <= maxListed {
		return strings.Join(ids, ", ")
	}
	return strings.Join(ids[:maxListed], ", ") + ", … (+" + strconv.Itoa(len(ids)-maxListed) + ")"
}

// FromScores tabulates centrality scores in their given order.
func FromScores(title string, scores []centrality.Score) Table {
	t := Table{Title: title, Header: []string{"#", "ID", "Score"}, Data: scores}
	for i, s := range scores {
		t.Rows = append(t.Rows, []string{rank(i), s.ID, num(s.Value)})
	}
	return t
}

// FromRanked tabulates derived entity scores in their given order.
func FromRanked(title string, ranked []community.Ranked) Table {
	t := Table{Title: title, Header: []string{"#", "ID", "Score"}, Data: ranked}
	for i, r := range ranked {
		t.Rows = append(t.Rows, []string{rank(i), r.ID, num(r.Score)})
	}
	return t
}

// FromInfluential tabulates length-ranked entities.
func FromInfluential(title string, inf []community.Influential) Table {
	t := Table{Title: title, Header: []string{"#", "ID", "Length", "Score"}, Data: inf}
	for i, x := range inf {
		t.Rows = append(t.Rows, []string{rank(i), x.ID, num(x.Length), num(x.Score)})
	}
	return t
}

// GroupRow is the structured form of one group.
type GroupRow struct {
	Label   string   `json:"label" yaml:"label"`
	Members []string `json:"members" yaml:"members"`
}

// FromGroups tabulates label-keyed groups, largest first, ties by label.
// n > 0 keeps only the n largest.
func FromGroups(title string, groups map[string][]string, n int) Table {
	rows := make([]GroupRow, 0, len(groups))
	for label, members := range groups {
		rows = append(rows, GroupRow{Label: label, Members: members})
	}
	sort.Slice(rows, func(i, j int) bool {
		if len(rows[i].Members) != len(rows[j].Members) {
			return len(rows[i].Members) > len(rows[j].Members)
		}
		return rows[i].Label < rows[j].Label
	})
	if n > 0 && n < len(rows) {
		rows = rows[:n]
	}

	t := Table{Title: title, Header: []string{"Group", "Size", "Members"}, Data: rows}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Label, strconv.Itoa(len(r.Members)), list(r.Members)})
	}
	return t
}

// FromGroupStats tabulates aggregated groups in their given order.
func FromGroupStats(title string, stats []community.GroupStat) Table {
	t := Table{Title: title, Header: []string{"#", "Group", "Members", "Total", "Mean"}, Data: stats}
	for i, s := range stats {
		t.Rows = append(t.Rows, []string{rank(i), s.Label, strconv.Itoa(s.Members), num(s.Sum), num(s.Mean)})
	}
	return t
}

// FromSelection tabulates greedy picks with their marginal gains.
func FromSelection(title string, res *influence.Result) Table {
	t := Table{Title: title, Header: []string{"#", "ID", "Gain", "Covered"}, Data: res}
	if res == nil {
		return t
	}
	covered := 0
	for i, id := range res.Selected {
		covered += res.Gains[i]
		t.Rows = append(t.Rows, []string{rank(i), id, strconv.Itoa(res.Gains[i]), strconv.Itoa(covered)})
	}
	return t
}

// FromConnectivity tabulates the category connectivity map, broadest first.
func FromConnectivity(title string, conn map[string][]string, n int) Table {
	t := FromGroups(title, conn, n)
	t.Header = []string{"Category", "Links", "Connected to"}
	return t
}

// DistanceRow is the structured form of one reachable node.
type DistanceRow struct {
	ID       string  `json:"id" yaml:"id"`
	Distance float64 `json:"distance" yaml:"distance"`
}

// FromDistances tabulates shortest distances, nearest first, ties by ID.
// n > 0 keeps only the n nearest.
func FromDistances(title string, dist map[string]float64, n int) Table {
	rows := make([]DistanceRow, 0, len(dist))
	for id, d := range dist {
		rows = append(rows, DistanceRow{ID: id, Distance: d})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Distance != rows[j].Distance {
			return rows[i].Distance < rows[j].Distance
		}
		return rows[i].ID < rows[j].ID
	})
	if n > 0 && n < len(rows) {
		rows = rows[:n]
	}

	t := Table{Title: title, Header: []string{"ID", "Distance"}, Data: rows}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.ID, num(r.Distance)})
	}
	return t
}

// GraphSummary is the structured form of FromGraphStats.
type GraphSummary struct {
	Graph   core.Stats       `json:"graph" yaml:"graph"`
	Dataset *dataset.Summary `json:"dataset,omitempty" yaml:"dataset,omitempty"`
}

// FromGraphStats tabulates construction and loading counters.
func FromGraphStats(title string, st core.Stats, sum *dataset.Summary) Table {
	t := Table{
		Title:  title,
		Header: []string{"Metric", "Value"},
		Data:   GraphSummary{Graph: st, Dataset: sum},
	}
	if sum != nil {
		t.Rows = append(t.Rows,
			[]string{"rows read", strconv.Itoa(sum.Rows)},
			[]string{"rows skipped", strconv.Itoa(sum.SkippedTotal())},
		)
	}
	t.Rows = append(t.Rows,
		[]string{"entities", strconv.Itoa(st.Entities)},
		[]string{"records rejected", strconv.Itoa(st.Rejected)},
		[]string{"categories", strconv.Itoa(st.Categories)},
		[]string{"category nodes", strconv.Itoa(st.CategoryNodes)},
		[]string{"entity links", strconv.Itoa(st.EntityLinks)},
		[]string{"weight policy", st.Policy.String()},
	)
	return t
}
