package centrality

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/genregraph/bfs"
	"github.com/katalvlaran/genregraph/core"
	"github.com/katalvlaran/genregraph/dijkstra"
)

// Compute scores every eligible node of g under mode and returns the scores
// sorted by descending value, ties by ascending ID.
//
// Eligibility: degree >= 1 for Closeness, degree >= 2 for traversal modes.
// Nodes whose score is undefined or non-finite are left out.
//
// Errors: ErrNilGraph, ErrUnknownMode, ErrOptionViolation; all reported
// before any traversal begins.
func Compute(g *core.Graph, mode Mode, opts ...Option) ([]Score, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if _, ok := modeNames[mode]; !ok {
		return nil, errors.Wrapf(ErrUnknownMode, "mode %d", int(mode))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	candidates := g.Nodes()
	if o.EntitiesOnly {
		candidates = g.Entities()
	}

	scores := make([]Score, 0, len(candidates))
	for _, id := range candidates {
		if g.Degree(id) < mode.minDegree() {
			continue
		}

		var (
			v   float64
			ok  bool
			err error
		)
		if mode == Closeness {
			v, ok, err = closeness(g, id)
		} else {
			v, ok, err = traversal(g, id, mode, o.MaxDepth)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "centrality: scoring %q", id)
		}
		if ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
			scores = append(scores, Score{ID: id, Value: v})
		}
	}

	Sort(scores)

	return scores, nil
}

// closeness returns 1 / mean over every reachable distance from id, the
// source's own zero included. A zero sum (nothing else reachable, or only
// zero-weight links) leaves the score undefined.
func closeness(g *core.Graph, id string) (float64, bool, error) {
	dist, err := dijkstra.ShortestDistances(g, id)
	if err != nil {
		return 0, false, err
	}

	var sum float64
	for _, d := range dist {
		sum += d
	}
	if sum <= 0 {
		return 0, false, nil
	}

	return float64(len(dist)) / sum, true, nil
}

// traversal accumulates mode contributions over a depth-bounded BFS from id.
func traversal(g *core.Graph, id string, mode Mode, maxDepth int) (float64, bool, error) {
	var total float64
	opts := []bfs.Option{
		bfs.WithOnEdge(func(s bfs.Step) {
			total += mode.contribution(s.Weight, s.Depth, g.Degree(s.To))
		}),
	}
	if maxDepth >= 0 {
		opts = append(opts, bfs.WithMaxDepth(maxDepth))
	}
	if _, err := bfs.BFS(g, id, opts...); err != nil {
		return 0, false, err
	}

	return total, true, nil
}

// Sort orders scores by descending Value, ties by ascending ID.
// NaN values sort last.
func Sort(scores []Score) {
	sort.SliceStable(scores, func(i, j int) bool {
		a, b := scores[i], scores[j]
		if math.IsNaN(a.Value) || math.IsNaN(b.Value) {
			return !math.IsNaN(a.Value) && math.IsNaN(b.Value)
		}
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		return a.ID < b.ID
	})
}

// Top returns at most n leading scores; n <= 0 returns all of them.
func Top(scores []Score, n int) []Score {
	if n <= 0 || n >= len(scores) {
		return scores
	}
	return scores[:n]
}
