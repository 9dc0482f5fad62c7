// Package influence picks a small set of entities whose neighborhoods
// together reach as much of the graph as possible.
//
// Select runs greedy maximum coverage: each round scans every unselected
// entity in sorted ID order, counts the distinct neighbors not yet covered,
// and keeps the first candidate with the strictly largest gain. Selection
// stops after k picks or as soon as the best gain is zero.
//
// Complexity: O(k · Σ deg(v)) time, O(V) memory.
package influence

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/genregraph/core"
)

// SelectTopK returns up to k entity IDs chosen by greedy maximum coverage.
// k == 0 returns an empty slice; k < 0 returns ErrBadK.
func SelectTopK(g *core.Graph, k int, opts ...Option) ([]string, error) {
	res, err := Select(g, k, opts...)
	if err != nil {
		return nil, err
	}

	return res.Selected, nil
}

// Select is SelectTopK with per-pick gains and the final coverage.
func Select(g *core.Graph, k int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 0 {
		return nil, errors.Wrapf(ErrBadK, "k=%d", k)
	}
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	s := &selector{
		graph:      g,
		candidates: g.Entities(),
		selected:   make(map[string]bool),
		covered:    make(map[string]struct{}),
		stamp:      make(map[string]int),
	}
	res := &Result{Selected: []string{}, Gains: []int{}}

	for len(res.Selected) < k {
		best, gain := s.best()
		if gain == 0 {
			o.log.Debug("selection exhausted", zap.Int("picked", len(res.Selected)), zap.Int("k", k))
			break
		}
		s.take(best)
		res.Selected = append(res.Selected, best)
		res.Gains = append(res.Gains, gain)
		o.log.Debug("selected", zap.String("id", best), zap.Int("gain", gain), zap.Int("covered", len(s.covered)))
	}
	res.Covered = len(s.covered)

	return res, nil
}

// selector holds the mutable state of one run.
type selector struct {
	graph      *core.Graph
	candidates []string
	selected   map[string]bool
	covered    map[string]struct{}

	// stamp de-duplicates parallel neighbor entries without a per-candidate set.
	stamp map[string]int
	epoch int
}

// best returns the first candidate with the largest positive gain, or ("", 0).
func (s *selector) best() (string, int) {
	bestID, bestGain := "", 0
	for _, id := range s.candidates {
		if s.selected[id] {
			continue
		}
		if gain := s.gain(id); gain > bestGain {
			bestID, bestGain = id, gain
		}
	}

	return bestID, bestGain
}

// gain counts distinct uncovered neighbors of id.
func (s *selector) gain(id string) int {
	s.epoch++
	n := 0
	s.graph.ForEachNeighbor(id, func(nb core.Neighbor) bool {
		if s.stamp[nb.ID] == s.epoch {
			return true
		}
		s.stamp[nb.ID] = s.epoch
		if _, ok := s.covered[nb.ID]; !ok {
			n++
		}
		return true
	})

	return n
}

func (s *selector) take(id string) {
	s.selected[id] = true
	s.graph.ForEachNeighbor(id, func(nb core.Neighbor) bool {
		s.covered[nb.ID] = struct{}{}
		return true
	})
}
