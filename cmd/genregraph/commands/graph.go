package commands

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/genregraph/core"
	"github.com/katalvlaran/genregraph/dataset"
	"github.com/katalvlaran/genregraph/logger"
)

// loadGraph reads the configured CSV and builds the graph.
func (a *app) loadGraph() (*core.Graph, *dataset.Summary, error) {
	cfg := a.cfg
	log := logger.Base()

	records, sum, err := dataset.ReadFile(cfg.Data.Path,
		dataset.WithColumns(cfg.Data.ArtistColumn, cfg.Data.GenresColumn, cfg.Data.LengthColumn),
		dataset.WithLogger(log),
	)
	if err != nil {
		return nil, nil, err
	}

	policy, err := core.ParseWeightPolicy(cfg.Graph.WeightPolicy)
	if err != nil {
		return nil, nil, err
	}
	opts := []core.Option{core.WithWeightPolicy(policy), core.WithLogger(log)}
	if w := categoryWeightsFor(records, cfg.Graph.CategoryWeights); len(w) > 0 {
		opts = append(opts, core.WithCategoryWeights(w))
	}
	if cfg.Graph.CategoryNodes {
		opts = append(opts, core.WithCategoryNodes(cfg.Graph.CategoryPrefix))
	}

	g, err := core.Build(records, opts...)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "building graph from %s", cfg.Data.Path)
	}

	return g, sum, nil
}

// categoryWeightsFor keys configured weights by the labels actually present
// in records. Configuration keys arrive lower-cased, so matching ignores case.
func categoryWeightsFor(records []core.Record, configured map[string]float64) map[string]float64 {
	if len(configured) == 0 {
		return nil
	}
	out := make(map[string]float64)
	for _, r := range records {
		for _, label := range r.Categories {
			label = strings.TrimSpace(label)
			if w, ok := configured[strings.ToLower(label)]; ok {
				out[label] = w
			}
		}
	}

	return out
}
