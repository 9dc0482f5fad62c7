package config

import (
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/genregraph/centrality"
	"github.com/katalvlaran/genregraph/community"
	"github.com/katalvlaran/genregraph/core"
	"github.com/katalvlaran/genregraph/report"
)

// ErrInvalid marks every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Validate checks every setting before any analysis starts. The returned
// error matches ErrInvalid and carries a user-facing hint.
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return invalidf("pass --data or set data.path", "data.path cannot be empty")
	}
	if _, err := core.ParseWeightPolicy(c.Graph.WeightPolicy); err != nil {
		return mark(err, "graph.weight_policy", "use shared_count or category_weight")
	}
	if c.Graph.CategoryNodes && c.Graph.CategoryPrefix == "" {
		return invalidf(`the default prefix is "genre:"`,
			"graph.category_prefix cannot be empty when graph.category_nodes is set")
	}
	for label, w := range c.Graph.CategoryWeights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return invalidf("remove the entry to fall back to the mean member length",
				"graph.category_weights[%q] must be a non-negative number, got %v", label, w)
		}
	}
	if _, err := centrality.ParseMode(c.Centrality.Mode); err != nil {
		return mark(err, "centrality.mode",
			"use closeness, linear, logarithmic, inverse_square, weighted_degree or blended")
	}
	if c.Centrality.MaxDepth < -1 {
		return invalidf("-1 means unbounded", "centrality.max_depth must be >= -1, got %d", c.Centrality.MaxDepth)
	}
	if c.Analysis.TopN < 0 {
		return invalidf("0 lists everything", "analysis.top_n must be >= 0, got %d", c.Analysis.TopN)
	}
	if c.Analysis.K < 0 {
		return invalidf("0 selects nothing", "analysis.k must be >= 0, got %d", c.Analysis.K)
	}
	if _, err := community.ParseRankBy(c.Analysis.RankBy); err != nil {
		return mark(err, "analysis.rank_by", "use total or mean")
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return mark(err, "output.format", "use table, json or yaml")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return mark(err, "log.level", "use debug, info, warn or error")
	}

	return nil
}

func invalidf(hint, format string, args ...interface{}) error {
	return errors.WithHint(errors.Wrapf(ErrInvalid, format, args...), hint)
}

// mark keeps the parser's own sentinel and adds ErrInvalid.
func mark(err error, key, hint string) error {
	return errors.WithHint(errors.Mark(errors.Wrap(err, key), ErrInvalid), hint)
}
