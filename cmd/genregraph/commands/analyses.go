package commands

import (
	"fmt"

	"github.com/katalvlaran/genregraph/centrality"
	"github.com/katalvlaran/genregraph/community"
	"github.com/katalvlaran/genregraph/config"
	"github.com/katalvlaran/genregraph/core"
	"github.com/katalvlaran/genregraph/dijkstra"
	"github.com/katalvlaran/genregraph/influence"
	"github.com/katalvlaran/genregraph/logger"
	"github.com/katalvlaran/genregraph/report"
)

// Each analysis turns a graph and the validated configuration into tables.
type analysis func(g *core.Graph, cfg *config.Config) ([]report.Table, error)

func centralityTables(g *core.Graph, cfg *config.Config) ([]report.Table, error) {
	mode, err := centrality.ParseMode(cfg.Centrality.Mode)
	if err != nil {
		return nil, err
	}
	var opts []centrality.Option
	if cfg.Centrality.MaxDepth >= 0 {
		opts = append(opts, centrality.WithMaxDepth(cfg.Centrality.MaxDepth))
	}
	if cfg.Centrality.EntitiesOnly {
		opts = append(opts, centrality.WithEntitiesOnly())
	}

	scores, err := centrality.Compute(g, mode, opts...)
	if err != nil {
		return nil, err
	}
	title := fmt.Sprintf("Centrality (%s)", mode)
	return []report.Table{report.FromScores(title, centrality.Top(scores, cfg.Analysis.TopN))}, nil
}

func communitiesTables(g *core.Graph, cfg *config.Config) ([]report.Table, error) {
	by, err := community.ParseRankBy(cfg.Analysis.RankBy)
	if err != nil {
		return nil, err
	}
	groups := community.ByCategory(g)
	ranked := community.Rank(community.Stats(g, groups), by)

	return []report.Table{
		report.FromGroupStats(fmt.Sprintf("Genres by %s length", by), topStats(ranked, cfg.Analysis.TopN)),
		report.FromGroups("Largest genres", groups, cfg.Analysis.TopN),
	}, nil
}

func componentsTables(g *core.Graph, cfg *config.Config) ([]report.Table, error) {
	p, err := community.Components(g)
	if err != nil {
		return nil, err
	}
	by, err := community.ParseRankBy(cfg.Analysis.RankBy)
	if err != nil {
		return nil, err
	}
	groups := community.ComponentGroups(p)
	ranked := community.Rank(community.Stats(g, groups), by)

	infl, err := community.ClusterInfluence(g, p)
	if err != nil {
		return nil, err
	}

	return []report.Table{
		report.FromGroups(fmt.Sprintf("Components (%d)", len(p.Members)), groups, cfg.Analysis.TopN),
		report.FromGroupStats(fmt.Sprintf("Components by %s length", by), topStats(ranked, cfg.Analysis.TopN)),
		report.FromRanked("Influence within components", topRanked(infl, cfg.Analysis.TopN)),
	}, nil
}

func connectivityTables(g *core.Graph, cfg *config.Config) ([]report.Table, error) {
	conn := community.CategoryConnectivity(g)
	return []report.Table{report.FromConnectivity("Genre connectivity", conn, cfg.Analysis.TopN)}, nil
}

func priorityTables(g *core.Graph, cfg *config.Config) ([]report.Table, error) {
	ranked, err := community.PrioritizedTargets(g, limit(g, cfg.Analysis.TopN))
	if err != nil {
		return nil, err
	}
	return []report.Table{report.FromRanked("Labeling priority", ranked)}, nil
}

func influentialTables(g *core.Graph, cfg *config.Config) ([]report.Table, error) {
	top, err := community.TopInfluential(g, limit(g, cfg.Analysis.TopN))
	if err != nil {
		return nil, err
	}
	return []report.Table{report.FromInfluential("Most influential", top)}, nil
}

func influenceTables(g *core.Graph, cfg *config.Config) ([]report.Table, error) {
	res, err := influence.Select(g, cfg.Analysis.K, influence.WithLogger(logger.Base()))
	if err != nil {
		return nil, err
	}
	title := fmt.Sprintf("Greedy coverage (k=%d, covered %d)", cfg.Analysis.K, res.Covered)
	return []report.Table{report.FromSelection(title, res)}, nil
}

func distancesTables(source string) analysis {
	return func(g *core.Graph, cfg *config.Config) ([]report.Table, error) {
		dist, err := dijkstra.ShortestDistances(g, source)
		if err != nil {
			return nil, err
		}
		title := fmt.Sprintf("Shortest distances from %s (%d reachable)", source, len(dist))
		return []report.Table{report.FromDistances(title, dist, cfg.Analysis.TopN)}, nil
	}
}

// limit maps top_n = 0 ("everything") to the entity count.
func limit(g *core.Graph, n int) int {
	if n == 0 {
		return len(g.Entities())
	}
	return n
}

func topStats(s []community.GroupStat, n int) []community.GroupStat {
	if n > 0 && n < len(s) {
		return s[:n]
	}
	return s
}

func topRanked(r []community.Ranked, n int) []community.Ranked {
	if n > 0 && n < len(r) {
		return r[:n]
	}
	return r
}
