package commands

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/genregraph/logger"
	"github.com/katalvlaran/genregraph/report"
)

// run loads the graph, runs one analysis and renders its tables.
func (a *app) run(cmd *cobra.Command, fn analysis) error {
	g, _, err := a.loadGraph()
	if err != nil {
		return err
	}
	tables, err := fn(g, a.cfg)
	if err != nil {
		return err
	}
	return a.render(cmd.OutOrStdout(), tables...)
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dataset and graph construction counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, sum, err := a.loadGraph()
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), report.FromGraphStats("Graph", g.Stats(), sum))
		},
	}
}

func (a *app) centralityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "centrality",
		Short: "Rank artists by centrality",
		Long: `Rank artists by one of six centrality modes:

  closeness        1 / mean shortest-path distance
  linear           sum of edge weights over a BFS
  logarithmic      sum of ln(1 + weight)
  inverse_square   sum of 1 / (depth + 1)^2
  weighted_degree  weight / (1 + neighbor degree) / (1 + depth)
  blended          mean of linear, inverse_square and logarithmic`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error { return a.run(cmd, centralityTables) },
	}
	cmd.Flags().String("mode", "", "centrality mode (centrality.mode)")
	cmd.Flags().Int("max-depth", -1, "deepest expanded BFS level, -1 for unbounded (centrality.max_depth)")
	cmd.Flags().Bool("entities-only", true, "score artists only, not genre nodes (centrality.entities_only)")
	return cmd
}

func (a *app) communitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "communities",
		Short: "Group artists by genre and rank the genres",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return a.run(cmd, communitiesTables) },
	}
	cmd.Flags().String("rank-by", "", "rank genres by total or mean length (analysis.rank_by)")
	return cmd
}

func (a *app) componentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "components",
		Short: "Find connected components of artists",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return a.run(cmd, componentsTables) },
	}
	cmd.Flags().String("rank-by", "", "rank components by total or mean length (analysis.rank_by)")
	return cmd
}

func (a *app) connectivityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connectivity",
		Short: "List genres linked by shared artists",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return a.run(cmd, connectivityTables) },
	}
}

func (a *app) priorityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "priority",
		Short: "Rank artists for labeling by genre reach and length",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return a.run(cmd, priorityTables) },
	}
}

func (a *app) influentialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "influential",
		Short: "Rank artists by log-scaled length",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return a.run(cmd, influentialTables) },
	}
}

func (a *app) influenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "influence",
		Short: "Pick k artists whose neighborhoods cover the most of the graph",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return a.run(cmd, influenceTables) },
	}
	cmd.Flags().Int("k", 0, "selection budget (analysis.k)")
	return cmd
}

func (a *app) distancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distances <artist>",
		Short: "Shortest weighted distances from one artist",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return a.run(cmd, distancesTables(args[0])) },
	}
}

func (a *app) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every analysis concurrently over one graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runID := uuid.New().String()
			log := logger.Logger.With("run_id", runID)
			start := time.Now()

			g, sum, err := a.loadGraph()
			if err != nil {
				return err
			}
			log.Infow("graph ready", "entities", g.Stats().Entities, "links", g.Stats().EntityLinks)

			analyses := []analysis{
				centralityTables,
				communitiesTables,
				componentsTables,
				connectivityTables,
				priorityTables,
				influentialTables,
				influenceTables,
			}
			results := make([][]report.Table, len(analyses))

			// the graph is read-only; each analysis owns its working state
			var eg errgroup.Group
			for i, fn := range analyses {
				i, fn := i, fn
				eg.Go(func() error {
					tables, err := fn(g, a.cfg)
					if err != nil {
						return err
					}
					results[i] = tables
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				log.Errorw("analysis failed", "error", err)
				return err
			}

			tables := []report.Table{report.FromGraphStats("Graph", g.Stats(), sum)}
			for _, r := range results {
				tables = append(tables, r...)
			}
			log.Infow("run complete", "tables", len(tables), "elapsed", time.Since(start))

			return report.RenderAll(cmd.OutOrStdout(), a.format, tables)
		},
	}
}
