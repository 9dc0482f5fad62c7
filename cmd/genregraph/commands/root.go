// Package commands wires the genregraph CLI: configuration and logging
// setup, graph loading, and one subcommand per analysis.
package commands

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/genregraph/config"
	"github.com/katalvlaran/genregraph/logger"
	"github.com/katalvlaran/genregraph/report"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	cfg        *config.Config
	format     report.Format
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "genregraph",
		Short: "Analyze an artist/genre graph",
		Long: `genregraph loads artists and their genres from CSV, links artists that
share genres, and ranks them by centrality, community and coverage.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (GENREGRAPH_* prefix, e.g. GENREGRAPH_ANALYSIS_K=3)
3. Config file (--config, or ./genregraph.toml)
4. Default values

Examples:
  genregraph stats --data artists.csv
  genregraph centrality --mode blended --max-depth 2
  genregraph communities --rank-by mean --top 5
  genregraph influence --k 3 --format json
  genregraph all --format yaml
  genregraph sample --shape islands --out sample.csv
  genregraph config init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (TOML)")
	pf.String("data", "", "input CSV path (data.path)")
	pf.String("format", "", "output format: table, json, yaml (output.format)")
	pf.Int("top", 0, "rows per result, 0 for all (analysis.top_n)")
	pf.String("policy", "", "edge weight policy: shared_count, category_weight (graph.weight_policy)")
	pf.Bool("category-nodes", false, "add genre nodes to the graph (graph.category_nodes)")
	pf.Bool("log-json", false, "structured JSON logs (log.json)")
	pf.String("log-level", "", "log level (log.level)")

	root.AddCommand(
		a.statsCmd(),
		a.centralityCmd(),
		a.communitiesCmd(),
		a.componentsCmd(),
		a.connectivityCmd(),
		a.priorityCmd(),
		a.influentialCmd(),
		a.influenceCmd(),
		a.distancesCmd(),
		a.allCmd(),
		a.sampleCmd(),
		a.configCmd(),
	)

	return root
}

// setup loads configuration, applies flag overrides, validates, and
// initializes logging. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	a.cfg = cfg
	a.format, _ = report.ParseFormat(cfg.Output.Format)
	logger.Logger.Debugw("configuration loaded",
		"config", a.configPath,
		"data", cfg.Data.Path,
		"policy", cfg.Graph.WeightPolicy,
		"format", a.format,
	)

	return nil
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	var err error
	set := func(name string, apply func() error) {
		if err == nil && fs.Changed(name) {
			err = apply()
		}
	}

	set("data", func() (e error) { cfg.Data.Path, e = fs.GetString("data"); return })
	set("format", func() (e error) { cfg.Output.Format, e = fs.GetString("format"); return })
	set("top", func() (e error) { cfg.Analysis.TopN, e = fs.GetInt("top"); return })
	set("policy", func() (e error) { cfg.Graph.WeightPolicy, e = fs.GetString("policy"); return })
	set("category-nodes", func() (e error) { cfg.Graph.CategoryNodes, e = fs.GetBool("category-nodes"); return })
	set("log-json", func() (e error) { cfg.Log.JSON, e = fs.GetBool("log-json"); return })
	set("log-level", func() (e error) { cfg.Log.Level, e = fs.GetString("log-level"); return })
	set("mode", func() (e error) { cfg.Centrality.Mode, e = fs.GetString("mode"); return })
	set("max-depth", func() (e error) { cfg.Centrality.MaxDepth, e = fs.GetInt("max-depth"); return })
	set("entities-only", func() (e error) { cfg.Centrality.EntitiesOnly, e = fs.GetBool("entities-only"); return })
	set("rank-by", func() (e error) { cfg.Analysis.RankBy, e = fs.GetString("rank-by"); return })
	set("k", func() (e error) { cfg.Analysis.K, e = fs.GetInt("k"); return })

	return err
}

func (a *app) render(w io.Writer, tables ...report.Table) error {
	if len(tables) == 1 {
		return report.Render(w, a.format, tables[0])
	}
	return report.RenderAll(w, a.format, tables)
}
