// Package config loads genregraph settings from defaults, an optional TOML
// file and GENREGRAPH_* environment variables, in increasing precedence.
package config

// Config is the full set of run settings.
type Config struct {
	Data       DataConfig       `mapstructure:"data" toml:"data" json:"data" yaml:"data"`
	Graph      GraphConfig      `mapstructure:"graph" toml:"graph" json:"graph" yaml:"graph"`
	Centrality CentralityConfig `mapstructure:"centrality" toml:"centrality" json:"centrality" yaml:"centrality"`
	Analysis   AnalysisConfig   `mapstructure:"analysis" toml:"analysis" json:"analysis" yaml:"analysis"`
	Output     OutputConfig     `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	Log        LogConfig        `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// DataConfig locates the input CSV and its columns.
type DataConfig struct {
	Path         string `mapstructure:"path" toml:"path" json:"path" yaml:"path"`
	ArtistColumn string `mapstructure:"artist_column" toml:"artist_column" json:"artist_column" yaml:"artist_column"`
	GenresColumn string `mapstructure:"genres_column" toml:"genres_column" json:"genres_column" yaml:"genres_column"`
	LengthColumn string `mapstructure:"length_column" toml:"length_column" json:"length_column" yaml:"length_column"`
}

// GraphConfig controls graph construction.
type GraphConfig struct {
	// WeightPolicy is shared_count or category_weight.
	WeightPolicy string `mapstructure:"weight_policy" toml:"weight_policy" json:"weight_policy" yaml:"weight_policy"`

	// CategoryNodes adds one node per genre (bipartite variant).
	CategoryNodes bool `mapstructure:"category_nodes" toml:"category_nodes" json:"category_nodes" yaml:"category_nodes"`

	// CategoryPrefix prefixes genre node IDs.
	CategoryPrefix string `mapstructure:"category_prefix" toml:"category_prefix" json:"category_prefix" yaml:"category_prefix"`

	// CategoryWeights overrides per-genre weights under category_weight.
	// Keys are matched case-insensitively.
	CategoryWeights map[string]float64 `mapstructure:"category_weights" toml:"category_weights" json:"category_weights" yaml:"category_weights"`
}

// CentralityConfig selects the scoring mode. MaxDepth -1 means unbounded.
type CentralityConfig struct {
	Mode         string `mapstructure:"mode" toml:"mode" json:"mode" yaml:"mode"`
	MaxDepth     int    `mapstructure:"max_depth" toml:"max_depth" json:"max_depth" yaml:"max_depth"`
	EntitiesOnly bool   `mapstructure:"entities_only" toml:"entities_only" json:"entities_only" yaml:"entities_only"`
}

// AnalysisConfig bounds result sizes. RankBy is total or mean.
type AnalysisConfig struct {
	TopN   int    `mapstructure:"top_n" toml:"top_n" json:"top_n" yaml:"top_n"`
	K      int    `mapstructure:"k" toml:"k" json:"k" yaml:"k"`
	RankBy string `mapstructure:"rank_by" toml:"rank_by" json:"rank_by" yaml:"rank_by"`
}

// OutputConfig selects the report encoding: table, json or yaml.
type OutputConfig struct {
	Format string `mapstructure:"format" toml:"format" json:"format" yaml:"format"`
}

// LogConfig configures the global logger.
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
	Level string `mapstructure:"level" toml:"level" json:"level" yaml:"level"`
}
