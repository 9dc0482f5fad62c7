package config

import (
	"github.com/spf13/viper"
)

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "genregraph.toml"

// EnvPrefix prefixes environment overrides, e.g. GENREGRAPH_ANALYSIS_K=5.
const EnvPrefix = "GENREGRAPH"

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data.path", "artists.csv")
	v.SetDefault("data.artist_column", "artist")
	v.SetDefault("data.genres_column", "genres")
	v.SetDefault("data.length_column", "length")

	v.SetDefault("graph.weight_policy", "shared_count")
	v.SetDefault("graph.category_nodes", false)
	v.SetDefault("graph.category_prefix", "genre:")
	v.SetDefault("graph.category_weights", map[string]float64{})

	v.SetDefault("centrality.mode", "closeness")
	v.SetDefault("centrality.max_depth", -1)
	v.SetDefault("centrality.entities_only", true)

	v.SetDefault("analysis.top_n", 10)
	v.SetDefault("analysis.k", 5)
	v.SetDefault("analysis.rank_by", "total")

	v.SetDefault("output.format", "table")

	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}

// Default returns the configuration produced by SetDefaults alone.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	var c Config
	// defaults always decode
	_ = v.Unmarshal(&c)

	return &c
}
