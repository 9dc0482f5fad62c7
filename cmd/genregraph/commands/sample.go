package commands

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/genregraph/builder"
	"github.com/katalvlaran/genregraph/core"
	"github.com/katalvlaran/genregraph/dataset"
	"github.com/katalvlaran/genregraph/logger"
)

// sampleShapes lists the topologies accepted by --shape.
var sampleShapes = []string{"random", "path", "star", "clique", "islands"}

type sampleFlags struct {
	shape   string
	ids     string
	artists int
	genres  int
	per     int
	islands int
	seed    int64
	minLen  float64
	maxLen  float64
	out     string
}

func (a *app) sampleCmd() *cobra.Command {
	var f sampleFlags
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a synthetic artist CSV",
		Long: `Generate artists with a known genre topology and write them in the
input CSV layout, to stdout or --out.

Shapes: ` + strings.Join(sampleShapes, ", "),
		Args: cobra.NoArgs,
		// skips config loading
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := f.build()
			if err != nil {
				return err
			}
			if f.out == "" {
				return dataset.Write(cmd.OutOrStdout(), records)
			}
			if err := dataset.WriteFile(f.out, records); err != nil {
				return err
			}
			logger.Logger.Infow("wrote sample", "path", f.out, "artists", len(records), "shape", f.shape)
			cmd.Printf("wrote %d artists to %s\n", len(records), f.out)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.shape, "shape", "random", "topology: "+strings.Join(sampleShapes, ", "))
	fl.StringVar(&f.ids, "ids", builder.SchemeNumbered, "artist naming: numbered (artist0), letters (A..Z, AA), index (0)")
	fl.IntVar(&f.artists, "artists", 100, "number of artists (per island for islands)")
	fl.IntVar(&f.genres, "genres", 20, "genre pool size (random)")
	fl.IntVar(&f.per, "per", 2, "genres per artist (random)")
	fl.IntVar(&f.islands, "islands", 3, "number of islands (islands)")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.Float64Var(&f.minLen, "min-length", 60, "minimum artist length")
	fl.Float64Var(&f.maxLen, "max-length", 3600, "maximum artist length")
	fl.StringVar(&f.out, "out", "", "output file (default stdout)")

	return cmd
}

func (f sampleFlags) build() ([]core.Record, error) {
	if !(f.minLen > 0) || f.maxLen < f.minLen {
		return nil, errors.WithHint(
			errors.Newf("invalid length range [%v, %v]", f.minLen, f.maxLen),
			"need 0 < --min-length <= --max-length")
	}
	idFn, err := builder.ParseIDScheme(f.ids, "artist")
	if err != nil {
		return nil, errors.WithHint(err, "use numbered, letters or index")
	}
	opts := []builder.BuilderOption{
		builder.WithSeed(f.seed),
		builder.WithUniformLength(f.minLen, f.maxLen),
		builder.WithIDScheme(idFn),
		builder.WithGenreScheme(builder.Numbered("genre")),
	}

	switch strings.ToLower(f.shape) {
	case "random":
		return builder.RandomGenres(f.artists, f.genres, f.per, opts...)
	case "path":
		return builder.Path(f.artists, opts...)
	case "star":
		return builder.Star(f.artists, opts...)
	case "clique":
		return builder.Clique(f.artists, opts...)
	case "islands":
		return builder.Islands(f.islands, f.artists, opts...)
	default:
		return nil, errors.WithHint(
			errors.Newf("unknown shape %q", f.shape),
			"use one of "+strings.Join(sampleShapes, ", "))
	}
}
