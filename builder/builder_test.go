package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genregraph/builder"
	"github.com/katalvlaran/genregraph/core"
)

// mustGraph adapts a constructor result to a built graph.
func mustGraph(t *testing.T) func([]core.Record, error) *core.Graph {
	t.Helper()
	return func(records []core.Record, err error) *core.Graph {
		return build(t, records, err)
	}
}

func build(t *testing.T, records []core.Record, err error) *core.Graph {
	t.Helper()
	require.NoError(t, err)
	g, err := core.Build(records)
	require.NoError(t, err)
	return g
}

func TestPath(t *testing.T) {
	g := mustGraph(t)(builder.Path(4))
	assert.Equal(t, []string{"a0", "a1", "a2", "a3"}, g.Entities())
	assert.Equal(t, 1, g.Degree("a0"))
	assert.Equal(t, 2, g.Degree("a1"))
	assert.Equal(t, 3, g.Stats().EntityLinks)

	_, err := builder.Path(1)
	assert.ErrorIs(t, err, builder.ErrTooFewArtists)
}

func TestStar(t *testing.T) {
	g := mustGraph(t)(builder.Star(5, builder.WithLetterIDs()))
	assert.Equal(t, 4, g.Degree("A"))
	for _, leaf := range []string{"B", "C", "D", "E"} {
		assert.Equal(t, []core.Neighbor{{ID: "A", Weight: 1}}, g.Neighbors(leaf))
	}

	_, err := builder.Star(1)
	assert.ErrorIs(t, err, builder.ErrTooFewArtists)
}

func TestCliqueAndIslands(t *testing.T) {
	g := mustGraph(t)(builder.Clique(4))
	assert.Equal(t, 6, g.Stats().EntityLinks)

	g = mustGraph(t)(builder.Islands(3, 2))
	assert.Equal(t, 6, g.Stats().Entities)
	assert.Equal(t, 3, g.Stats().EntityLinks)
	assert.Equal(t, []string{"a0", "a1"}, g.Members("g0"))

	_, err := builder.Islands(0, 2)
	assert.ErrorIs(t, err, builder.ErrTooFewArtists)
}

func TestRandomGenres(t *testing.T) {
	_, err := builder.RandomGenres(10, 5, 2)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.RandomGenres(10, 2, 3, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewGenres)

	a, err := builder.RandomGenres(50, 8, 3, builder.WithSeed(42), builder.WithUniformLength(100, 400))
	require.NoError(t, err)
	b, err := builder.RandomGenres(50, 8, 3, builder.WithSeed(42), builder.WithUniformLength(100, 400))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed, same records")

	for _, r := range a {
		assert.Len(t, r.Categories, 3)
		assert.GreaterOrEqual(t, r.Length, 100.0)
		assert.Less(t, r.Length, 400.0)
		seen := map[string]bool{}
		for _, c := range r.Categories {
			assert.False(t, seen[c], "duplicate genre %s in %s", c, r.ID)
			seen[c] = true
		}
	}
}

func TestIDSchemes(t *testing.T) {
	assert.Equal(t, "42", builder.Index(42))
	assert.Equal(t, "artist7", builder.Numbered("artist")(7))
	for idx, want := range map[int]string{0: "A", 25: "Z", 26: "AA", 51: "AZ", 52: "BA", 701: "ZZ", 702: "AAA"} {
		assert.Equal(t, want, builder.Letters(idx), "idx %d", idx)
	}

	for name, want := range map[string]string{"": "x3", "Numbered": "x3", "letters": "D", "INDEX": "3"} {
		fn, err := builder.ParseIDScheme(name, "x")
		require.NoError(t, err, name)
		assert.Equal(t, want, fn(3), name)
	}
	_, err := builder.ParseIDScheme("roman", "x")
	assert.ErrorIs(t, err, builder.ErrUnknownScheme)

	recs, err := builder.Clique(2, builder.WithIDScheme(builder.Letters), builder.WithGenreScheme(builder.Numbered("genre-")))
	require.NoError(t, err)
	assert.Equal(t, "A", recs[0].ID)
	assert.Equal(t, []string{"genre-0"}, recs[1].Categories)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithConstantLength(0) })
	assert.Panics(t, func() { builder.WithUniformLength(5, 1) })
}

func TestUniformLengthWithoutRNGUsesMidpoint(t *testing.T) {
	recs, err := builder.Path(2, builder.WithUniformLength(10, 20))
	require.NoError(t, err)
	assert.Equal(t, 15.0, recs[0].Length)
}
