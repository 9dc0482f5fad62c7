package centrality_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genregraph/centrality"
	"github.com/katalvlaran/genregraph/core"
)

// chain builds v0–v1–…–v(n-1) with unit weights.
func chain(t testing.TB, n int) *core.Graph {
	t.Helper()
	records := make([]core.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, core.Record{
			ID:         fmt.Sprintf("v%d", i),
			Categories: []string{fmt.Sprintf("g%d", i), fmt.Sprintf("g%d", i+1)},
			Length:     1,
		})
	}
	g, err := core.Build(records)
	require.NoError(t, err)
	return g
}

func triangle(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.Build([]core.Record{
		{ID: "C", Categories: []string{"t"}, Length: 1},
		{ID: "A", Categories: []string{"t"}, Length: 1},
		{ID: "B", Categories: []string{"t"}, Length: 1},
	})
	require.NoError(t, err)
	return g
}

func ids(scores []centrality.Score) []string {
	out := make([]string, len(scores))
	for i, s := range scores {
		out[i] = s.ID
	}
	return out
}

func valueOf(t *testing.T, scores []centrality.Score, id string) float64 {
	t.Helper()
	for _, s := range scores {
		if s.ID == id {
			return s.Value
		}
	}
	t.Fatalf("no score for %q in %v", id, scores)
	return 0
}

func TestCompute_Errors(t *testing.T) {
	_, err := centrality.Compute(nil, centrality.Closeness)
	assert.ErrorIs(t, err, centrality.ErrNilGraph)

	g := triangle(t)
	_, err = centrality.Compute(g, centrality.Mode(99))
	assert.ErrorIs(t, err, centrality.ErrUnknownMode)

	_, err = centrality.Compute(g, centrality.Linear, centrality.WithMaxDepth(-1))
	assert.ErrorIs(t, err, centrality.ErrOptionViolation)
}

func TestParseMode(t *testing.T) {
	for _, m := range centrality.Modes() {
		got, err := centrality.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := centrality.ParseMode(" Inverse-Square ")
	require.NoError(t, err)
	assert.Equal(t, centrality.InverseSquare, got)

	_, err = centrality.ParseMode("pagerank")
	assert.ErrorIs(t, err, centrality.ErrUnknownMode)
	assert.Equal(t, "mode(42)", centrality.Mode(42).String())
}

func TestCloseness_Chain(t *testing.T) {
	scores, err := centrality.Compute(chain(t, 4), centrality.Closeness)
	require.NoError(t, err)

	// ends: mean(0,1,2,3)=6/4; middles: mean(0,1,1,2)=1
	assert.Equal(t, []string{"v1", "v2", "v0", "v3"}, ids(scores))
	assert.InDelta(t, 1.0, valueOf(t, scores, "v1"), 1e-12)
	assert.InDelta(t, 4.0/6.0, valueOf(t, scores, "v0"), 1e-12)
}

func TestCloseness_TriangleTiesSortedByID(t *testing.T) {
	scores, err := centrality.Compute(triangle(t), centrality.Closeness)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, ids(scores))
	for _, s := range scores {
		assert.InDelta(t, 1.5, s.Value, 1e-12)
	}
}

// TestCloseness_MeanCountsSource pins the averaging set: the source's zero
// distance is one of the averaged entries.
func TestCloseness_MeanCountsSource(t *testing.T) {
	g, err := core.Build([]core.Record{
		{ID: "A", Categories: []string{"rock"}, Length: 1},
		{ID: "B", Categories: []string{"rock"}, Length: 1},
	})
	require.NoError(t, err)

	scores, err := centrality.Compute(g, centrality.Closeness)
	require.NoError(t, err)
	assert.Equal(t, []centrality.Score{{ID: "A", Value: 2}, {ID: "B", Value: 2}}, scores)

	// a pair at distance 1 outranks a star leaf whose mean covers a longer tail
	g, err = core.Build([]core.Record{
		{ID: "P", Categories: []string{"x"}, Length: 1},
		{ID: "Q", Categories: []string{"x"}, Length: 1},
		{ID: "H", Categories: []string{"a", "b", "c"}, Length: 1},
		{ID: "L1", Categories: []string{"a"}, Length: 1},
		{ID: "L2", Categories: []string{"b"}, Length: 1},
		{ID: "L3", Categories: []string{"c"}, Length: 1},
	})
	require.NoError(t, err)
	scores, err = centrality.Compute(g, centrality.Closeness)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3.0, valueOf(t, scores, "H"), 1e-12)
	assert.InDelta(t, 2.0, valueOf(t, scores, "P"), 1e-12)
	assert.InDelta(t, 0.8, valueOf(t, scores, "L1"), 1e-12)
}

func TestCloseness_IsolatedNodeExcluded(t *testing.T) {
	g, err := core.Build([]core.Record{
		{ID: "A", Categories: []string{"rock"}, Length: 1},
		{ID: "B", Categories: []string{"rock"}, Length: 1},
		{ID: "Z", Categories: []string{"polka"}, Length: 1},
	})
	require.NoError(t, err)

	scores, err := centrality.Compute(g, centrality.Closeness)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ids(scores))
}

func TestTraversal_DegreeFilter(t *testing.T) {
	// chain ends have degree 1 and are never scored by traversal modes
	for _, m := range centrality.Modes()[1:] {
		scores, err := centrality.Compute(chain(t, 4), m)
		require.NoError(t, err, m.String())
		assert.Equal(t, []string{"v1", "v2"}, ids(scores), m.String())
	}
}

func TestLinear_CountsEveryDirectedStep(t *testing.T) {
	scores, err := centrality.Compute(triangle(t), centrality.Linear)
	require.NoError(t, err)
	// 3 vertices × 2 adjacency entries, weight 1 each
	for _, s := range scores {
		assert.InDelta(t, 6.0, s.Value, 1e-12, s.ID)
	}
}

func TestTraversal_Formulas(t *testing.T) {
	g := chain(t, 4)
	ln2 := math.Log(2)

	tests := []struct {
		name  string
		mode  centrality.Mode
		opts  []centrality.Option
		value float64
	}{
		{"linear unbounded", centrality.Linear, nil, 6},
		{"linear depth 0", centrality.Linear, []centrality.Option{centrality.WithMaxDepth(0)}, 2},
		{"logarithmic unbounded", centrality.Logarithmic, nil, 6 * ln2},
		// depth 0: 2 steps; depth 1: v0 (1) + v2 (2); depth 2: v3 (1)
		{"inverse square unbounded", centrality.InverseSquare, nil, 2 + 3.0/4 + 1.0/9},
		{"inverse square depth 1", centrality.InverseSquare, []centrality.Option{centrality.WithMaxDepth(1)}, 2 + 3.0/4},
		// v1→v0 (deg 1) and v1→v2 (deg 2)
		{"weighted degree depth 0", centrality.WeightedDegree, []centrality.Option{centrality.WithMaxDepth(0)}, 1.0/2 + 1.0/3},
		{"blended depth 0", centrality.Blended, []centrality.Option{centrality.WithMaxDepth(0)}, 2 * (1 + 1 + ln2) / 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := centrality.Compute(g, tt.mode, tt.opts...)
			require.NoError(t, err)
			assert.InDelta(t, tt.value, valueOf(t, scores, "v1"), 1e-12)
		})
	}
}

func TestTraversal_ClosenessIgnoresMaxDepth(t *testing.T) {
	g := chain(t, 4)
	a, err := centrality.Compute(g, centrality.Closeness)
	require.NoError(t, err)
	b, err := centrality.Compute(g, centrality.Closeness, centrality.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEntitiesOnly(t *testing.T) {
	g, err := core.Build([]core.Record{
		{ID: "A", Categories: []string{"rock", "pop"}, Length: 1000},
		{ID: "B", Categories: []string{"rock"}, Length: 500},
		{ID: "C", Categories: []string{"jazz"}, Length: 2000},
	}, core.WithCategoryNodes("genre:"))
	require.NoError(t, err)

	all, err := centrality.Compute(g, centrality.Closeness)
	require.NoError(t, err)
	assert.Contains(t, ids(all), "genre:rock")

	ents, err := centrality.Compute(g, centrality.Closeness, centrality.WithEntitiesOnly())
	require.NoError(t, err)
	for _, s := range ents {
		assert.NotContains(t, s.ID, "genre:")
	}
	assert.Subset(t, []string{"A", "B", "C"}, ids(ents))
}

func TestSortAndTop(t *testing.T) {
	scores := []centrality.Score{
		{ID: "b", Value: 1},
		{ID: "n", Value: math.NaN()},
		{ID: "a", Value: 1},
		{ID: "c", Value: 3},
	}
	centrality.Sort(scores)
	assert.Equal(t, []string{"c", "a", "b", "n"}, ids(scores))

	assert.Len(t, centrality.Top(scores, 2), 2)
	assert.Len(t, centrality.Top(scores, 0), 4)
	assert.Len(t, centrality.Top(scores, 10), 4)
}

func TestCompute_Deterministic(t *testing.T) {
	g := chain(t, 30)
	for _, m := range centrality.Modes() {
		a, err := centrality.Compute(g, m)
		require.NoError(t, err)
		b, err := centrality.Compute(g, m)
		require.NoError(t, err)
		assert.Equal(t, a, b, m.String())
	}
}
