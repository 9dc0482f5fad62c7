package dfs_test

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genregraph/core"
	"github.com/katalvlaran/genregraph/dfs"
)

// buildChain creates an artist chain N0–N1–…–N(n-1).
func buildChain(t testing.TB, n int) *core.Graph {
	t.Helper()
	records := make([]core.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, core.Record{
			ID:         fmt.Sprintf("N%05d", i),
			Categories: []string{fmt.Sprintf("g%d", i), fmt.Sprintf("g%d", i+1)},
			Length:     1,
		})
	}
	g, err := core.Build(records)
	require.NoError(t, err)

	return g
}

// buildIslands creates two components {A,B,C} and {D,E} plus isolated F.
func buildIslands(t testing.TB, opts ...core.Option) *core.Graph {
	t.Helper()
	g, err := core.Build([]core.Record{
		{ID: "A", Categories: []string{"rock"}, Length: 1},
		{ID: "B", Categories: []string{"rock", "pop"}, Length: 1},
		{ID: "C", Categories: []string{"pop"}, Length: 1},
		{ID: "D", Categories: []string{"jazz"}, Length: 1},
		{ID: "E", Categories: []string{"jazz"}, Length: 1},
		{ID: "F", Categories: []string{"folk"}, Length: 1},
	}, opts...)
	require.NoError(t, err)

	return g
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.True(t, errors.Is(err, dfs.ErrGraphNil))

	_, err = dfs.Forest(nil)
	assert.True(t, errors.Is(err, dfs.ErrGraphNil))

	_, err = dfs.DFS(buildIslands(t), "Z")
	assert.True(t, errors.Is(err, dfs.ErrStartVertexNotFound))
}

func TestDFS_PreOrderDepthParent(t *testing.T) {
	g := buildIslands(t)

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2}, res.Depth)
	assert.Equal(t, map[string]string{"B": "A", "C": "B"}, res.Parent)
}

// TestDFS_LongChain runs deep enough to overflow a naive recursive walk's comfort zone.
func TestDFS_LongChain(t *testing.T) {
	g := buildChain(t, 20000)

	res, err := dfs.DFS(g, "N00000")
	require.NoError(t, err)
	assert.Len(t, res.Order, 20000)
	assert.Equal(t, 19999, res.Depth["N19999"])
}

func TestForest_Components(t *testing.T) {
	g := buildIslands(t)

	fr, err := dfs.Forest(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"D", "E"}, {"F"}}, fr.Trees)
	assert.Equal(t, 0, fr.TreeOf["C"])
	assert.Equal(t, 1, fr.TreeOf["E"])
	assert.Equal(t, 2, fr.TreeOf["F"])
}

func TestForest_FilterSkipsCategoryNodes(t *testing.T) {
	g := buildIslands(t, core.WithCategoryNodes("genre:"))

	fr, err := dfs.Forest(g,
		dfs.WithRoots(g.Entities()),
		dfs.WithFilterNeighbor(g.IsMember),
	)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"D", "E"}, {"F"}}, fr.Trees)
	_, tagged := fr.TreeOf["genre:rock"]
	assert.False(t, tagged)
	assert.Positive(t, fr.SkippedNeighbors)
}

func TestForest_RootOrder(t *testing.T) {
	g := buildIslands(t)

	fr, err := dfs.Forest(g, dfs.WithRoots([]string{"F", "E", "C", "missing"}))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"F"}, {"E", "D"}, {"C", "B", "A"}}, fr.Trees)
}
