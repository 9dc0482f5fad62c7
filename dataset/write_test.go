package dataset_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genregraph/builder"
	"github.com/katalvlaran/genregraph/core"
	"github.com/katalvlaran/genregraph/dataset"
)

func TestWrite_Layout(t *testing.T) {
	var buf bytes.Buffer
	err := dataset.Write(&buf, []core.Record{
		{ID: "Miles Davis", Categories: []string{"jazz", "bebop"}, Length: 1520.5},
		{ID: "Solo", Length: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, "artist,genres,length\n"+
		"Miles Davis,\"['jazz', 'bebop']\",1520.5\n"+
		"Solo,[],3\n", buf.String())
}

func TestWrite_ReadsBack(t *testing.T) {
	records, err := builder.RandomGenres(40, 6, 2, builder.WithSeed(3), builder.WithUniformLength(60, 600))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, dataset.WriteFile(path, records))

	got, sum, err := dataset.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 40, sum.Accepted)
	assert.Zero(t, sum.SkippedTotal())
	assert.Equal(t, records, got)
}

func TestWrite_RejectsLabelsThatWouldSplit(t *testing.T) {
	for _, label := range []string{"rock, pop", "", " padded", "'quoted'"} {
		var buf bytes.Buffer
		err := dataset.Write(&buf, []core.Record{
			{ID: "ok", Categories: []string{"jazz"}, Length: 1},
			{ID: "bad", Categories: []string{"jazz", label}, Length: 1},
		})
		assert.ErrorIs(t, err, dataset.ErrUnwritableLabel, "%q", label)
		assert.Empty(t, buf.String(), "%q", label)
	}

	// unusual but intact labels read back unchanged
	records := []core.Record{{ID: "x", Categories: []string{"drum'n'bass", "[lo-fi]", "r&b"}, Length: 2}}
	var buf bytes.Buffer
	require.NoError(t, dataset.Write(&buf, records))
	got, _, err := dataset.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestFormatCategories(t *testing.T) {
	assert.Equal(t, "[]", dataset.FormatCategories(nil))
	labels := []string{"rock", "indie pop"}
	assert.Equal(t, labels, dataset.ParseCategories(dataset.FormatCategories(labels)))
}
