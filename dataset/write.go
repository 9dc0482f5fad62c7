package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/genregraph/core"
)

// WriteFile creates path and delegates to Write.
func WriteFile(path string, records []core.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "dataset: create %s", path)
	}
	if err := Write(f, records); err != nil {
		_ = f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "dataset: close %s", path)
}

// Write emits records in the layout Read accepts, under the default header.
// Every label must survive ParseCategories unchanged, so output read back
// through Read yields the same records. Labels that would not (commas, empty,
// or padded with spaces or quotes) fail with ErrUnwritableLabel before
// anything is written.
func Write(w io.Writer, records []core.Record) error {
	for _, r := range records {
		for _, l := range r.Categories {
			if !writableLabel(l) {
				return errors.Wrapf(ErrUnwritableLabel, "artist %q label %q", r.ID, l)
			}
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{DefaultIDColumn, DefaultCategoryColumn, DefaultLengthColumn}); err != nil {
		return errors.Wrap(err, "dataset: write header")
	}
	for i, r := range records {
		row := []string{r.ID, FormatCategories(r.Categories), strconv.FormatFloat(r.Length, 'f', -1, 64)}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "dataset: write row %d", i+2)
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "dataset: flush")
}

func writableLabel(l string) bool {
	got := ParseCategories(FormatCategories([]string{l}))
	return len(got) == 1 && got[0] == l
}

// FormatCategories renders labels as a list cell, e.g. "['rock', 'pop']".
func FormatCategories(labels []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, l := range labels {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(l)
		b.WriteByte('\'')
	}
	b.WriteByte(']')

	return b.String()
}
