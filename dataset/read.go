// Package dataset reads artist records from CSV into core.Record values.
//
// The expected layout is a header row followed by one row per artist:
//
//	artist,genres,length
//	Miles Davis,"['jazz', 'bebop']",1520.5
//
// Columns are located by header name and fall back to positions 0, 1 and 2
// when a name is absent. Rows with an empty artist, a short row, or a length
// that is unparsable, non-finite or not positive are dropped and counted in
// Summary. Only I/O failures and a missing header are errors.
package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/genregraph/core"
)

// columns holds resolved field positions.
type columns struct {
	id, categories, length int
}

func (c columns) width() int {
	return max(c.id, c.categories, c.length) + 1
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string, opts ...Option) ([]core.Record, *Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	return Read(f, opts...)
}

// Read parses CSV from r.
func Read(r io.Reader, opts ...Option) ([]core.Record, *Summary, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, nil, err
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrMissingHeader
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "dataset: read header")
	}
	cols := resolveColumns(header, o)
	o.log.Debug("dataset header",
		zap.Strings("header", header),
		zap.Int("id_col", cols.id),
		zap.Int("categories_col", cols.categories),
		zap.Int("length_col", cols.length),
	)

	sum := &Summary{Skipped: make(map[string]int)}
	var records []core.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrapf(err, "dataset: read row %d", sum.Rows+2)
		}
		sum.Rows++

		rec, reason := parseRow(row, cols)
		if reason != "" {
			sum.Skipped[reason]++
			line, _ := cr.FieldPos(0)
			o.log.Debug("skipping row", zap.Int("line", line), zap.String("reason", reason))
			continue
		}
		records = append(records, rec)
	}
	sum.Accepted = len(records)
	o.log.Info("dataset loaded",
		zap.Int("rows", sum.Rows),
		zap.Int("accepted", sum.Accepted),
		zap.Int("skipped", sum.SkippedTotal()),
	)

	return records, sum, nil
}

func resolveColumns(header []string, o options) columns {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, dup := pos[key]; !dup {
			pos[key] = i
		}
	}
	find := func(name string, fallback int) int {
		if i, ok := pos[normalizeHeader(name)]; ok {
			return i
		}
		return fallback
	}

	return columns{
		id:         find(o.idColumn, 0),
		categories: find(o.categoryColumn, 1),
		length:     find(o.lengthColumn, 2),
	}
}

// parseRow returns the record or a non-empty skip reason.
func parseRow(row []string, cols columns) (core.Record, string) {
	if len(row) < cols.width() {
		return core.Record{}, ReasonShortRow
	}
	id := strings.TrimSpace(row[cols.id])
	if id == "" {
		return core.Record{}, ReasonEmptyID
	}
	length, err := strconv.ParseFloat(strings.TrimSpace(row[cols.length]), 64)
	if err != nil || math.IsNaN(length) || math.IsInf(length, 0) {
		return core.Record{}, ReasonBadLength
	}
	if length <= 0 {
		return core.Record{}, ReasonNonPositive
	}

	return core.Record{
		ID:         id,
		Categories: ParseCategories(row[cols.categories]),
		Length:     length,
	}, ""
}

// ParseCategories splits a list cell such as "['rock', 'pop']" into labels.
// Brackets are stripped, items split on commas, and surrounding whitespace
// and quotes trimmed. Empty items are dropped.
func ParseCategories(cell string) []string {
	cell = strings.TrimSpace(cell)
	cell = strings.TrimPrefix(cell, "[")
	cell = strings.TrimSuffix(cell, "]")

	var out []string
	for _, part := range strings.Split(cell, ",") {
		label := strings.Trim(strings.TrimSpace(part), `'"`)
		label = strings.TrimSpace(label)
		if label != "" {
			out = append(out, label)
		}
	}

	return out
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(s, "\ufeff")))
}
