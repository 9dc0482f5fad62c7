package dataset

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Sentinel errors.
var (
	// ErrMissingHeader is returned when the input has no header row.
	ErrMissingHeader = errors.New("dataset: missing header row")

	// ErrBadColumns is returned when column names are empty or repeated.
	ErrBadColumns = errors.New("dataset: invalid column configuration")

	// ErrUnwritableLabel is returned by Write for a category label that the
	// list cell cannot carry, e.g. one containing a comma.
	ErrUnwritableLabel = errors.New("dataset: category label cannot be written")
)

// Skip reasons recorded in Summary.Skipped.
const (
	ReasonShortRow    = "short_row"
	ReasonEmptyID     = "empty_id"
	ReasonBadLength   = "bad_length"
	ReasonNonPositive = "non_positive_length"
)

// Default header names.
const (
	DefaultIDColumn       = "artist"
	DefaultCategoryColumn = "genres"
	DefaultLengthColumn   = "length"
)

// Summary reports how many rows were read and why rows were dropped.
type Summary struct {
	Rows     int            `json:"rows" yaml:"rows"`
	Accepted int            `json:"accepted" yaml:"accepted"`
	Skipped  map[string]int `json:"skipped" yaml:"skipped"`
}

// SkippedTotal returns the number of dropped rows.
func (s *Summary) SkippedTotal() int {
	n := 0
	for _, c := range s.Skipped {
		n += c
	}
	return n
}

// Option configures Read.
type Option func(*options)

type options struct {
	idColumn       string
	categoryColumn string
	lengthColumn   string
	log            *zap.Logger
}

func defaultOptions() options {
	return options{
		idColumn:       DefaultIDColumn,
		categoryColumn: DefaultCategoryColumn,
		lengthColumn:   DefaultLengthColumn,
		log:            zap.NewNop(),
	}
}

// WithColumns overrides the header names of the id, category and length columns.
func WithColumns(id, categories, length string) Option {
	return func(o *options) {
		o.idColumn, o.categoryColumn, o.lengthColumn = id, categories, length
	}
}

// WithLogger routes per-row debug output to l. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func (o options) validate() error {
	names := []string{o.idColumn, o.categoryColumn, o.lengthColumn}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		key := normalizeHeader(n)
		if key == "" {
			return errors.Wrap(ErrBadColumns, "column name is empty")
		}
		if seen[key] {
			return errors.Wrapf(ErrBadColumns, "column %q named twice", n)
		}
		seen[key] = true
	}
	return nil
}
