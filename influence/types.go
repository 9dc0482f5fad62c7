package influence

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = errors.New("influence: graph is nil")

	// ErrBadK is returned for a negative selection budget.
	ErrBadK = errors.New("influence: k must be non-negative")
)

// Result describes one greedy selection run.
type Result struct {
	// Selected lists picked entities in selection order.
	Selected []string `json:"selected" yaml:"selected"`

	// Gains holds the number of newly covered nodes contributed by each pick.
	Gains []int `json:"gains" yaml:"gains"`

	// Covered is the size of the union of all picked neighborhoods.
	Covered int `json:"covered" yaml:"covered"`
}

// Option configures Select.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger routes per-pick debug output to l. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
