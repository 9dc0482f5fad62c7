package centrality

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrUnknownMode is returned for a Mode outside the known set.
	ErrUnknownMode = errors.New("centrality: unknown mode")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// Mode selects the scoring strategy.
type Mode int

const (
	// Closeness scores 1 / mean shortest-path distance to every reachable node.
	Closeness Mode = iota
	// Linear accumulates the edge weight per traversal step.
	Linear
	// Logarithmic accumulates ln(1 + weight) per traversal step.
	Logarithmic
	// InverseSquare accumulates 1 / (depth + 1)² per traversal step.
	InverseSquare
	// WeightedDegree accumulates weight / (1 + deg(neighbor)) / (1 + depth).
	WeightedDegree
	// Blended accumulates the mean of the Linear, InverseSquare and Logarithmic contributions.
	Blended
)

var modeNames = map[Mode]string{
	Closeness:      "closeness",
	Linear:         "linear",
	Logarithmic:    "logarithmic",
	InverseSquare:  "inverse_square",
	WeightedDegree: "weighted_degree",
	Blended:        "blended",
}

// String returns the configuration name of m.
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps a configuration name (case-insensitive, '-' or '_') to a Mode.
func ParseMode(s string) (Mode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for m, name := range modeNames {
		if name == key {
			return m, nil
		}
	}
	return Closeness, errors.Wrapf(ErrUnknownMode, "%q", s)
}

// Modes lists every mode in declaration order.
func Modes() []Mode {
	return []Mode{Closeness, Linear, Logarithmic, InverseSquare, WeightedDegree, Blended}
}

// contribution returns the per-step score for a traversal mode.
// depth is the depth of the expanded node; nbrDegree is the degree of the step target.
// Closeness has no per-step formula and never reaches here.
func (m Mode) contribution(weight float64, depth, nbrDegree int) float64 {
	linear := weight
	logarithmic := math.Log1p(weight)
	d := float64(depth + 1)
	inverseSquare := 1 / (d * d)

	switch m {
	case Linear:
		return linear
	case Logarithmic:
		return logarithmic
	case InverseSquare:
		return inverseSquare
	case WeightedDegree:
		return weight * (1 / (1 + float64(nbrDegree))) * (1 / d)
	case Blended:
		return (linear + inverseSquare + logarithmic) / 3
	default:
		return 0
	}
}

// minDegree is the degree a node needs before it is scored.
func (m Mode) minDegree() int {
	if m == Closeness {
		return 1
	}
	return 2
}

// Score pairs a node with its centrality value.
type Score struct {
	ID    string  `json:"id" yaml:"id"`
	Value float64 `json:"score" yaml:"score"`
}

// Option configures Compute.
type Option func(*Options)

// Options holds Compute parameters.
type Options struct {
	// MaxDepth bounds traversal modes; -1 means unbounded. Ignored by Closeness.
	MaxDepth int

	// EntitiesOnly restricts scored nodes to entity nodes. Traversals and
	// shortest paths still pass through category nodes.
	EntitiesOnly bool

	err error
}

// DefaultOptions returns unbounded depth, all nodes scored.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithMaxDepth bounds traversal modes: nodes at depth <= d are expanded.
// A negative d is recorded as ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithEntitiesOnly scores entity nodes only.
func WithEntitiesOnly() Option {
	return func(o *Options) { o.EntitiesOnly = true }
}
