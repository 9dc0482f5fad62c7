// Package dijkstra defines sentinel errors and configuration options
// for single-source shortest distances over a core.Graph.
//
// Options:
//
//	– MaxDistance: optional cap on distances to explore; vertices beyond this are left out.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is met during relaxation.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
package dijkstra

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Sentinel errors returned by ShortestDistances.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was encountered.
	// core.Build never produces one; the check guards hand-made fixtures.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures ShortestDistances.
//
// MaxDistance – vertices whose shortest distance would exceed this cap are
// not explored and do not appear in the result. Default +Inf (no cap).
type Options struct {
	MaxDistance float64

	// err records an invalid option; surfaced by ShortestDistances.
	err error
}

// Option represents a functional option for configuring ShortestDistances.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold. A negative or NaN value
// is recorded and reported as ErrBadMaxDistance before any search begins.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = errors.Wrapf(ErrBadMaxDistance, "got %v", max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}
