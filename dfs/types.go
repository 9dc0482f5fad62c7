// Package dfs defines types and options for iterative depth-first search,
// including neighbor filtering and full-graph (forest) traversal.
package dfs

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Forest.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// FilterNeighbor, if non-nil, is called for each neighbor ID before it is
	// entered. Return true to traverse into that neighbor, false to skip it.
	// In Forest mode the filter also decides which roots are eligible.
	FilterNeighbor func(id string) bool

	// Roots fixes the order in which Forest starts new trees.
	// Nil means g.Nodes() (lexicographic).
	Roots []string

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with no filter and default roots.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithFilterNeighbor returns an Option that filters neighbor IDs.
// If fn(id) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithRoots returns an Option that sets the root enumeration order for Forest.
// The slice is copied.
func WithRoots(ids []string) Option {
	return func(o *DFSOptions) {
		o.Roots = append([]string(nil), ids...)
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in discovery (pre-order) sequence.
	Order []string

	// Depth maps each vertex ID to its tree depth from the root that found it.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex it was discovered from.
	// Roots do not appear.
	Parent map[string]string

	// SkippedNeighbors reports how many neighbors FilterNeighbor rejected.
	SkippedNeighbors int
}

// ForestResult captures a full traversal split into trees.
type ForestResult struct {
	// Trees holds one pre-order vertex list per tree, in discovery order.
	Trees [][]string

	// TreeOf maps each visited vertex to the index of its tree in Trees.
	TreeOf map[string]int

	// SkippedNeighbors reports how many neighbors FilterNeighbor rejected.
	SkippedNeighbors int
}
