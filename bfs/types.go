// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import "github.com/cockroachdb/errors"

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Step describes one directed traversal step u→v taken while expanding u.
// Depth is the BFS depth of u. Seen reports whether v had already been
// discovered before this step (such steps are reported but not enqueued).
type Step struct {
	From   string
	To     string
	Weight float64
	Depth  int
	Seen   bool
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// OnEdge is called for every traversal step out of an expanded vertex,
	// including steps back to vertices already discovered.
	OnEdge func(s Step)

	// MaxDepth limits expansion: vertices at depth <= MaxDepth are expanded,
	// neighbors that would sit at MaxDepth+1 are not enqueued.
	// A negative value (the default) disables the limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each adjacency entry curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - no depth limit (MaxDepth == -1)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnVisit, OnEdge)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit:        func(string, int) error { return nil },
		OnEdge:         func(Step) {},
		MaxDepth:       -1,
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnEdge registers a callback for every traversal step.
func WithOnEdge(fn func(s Step)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEdge = fn
		}
	}
}

// WithMaxDepth bounds expansion to vertices at depth <= d.
//
//	d >= 0: limit to depth d (0 expands only the start vertex)
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex ID to its distance (in edges) from the start.
//   - Parent: map from vertex ID to its predecessor in the BFS tree.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, errors.Newf("bfs: no path to %q", dest)
	}
	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
