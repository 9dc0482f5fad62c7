// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order, and reporting
// every weighted traversal step to an optional hook.
package bfs

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/genregraph/core"
)

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasNode(startID) {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		graph:   g,
		opts:    o,
		visited: make(map[string]bool),
		res: &BFSResult{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(startID, 0, "")
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.visit(item); err != nil {
			return err
		}
		w.expand(item)
	}
	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return errors.Wrapf(err, "bfs: OnVisit error at %q", item.id)
	}
	return nil
}

// expand reports every step out of item and enqueues unseen neighbors
// whose depth stays within MaxDepth.
func (w *walker) expand(item queueItem) {
	nextDepth := item.depth + 1
	canEnqueue := w.opts.MaxDepth < 0 || nextDepth <= w.opts.MaxDepth

	w.graph.ForEachNeighbor(item.id, func(n core.Neighbor) bool {
		if !w.opts.FilterNeighbor(item.id, n.ID) {
			return true
		}
		seen := w.visited[n.ID]
		w.opts.OnEdge(Step{
			From:   item.id,
			To:     n.ID,
			Weight: n.Weight,
			Depth:  item.depth,
			Seen:   seen,
		})
		if !seen && canEnqueue {
			w.enqueue(n.ID, nextDepth, item.id)
		}
		return true
	})
}
