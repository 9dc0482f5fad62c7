// Package dfs implements iterative depth-first search (single-source and
// forest) on core.Graph.
//
// Key features:
//   - DFS(g, startID, opts...): traverse one tree from a root
//   - Forest(g, opts...): restart from every unvisited root, one tree each
//   - FilterNeighbor restricts which vertices may be entered (and rooted)
//   - Explicit stack: no recursion depth limit on long chains
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the stack and metadata maps.
package dfs

import (
	"github.com/katalvlaran/genregraph/core"
)

// frame is a stack entry: vertex, its depth and the vertex it came from.
type frame struct {
	id     string
	depth  int
	parent string
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    DFSOptions
	visited map[string]bool
	res     *DFSResult
}

// DFS performs depth-first search from startID and returns the pre-order
// visit sequence with depths and parents.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !g.HasNode(startID) {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(g, dopts)
	w.traverse(startID)
	w.res.SkippedNeighbors = w.opts.SkippedNeighbors

	return w.res, nil
}

// Forest runs DFS from every eligible unvisited root in root order and
// returns one tree per run. Tree indices are assigned 0, 1, 2, … in the
// order trees are first discovered.
func Forest(g *core.Graph, opts ...Option) (*ForestResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	roots := dopts.Roots
	if roots == nil {
		roots = g.Nodes()
	}

	w := newWalker(g, dopts)
	fr := &ForestResult{TreeOf: make(map[string]int)}
	for _, root := range roots {
		if w.visited[root] || !g.HasNode(root) {
			continue
		}
		if dopts.FilterNeighbor != nil && !dopts.FilterNeighbor(root) {
			continue
		}
		start := len(w.res.Order)
		w.traverse(root)

		tree := append([]string(nil), w.res.Order[start:]...)
		idx := len(fr.Trees)
		for _, id := range tree {
			fr.TreeOf[id] = idx
		}
		fr.Trees = append(fr.Trees, tree)
	}
	fr.SkippedNeighbors = w.opts.SkippedNeighbors

	return fr, nil
}

func newWalker(g *core.Graph, opts DFSOptions) *dfsWalker {
	return &dfsWalker{
		graph:   g,
		opts:    opts,
		visited: make(map[string]bool),
		res: &DFSResult{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
}

// traverse explores the tree rooted at root with an explicit stack.
// Neighbors are pushed in reverse adjacency order so they pop in adjacency order.
func (w *dfsWalker) traverse(root string) {
	stack := []frame{{id: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if w.visited[f.id] {
			continue
		}
		w.visited[f.id] = true
		w.res.Order = append(w.res.Order, f.id)
		w.res.Depth[f.id] = f.depth
		if f.parent != "" {
			w.res.Parent[f.id] = f.parent
		}

		nbs := w.graph.Neighbors(f.id)
		for i := len(nbs) - 1; i >= 0; i-- {
			nid := nbs[i].ID
			if w.visited[nid] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.opts.SkippedNeighbors++
				continue
			}
			stack = append(stack, frame{id: nid, depth: f.depth + 1, parent: f.id})
		}
	}
}
