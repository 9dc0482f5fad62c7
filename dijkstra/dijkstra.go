// Package dijkstra implements single-source shortest distances on the
// immutable artist graph.
//
// It processes vertices in order of increasing distance using a min-heap
// priority queue, relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalised at most once.
//   - Each successful relaxation pushes one heap entry (lazy decrease-key).
//   - Space: O(V + E)
//   - O(V) for the distance and visited maps.
//   - O(E) worst-case entries in the heap.
//
// Notes on implementation choices:
//
//   - Only reachable vertices appear in the result; there is no +Inf sentinel.
//   - The heap orders by cost alone. Equal-cost vertices pop in unspecified order.
//   - Parallel adjacency entries (CategoryWeight policy) are relaxed independently,
//     so the cheapest one wins.
package dijkstra

import (
	"container/heap"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/genregraph/core"
)

// ShortestDistances returns the minimum cumulative edge weight from source to
// every vertex reachable from it. dist[source] is always 0.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrBadMaxDistance).
//  3. source must be non-empty (ErrEmptySource).
//  4. g must contain source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestDistances(g *core.Graph, source string, opts ...Option) (map[string]float64, error) {
	// 1) Validate inputs before any work is done.
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	if !g.HasNode(source) {
		return nil, errors.Wrapf(ErrVertexNotFound, "%q", source)
	}

	// 2) Run the search with private state.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64),
		visited: make(map[string]bool),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *core.Graph        // input graph; read-only
	options Options            // MaxDistance cap
	dist    map[string]float64 // best known distance per reached vertex
	visited map[string]bool    // finalised vertices
	pq      nodePQ             // lazy min-heap
}

// init seeds the source with distance zero.
func (r *runner) init(source string) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process pops the closest unfinished vertex until the heap drains.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Stale entry: a shorter distance was already finalised.
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true

		if err := r.relax(item.id, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u string, du float64) error {
	var err error
	r.g.ForEachNeighbor(u, func(n core.Neighbor) bool {
		if n.Weight < 0 {
			err = errors.Wrapf(ErrNegativeWeight, "edge %s→%s weight=%v", u, n.ID, n.Weight)
			return false
		}
		if r.visited[n.ID] {
			return true
		}

		next := du + n.Weight
		if next > r.options.MaxDistance {
			return true
		}
		if cur, seen := r.dist[n.ID]; seen && next >= cur {
			return true
		}

		r.dist[n.ID] = next
		heap.Push(&r.pq, &nodeItem{id: n.ID, dist: next})

		return true
	})

	return err
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string  // vertex ID
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist only.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
