package bfs_test

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/genregraph/bfs"
	"github.com/katalvlaran/genregraph/core"
)

// chain builds v0–v1–…–v(n-1): consecutive artists share exactly one genre.
func chain(t testing.TB, n int) *core.Graph {
	t.Helper()
	records := make([]core.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, core.Record{
			ID:         fmt.Sprintf("v%d", i),
			Categories: []string{fmt.Sprintf("g%d", i), fmt.Sprintf("g%d", i+1)},
			Length:     1,
		})
	}
	g, err := core.Build(records)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return g
}

// triangle builds A, B, C all sharing genre "t" (every pair weight 1).
func triangle(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.Build([]core.Record{
		{ID: "A", Categories: []string{"t"}, Length: 1},
		{ID: "B", Categories: []string{"t"}, Length: 1},
		{ID: "C", Categories: []string{"t"}, Length: 1},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := chain(t, 2)
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, "v0", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) ||
		!strings.Contains(err.Error(), "MaxDepth cannot be negative (-1)") {
		t.Errorf("negative depth: want ErrOptionViolation with context, got %v", err)
	}
}

// TestBFS_ChainOrderAndDepth covers order, depths and parents on a chain.
func TestBFS_ChainOrderAndDepth(t *testing.T) {
	g := chain(t, 4)
	res, err := bfs.BFS(g, "v0")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"v0", "v1", "v2", "v3"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for i := 0; i < 4; i++ {
		if d := res.Depth[fmt.Sprintf("v%d", i)]; d != i {
			t.Errorf("Depth[v%d] = %d; want %d", i, d, i)
		}
	}
	path, err := res.PathTo("v3")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"v0", "v1", "v2", "v3"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(v3) = %v; want %v", path, want)
	}
}

// TestBFS_MaxDepth checks the inclusive expansion boundary.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(t, 4)

	// depth 0: only v0 expanded; v1 is stepped to but not enqueued
	var steps []string
	res, err := bfs.BFS(g, "v0",
		bfs.WithMaxDepth(0),
		bfs.WithOnEdge(func(s bfs.Step) { steps = append(steps, s.From+">"+s.To) }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"v0"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth=0 Order = %v; want %v", res.Order, want)
	}
	if want := []string{"v0>v1"}; !reflect.DeepEqual(steps, want) {
		t.Errorf("MaxDepth=0 steps = %v; want %v", steps, want)
	}

	// depth 1: v0 and v1 expanded, v2 stepped to only
	steps = nil
	res, _ = bfs.BFS(g, "v0",
		bfs.WithMaxDepth(1),
		bfs.WithOnEdge(func(s bfs.Step) { steps = append(steps, s.From+">"+s.To) }),
	)
	if want := []string{"v0", "v1"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth=1 Order = %v; want %v", res.Order, want)
	}
	if want := []string{"v0>v1", "v1>v0", "v1>v2"}; !reflect.DeepEqual(steps, want) {
		t.Errorf("MaxDepth=1 steps = %v; want %v", steps, want)
	}

	// large depth: full traversal
	res, _ = bfs.BFS(g, "v0", bfs.WithMaxDepth(10))
	if len(res.Order) != 4 {
		t.Errorf("MaxDepth=10 Order = %v; want 4 vertices", res.Order)
	}
}

// TestBFS_OnEdgeReportsSeenSteps ensures steps to visited vertices are reported once per direction.
func TestBFS_OnEdgeReportsSeenSteps(t *testing.T) {
	g := triangle(t)

	var all, seen int
	var depths []int
	_, err := bfs.BFS(g, "A", bfs.WithOnEdge(func(s bfs.Step) {
		all++
		if s.Seen {
			seen++
		}
		depths = append(depths, s.Depth)
	}))
	if err != nil {
		t.Fatal(err)
	}
	// 3 vertices × 2 adjacency entries = 6 steps; only A→B and A→C discover something new.
	if all != 6 {
		t.Errorf("steps = %d; want 6", all)
	}
	if seen != 4 {
		t.Errorf("seen steps = %d; want 4", seen)
	}
	if want := []int{0, 0, 1, 1, 1, 1}; !reflect.DeepEqual(depths, want) {
		t.Errorf("step depths = %v; want %v", depths, want)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := chain(t, 3)
	res, _ := bfs.BFS(g, "v0",
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "v1" && nbr == "v2")
		}),
	)
	if want := []string{"v0", "v1"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_ParallelEntriesDedup ensures parallel entries report two steps but enqueue once.
func TestBFS_ParallelEntriesDedup(t *testing.T) {
	g, err := core.Build([]core.Record{
		{ID: "A", Categories: []string{"x", "y"}, Length: 1},
		{ID: "B", Categories: []string{"x", "y"}, Length: 1},
	}, core.WithWeightPolicy(core.CategoryWeight))
	if err != nil {
		t.Fatal(err)
	}
	var fromA int
	res, _ := bfs.BFS(g, "A", bfs.WithOnEdge(func(s bfs.Step) {
		if s.From == "A" {
			fromA++
		}
	}))
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if fromA != 2 {
		t.Errorf("steps from A = %d; want 2", fromA)
	}
}

// TestBFS_OnVisitError aborts traversal.
func TestBFS_OnVisitError(t *testing.T) {
	g := chain(t, 3)
	stop := errors.New("stop")
	_, err := bfs.BFS(g, "v0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "v1" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want stop error, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), `OnVisit error at "v1"`) {
		t.Errorf("want vertex context in %v", err)
	}
}

// TestBFS_PathTo covers unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g, _ := core.Build([]core.Record{
		{ID: "X", Categories: []string{"a"}, Length: 1},
		{ID: "Y", Categories: []string{"b"}, Length: 1},
	})
	res, _ := bfs.BFS(g, "X")
	if path, _ := res.PathTo("X"); !reflect.DeepEqual(path, []string{"X"}) {
		t.Errorf("PathTo start: got %v; want [X]", path)
	}
	_, err := res.PathTo("Y")
	if err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_ConcurrentSafety ensures concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := chain(t, 50)
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() { _, err := bfs.BFS(g, "v0"); errs <- err }()
	}
	for i := 0; i < 4; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
