package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/birips/bfs"
	"github.com/katalvlaran/birips/core"
)

// buildGraph adds every pair in edges with unit weight.
func buildGraph(t *testing.T, vertices []int, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range vertices {
		if err := g.AddVertex(v); err != nil {
			t.Fatalf("AddVertex(%d): %v", v, err)
		}
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e[0], e[1], 1); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := buildGraph(t, []int{0}, nil)
	if _, err := bfs.BFS(g, 7); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.Components(nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("Components(nil): want ErrGraphNil, got %v", err)
	}
}

// TestBFS_CycleAndDepths covers the square 0–1–2–3–0 and checks depths.
func TestBFS_CycleAndDepths(t *testing.T) {
	g := buildGraph(t, nil, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantDepth := map[int]int{0: 0, 1: 1, 3: 1, 2: 2}
	if !reflect.DeepEqual(res.Depth, wantDepth) {
		t.Errorf("Depth = %v; want %v", res.Depth, wantDepth)
	}
	path, err := res.PathTo(2)
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(2) = %v; want %v", path, want)
	}
}

// TestBFS_MaxDepthAndHooks limits a path graph and collects visits.
func TestBFS_MaxDepthAndHooks(t *testing.T) {
	g := buildGraph(t, nil, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	var visited []int
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2), bfs.WithOnVisit(func(id, _ int) error {
		visited = append(visited, id)
		return nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(visited, want) || !reflect.DeepEqual(res.Order, want) {
		t.Errorf("visited = %v, Order = %v; want %v", visited, res.Order, want)
	}
	if _, err := res.PathTo(3); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("PathTo beyond depth: want ErrStartVertexNotFound, got %v", err)
	}

	stop := errors.New("stop")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("hook error: want stop, got %v", err)
	}
}

// TestBFS_Cancel aborts on a done context.
func TestBFS_Cancel(t *testing.T) {
	g := buildGraph(t, nil, [][2]int{{0, 1}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestComponents checks ordering and the cycle-space dimension.
func TestComponents(t *testing.T) {
	// triangle 0-1-2, edge 5-6, isolated 9, square 10-11-12-13
	g := buildGraph(t, []int{9}, [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{6, 5},
		{10, 11}, {11, 12}, {12, 13}, {13, 10},
	})
	comps, err := bfs.Components(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]int{{0, 1, 2}, {5, 6}, {9}, {10, 11, 13, 12}}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("Components = %v; want %v", comps, want)
	}

	rank, err := bfs.CycleRank(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 8 edges − 10 vertices + 4 components
	if rank != 2 {
		t.Errorf("CycleRank = %d; want 2", rank)
	}

	empty, err := bfs.CycleRank(core.NewGraph())
	if err != nil || empty != 0 {
		t.Errorf("CycleRank(empty) = %d, %v; want 0, nil", empty, err)
	}
}
