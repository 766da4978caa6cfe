package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/peertopo/bfs"
	"github.com/katalvlaran/peertopo/core"
)

// square returns the 4-cycle A–B–C–D–A.
func square() *core.Adjacency {
	return core.BuildAdjacency(
		[]string{"A", "B", "C", "D"},
		[]core.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}, {From: "C", To: "D"}, {From: "D", To: "A"}},
	)
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	adj := core.BuildAdjacency([]string{"A"}, nil)
	if _, err := bfs.BFS(adj, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(adj, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-node graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	res, err := bfs.BFS(core.BuildAdjacency([]string{"A"}, nil), "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
}

// TestCycleAndDepths covers a simple cycle and checks layering.
func TestCycleAndDepths(t *testing.T) {
	res, err := bfs.BFS(square(), "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for id, want := range map[string]int{"A": 0, "B": 1, "D": 1, "C": 2} {
		if got := res.Depth[id]; got != want {
			t.Errorf("Depth[%s] = %d; want %d", id, got, want)
		}
	}
	if _, ok := res.Parent["A"]; ok {
		t.Errorf("start node must have no parent")
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive and zero (no limit) depths.
func TestBFS_MaxDepth(t *testing.T) {
	adj := core.BuildAdjacency([]string{"A", "B", "C"}, []core.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}})
	if res, _ := bfs.BFS(adj, "A", bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	if res, _ := bfs.BFS(adj, "A", bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain links.
func TestBFS_FilterNeighbor(t *testing.T) {
	adj := core.BuildAdjacency([]string{"A", "B", "C"}, []core.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}})
	res, _ := bfs.BFS(adj, "A", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "B" && nbr == "C")
	}))
	if !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("filtered: got %v; want [A B]", res.Order)
	}
}

// TestBFS_OnVisitError checks hook errors abort the traversal and are wrapped.
func TestBFS_OnVisitError(t *testing.T) {
	boom := errors.New("boom")
	res, err := bfs.BFS(square(), "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Fatalf("want wrapped hook error, got %v", err)
	}
	if !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("partial order = %v; want [A B]", res.Order)
	}
}

// TestResult_PathTo covers reconstruction and the unreached case.
func TestResult_PathTo(t *testing.T) {
	res, _ := bfs.BFS(square(), "A")
	if got := res.PathTo("C"); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("PathTo(C) = %v; want [A B C]", got)
	}
	if got := res.PathTo("A"); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("PathTo(A) = %v; want [A]", got)
	}
	if got := res.PathTo("Z"); got != nil {
		t.Errorf("PathTo(Z) = %v; want nil", got)
	}
}
