package dfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/dfs"
)

// TestDFS_Errors verifies invalid inputs are rejected.
func TestDFS_Errors(t *testing.T) {
	if _, err := dfs.DFS(nil, 1); !errors.Is(err, dfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph(2)
	if _, err := dfs.DFS(g, 99); !errors.Is(err, dfs.ErrStartCityNotFound) {
		t.Errorf("missing start: want ErrStartCityNotFound, got %v", err)
	}
}

// TestDFS_IsolatedCity covers a start city with no outgoing roads.
func TestDFS_IsolatedCity(t *testing.T) {
	g := core.NewGraph(1)
	_ = g.AddCity(5, "Lone", 0, 0)

	res, err := dfs.DFS(g, 5)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{5}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestDFS_PreOrderDepthFirst checks that DFS exhausts a branch before
// backtracking, honoring road-list (reverse insertion) order.
func TestDFS_PreOrderDepthFirst(t *testing.T) {
	// 1 → {2, 3} (3 first, added last); 2 → 4; 3 → 5
	g := core.NewGraph(5)
	for id := 1; id <= 5; id++ {
		_ = g.AddCity(id, string(rune('A'+id-1)), 0, 0)
	}
	_ = g.AddRoad(1, 2, 1)
	_ = g.AddRoad(1, 3, 1)
	_ = g.AddRoad(2, 4, 1)
	_ = g.AddRoad(3, 5, 1)

	res, err := dfs.DFS(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Road list of 1 reads [3, 2], so branch 3 is exhausted first.
	if want := []int{1, 3, 5, 2, 4}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestDFS_VisitsOnceOnCycle terminates on cyclic graphs, visiting each city
// exactly once.
func TestDFS_VisitsOnceOnCycle(t *testing.T) {
	// 1 → 2 → 3 → 1
	g := core.NewGraph(3)
	for id := 1; id <= 3; id++ {
		_ = g.AddCity(id, string(rune('A'+id-1)), 0, 0)
	}
	_ = g.AddRoad(1, 2, 1)
	_ = g.AddRoad(2, 3, 1)
	_ = g.AddRoad(3, 1, 1)

	res, err := dfs.DFS(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestDFS_OnVisitHook sees every city at its depth, and its error aborts.
func TestDFS_OnVisitHook(t *testing.T) {
	g := core.NewGraph(2)
	_ = g.AddCity(1, "A", 0, 0)
	_ = g.AddCity(2, "B", 0, 0)
	_ = g.AddRoad(1, 2, 1)

	depths := map[int]int{}
	res, err := dfs.DFS(g, 1, dfs.WithOnVisit(func(id, depth int) error {
		depths[id] = depth
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 2 || depths[1] != 0 || depths[2] != 1 {
		t.Errorf("depths = %v, order = %v", depths, res.Order)
	}

	boom := errors.New("boom")
	_, err = dfs.DFS(g, 1, dfs.WithOnVisit(func(id, depth int) error { return boom }))
	if !errors.Is(err, boom) {
		t.Errorf("want hook error propagated, got %v", err)
	}
}

// TestDFS_ContextCancel aborts the walk when the context is done.
func TestDFS_ContextCancel(t *testing.T) {
	g := core.NewGraph(1)
	_ = g.AddCity(1, "A", 0, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := dfs.DFS(g, 1, dfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
