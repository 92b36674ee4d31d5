// Package dfs implements depth-first pre-order traversal over a core.Graph.
//
// DFS visits a city, then recurses into each unvisited neighbor in road-list
// order (reverse insertion order, as kept by core.Graph) before backtracking.
// Recursion depth is bounded by the city count.
//
// Complexity:
//
//   - Time:   O(V²) worst case (each neighbor lookup is a linear ID scan).
//   - Memory: O(V) for the visited flags and the recursion stack.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/citynav/core"
)

// walker encapsulates mutable DFS state for a single traversal.
type walker struct {
	graph   *core.Graph
	opts    Options
	visited []bool // by city array slot
	res     *Result
}

// DFS performs depth-first pre-order traversal on g starting from startID.
// Returns ErrGraphNil or ErrStartCityNotFound for invalid input, the context
// error on cancellation, or any error returned by the OnVisit hook.
func DFS(g *core.Graph, startID int, opts ...Option) (*Result, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Verify the start city.
	startIdx := g.CityIndex(startID)
	if startIdx == -1 {
		return nil, ErrStartCityNotFound
	}

	// 4. Initialize per-call scratch state with capacity hints.
	n := g.CityCount()
	w := &walker{
		graph:   g,
		opts:    o,
		visited: make([]bool, n),
		res:     &Result{Order: make([]int, 0, n)},
	}

	// 5. Traverse.
	if err := w.traverse(startIdx, 0); err != nil {
		return nil, err
	}

	return w.res, nil
}

// traverse visits the city at the given array slot, then recurses into each
// unvisited neighbor in road-list order.
func (w *walker) traverse(index, depth int) error {
	// Cancellation check, once per visit.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// Mark visited and record pre-order.
	w.visited[index] = true
	id := w.graph.CityIDAt(index)
	w.res.Order = append(w.res.Order, id)

	if err := w.opts.OnVisit(id, depth); err != nil {
		return fmt.Errorf("dfs: OnVisit hook for city %d: %w", id, err)
	}

	// Recurse into unvisited neighbors, road-list order.
	city := w.graph.CityAt(index)
	for _, road := range city.Roads() {
		destIdx := w.graph.CityIndex(road.To)
		if destIdx == -1 || w.visited[destIdx] {
			continue
		}
		if err := w.traverse(destIdx, depth+1); err != nil {
			return err
		}
	}

	return nil
}
