// Package bfs provides breadth-first traversal over a core.Graph,
// returning the level-order visit sequence.
//
// Neighbors are explored in road-list order, which core.Graph keeps in
// reverse insertion order; the resulting visit order is deterministic and
// callers may depend on it.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/citynav/core"
)

// queueItem pairs a city array slot with its BFS depth.
type queueItem struct {
	index int
	depth int
}

// walker encapsulates mutable BFS state for a single traversal.
// All scratch state is allocated per call and released when BFS returns.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited []bool // by city array slot
	res     *Result
}

// BFS runs breadth-first traversal on g starting from startID, applying any
// number of functional Options. Each city is visited at most once.
//
// Returns ErrGraphNil or ErrStartCityNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any error returned by the OnVisit hook.
// Complexity: O(V² ) worst case (each neighbor lookup is a linear ID scan),
// O(V + E) queue work.
func BFS(g *core.Graph, startID int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and surface any invalid one immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	startIdx := g.CityIndex(startID)
	if startIdx == -1 {
		return nil, ErrStartCityNotFound
	}

	n := g.CityCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order: make([]int, 0, n),
			Depth: make(map[int]int, n),
		},
	}

	// Seed with the start city and run the main loop.
	w.enqueue(startIdx, 0)

	return w.res, w.loop()
}

// enqueue marks the slot visited and appends it to the queue.
func (w *walker) enqueue(index, depth int) {
	w.visited[index] = true
	w.queue = append(w.queue, queueItem{index: index, depth: depth})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the city in Order and Depth and fires the OnVisit hook.
func (w *walker) visit(item queueItem) error {
	id := w.graph.CityIDAt(item.index)
	w.res.Order = append(w.res.Order, id)
	w.res.Depth[id] = item.depth
	if err := w.opts.OnVisit(id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit hook for city %d: %w", id, err)
	}

	return nil
}

// enqueueNeighbors walks the city's road list in storage order and enqueues
// every unseen destination, honoring MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}

	city := w.graph.CityAt(item.index)
	for _, road := range city.Roads() {
		destIdx := w.graph.CityIndex(road.To)
		if destIdx == -1 || w.visited[destIdx] {
			continue
		}
		w.enqueue(destIdx, nextDepth)
	}
}
