// Package dijkstra implements Dijkstra's single-pair shortest-path search
// over a core.Graph with non-negative road distances.
//
// The search processes cities in order of increasing distance from the
// source using the indexed min-heap from package minheap, relaxing outgoing
// roads with true decrease-key, and stops the moment the destination is
// EXTRACTED from the heap (not merely discovered). With positive weights
// every remaining relaxation could only increase distances, so the early
// exit does not change the output, only how much of the graph is explored.
//
// Complexity:
//
//   - Time:  O((V + E) · (log V + V)) — each heap operation is O(log V) and
//     each road relaxation performs a linear city-ID scan.
//   - Space: O(V) for the distance and parent arrays plus the heap.
package dijkstra

import (
	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/minheap"
)

// Dijkstra computes the shortest path from srcID to destID in g.
//
// Returns:
//
//   - A core.PathResult listing the city IDs source → destination and the
//     total distance. An unreachable destination yields an EMPTY result and
//     a nil error; src == dest yields the single-city path with distance 0.
//   - ErrGraphNil or ErrCityNotFound for invalid inputs.
//
// The search allocates all scratch state per call and retains nothing.
func Dijkstra(g *core.Graph, srcID, destID int) (*core.PathResult, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrGraphNil
	}
	srcIdx := g.CityIndex(srcID)
	destIdx := g.CityIndex(destID)
	if srcIdx == -1 || destIdx == -1 {
		return nil, ErrCityNotFound
	}

	// 2) Prepare per-search state and run.
	r := newRunner(g, srcIdx, destIdx)
	r.process()

	// 3) Reconstruct the path (empty when the destination stayed at Inf).
	return r.buildResult(), nil
}

// runner holds the mutable state for a single Dijkstra execution.
// Distances and parents are indexed by city array slot; the heap is keyed by
// city ID so that decrease-key survives any slot arithmetic.
type runner struct {
	g       *core.Graph
	srcIdx  int
	destIdx int
	dist    []int64 // slot → best known distance from source
	parent  []int   // slot → predecessor slot on the shortest path, -1 = none
	heap    *minheap.Heap
}

// newRunner initializes distances, parents, and the heap, pre-inserting
// every city keyed by its current distance (primary == secondary: there is
// no heuristic in pure shortest-path).
func newRunner(g *core.Graph, srcIdx, destIdx int) *runner {
	n := g.CityCount()
	r := &runner{
		g:       g,
		srcIdx:  srcIdx,
		destIdx: destIdx,
		dist:    make([]int64, n),
		parent:  make([]int, n),
		heap:    minheap.New(n),
	}

	for i := 0; i < n; i++ {
		r.dist[i] = minheap.Inf
		r.parent[i] = -1
	}
	r.dist[srcIdx] = 0

	for i := 0; i < n; i++ {
		r.heap.Insert(g.CityIDAt(i), r.dist[i], r.dist[i])
	}

	return r
}

// process runs the main loop: extract the minimum, stop if it is the
// destination, otherwise relax its outgoing roads.
func (r *runner) process() {
	for !r.heap.IsEmpty() {
		node := r.heap.ExtractMin()
		u := r.g.CityIndex(node.CityID)

		// Early exit at the exact moment the destination is extracted.
		if u == r.destIdx {
			break
		}

		r.relax(u)
	}
}

// relax attempts to improve the distance of every road target of the city at
// slot u. The Inf guard keeps unreached cities from producing overflowing
// candidate distances.
func (r *runner) relax(u int) {
	if r.dist[u] == minheap.Inf {
		return
	}

	city := r.g.CityAt(u)
	for _, road := range city.Roads() {
		v := r.g.CityIndex(road.To)
		if v == -1 {
			continue
		}

		if newDist := r.dist[u] + road.Distance; newDist < r.dist[v] {
			r.dist[v] = newDist
			r.parent[v] = u
			r.heap.DecreaseKey(road.To, newDist, newDist)
		}
	}
}

// buildResult walks the parent chain back from the destination (the source
// has parent -1), then reverses once into source → destination order.
func (r *runner) buildResult() *core.PathResult {
	result := &core.PathResult{}

	if r.dist[r.destIdx] == minheap.Inf {
		return result // no path: empty result, by contract not an error
	}

	result.TotalDistance = r.dist[r.destIdx]
	for cur := r.destIdx; cur != -1; cur = r.parent[cur] {
		result.Append(r.g.CityIDAt(cur))
	}
	result.Reverse()

	return result
}
