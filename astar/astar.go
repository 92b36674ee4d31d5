// Package astar implements the A* single-pair shortest-path search over a
// core.Graph, guided by the Euclidean coordinate heuristic.
//
// Unlike Dijkstra, A* does not pre-insert every city: only the source enters
// the heap, and a node is "discovered" exactly when the heap's index knows
// it. An unreachable city may never be discovered at all, which is the
// expected behavior of sparse exploration. Each heap entry is ordered by the
// f-score (g-score plus heuristic estimate to the destination); with an
// admissible heuristic the first extraction of the destination is optimal.
//
// Complexity:
//
//   - Time:  O((V + E) · (log V + V)) worst case; typically far fewer
//     extractions than Dijkstra on spatial graphs.
//   - Space: O(V).
package astar

import (
	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/minheap"
)

// Astar computes the shortest path from srcID to destID in g, using the
// package Heuristic to guide exploration toward the destination.
//
// Result contract is identical to dijkstra.Dijkstra: empty result + nil
// error for an unreachable destination, single-city path for src == dest,
// ErrGraphNil / ErrCityNotFound for invalid inputs. With an admissible
// heuristic the total distance equals Dijkstra's.
func Astar(g *core.Graph, srcID, destID int) (*core.PathResult, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrGraphNil
	}
	srcIdx := g.CityIndex(srcID)
	destIdx := g.CityIndex(destID)
	if srcIdx == -1 || destIdx == -1 {
		return nil, ErrCityNotFound
	}

	// 2) Prepare scratch state and run.
	r := newRunner(g, srcIdx, destIdx)
	r.process()

	// 3) Reconstruct.
	return r.buildResult(), nil
}

// runner holds the mutable state of a single A* execution.
type runner struct {
	g       *core.Graph
	srcIdx  int
	destIdx int
	dest    *core.City
	gScore  []int64 // slot → accumulated distance from source
	fScore  []int64 // slot → gScore + heuristic-to-destination
	parent  []int   // slot → predecessor slot, -1 = none
	heap    *minheap.Heap
}

// newRunner initializes scores and seeds the heap with the source only.
func newRunner(g *core.Graph, srcIdx, destIdx int) *runner {
	n := g.CityCount()
	r := &runner{
		g:       g,
		srcIdx:  srcIdx,
		destIdx: destIdx,
		dest:    g.CityAt(destIdx),
		gScore:  make([]int64, n),
		fScore:  make([]int64, n),
		parent:  make([]int, n),
		heap:    minheap.New(n),
	}

	for i := 0; i < n; i++ {
		r.gScore[i] = minheap.Inf
		r.fScore[i] = minheap.Inf
		r.parent[i] = -1
	}
	r.gScore[srcIdx] = 0
	r.fScore[srcIdx] = Heuristic(g.CityAt(srcIdx), r.dest)

	r.heap.Insert(g.CityIDAt(srcIdx), r.gScore[srcIdx], r.fScore[srcIdx])

	return r
}

// process extracts the most promising discovered city and expands it, until
// the destination is extracted or the frontier empties.
func (r *runner) process() {
	for !r.heap.IsEmpty() {
		node := r.heap.ExtractMin()
		u := r.g.CityIndex(node.CityID)

		if u == r.destIdx {
			break // first extraction of the destination is optimal
		}

		r.expand(u)
	}
}

// expand relaxes every outgoing road of the city at slot u. An improved
// neighbor is inserted when never discovered (absent from the heap index)
// and decrease-keyed when already on the frontier.
func (r *runner) expand(u int) {
	city := r.g.CityAt(u)
	for _, road := range city.Roads() {
		v := r.g.CityIndex(road.To)
		if v == -1 {
			continue
		}

		tentative := r.gScore[u] + road.Distance
		if tentative >= r.gScore[v] {
			continue
		}

		r.parent[v] = u
		r.gScore[v] = tentative
		r.fScore[v] = tentative + Heuristic(r.g.CityAt(v), r.dest)

		if r.heap.Contains(road.To) {
			r.heap.DecreaseKey(road.To, r.gScore[v], r.fScore[v])
		} else {
			r.heap.Insert(road.To, r.gScore[v], r.fScore[v])
		}
	}
}

// buildResult mirrors dijkstra's reconstruction: back-walk parents from the
// destination, reverse once, empty result when never reached.
func (r *runner) buildResult() *core.PathResult {
	result := &core.PathResult{}

	if r.gScore[r.destIdx] == minheap.Inf {
		return result
	}

	result.TotalDistance = r.gScore[r.destIdx]
	for cur := r.destIdx; cur != -1; cur = r.parent[cur] {
		result.Append(r.g.CityIDAt(cur))
	}
	result.Reverse()

	return result
}
