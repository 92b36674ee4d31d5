// Package minheap provides the indexed binary min-heap shared by the
// shortest-path algorithms.
//
// Each entry carries a city ID, a primary score (the g-score: accumulated
// distance from the search source) and a secondary score (the f-score on
// which the heap orders; pure shortest-path searches set it equal to the
// primary). An id→slot index keeps every live entry addressable in O(1),
// which makes DecreaseKey O(log n) without a linear search.
//
// The heap is capacity-bounded: it is sized once per search to the city
// count, Insert silently drops entries past capacity, and ExtractMin on an
// empty heap returns a well-defined sentinel rather than failing.
//
// Complexity:
//
//   - Insert, ExtractMin, DecreaseKey: O(log n)
//   - Contains, IsEmpty, Len:          O(1)
package minheap

import "math"

// None is the sentinel city ID of the node returned by ExtractMin on an
// empty heap.
const None = -1

// Inf is the score carried by the empty-heap sentinel and the conventional
// "unreached" distance used by callers.
const Inf int64 = math.MaxInt64

// Node is a single heap entry.
type Node struct {
	// CityID identifies the entity this entry scores.
	CityID int

	// Distance is the primary score: accumulated distance from the source.
	Distance int64

	// FScore is the secondary score the heap orders on. For Dijkstra it
	// equals Distance; for A* it is Distance plus the heuristic estimate.
	FScore int64
}

// Heap is an indexed binary min-heap over Nodes, ordered by FScore.
//
// The pos map always reflects each live city's current array slot; a missing
// key means "not present". Keeping pos valid across every swap is the load-
// bearing invariant of this type: Insert, ExtractMin, and DecreaseKey all
// update it in lockstep with the node array.
//
// A Heap belongs to exactly one search; it is not safe for concurrent use.
type Heap struct {
	nodes    []Node
	pos      map[int]int // city ID → slot in nodes
	capacity int
}

// New creates an empty heap holding at most capacity entries.
// Non-positive capacities yield a heap that drops every Insert.
func New(capacity int) *Heap {
	if capacity < 0 {
		capacity = 0
	}

	return &Heap{
		nodes:    make([]Node, 0, capacity),
		pos:      make(map[int]int, capacity),
		capacity: capacity,
	}
}

// Len returns the number of live entries.
func (h *Heap) Len() int { return len(h.nodes) }

// IsEmpty reports whether the heap holds no entries.
func (h *Heap) IsEmpty() bool { return len(h.nodes) == 0 }

// Contains reports whether the given city currently has a live entry.
// A* uses this as its discovered-set test.
func (h *Heap) Contains(cityID int) bool {
	_, ok := h.pos[cityID]

	return ok
}

// Insert appends an entry and sifts it up to its heap position.
// Once the heap is at capacity further inserts are silently dropped; callers
// size the heap to the search's city count, so a drop never loses a live
// candidate.
func (h *Heap) Insert(cityID int, distance, fScore int64) {
	if len(h.nodes) >= h.capacity {
		return
	}

	h.nodes = append(h.nodes, Node{CityID: cityID, Distance: distance, FScore: fScore})
	h.pos[cityID] = len(h.nodes) - 1
	h.siftUp(len(h.nodes) - 1)
}

// ExtractMin removes and returns the entry with the minimum FScore.
// On an empty heap it returns the sentinel {None, Inf, Inf}; callers check
// IsEmpty before relying on the result.
func (h *Heap) ExtractMin() Node {
	if len(h.nodes) == 0 {
		return Node{CityID: None, Distance: Inf, FScore: Inf}
	}

	root := h.nodes[0]
	last := len(h.nodes) - 1

	// Move the last entry to the root, shrink, restore heap order.
	delete(h.pos, root.CityID)
	h.nodes[0] = h.nodes[last]
	h.nodes = h.nodes[:last]
	if last > 0 {
		h.pos[h.nodes[0].CityID] = 0
		h.siftDown(0)
	}

	return root
}

// DecreaseKey overwrites both scores of the given city's entry and sifts it
// up. A no-op when the city has no live entry.
//
// Caller contract: the new FScore must not exceed the old one. The operation
// never sifts down, so violating the contract corrupts heap order; the
// shortest-path relaxations only ever lower scores.
func (h *Heap) DecreaseKey(cityID int, newDistance, newFScore int64) {
	i, ok := h.pos[cityID]
	if !ok {
		return
	}

	h.nodes[i].Distance = newDistance
	h.nodes[i].FScore = newFScore
	h.siftUp(i)
}

// siftUp bubbles the entry at slot i toward the root while it beats its
// parent, keeping pos valid on every swap.
func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.nodes[i].FScore >= h.nodes[parent].FScore {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown pushes the entry at slot i toward the leaves while a child beats
// it, keeping pos valid on every swap.
func (h *Heap) siftDown(i int) {
	n := len(h.nodes)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && h.nodes[left].FScore < h.nodes[smallest].FScore {
			smallest = left
		}
		if right < n && h.nodes[right].FScore < h.nodes[smallest].FScore {
			smallest = right
		}
		if smallest == i {
			return
		}

		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges two slots and repoints both index entries.
func (h *Heap) swap(i, j int) {
	h.pos[h.nodes[i].CityID] = j
	h.pos[h.nodes[j].CityID] = i
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
}
