// Package core: Graph method implementations.
//
// This file provides the CRUD surface of the Graph type defined in types.go:
// city insertion/deletion, road insertion/removal with idempotent weight
// update, and the linear-scan lookups the algorithms build on.
// Every operation either succeeds completely or leaves the Graph untouched.

package core

import (
	"sort"
	"strings"
)

// AddCity appends a new city with the given ID, name, and coordinates.
// Returns ErrDuplicateCity if the ID is already live, ErrEmptyCityName if the
// name is empty. Names longer than MaxCityName runes are truncated.
// Complexity: O(n) for the duplicate scan, O(1) amortized for the append.
func (g *Graph) AddCity(id int, name string, x, y int) error {
	// 1) Validate the name before anything mutates.
	if name == "" {
		return ErrEmptyCityName
	}
	// 2) Reject duplicate IDs: at most one City per ID at any time.
	if g.CityIndex(id) != -1 {
		return ErrDuplicateCity
	}
	// 3) Bound the display name.
	if runes := []rune(name); len(runes) > MaxCityName {
		name = string(runes[:MaxCityName])
	}
	// 4) Append. The slice doubles on overflow; relocation is safe because
	//    roads reference cities by ID, not by slot.
	g.cities = append(g.cities, City{ID: id, Name: name, X: x, Y: y})

	return nil
}

// RemoveCity deletes the city with the given ID and cascades: the city's own
// road list is dropped, every road in every other city targeting the ID is
// unlinked, and the city array is compacted preserving the relative order of
// the remaining cities.
// Returns ErrCityNotFound if the ID is absent.
// Complexity: O(n + E).
func (g *Graph) RemoveCity(id int) error {
	idx := g.CityIndex(id)
	if idx == -1 {
		return ErrCityNotFound
	}

	// 1) Remove every road targeting the doomed city from all other cities.
	for i := range g.cities {
		if i == idx {
			continue
		}
		g.cities[i].roads = dropRoadsTo(g.cities[i].roads, id)
	}

	// 2) Compact: shift subsequent cities left by one slot.
	g.cities[idx].roads = nil
	g.cities = append(g.cities[:idx], g.cities[idx+1:]...)

	return nil
}

// AddRoad inserts a directed road from 'from' to 'to' with the given
// distance. If the road already exists its distance is overwritten in place;
// a new road is prepended to the source city's list, so the list reads in
// reverse insertion order.
// Returns ErrCityNotFound if either endpoint is absent, ErrBadDistance if
// distance <= 0. Validation always precedes linking.
// Complexity: O(n) for the endpoint scans, O(deg) for the duplicate check.
func (g *Graph) AddRoad(from, to int, distance int64) error {
	fromIdx := g.CityIndex(from)
	toIdx := g.CityIndex(to)
	if fromIdx == -1 || toIdx == -1 {
		return ErrCityNotFound
	}
	if distance <= 0 {
		return ErrBadDistance
	}

	// Idempotent update: at most one road per ordered (from, to) pair.
	src := &g.cities[fromIdx]
	for i := range src.roads {
		if src.roads[i].To == to {
			src.roads[i].Distance = distance
			return nil
		}
	}

	// Prepend the new road.
	src.roads = append([]Road{{To: to, Distance: distance}}, src.roads...)

	return nil
}

// RemoveRoad unlinks the road from 'from' to 'to'.
// Returns ErrCityNotFound if the source city is absent, ErrRoadNotFound if no
// such road exists.
// Complexity: O(n + deg).
func (g *Graph) RemoveRoad(from, to int) error {
	fromIdx := g.CityIndex(from)
	if fromIdx == -1 {
		return ErrCityNotFound
	}

	src := &g.cities[fromIdx]
	for i := range src.roads {
		if src.roads[i].To == to {
			src.roads = append(src.roads[:i], src.roads[i+1:]...)
			return nil
		}
	}

	return ErrRoadNotFound
}

// CityIndex returns the array slot of the city with the given ID, or -1 when
// absent. Slots are not stable across RemoveCity; treat the result as
// transient.
// Complexity: O(n) linear scan.
func (g *Graph) CityIndex(id int) int {
	for i := range g.cities {
		if g.cities[i].ID == id {
			return i
		}
	}

	return -1
}

// CityByName returns the ID of the city with exactly the given name, or -1.
// The comparison is case-sensitive.
// Complexity: O(n).
func (g *Graph) CityByName(name string) int {
	for i := range g.cities {
		if g.cities[i].Name == name {
			return g.cities[i].ID
		}
	}

	return -1
}

// HasCity reports whether a city with the given ID exists.
// Complexity: O(n).
func (g *Graph) HasCity(id int) bool {
	return g.CityIndex(id) != -1
}

// City returns a copy of the city with the given ID.
// The copy shares no road storage with the Graph.
// Complexity: O(n + deg).
func (g *Graph) City(id int) (City, bool) {
	idx := g.CityIndex(id)
	if idx == -1 {
		return City{}, false
	}

	c := g.cities[idx]
	c.roads = g.cities[idx].Roads()

	return c, true
}

// CityAt returns a read-only view of the city at the given array slot.
// The returned pointer is invalidated by the next mutation; algorithms use it
// for scan-free access within a single search.
func (g *Graph) CityAt(index int) *City {
	if index < 0 || index >= len(g.cities) {
		return nil
	}

	return &g.cities[index]
}

// CityIDAt returns the ID of the city at the given array slot, or -1.
func (g *Graph) CityIDAt(index int) int {
	if index < 0 || index >= len(g.cities) {
		return -1
	}

	return g.cities[index].ID
}

// CityNameAt returns the name of the city at the given array slot, or "".
func (g *Graph) CityNameAt(index int) string {
	if index < 0 || index >= len(g.cities) {
		return ""
	}

	return g.cities[index].Name
}

// CityName returns the display name for a city ID, or "" when absent.
func (g *Graph) CityName(id int) string {
	return g.CityNameAt(g.CityIndex(id))
}

// Cities returns a snapshot of all cities in storage order.
// Road lists in the snapshot are copies.
// Complexity: O(n + E).
func (g *Graph) Cities() []City {
	out := make([]City, len(g.cities))
	for i := range g.cities {
		out[i] = g.cities[i]
		out[i].roads = g.cities[i].Roads()
	}

	return out
}

// RoadsFrom returns a copy of the outgoing road list of the given city,
// most recently added first.
// Returns ErrCityNotFound when the ID is absent.
func (g *Graph) RoadsFrom(id int) ([]Road, error) {
	idx := g.CityIndex(id)
	if idx == -1 {
		return nil, ErrCityNotFound
	}

	return g.cities[idx].Roads(), nil
}

// CityCount returns the number of cities. O(1).
func (g *Graph) CityCount() int {
	return len(g.cities)
}

// RoadCount returns the total number of roads across all cities. O(n).
func (g *Graph) RoadCount() int {
	var total int
	for i := range g.cities {
		total += len(g.cities[i].roads)
	}

	return total
}

// SortCitiesByName reorders storage alphabetically by city name.
// The sort is stable, so equal names keep their relative order. Road lists
// travel with their cities; nothing else observes storage order except the
// Cities snapshot and the persistence dump.
// Complexity: O(n log n).
func (g *Graph) SortCitiesByName() {
	sort.SliceStable(g.cities, func(i, j int) bool {
		return strings.Compare(g.cities[i].Name, g.cities[j].Name) < 0
	})
}

// dropRoadsTo removes every road targeting dest from the list, in place.
func dropRoadsTo(roads []Road, dest int) []Road {
	kept := roads[:0]
	for _, r := range roads {
		if r.To != dest {
			kept = append(kept, r)
		}
	}

	return kept
}
