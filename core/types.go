// Package core defines the central Graph, City, and Road types used by every
// citynav algorithm and collaborator.
//
// A Graph is an ordered, growable collection of cities; each City owns an
// ordered list of outgoing, directed, positively-weighted roads. Roads
// reference their destination by city ID, never by array slot, so internal
// relocation of the city array on growth is always safe.
//
// This file declares City, Road, Graph, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrDuplicateCity  - a city with the given ID already exists.
//	ErrEmptyCityName  - the city name is the empty string.
//	ErrCityNotFound   - a referenced city ID is absent.
//	ErrRoadNotFound   - no road exists for the given (from, to) pair.
//	ErrBadDistance    - road distance is zero or negative.
package core

import "errors"

// MaxCityName bounds the length of a city name in runes. Longer names are
// truncated on insert, matching the bounded-text contract of the data files.
const MaxCityName = 50

// DefaultCapacity is the backing-array capacity used when NewGraph receives a
// non-positive initial capacity.
const DefaultCapacity = 16

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateCity indicates an AddCity call reused a live city ID.
	ErrDuplicateCity = errors.New("core: city ID already exists")

	// ErrEmptyCityName indicates an AddCity call with an empty name.
	ErrEmptyCityName = errors.New("core: city name is empty")

	// ErrCityNotFound indicates an operation referenced a non-existent city.
	ErrCityNotFound = errors.New("core: city not found")

	// ErrRoadNotFound indicates an operation referenced a non-existent road.
	ErrRoadNotFound = errors.New("core: road not found")

	// ErrBadDistance indicates a non-positive road distance.
	ErrBadDistance = errors.New("core: road distance must be positive")
)

// Road is a directed edge from its owning City to the city with ID To.
//
// Roads are identified by their ordered (owner, To) pair: at most one road
// per pair exists at any time, and re-adding updates Distance in place.
type Road struct {
	// To is the destination city ID. It always references a city that
	// existed at the time the road was added.
	To int

	// Distance is the strictly positive road weight, in kilometres.
	Distance int64
}

// City is a graph vertex: identity, display name, 2-D coordinates, and an
// owned ordered list of outgoing roads.
//
// X and Y feed the A* heuristic and any visualization front-end; the core
// algorithms never interpret them otherwise.
type City struct {
	// ID uniquely identifies this City within its Graph.
	ID int

	// Name is the display name, bounded to MaxCityName runes.
	Name string

	// X, Y are integer plane coordinates.
	X, Y int

	// roads is the outgoing edge list, most recently added first.
	roads []Road
}

// Roads returns a copy of the city's outgoing road list.
// The list order is reverse insertion order: the most recently added road
// comes first. Traversal algorithms observe this order, so it is stable.
// Complexity: O(deg).
func (c *City) Roads() []Road {
	out := make([]Road, len(c.roads))
	copy(out, c.roads)

	return out
}

// Graph is the in-memory city network.
//
// It is an ordered slice of City records with amortized doubling growth.
// The Graph exclusively owns its cities, and each City exclusively owns its
// road list; no operation hands out aliases into either.
//
// Graph performs no internal locking: callers must serialize mutation against
// searches of the same Graph.
type Graph struct {
	cities []City
}

// NewGraph creates an empty Graph whose backing array holds initialCapacity
// cities before the first growth. Non-positive values fall back to
// DefaultCapacity rather than failing.
// Complexity: O(1).
func NewGraph(initialCapacity int) *Graph {
	if initialCapacity <= 0 {
		initialCapacity = DefaultCapacity
	}

	return &Graph{cities: make([]City, 0, initialCapacity)}
}
