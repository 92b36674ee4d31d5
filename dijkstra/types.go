// Package dijkstra defines error sentinels for the single-pair
// shortest-path search.
//
// Errors (sentinel):
//
//	– ErrGraphNil     if the provided graph pointer is nil.
//	– ErrCityNotFound if the source or destination city ID is absent.
//
// Note that an unreachable destination is NOT an error: the search returns
// an empty core.PathResult and a nil error, because "no path" is a normal,
// expected outcome of a well-formed query.
package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrCityNotFound indicates that the source or destination city does
	// not exist in the provided graph.
	ErrCityNotFound = errors.New("dijkstra: source or destination city not found")
)
