// Package astar defines error sentinels and the heuristic for the
// heuristic-guided shortest-path search.
package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/citynav/core"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrCityNotFound indicates that the source or destination city does
	// not exist in the provided graph.
	ErrCityNotFound = errors.New("astar: source or destination city not found")
)

// Heuristic estimates the remaining distance between two cities as the
// integer (truncated) Euclidean distance between their coordinates.
//
// Optimality precondition: the heuristic must be ADMISSIBLE — it must never
// overestimate the true shortest distance. That holds whenever city
// coordinates are laid out so that every road is at least as long as the
// straight-line distance between its endpoints. The algorithm does not
// check this; callers feeding inflated coordinates void the shortest-path
// guarantee.
func Heuristic(a, b *core.City) int64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return int64(math.Sqrt(dx*dx + dy*dy))
}
