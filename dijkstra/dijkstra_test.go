// Package dijkstra_test validates shortest-path correctness: validation
// errors, optimal route selection, the "no path" empty result, the
// self-path, and the cascade interaction with city deletion.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/dijkstra"
)

// buildTriangle builds the scenario graph:
//
//	1:"A"(0,0), 2:"B"(3,4), 3:"C"(10,10)
//	roads 1→2:5, 2→3:5, 1→3:20
//
// Shortest 1⇝3 is [1,2,3] with distance 10, beating the direct road.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(4)
	require.NoError(t, g.AddCity(1, "A", 0, 0))
	require.NoError(t, g.AddCity(2, "B", 3, 4))
	require.NoError(t, g.AddCity(3, "C", 10, 10))
	require.NoError(t, g.AddRoad(1, 2, 5))
	require.NoError(t, g.AddRoad(2, 3, 5))
	require.NoError(t, g.AddRoad(1, 3, 20))

	return g
}

func TestDijkstra_Validation(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 1, 2)
	assert.ErrorIs(t, err, dijkstra.ErrGraphNil)

	g := buildTriangle(t)
	_, err = dijkstra.Dijkstra(g, 99, 3)
	assert.ErrorIs(t, err, dijkstra.ErrCityNotFound)
	_, err = dijkstra.Dijkstra(g, 1, 99)
	assert.ErrorIs(t, err, dijkstra.ErrCityNotFound)
}

func TestDijkstra_PrefersCheaperDetour(t *testing.T) {
	g := buildTriangle(t)

	res, err := dijkstra.Dijkstra(g, 1, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, res.CityIDs)
	assert.Equal(t, int64(10), res.TotalDistance)
}

func TestDijkstra_DirectWhenCheaper(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddRoad(1, 3, 8)) // idempotent update: direct is now best

	res, err := dijkstra.Dijkstra(g, 1, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, res.CityIDs)
	assert.Equal(t, int64(8), res.TotalDistance)
}

func TestDijkstra_SelfPath(t *testing.T) {
	// src == dest is a single-city path with distance zero, distinguishable
	// from "no path".
	g := buildTriangle(t)

	res, err := dijkstra.Dijkstra(g, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, []int{2}, res.CityIDs)
	assert.Equal(t, int64(0), res.TotalDistance)
	assert.False(t, res.Empty())
}

func TestDijkstra_NoPathIsEmptyNotError(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddCity(4, "Island", 100, 100))

	res, err := dijkstra.Dijkstra(g, 1, 4)
	require.NoError(t, err, "no-path is a normal outcome, not an error")

	assert.True(t, res.Empty())
	assert.Equal(t, int64(0), res.TotalDistance)
}

func TestDijkstra_DirectedEdgesOnly(t *testing.T) {
	// Roads are one-way: 3 cannot reach 1 through 1→2→3.
	g := buildTriangle(t)

	res, err := dijkstra.Dijkstra(g, 3, 1)
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestDijkstra_LongerChain(t *testing.T) {
	// 1→2→3→4→5 each 1, plus shortcut 1→5:10; chain wins at 4.
	g := core.NewGraph(5)
	for id := 1; id <= 5; id++ {
		require.NoError(t, g.AddCity(id, string(rune('A'+id-1)), id, 0))
	}
	for id := 1; id < 5; id++ {
		require.NoError(t, g.AddRoad(id, id+1, 1))
	}
	require.NoError(t, g.AddRoad(1, 5, 10))

	res, err := dijkstra.Dijkstra(g, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, res.CityIDs)
	assert.Equal(t, int64(4), res.TotalDistance)
}

func TestDijkstra_AfterCityDeletion(t *testing.T) {
	// Deleting the detour city forces the direct road.
	g := buildTriangle(t)
	require.NoError(t, g.RemoveCity(2))

	res, err := dijkstra.Dijkstra(g, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, res.CityIDs)
	assert.Equal(t, int64(20), res.TotalDistance)
}

func TestDijkstra_EqualCostPathsDeterministic(t *testing.T) {
	// Two routes of equal cost: relaxation uses strict <, so the first
	// finalized predecessor wins and repeated runs agree with each other.
	g := core.NewGraph(4)
	for id := 1; id <= 4; id++ {
		require.NoError(t, g.AddCity(id, string(rune('A'+id-1)), 0, 0))
	}
	require.NoError(t, g.AddRoad(1, 2, 1))
	require.NoError(t, g.AddRoad(1, 3, 1))
	require.NoError(t, g.AddRoad(2, 4, 1))
	require.NoError(t, g.AddRoad(3, 4, 1))

	first, err := dijkstra.Dijkstra(g, 1, 4)
	require.NoError(t, err)
	second, err := dijkstra.Dijkstra(g, 1, 4)
	require.NoError(t, err)

	assert.Equal(t, int64(2), first.TotalDistance)
	assert.Equal(t, first.CityIDs, second.CityIDs)
}
