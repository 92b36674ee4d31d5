package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynav/core"
)

func buildPair(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(4)
	require.NoError(t, g.AddCity(1, "Amsterdam", 0, 0))
	require.NoError(t, g.AddCity(2, "Rotterdam", 3, 4))
	require.NoError(t, g.AddRoad(1, 2, 57))
	return g
}

func TestGraph_ListsCitiesAndRoads(t *testing.T) {
	g := buildPair(t)
	var buf bytes.Buffer

	require.NoError(t, Graph(&buf, g))

	out := buf.String()
	assert.Contains(t, out, "City network: 2 cities, 1 roads")
	assert.Contains(t, out, "Amsterdam (ID 1) at (0, 0)")
	assert.Contains(t, out, "→ Rotterdam (57 km)")
	assert.Contains(t, out, "roads: none")
}

func TestGraph_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Graph(&buf, core.NewGraph(0)))
	assert.Contains(t, buf.String(), "(no cities)")
}

func TestCity_UnknownID(t *testing.T) {
	g := buildPair(t)
	var buf bytes.Buffer

	err := City(&buf, g, 99)
	assert.True(t, errors.Is(err, core.ErrCityNotFound))
	assert.Zero(t, buf.Len())
}

func TestCity_SingleBlock(t *testing.T) {
	g := buildPair(t)
	var buf bytes.Buffer

	require.NoError(t, City(&buf, g, 1))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Amsterdam (ID 1) at (0, 0)\n"))
	assert.Contains(t, out, "→ Rotterdam (57 km)")
	assert.NotContains(t, out, "Rotterdam (ID 2)")
}

func TestTraversal_ArrowJoined(t *testing.T) {
	g := buildPair(t)
	var buf bytes.Buffer

	require.NoError(t, Traversal(&buf, g, []int{1, 2}))
	assert.Equal(t, "Amsterdam → Rotterdam\n", buf.String())
}

func TestTraversal_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Traversal(&buf, core.NewGraph(0), nil))
	assert.Equal(t, "(empty traversal)\n", buf.String())
}

func TestPath_WithDistance(t *testing.T) {
	g := buildPair(t)
	var buf bytes.Buffer

	pr := &core.PathResult{CityIDs: []int{1, 2}, TotalDistance: 57}
	require.NoError(t, Path(&buf, g, pr))
	assert.Equal(t, "Total distance: 57 km\nAmsterdam → Rotterdam\n", buf.String())
}

func TestPath_NoPath(t *testing.T) {
	g := buildPair(t)
	var buf bytes.Buffer

	require.NoError(t, Path(&buf, g, &core.PathResult{}))
	assert.Equal(t, "No path exists between these cities.\n", buf.String())
}

func TestNilGraphRejected(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Graph(&buf, nil))
	assert.Error(t, City(&buf, nil, 1))
	assert.Error(t, Traversal(&buf, nil, []int{1}))
	assert.Error(t, Path(&buf, nil, &core.PathResult{}))
}
