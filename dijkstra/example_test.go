// Package dijkstra_test demonstrates the single-pair shortest-path search.
// Each example is runnable via "go test -run Example".
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/dijkstra"
)

// ExampleDijkstra shows that a cheaper two-hop detour beats a direct road.
// Complexity: O((V+E) log V).
func ExampleDijkstra() {
	// 1) Build a triangle: the direct road 1→3 costs 20, the detour via 2 costs 10.
	g := core.NewGraph(4)
	g.AddCity(1, "Amsterdam", 0, 0)
	g.AddCity(2, "Rotterdam", 3, 4)
	g.AddCity(3, "Utrecht", 6, 8)
	g.AddRoad(1, 2, 5)
	g.AddRoad(2, 3, 5)
	g.AddRoad(1, 3, 20)

	// 2) Query the shortest path from 1 to 3.
	pr, err := dijkstra.Dijkstra(g, 1, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The detour wins: 1 → 2 → 3 at 10 km total.
	fmt.Printf("path=%v distance=%d\n", pr.CityIDs, pr.TotalDistance)
	// Output: path=[1 2 3] distance=10
}

// ExampleDijkstra_noPath shows that an unreachable destination is a normal
// outcome, not an error.
func ExampleDijkstra_noPath() {
	g := core.NewGraph(2)
	g.AddCity(1, "Amsterdam", 0, 0)
	g.AddCity(2, "Rotterdam", 3, 4)
	// No roads at all.

	pr, err := dijkstra.Dijkstra(g, 1, 2)
	fmt.Printf("empty=%v err=%v\n", pr.Empty(), err)
	// Output: empty=true err=<nil>
}
