// Command citynav is an interactive terminal front end for the city graph:
// city and road maintenance, traversals, shortest-path queries, and CSV
// persistence.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/citynav/astar"
	"github.com/katalvlaran/citynav/bfs"
	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/dfs"
	"github.com/katalvlaran/citynav/dijkstra"
	"github.com/katalvlaran/citynav/fileio"
	"github.com/katalvlaran/citynav/oplog"
	"github.com/katalvlaran/citynav/render"
)

const menu = `
City Navigation
  1. Insert city
  2. Delete city
  3. Add road
  4. Remove road
  5. Display graph
  6. Shortest path (dijkstra / astar)
  7. Traversal (bfs / dfs)
  8. Search city by name
  9. Sort cities by name
 10. Save graph to files
 11. Quit (saves first)
`

type app struct {
	graph *core.Graph
	ops   *oplog.Logger
	in    *bufio.Scanner
	out   io.Writer

	citiesFile string
	roadsFile  string
}

func main() {
	citiesFile := flag.String("cities", "data/cities.csv", "cities CSV file")
	roadsFile := flag.String("roads", "data/roads.csv", "roads CSV file")
	logFile := flag.String("log", "data/operations.log", "operation log file")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	a := &app{
		graph:      core.NewGraph(core.DefaultCapacity),
		ops:        oplog.New(*logFile),
		in:         bufio.NewScanner(os.Stdin),
		out:        os.Stdout,
		citiesFile: *citiesFile,
		roadsFile:  *roadsFile,
	}

	cities, roads, err := fileio.Load(a.graph, *citiesFile, *roadsFile)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load graph (%v); starting empty.\n", err)
	} else {
		fmt.Fprintf(a.out, "Loaded %d cities and %d roads.\n", cities, roads)
	}

	a.run()
}

func (a *app) run() {
	for {
		fmt.Fprint(a.out, menu, "\nChoice: ")
		choice, ok := a.readInt()
		if !ok {
			return
		}
		if choice == 11 {
			a.save()
			fmt.Fprintln(a.out, "Goodbye.")
			return
		}
		a.dispatch(choice)
	}
}

func (a *app) dispatch(choice int) {
	switch choice {
	case 1:
		a.insertCity()
	case 2:
		a.deleteCity()
	case 3:
		a.addRoad()
	case 4:
		a.removeRoad()
	case 5:
		if err := render.Graph(a.out, a.graph); err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
	case 6:
		a.shortestPath()
	case 7:
		a.traversal()
	case 8:
		a.searchByName()
	case 9:
		a.graph.SortCitiesByName()
		a.ops.Operation("Cities sorted by name")
		fmt.Fprintln(a.out, "Cities sorted.")
	case 10:
		a.save()
	default:
		fmt.Fprintln(a.out, "Invalid choice, enter 1-11.")
	}
}

// readLine returns the next input line; ok is false on EOF.
func (a *app) readLine(prompt string) (string, bool) {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *app) readInt() (int, bool) {
	if !a.in.Scan() {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(a.in.Text()))
	if err != nil {
		fmt.Fprintln(a.out, "Please enter a number.")
		return -1, true
	}
	return n, true
}

func (a *app) promptInt(prompt string) (int, bool) {
	line, ok := a.readLine(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(a.out, "Please enter a number.")
		return 0, false
	}
	return n, true
}

func (a *app) insertCity() {
	id, ok := a.promptInt("City ID: ")
	if !ok {
		return
	}
	name, ok := a.readLine("City name: ")
	if !ok {
		return
	}
	x, ok := a.promptInt("X coordinate: ")
	if !ok {
		return
	}
	y, ok := a.promptInt("Y coordinate: ")
	if !ok {
		return
	}
	if err := a.graph.AddCity(id, name, x, y); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	a.ops.Operation(fmt.Sprintf("City added: %s (ID %d)", name, id))
	fmt.Fprintf(a.out, "City %s added.\n", name)
}

func (a *app) deleteCity() {
	id, ok := a.promptInt("City ID to delete: ")
	if !ok {
		return
	}
	name := a.graph.CityName(id)
	if err := a.graph.RemoveCity(id); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	a.ops.Operation(fmt.Sprintf("City removed: %s (ID %d)", name, id))
	fmt.Fprintf(a.out, "City %d removed, along with every road touching it.\n", id)
}

func (a *app) addRoad() {
	from, ok := a.promptInt("From city ID: ")
	if !ok {
		return
	}
	to, ok := a.promptInt("To city ID: ")
	if !ok {
		return
	}
	dist, ok := a.promptInt("Distance (km): ")
	if !ok {
		return
	}
	if err := a.graph.AddRoad(from, to, int64(dist)); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	a.ops.Operation(fmt.Sprintf("Road added: %d -> %d (%d km)", from, to, dist))
	fmt.Fprintln(a.out, "Road added.")
}

func (a *app) removeRoad() {
	from, ok := a.promptInt("From city ID: ")
	if !ok {
		return
	}
	to, ok := a.promptInt("To city ID: ")
	if !ok {
		return
	}
	if err := a.graph.RemoveRoad(from, to); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	a.ops.Operation(fmt.Sprintf("Road removed: %d -> %d", from, to))
	fmt.Fprintln(a.out, "Road removed.")
}

func (a *app) shortestPath() {
	src, ok := a.promptInt("Source city ID: ")
	if !ok {
		return
	}
	dest, ok := a.promptInt("Destination city ID: ")
	if !ok {
		return
	}
	algo, ok := a.readLine("Algorithm (dijkstra / astar): ")
	if !ok {
		return
	}

	var (
		pr  *core.PathResult
		err error
	)
	switch strings.ToLower(algo) {
	case "astar", "a*":
		pr, err = astar.Astar(a.graph, src, dest)
	case "", "dijkstra":
		pr, err = dijkstra.Dijkstra(a.graph, src, dest)
	default:
		fmt.Fprintf(a.out, "Unknown algorithm %q.\n", algo)
		return
	}
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if err := render.Path(a.out, a.graph, pr); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if !pr.Empty() {
		a.ops.PathQuery(a.graph.CityName(src), a.graph.CityName(dest), pr.TotalDistance)
	}
}

func (a *app) traversal() {
	start, ok := a.promptInt("Start city ID: ")
	if !ok {
		return
	}
	algo, ok := a.readLine("Algorithm (bfs / dfs): ")
	if !ok {
		return
	}

	var (
		order []int
		err   error
	)
	switch strings.ToLower(algo) {
	case "", "bfs":
		var res *bfs.Result
		res, err = bfs.BFS(a.graph, start)
		if res != nil {
			order = res.Order
		}
	case "dfs":
		var res *dfs.Result
		res, err = dfs.DFS(a.graph, start)
		if res != nil {
			order = res.Order
		}
	default:
		fmt.Fprintf(a.out, "Unknown traversal %q.\n", algo)
		return
	}
	if err != nil {
		if errors.Is(err, bfs.ErrStartCityNotFound) || errors.Is(err, dfs.ErrStartCityNotFound) {
			fmt.Fprintln(a.out, "Start city not found.")
			return
		}
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if err := render.Traversal(a.out, a.graph, order); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
}

func (a *app) searchByName() {
	name, ok := a.readLine("City name: ")
	if !ok {
		return
	}
	id := a.graph.CityByName(name)
	if id == -1 {
		fmt.Fprintf(a.out, "No city named %q.\n", name)
		return
	}
	if err := render.City(a.out, a.graph, id); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
}

func (a *app) save() {
	if err := fileio.Save(a.graph, a.citiesFile, a.roadsFile); err != nil {
		fmt.Fprintf(a.out, "Error saving graph: %v\n", err)
		return
	}
	a.ops.Operation(fmt.Sprintf("Graph saved: %d cities, %d roads", a.graph.CityCount(), a.graph.RoadCount()))
	fmt.Fprintf(a.out, "Saved %d cities and %d roads.\n", a.graph.CityCount(), a.graph.RoadCount())
}
