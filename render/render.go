// Package render writes human-readable views of a city graph, a traversal
// order, and a shortest-path result to an io.Writer.
//
// The output is plain text meant for terminals and log captures. All
// functions return the first write error encountered.
package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/citynav/core"
)

// arrow separates consecutive cities in traversal and path listings.
const arrow = " → "

// Graph writes the full network: every city with its coordinates and its
// outgoing roads, in insertion order.
func Graph(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("render: nil graph")
	}
	if _, err := fmt.Fprintf(w, "City network: %d cities, %d roads\n", g.CityCount(), g.RoadCount()); err != nil {
		return err
	}
	if g.CityCount() == 0 {
		_, err := fmt.Fprintln(w, "  (no cities)")
		return err
	}
	for _, c := range g.Cities() {
		if err := cityBlock(w, g, c); err != nil {
			return err
		}
	}
	return nil
}

// City writes a single city with its outgoing roads.
// Returns core.ErrCityNotFound when the id is absent.
func City(w io.Writer, g *core.Graph, cityID int) error {
	if g == nil {
		return fmt.Errorf("render: nil graph")
	}
	c, ok := g.City(cityID)
	if !ok {
		return core.ErrCityNotFound
	}
	return cityBlock(w, g, c)
}

func cityBlock(w io.Writer, g *core.Graph, c core.City) error {
	if _, err := fmt.Fprintf(w, "%s (ID %d) at (%d, %d)\n", c.Name, c.ID, c.X, c.Y); err != nil {
		return err
	}
	roads := c.Roads()
	if len(roads) == 0 {
		_, err := fmt.Fprintln(w, "  roads: none")
		return err
	}
	for _, r := range roads {
		if _, err := fmt.Fprintf(w, "  → %s (%d km)\n", g.CityName(r.To), r.Distance); err != nil {
			return err
		}
	}
	return nil
}

// Traversal writes a visit order as a single arrow-joined line of city names.
func Traversal(w io.Writer, g *core.Graph, order []int) error {
	if g == nil {
		return fmt.Errorf("render: nil graph")
	}
	if len(order) == 0 {
		_, err := fmt.Fprintln(w, "(empty traversal)")
		return err
	}
	for i, id := range order {
		if i > 0 {
			if _, err := io.WriteString(w, arrow); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, g.CityName(id)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Path writes a PathResult: the total distance followed by the arrow-joined
// city names. An empty result renders as a no-path notice.
func Path(w io.Writer, g *core.Graph, pr *core.PathResult) error {
	if g == nil {
		return fmt.Errorf("render: nil graph")
	}
	if pr == nil || pr.Empty() {
		_, err := fmt.Fprintln(w, "No path exists between these cities.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Total distance: %d km\n", pr.TotalDistance); err != nil {
		return err
	}
	return Traversal(w, g, pr.CityIDs)
}
