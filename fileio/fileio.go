// Package fileio loads and saves a core.Graph from/to two tabular CSV
// files: a city record set (CityID,CityName,X_Coord,Y_Coord) and a road
// record set (FromCityID,ToCityID,Distance), each with a header row.
//
// Loading is tolerant: malformed rows are skipped with a warning, never
// fatal. Saving is a faithful, order-preserving dump of current graph state.
// File paths are explicit parameters; the package holds no global
// configuration.
package fileio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/katalvlaran/citynav/core"
)

// ErrEmptyFile indicates a data file without even a header row.
var ErrEmptyFile = errors.New("fileio: data file is empty")

var (
	cityHeader = []string{"CityID", "CityName", "X_Coord", "Y_Coord"}
	roadHeader = []string{"FromCityID", "ToCityID", "Distance"}
)

// Load populates g from the two CSV files. It returns the number of cities
// and roads actually loaded; rows that fail to parse, duplicate a city ID,
// or reference a missing endpoint are skipped and logged, not fatal.
func Load(g *core.Graph, citiesPath, roadsPath string) (cities, roads int, err error) {
	cities, err = loadCities(g, citiesPath)
	if err != nil {
		return 0, 0, err
	}

	roads, err = loadRoads(g, roadsPath)
	if err != nil {
		return cities, 0, err
	}

	return cities, roads, nil
}

func loadCities(g *core.Graph, path string) (int, error) {
	rows, err := readRows(path)
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, row := range rows {
		if len(row) != 4 {
			slog.Warn("skipping malformed city row", "file", path, "row", row)
			continue
		}
		id, err1 := strconv.Atoi(row[0])
		x, err2 := strconv.Atoi(row[2])
		y, err3 := strconv.Atoi(row[3])
		if err1 != nil || err2 != nil || err3 != nil {
			slog.Warn("skipping malformed city row", "file", path, "row", row)
			continue
		}
		if err := g.AddCity(id, row[1], x, y); err != nil {
			slog.Warn("skipping city row", "file", path, "id", id, "err", err)
			continue
		}
		loaded++
	}

	return loaded, nil
}

func loadRoads(g *core.Graph, path string) (int, error) {
	rows, err := readRows(path)
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, row := range rows {
		if len(row) != 3 {
			slog.Warn("skipping malformed road row", "file", path, "row", row)
			continue
		}
		from, err1 := strconv.Atoi(row[0])
		to, err2 := strconv.Atoi(row[1])
		distance, err3 := strconv.ParseInt(row[2], 10, 64)
		if err1 != nil || err2 != nil || err3 != nil {
			slog.Warn("skipping malformed road row", "file", path, "row", row)
			continue
		}
		if err := g.AddRoad(from, to, distance); err != nil {
			slog.Warn("skipping road row", "file", path, "from", from, "to", to, "err", err)
			continue
		}
		loaded++
	}

	return loaded, nil
}

// readRows opens a CSV file, consumes the header, and returns the remaining
// records. Per-row field-count checks happen at the caller, so the reader
// runs with FieldsPerRecord disabled.
func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fileio: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	// Header row is required.
	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
		}
		return nil, fmt.Errorf("fileio: read header of %s: %w", path, err)
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A structurally broken row: skip it, keep reading.
			slog.Warn("skipping unreadable row", "file", path, "err", err)
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Save dumps g into the two CSV files, headers included, preserving graph
// storage order for cities and road-list order for roads.
func Save(g *core.Graph, citiesPath, roadsPath string) error {
	if err := saveCities(g, citiesPath); err != nil {
		return err
	}

	return saveRoads(g, roadsPath)
}

func saveCities(g *core.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fileio: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(cityHeader); err != nil {
		return fmt.Errorf("fileio: write %s: %w", path, err)
	}
	for _, c := range g.Cities() {
		row := []string{
			strconv.Itoa(c.ID),
			c.Name,
			strconv.Itoa(c.X),
			strconv.Itoa(c.Y),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("fileio: write %s: %w", path, err)
		}
	}
	w.Flush()

	return w.Error()
}

func saveRoads(g *core.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fileio: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(roadHeader); err != nil {
		return fmt.Errorf("fileio: write %s: %w", path, err)
	}
	for _, c := range g.Cities() {
		for _, r := range c.Roads() {
			row := []string{
				strconv.Itoa(c.ID),
				strconv.Itoa(r.To),
				strconv.FormatInt(r.Distance, 10),
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("fileio: write %s: %w", path, err)
			}
		}
	}
	w.Flush()

	return w.Error()
}
